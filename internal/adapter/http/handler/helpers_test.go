package handler_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"

	apphttp "pollsapp/internal/adapter/http"
	"pollsapp/internal/adapter/http/routes"
	"pollsapp/internal/core/model/response"
	. "pollsapp/pkg/test"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/gomega"
)

type testApp struct {
	Router    *gin.Engine
	Container *apphttp.Container
}

func newTestApp() *testApp {
	db := InitTestDB()
	container := apphttp.NewContainer(db, nil, nil)

	return &testApp{
		Router:    routes.SetupRouterForTests(container.Handlers()),
		Container: container,
	}
}

// do sends body as JSON. An empty body sends no payload.
func (a *testApp) do(method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req, _ := http.NewRequest(method, path, reader)
	if method != http.MethodGet {
		req.Header.Set("Content-Type", "application/json")
	}

	rr := httptest.NewRecorder()
	a.Router.ServeHTTP(rr, req)

	return rr
}

func decode[T any](rr *httptest.ResponseRecorder) T {
	var out T
	Expect(json.Unmarshal(rr.Body.Bytes(), &out)).To(Succeed(), rr.Body.String())
	return out
}

func expectError(rr *httptest.ResponseRecorder, status int, code string) response.ErrorResponse {
	Expect(rr.Code).To(Equal(status), rr.Body.String())
	Expect(rr.Header().Get("Content-Type")).To(ContainSubstring("application/json"))

	body := decode[response.ErrorResponse](rr)
	Expect(body.Code).To(Equal(code))
	Expect(body.Error).NotTo(BeEmpty())

	return body
}

func (a *testApp) recorder(req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	a.Router.ServeHTTP(rr, req)
	return rr
}
