package util

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pollsapp/internal/core/apperror"
	"pollsapp/internal/core/model/request"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/gomega"
)

func contextWithBody(body string) *gin.Context {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPut, "/todos", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	return c
}

func TestBindJSON_Success(t *testing.T) {
	RegisterTestingT(t)

	params, err := BindJSON[request.UpdateTodoRequest](contextWithBody(`{"id": 1, "completed": true}`))

	Expect(err).To(BeNil())
	Expect(*params.ID).To(Equal(int64(1)))
	Expect(params.Text).To(BeNil())
	Expect(*params.Completed).To(BeTrue())
}

func TestBindJSON_NullIsAbsent(t *testing.T) {
	RegisterTestingT(t)

	params, err := BindJSON[request.UpdateTodoRequest](contextWithBody(`{"id": 1, "text": null}`))

	Expect(err).To(BeNil())
	Expect(params.Text).To(BeNil())
}

func TestBindJSON_Malformed(t *testing.T) {
	RegisterTestingT(t)

	for _, body := range []string{`{"id": 1`, ``, `{"id": "one"}`, `[1, 2]`} {
		_, err := BindJSON[request.UpdateTodoRequest](contextWithBody(body))

		Expect(apperror.IsCode(err, apperror.CodeBadRequest)).To(BeTrue(), body)
		Expect(apperror.MessageOf(err)).To(Equal("Invalid JSON."))
	}
}
