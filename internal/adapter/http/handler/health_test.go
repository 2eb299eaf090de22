package handler_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"pollsapp/internal/adapter/http/handler"
	"pollsapp/internal/adapter/http/routes"

	. "github.com/onsi/gomega"
)

type failingPinger struct{}

func (failingPinger) PingContext(ctx context.Context) error {
	return errors.New("database is locked")
}

func TestHealth_OK(t *testing.T) {
	RegisterTestingT(t)

	app := newTestApp()

	rr := app.do(http.MethodGet, "/health", "")

	Expect(rr.Code).To(Equal(http.StatusOK))
	Expect(rr.Body.String()).To(MatchJSON(`{"status": "ok"}`))
}

func TestHealth_Unavailable(t *testing.T) {
	RegisterTestingT(t)

	router := routes.SetupRouterForTests(routes.HandlersConfig{
		HealthHandler: handler.NewHealthHandler(failingPinger{}, nil),
	})

	rr := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(rr, req)

	Expect(rr.Code).To(Equal(http.StatusServiceUnavailable))
	Expect(rr.Body.String()).To(MatchJSON(`{"status": "unavailable"}`))
}

func TestUnknownRoute(t *testing.T) {
	RegisterTestingT(t)

	app := newTestApp()

	expectError(app.do(http.MethodGet, "/nothing", ""), http.StatusNotFound, "NOT_FOUND")
}
