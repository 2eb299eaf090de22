package pkg

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestGetClientIP(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := map[string]struct {
		headers map[string]string
		want    string
	}{
		"forwarded for":  {map[string]string{"X-Forwarded-For": "10.0.0.1, 10.0.0.2"}, "10.0.0.1"},
		"real ip":        {map[string]string{"X-Real-IP": "10.0.0.3"}, "10.0.0.3"},
		"remote address": {nil, "192.0.2.1"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			for k, v := range tc.headers {
				c.Request.Header.Set(k, v)
			}

			assert.Equal(t, tc.want, GetClientIP(c))
		})
	}
}
