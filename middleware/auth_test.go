package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"looncamp-backend/services"

	"github.com/gin-gonic/gin"
)

type fakeAuthenticator struct{}

func (fakeAuthenticator) Authenticate(_ context.Context, token string) (services.AdminIdentity, error) {
	if token == "good" {
		return services.AdminIdentity{ID: 1, Email: "admin@looncamp.in"}, nil
	}
	return services.AdminIdentity{}, errors.New("bad token")
}

func newGateRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/private", RequireAdmin(fakeAuthenticator{}), func(c *gin.Context) {
		admin, ok := CurrentAdmin(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, admin)
	})
	return r
}

func TestRequireAdmin(t *testing.T) {
	r := newGateRouter()

	cases := map[string]int{
		"":               http.StatusUnauthorized,
		"Bearer":         http.StatusUnauthorized,
		"Basic good":     http.StatusUnauthorized,
		"Bearer expired": http.StatusUnauthorized,
		"Bearer good":    http.StatusOK,
		"bearer good":    http.StatusOK,
	}
	for header, want := range cases {
		req := httptest.NewRequest(http.MethodGet, "/private", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != want {
			t.Errorf("Authorization %q: status %d, want %d", header, w.Code, want)
		}
	}
}
