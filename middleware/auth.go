package middleware

import (
	"context"
	"net/http"
	"strings"

	"looncamp-backend/services"
	"looncamp-backend/utils"

	"github.com/gin-gonic/gin"
)

const adminContextKey = "admin"

// Authenticator is the part of the auth service the gate needs.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (services.AdminIdentity, error)
}

// BearerToken extracts the token from "Authorization: Bearer <token>".
func BearerToken(c *gin.Context) (string, bool) {
	parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	return token, token != ""
}

// RequireAdmin rejects every failure with the same 401 so clients can log
// the user out locally.
func RequireAdmin(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := BearerToken(c)
		if !ok {
			utils.AbortJSONError(c, http.StatusUnauthorized, "Access denied. No token provided.")
			return
		}

		identity, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			utils.AbortJSONError(c, http.StatusUnauthorized, "Invalid or expired token.")
			return
		}

		c.Set(adminContextKey, identity)
		c.Next()
	}
}

// CurrentAdmin returns the identity RequireAdmin attached to this request.
func CurrentAdmin(c *gin.Context) (services.AdminIdentity, bool) {
	v, ok := c.Get(adminContextKey)
	if !ok {
		return services.AdminIdentity{}, false
	}
	identity, ok := v.(services.AdminIdentity)
	return identity, ok
}
