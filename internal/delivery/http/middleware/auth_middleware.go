package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"talentai-backend/internal/delivery/http/response"
	"talentai-backend/internal/domain"
	"talentai-backend/pkg/token"

	"github.com/gin-gonic/gin"
)

// publicSuffixes lists path endings that bypass authentication entirely:
// login, signup and the API documentation endpoints, plus the bare "details"
// suffix the upstream service shipped with. Matching is by suffix, not exact
// path, and is preserved as-is for client compatibility.
var publicSuffixes = []string{"/login", "/signup", "/docs", "/openapi.json", "details"}

func isPublicPath(path string) bool {
	for _, suffix := range publicSuffixes {
		if strings.HasSuffix(path, suffix) {
			return true
		}
	}
	// Swagger UI assets (/docs/index.html, /docs/doc.json, ...)
	return strings.HasPrefix(path, "/docs/")
}

// AuthGate enforces bearer-token authentication on every route that is not on
// the public allow-list. On success the verified identity is attached to both
// the gin keys and the request context, so handlers and usecases can read it
// without re-parsing the token. On failure the request is aborted before any
// handler or repository work runs.
func AuthGate(codec *token.Codec) gin.HandlerFunc {
	return func(c *gin.Context) {
		// CORS pre-flight carries no credentials
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		if isPublicPath(c.Request.URL.Path) {
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			response.AbortFail(c, http.StatusUnauthorized,
				"Not authenticated: Missing or invalid Authorization header")
			return
		}

		claims, err := codec.Verify(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			reason := token.ErrTokenMalformed.Error()
			if errors.Is(err, token.ErrTokenExpired) {
				reason = token.ErrTokenExpired.Error()
			}
			response.AbortFail(c, http.StatusUnauthorized, reason)
			return
		}

		c.Set(string(domain.KeyUserID), claims.SubjectID)
		c.Set(string(domain.KeyUserName), claims.DisplayName)

		ctx := context.WithValue(c.Request.Context(), domain.KeyUserID, claims.SubjectID)
		ctx = context.WithValue(ctx, domain.KeyUserName, claims.DisplayName)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
