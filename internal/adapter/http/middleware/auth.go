// Package middleware holds gin middlewares shared across route groups.
package middleware

import (
	"net/http"
	"os"
	"strings"

	"freightmarket/pkg"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const authUIDKey = "auth_uid"

// RequireAuth validates the Bearer token on the request and stores the
// subject claim in the gin context. Tokens are HS256, signed with
// JWT_SECRET, as issued by the identity provider.
func RequireAuth() gin.HandlerFunc {
	secret := []byte(os.Getenv("JWT_SECRET"))

	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			abortUnauthorized(c, "missing bearer token")
			return
		}
		raw := strings.TrimPrefix(header, "Bearer ")

		token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return secret, nil
		}, jwt.WithValidMethods([]string{"HS256"}))
		if err != nil || !token.Valid {
			abortUnauthorized(c, "invalid or expired token")
			return
		}

		sub, err := token.Claims.GetSubject()
		if err != nil || sub == "" {
			abortUnauthorized(c, "token has no subject")
			return
		}

		c.Set(authUIDKey, sub)
		c.Next()
	}
}

// GetAuthUID returns the authenticated subject set by RequireAuth.
func GetAuthUID(c *gin.Context) string {
	return c.GetString(authUIDKey)
}

func abortUnauthorized(c *gin.Context, msg string) {
	appErr := pkg.NewDomainErrorSimple("unauthorized", msg, http.StatusUnauthorized)
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
