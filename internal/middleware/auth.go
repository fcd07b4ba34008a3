package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/Sanjida-Parven-Alfe/Backend/internal/auth"
	"github.com/Sanjida-Parven-Alfe/Backend/internal/domain"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

const callerEmailKey = "caller_email"

type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

type RoleAuthorizer interface {
	Authorize(ctx context.Context, email string, role domain.Role) error
}

// RequireAuth rejects requests without a valid bearer token and stores the
// caller's email for the handlers behind it.
func RequireAuth(verifier TokenVerifier) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		token, err := auth.BearerToken(c.GetHeader("Authorization"))
		if err != nil {
			unauthorized(c, err)
			return
		}

		claims, err := verifier.Verify(token)
		if err != nil {
			unauthorized(c, err)
			return
		}

		c.Set(callerEmailKey, claims.Email)
		c.Next()
	}
}

// RequireRole must run after RequireAuth.
func RequireRole(authorizer RoleAuthorizer, role domain.Role, log logger.Logger) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		err := authorizer.Authorize(c.Request.Context(), CallerEmail(c), role)
		switch {
		case err == nil:
			c.Next()
		case errors.Is(err, domain.ErrForbidden):
			c.Set("error", err.Error())
			c.AbortWithStatusJSON(http.StatusForbidden, ginext.H{"message": domain.ErrForbidden.Error()})
		default:
			log.LogAttrs(c.Request.Context(), logger.ErrorLevel, "role check failed",
				logger.String("email", CallerEmail(c)),
				logger.String("error", err.Error()),
			)
			c.Set("error", err.Error())
			c.AbortWithStatusJSON(http.StatusInternalServerError, ginext.H{"message": "internal server error"})
		}
	}
}

func CallerEmail(c *ginext.Context) string {
	return c.GetString(callerEmailKey)
}

func unauthorized(c *ginext.Context, err error) {
	c.Set("error", err.Error())
	c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"message": domain.ErrUnauthenticated.Error()})
}
