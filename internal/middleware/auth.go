package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/service-marketplace/internal/domain/identity"
	"github.com/BruksfildServices01/service-marketplace/internal/httperr"
)

const (
	ContextUserID   = "userID"
	ContextUserRole = "userRole"
)

type TokenParser interface {
	Parse(token string) (identity.Principal, error)
}

func AuthMiddleware(tokens TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Unauthorized(c, "missing_authorization_header", "Authorization header is required.")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			httperr.Unauthorized(c, "invalid_authorization_header", "Expected a Bearer token.")
			c.Abort()
			return
		}

		p, err := tokens.Parse(strings.TrimSpace(parts[1]))
		if err != nil {
			httperr.Unauthorized(c, "invalid_token", "Token is invalid or expired.")
			c.Abort()
			return
		}

		c.Set(ContextUserID, p.ID)
		c.Set(ContextUserRole, p.Role)

		c.Next()
	}
}

// Principal returns the caller placed in the context by AuthMiddleware.
func Principal(c *gin.Context) (identity.Principal, bool) {
	id, ok1 := c.Get(ContextUserID)
	role, ok2 := c.Get(ContextUserRole)
	if !ok1 || !ok2 {
		return identity.Principal{}, false
	}

	uid, ok1 := id.(uint)
	r, ok2 := role.(identity.Role)
	if !ok1 || !ok2 {
		return identity.Principal{}, false
	}
	return identity.Principal{ID: uid, Role: r}, true
}
