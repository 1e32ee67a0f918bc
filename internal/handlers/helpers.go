package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/service-marketplace/internal/domain/identity"
	"github.com/BruksfildServices01/service-marketplace/internal/httperr"
	"github.com/BruksfildServices01/service-marketplace/internal/middleware"
)

// principal writes a 401 and reports false when no caller is attached.
func principal(c *gin.Context) (identity.Principal, bool) {
	p, ok := middleware.Principal(c)
	if !ok {
		httperr.Unauthorized(c, "missing_principal", "Authentication required.")
		c.Abort()
		return identity.Principal{}, false
	}
	return p, true
}

func idParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_"+name, "Invalid "+name+".")
		c.Abort()
		return 0, false
	}
	return uint(id), true
}
