package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

// Abort renders err and stops the handler chain. Business errors keep their
// code and message; everything else is logged and reported as unexpected.
func Abort(c *gin.Context, err error) {
	var be BusinessError
	if errors.As(err, &be) {
		c.AbortWithStatusJSON(StatusFor(be.Kind), HTTPError{
			Code:    be.Code,
			Message: be.Message,
		})
		return
	}

	zap.L().Error("unexpected error",
		zap.String("path", c.FullPath()),
		zap.String("method", c.Request.Method),
		zap.Error(err),
	)
	c.AbortWithStatusJSON(http.StatusInternalServerError, HTTPError{
		Code:    "unexpected",
		Message: "An unexpected error occurred.",
	})
}
