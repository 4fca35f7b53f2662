package httpHandler

import (
	"errors"
	"net/http"

	"mojopi/usecases"

	"github.com/gin-gonic/gin"
)

func statusFor(err error) int {
	switch {
	case errors.Is(err, usecases.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, usecases.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, usecases.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, usecases.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, usecases.ErrUnsupported):
		return http.StatusUnsupportedMediaType
	}
	return http.StatusInternalServerError
}

func respondError(c *gin.Context, err error) {
	c.JSON(statusFor(err), gin.H{"error": err.Error()})
}
