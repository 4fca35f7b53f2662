package httpHandler

import (
	"net/http"

	"mojopi/usecases"

	"github.com/gin-gonic/gin"
)

type ValidateHandler struct{}

func NewValidateHandler() *ValidateHandler {
	return &ValidateHandler{}
}

// Username handles GET /api/username/:usn.
func (h *ValidateHandler) Username(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"valid": usecases.IsValidUsername(c.Param("usn"))})
}

// Email handles GET /api/email/:eml.
func (h *ValidateHandler) Email(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"valid": usecases.IsValidEmail(c.Param("eml"))})
}
