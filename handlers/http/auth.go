package httpHandler

import (
	"net/http"

	"mojopi/usecases"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	accounts  *usecases.AccountUseCase
	jwtSecret []byte
}

func NewAuthHandler(accounts *usecases.AccountUseCase, jwtSecret string) *AuthHandler {
	return &AuthHandler{
		accounts:  accounts,
		jwtSecret: []byte(jwtSecret),
	}
}

type registerRequest struct {
	Email    string `json:"email" binding:"required"`
	Username string `json:"username" binding:"required"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password"`
}

type resetPasswordRequest struct {
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

// Register handles POST /register. A successful registration starts an
// authenticated session.
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	user, err := h.accounts.Register(req.Email, req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.startSession(c, user.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "sign token failed"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "register successfully",
		"data":    user,
	})
}

// Login handles POST /login. An account whose password was never set (or
// was cleared for reset) is logged in but told to reset it.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	user, needReset, err := h.accounts.Login(req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.startSession(c, user.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "sign token failed"})
		return
	}

	if needReset {
		c.JSON(http.StatusOK, gin.H{
			"message":    "need to reset password",
			"need_reset": true,
			"data":       user,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "logged in successfully",
		"data":    user,
	})
}

// Logout handles GET /logout.
func (h *AuthHandler) Logout(c *gin.Context) {
	ClearSessionCookie(c)
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

// ResetPassword handles POST /reset_password for the authenticated user.
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	uid, ok := CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var req resetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.accounts.ResetPassword(uid, req.NewPassword, req.ConfirmPassword); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "new password set"})
}

func (h *AuthHandler) startSession(c *gin.Context, userID string) error {
	token, err := IssueToken(h.jwtSecret, userID)
	if err != nil {
		return err
	}
	SetSessionCookie(c, token)
	return nil
}
