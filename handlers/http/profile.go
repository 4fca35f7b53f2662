package httpHandler

import (
	"net/http"

	"mojopi/storage"
	"mojopi/usecases"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	accounts *usecases.AccountUseCase
	store    *storage.FileStore
}

func NewProfileHandler(accounts *usecases.AccountUseCase, store *storage.FileStore) *ProfileHandler {
	return &ProfileHandler{
		accounts: accounts,
		store:    store,
	}
}

type editProfileRequest struct {
	Username   string `json:"username"`
	Education  string `json:"education"`
	Experience string `json:"experience"`
	Bio        string `json:"bio"`
}

// GetSelf handles GET /profile for the authenticated user.
func (h *ProfileHandler) GetSelf(c *gin.Context) {
	uid, _ := CurrentUserID(c)
	h.respondProfile(c, uid, uid)
}

// Get handles GET /profile/:user_id. Private profiles are reported as not
// found to anyone but their owner.
func (h *ProfileHandler) Get(c *gin.Context) {
	viewer, _ := CurrentUserID(c)
	h.respondProfile(c, c.Param("user_id"), viewer)
}

func (h *ProfileHandler) respondProfile(c *gin.Context, userID, viewerID string) {
	profile, user, err := h.accounts.GetProfile(userID, viewerID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"user_id":    user.ID,
			"username":   user.Username,
			"email":      user.Email,
			"picture":    user.Picture,
			"is_public":  profile.IsPublic,
			"education":  profile.Education,
			"experience": profile.Experience,
			"bio":        profile.Bio,
		},
	})
}

// Edit handles POST /edit_profile. The free-text fields are always written;
// a colliding username reports a conflict and leaves the name unchanged.
func (h *ProfileHandler) Edit(c *gin.Context) {
	uid, _ := CurrentUserID(c)

	var req editProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.accounts.EditProfile(uid, req.Username, req.Education, req.Experience, req.Bio); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "edit successful"})
}

// UploadAvatar handles POST /files/profile_pic. The stored name is derived
// from the username plus the upload's extension, so a second upload for the
// same user overwrites the first.
func (h *ProfileHandler) UploadAvatar(c *gin.Context) {
	uid, _ := CurrentUserID(c)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no file provided"})
		return
	}
	if fileHeader.Filename == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty filename"})
		return
	}

	user, err := h.accounts.GetUser(uid)
	if err != nil {
		respondError(c, err)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid file"})
		return
	}
	defer file.Close()

	stored, err := h.store.SaveAvatar(user.Username, fileHeader.Filename, file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "save profile picture failed"})
		return
	}

	if err := h.accounts.SetAvatar(uid, stored); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "profile picture saved successfully"})
}

// GetAvatar handles GET /files/profile_pic and /files/profile_pic/:user_id.
// Without a user_id it serves the authenticated user's own picture.
func (h *ProfileHandler) GetAvatar(c *gin.Context) {
	userID := c.Param("user_id")
	if userID == "" {
		uid, ok := CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		userID = uid
	}

	user, err := h.accounts.GetUser(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	if user.Picture == "" {
		h.serveDefaultAvatar(c)
		return
	}

	path, err := h.store.AvatarPath(user.Picture)
	if err != nil {
		h.serveDefaultAvatar(c)
		return
	}
	c.File(path)
}

// defaultAvatarSVG is served when a user never uploaded a picture or the
// stored file is gone.
const defaultAvatarSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 64 64">` +
	`<circle cx="32" cy="32" r="32" fill="#d0d4da"/>` +
	`<circle cx="32" cy="25" r="11" fill="#8a919c"/>` +
	`<path d="M10 56c3-12 12-17 22-17s19 5 22 17" fill="#8a919c"/>` +
	`</svg>`

func (h *ProfileHandler) serveDefaultAvatar(c *gin.Context) {
	c.Data(http.StatusOK, "image/svg+xml", []byte(defaultAvatarSVG))
}
