package httpHandler

import (
	"net/http"
	"strings"

	"mojopi/storage"
	"mojopi/usecases"

	"github.com/gin-gonic/gin"
)

type RingHandler struct {
	registry *usecases.RegistryUseCase
	store    *storage.FileStore
}

func NewRingHandler(registry *usecases.RegistryUseCase, store *storage.FileStore) *RingHandler {
	return &RingHandler{
		registry: registry,
		store:    store,
	}
}

// Download handles GET /files/ring/:name[/:version[/:platform]]. An empty
// version resolves to the latest; platform narrows the match when given.
func (h *RingHandler) Download(c *gin.Context) {
	ring, err := h.registry.ResolveRing(c.Param("name"), c.Param("version"), c.Param("platform"))
	if err != nil {
		respondError(c, err)
		return
	}

	path, err := h.store.RingPath(ring.FileName)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "ring file not found"})
		return
	}
	c.FileAttachment(path, ring.FileName)
}

// Upload handles POST /files/ring/...: a multipart form with the metadata
// fields and a "file" part. Registration and file persistence happen as one
// operation in the use case.
func (h *RingHandler) Upload(c *gin.Context) {
	if !strings.HasPrefix(c.ContentType(), "multipart/") {
		c.JSON(http.StatusUnsupportedMediaType, gin.H{"error": "multipart form required"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no file upload"})
		return
	}
	if fileHeader.Filename == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no file upload"})
		return
	}

	// Form fields take precedence; the path supplies defaults.
	name := c.PostForm("name")
	version := c.PostForm("version")
	if version == "" {
		version = c.Param("version")
	}
	platform := c.PostForm("platform")
	if platform == "" {
		platform = c.Param("platform")
	}

	if name == "" {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "name not provided"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid file"})
		return
	}
	defer file.Close()

	ring, err := h.registry.UploadRing(usecases.RingUpload{
		Name:        name,
		Version:     version,
		Platform:    platform,
		Author:      c.PostForm("author"),
		AuthorEmail: c.PostForm("author_email"),
		RequireDist: c.PostForm("require_dist"),
		RequireMojo: c.PostForm("require_mojo"),
		FileName:    fileHeader.Filename,
	}, file)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "ring uploaded successfully",
		"data":    ring,
	})
}
