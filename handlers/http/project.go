package httpHandler

import (
	"net/http"

	"mojopi/services"
	"mojopi/usecases"

	"github.com/gin-gonic/gin"
)

type ProjectHandler struct {
	registry *usecases.RegistryUseCase
}

func NewProjectHandler(registry *usecases.RegistryUseCase) *ProjectHandler {
	return &ProjectHandler{registry: registry}
}

// Get handles GET /project/:name and /project/:name/:version. The response
// carries the merged metadata map plus the description rendered to safe
// HTML per its declared content type.
func (h *ProjectHandler) Get(c *gin.Context) {
	name := c.Param("name")
	version := c.Param("version")

	project, err := h.registry.Project(name, version)
	if err != nil {
		respondError(c, err)
		return
	}
	info, err := h.registry.ProjectInfo(name, project.Version)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"info":        info,
		"description": services.RenderDescription(project.Description, project.DescriptionContentType),
	})
}

// History handles GET /project/:name[/:version]/history: every ring for the
// name, newest upload first.
func (h *ProjectHandler) History(c *gin.Context) {
	name := c.Param("name")
	version := c.Param("version")

	releases, err := h.registry.History(name, version)
	if err != nil {
		respondError(c, err)
		return
	}
	info, err := h.registry.ProjectInfo(name, version)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"info":     info,
		"releases": releases,
	})
}

// Files handles GET /project/:name[/:version]/files: the rings for one
// name/version pair, for download listing.
func (h *ProjectHandler) Files(c *gin.Context) {
	name := c.Param("name")
	version := c.Param("version")

	rings, err := h.registry.Files(name, version)
	if err != nil {
		respondError(c, err)
		return
	}
	info, err := h.registry.ProjectInfo(name, version)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"info":  info,
		"rings": rings,
	})
}

// Search handles GET /search?q=. Case-insensitive substring match on the
// project name.
func (h *ProjectHandler) Search(c *gin.Context) {
	query := c.Query("q")

	results, err := h.registry.Search(query)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"results": results,
		"count":   len(results),
	})
}
