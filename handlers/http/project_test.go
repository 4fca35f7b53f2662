package httpHandler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"mojopi/entities"
	"mojopi/usecases"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProjectRig(t *testing.T) (*gin.Engine, *memProjectRepo, *memRingRepo) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	projects := &memProjectRepo{}
	rings := &memRingRepo{}
	registry := usecases.NewRegistryUseCase(projects, rings, nil, nil)
	handler := NewProjectHandler(registry)

	r := gin.New()
	r.GET("/project/:name", handler.Get)
	r.GET("/project/:name/history", handler.History)
	r.GET("/project/:name/files", handler.Files)
	r.GET("/project/:name/:version", handler.Get)
	r.GET("/project/:name/:version/history", handler.History)
	r.GET("/project/:name/:version/files", handler.Files)
	r.GET("/search", handler.Search)
	return r, projects, rings
}

func getJSON(t *testing.T, r *gin.Engine, path string) (int, map[string]any) {
	t.Helper()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	var body map[string]any
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), w.Body.String())
	}
	return w.Code, body
}

func seedProject(t *testing.T, projects *memProjectRepo, rings *memRingRepo) {
	t.Helper()
	require.NoError(t, projects.Create(&entities.Project{
		Name: "firering", Version: "1.0.0",
		Description: "# Firering", DescriptionContentType: "text/markdown",
	}))
	require.NoError(t, projects.Create(&entities.Project{Name: "firering", Version: "1.1.0", License: "MIT"}))
	require.NoError(t, rings.Create(&entities.Ring{
		Name: "firering", Version: "1.0.0", Platform: "linux",
		FileName: "firering-1.0.0.ring", UploadAt: "2024-01-01T00:00:00Z",
	}))
	require.NoError(t, rings.Create(&entities.Ring{
		Name: "firering", Version: "1.1.0", Platform: "linux",
		FileName: "firering-1.1.0.ring", UploadAt: "2024-02-01T00:00:00Z",
	}))
}

func TestProjectGetResolvesLatest(t *testing.T) {
	r, projects, rings := newProjectRig(t)
	seedProject(t, projects, rings)

	code, body := getJSON(t, r, "/project/firering")
	require.Equal(t, http.StatusOK, code)
	info := body["info"].(map[string]any)
	assert.Equal(t, "1.1.0", info["version"])
	assert.Equal(t, "MIT", info["license"])
}

func TestProjectGetWithVersion(t *testing.T) {
	r, projects, rings := newProjectRig(t)
	seedProject(t, projects, rings)

	code, body := getJSON(t, r, "/project/firering/1.0.0")
	require.Equal(t, http.StatusOK, code)
	info := body["info"].(map[string]any)
	assert.Equal(t, "1.0.0", info["version"])
	assert.Contains(t, body["description"], "<h1")
}

func TestProjectHistoryAndFiles(t *testing.T) {
	r, projects, rings := newProjectRig(t)
	seedProject(t, projects, rings)

	// the static children coexist with the :version param routes
	code, body := getJSON(t, r, "/project/firering/history")
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, body["releases"], 2)

	code, body = getJSON(t, r, "/project/firering/1.0.0/history")
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, body["releases"], 2)

	code, body = getJSON(t, r, "/project/firering/1.0.0/files")
	require.Equal(t, http.StatusOK, code)
	rs := body["rings"].([]any)
	require.Len(t, rs, 1)
	assert.Equal(t, "firering-1.0.0.ring", rs[0].(map[string]any)["file_name"])

	// version resolves to latest when omitted
	code, body = getJSON(t, r, "/project/firering/files")
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, body["rings"], 1)
}

func TestProjectUnknownName(t *testing.T) {
	r, _, _ := newProjectRig(t)
	code, _ := getJSON(t, r, "/project/missing")
	assert.Equal(t, http.StatusNotFound, code)
}

func TestSearchEndpoint(t *testing.T) {
	r, projects, rings := newProjectRig(t)
	seedProject(t, projects, rings)
	require.NoError(t, projects.Create(&entities.Project{Name: "waterwheel", Version: "0.1.0"}))

	code, body := getJSON(t, r, "/search?q=fire")
	require.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, 2, body["count"])

	code, body = getJSON(t, r, "/search?q=nothing")
	require.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, 0, body["count"])
}
