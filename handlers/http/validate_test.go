package httpHandler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestValidateAPI(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewValidateHandler()
	r := gin.New()
	r.GET("/api/username/:usn", handler.Username)
	r.GET("/api/email/:eml", handler.Email)

	cases := []struct {
		path string
		want string
	}{
		{"/api/username/alice", `{"valid":true}`},
		{"/api/username/a", `{"valid":false}`},
		{"/api/username/_nope", `{"valid":false}`},
		{"/api/email/a@x.com", `{"valid":true}`},
		{"/api/email/not-an-email", `{"valid":false}`},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tc.path, nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, tc.want, w.Body.String(), tc.path)
	}
}
