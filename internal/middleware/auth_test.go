package middleware

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/taskdeck/taskdeck/internal/config"
)

func currentUserRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{}
	cfg.Auth.UserHeader = "X-User-ID"

	r := gin.New()
	r.Use(CurrentUser(cfg))
	r.GET("/whoami", func(c *gin.Context) {
		c.String(http.StatusOK, strconv.FormatInt(UserID(c), 10))
	})
	return r
}

func TestCurrentUser(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"no header falls back to the seeded user", "", "1"},
		{"numeric header is honored", "42", "42"},
		{"garbage header falls back", "robert", "1"},
		{"non-positive id falls back", "-3", "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := currentUserRouter()
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if tt.header != "" {
				req.Header.Set("X-User-ID", tt.header)
			}
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.want, w.Body.String())
		})
	}
}
