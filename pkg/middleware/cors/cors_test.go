package cors

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func serve(origins []string, method, origin string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(New(origins))
	r.GET("/buscar", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	r.OPTIONS("/buscar", func(c *gin.Context) { c.String(http.StatusTeapot, "unreachable") })

	req := httptest.NewRequest(method, "/buscar", nil)
	if origin != "" {
		req.Header.Set("Origin", origin)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCORSAllowsAnyOrigin(t *testing.T) {
	w := serve(nil, http.MethodGet, "https://front.example")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "GET, POST, OPTIONS", w.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "Content-Type", w.Header().Get("Access-Control-Allow-Headers"))
}

func TestCORSPreflight(t *testing.T) {
	w := serve(nil, http.MethodOptions, "https://front.example")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestCORSRestrictedOrigins(t *testing.T) {
	w := serve([]string{"https://front.example/"}, http.MethodGet, "https://front.example")
	assert.Equal(t, "https://front.example", w.Header().Get("Access-Control-Allow-Origin"))

	w = serve([]string{"https://front.example"}, http.MethodGet, "https://evil.example")
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}
