package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/noah-isme/matricula-api/pkg/errors"
)

func newContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, w
}

func TestErrorWritesPublicMessage(t *testing.T) {
	c, w := newContext()
	Error(c, appErrors.WrapAs(appErrors.ErrDependency, errors.New("pq: password authentication failed"), "Error al buscar estudiantes"))

	require.Equal(t, http.StatusInternalServerError, w.Code)
	var body ErrorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Error al buscar estudiantes", body.Error)
	assert.NotContains(t, w.Body.String(), "password")
	assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
}

func TestTextError(t *testing.T) {
	c, w := newContext()
	Text(c, appErrors.Clone(appErrors.ErrNotFound, "Estudiante no encontrado"))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Estudiante no encontrado", w.Body.String())
	assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
}

func TestPDF(t *testing.T) {
	c, w := newContext()
	PDF(c, "Estudiante_100.pdf", []byte("%PDF-1.3"))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(t, `inline; filename="Estudiante_100.pdf"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, "%PDF-1.3", w.Body.String())
}
