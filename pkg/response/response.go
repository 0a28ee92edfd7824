package response

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/noah-isme/matricula-api/pkg/errors"
)

// ErrorBody is the JSON error contract: {"error": "<message>"}.
type ErrorBody struct {
	Error string `json:"error"`
}

func noStore(c *gin.Context) {
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
}

// JSON sends data as the raw response body.
func JSON(c *gin.Context, status int, data interface{}) {
	noStore(c)
	c.JSON(status, data)
}

// Error sends a JSON error response with the public message only.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	noStore(c)
	c.AbortWithStatusJSON(appErr.Status, ErrorBody{Error: appErr.Message})
}

// Text sends a plain-text error response, used by the document endpoints.
func Text(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	noStore(c)
	c.Abort()
	c.Data(appErr.Status, "text/plain; charset=utf-8", []byte(appErr.Message))
}

// PDF streams a rendered document inline.
func PDF(c *gin.Context, filename string, content []byte) {
	noStore(c)
	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", content)
}
