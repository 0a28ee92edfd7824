package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/noah-isme/matricula-api/internal/service"
	appErrors "github.com/noah-isme/matricula-api/pkg/errors"
	"github.com/noah-isme/matricula-api/pkg/logger"
	"github.com/noah-isme/matricula-api/pkg/response"
)

type registrationRenderer interface {
	RenderSingle(ctx context.Context, code string) (*service.Document, error)
	RenderBatch(ctx context.Context, codes []string) (*service.Document, error)
}

// RegistrationHandler serves the registration form documents.
type RegistrationHandler struct {
	renderer registrationRenderer
	logger   *zap.Logger
}

// NewRegistrationHandler constructs RegistrationHandler.
func NewRegistrationHandler(renderer registrationRenderer, log *zap.Logger) *RegistrationHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &RegistrationHandler{renderer: renderer, logger: log}
}

// Single godoc
// @Summary Registration form of one student
// @Tags Registration
// @Produce application/pdf
// @Produce plain
// @Param codigo query string true "Student code or identifier"
// @Success 200 {file} binary
// @Failure 400 {string} string
// @Failure 404 {string} string
// @Failure 500 {string} string
// @Router /pdf [get]
func (h *RegistrationHandler) Single(c *gin.Context) {
	code := c.Query("codigo")
	doc, err := h.renderer.RenderSingle(c.Request.Context(), code)
	if err != nil {
		logFailure(logger.ForRequest(h.logger, c), "render single", err, zap.String("code", code))
		response.Text(c, err)
		return
	}
	response.PDF(c, doc.Filename, doc.Content)
}

// Batch godoc
// @Summary Consolidated registration forms
// @Description One page per known code, in request order. Unknown codes are skipped.
// @Tags Registration
// @Produce application/pdf
// @Produce plain
// @Param codigos[] query []string true "Student codes" collectionFormat(multi)
// @Success 200 {file} binary
// @Failure 400 {string} string
// @Failure 404 {string} string
// @Failure 500 {string} string
// @Router /pdf_consolidado [get]
func (h *RegistrationHandler) Batch(c *gin.Context) {
	codes := append(c.QueryArray("codigos[]"), c.QueryArray("codigos")...)
	doc, err := h.renderer.RenderBatch(c.Request.Context(), codes)
	if err != nil {
		logFailure(logger.ForRequest(h.logger, c), "render batch", err, zap.Strings("codes", codes))
		response.Text(c, err)
		return
	}
	logger.ForRequest(h.logger, c).Info("batch rendered", zap.Int("requested", len(codes)), zap.Int("pages", doc.Pages))
	response.PDF(c, doc.Filename, doc.Content)
}

// logFailure records server-side errors with their cause; client errors are
// logged at debug level only.
func logFailure(l *zap.Logger, op string, err error, fields ...zap.Field) {
	appErr := appErrors.FromError(err)
	fields = append(fields, zap.String("error_code", appErr.Code), zap.Error(err))
	if appErr.Status >= 500 {
		l.Error(op+" failed", fields...)
		return
	}
	l.Debug(op+" rejected", fields...)
}
