package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/noah-isme/matricula-api/internal/models"
	"github.com/noah-isme/matricula-api/internal/service"
	appErrors "github.com/noah-isme/matricula-api/pkg/errors"
	"github.com/noah-isme/matricula-api/pkg/logger"
	"github.com/noah-isme/matricula-api/pkg/response"
)

type enrollmentSearcher interface {
	Search(ctx context.Context, req service.SearchRequest) ([]models.EnrollmentRecord, error)
}

// EnrollmentHandler exposes the student search endpoint.
type EnrollmentHandler struct {
	enrollments enrollmentSearcher
	logger      *zap.Logger
}

// NewEnrollmentHandler constructs EnrollmentHandler.
func NewEnrollmentHandler(enrollments enrollmentSearcher, log *zap.Logger) *EnrollmentHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &EnrollmentHandler{enrollments: enrollments, logger: log}
}

// Search godoc
// @Summary Search current enrollments
// @Description criterio is asignacion-nivel-numero, nivel-numero, or free text matched against code, identifier and name.
// @Tags Enrollments
// @Produce json
// @Param criterio query string true "Search criterion"
// @Success 200 {array} models.EnrollmentRecord
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Failure 500 {object} response.ErrorBody
// @Router /buscar [get]
func (h *EnrollmentHandler) Search(c *gin.Context) {
	var req service.SearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, appErrors.WrapAs(appErrors.ErrValidation, err, "criterio inválido"))
		return
	}

	records, err := h.enrollments.Search(c.Request.Context(), req)
	if err != nil {
		logFailure(logger.ForRequest(h.logger, c), "search", err, zap.String("criterion", req.Criterio))
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, records)
}
