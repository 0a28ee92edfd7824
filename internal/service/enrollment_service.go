package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/matricula-api/internal/models"
	appErrors "github.com/noah-isme/matricula-api/pkg/errors"
)

// Client-facing messages.
const (
	msgCriterionRequired = "Debe proporcionar un criterio de búsqueda (código, estudiante o nombres)"
	msgCodeRequired      = "Código no proporcionado"
	msgCodesRequired     = "Códigos no proporcionados"
	msgStudentNotFound   = "Estudiante no encontrado"
	msgStudentsNotFound  = "No se encontraron estudiantes"
	msgSearchFailed      = "Error al buscar estudiantes"
	msgLookupFailed      = "Error al buscar estudiante"
	msgCensusFailed      = "Error al contar registros"
)

type enrollmentRepository interface {
	Search(ctx context.Context, criterion models.SearchCriterion, year int) ([]models.EnrollmentRecord, error)
	FindOneByCodeOrID(ctx context.Context, code string) (*models.EnrollmentRecord, error)
	FindManyByCodes(ctx context.Context, codes []string) ([]models.EnrollmentRecord, error)
	YearCensus(ctx context.Context) ([]models.YearCount, error)
}

type queryObserver interface {
	ObserveDBQuery(label string, duration time.Duration)
}

// SearchRequest is the /buscar query string.
type SearchRequest struct {
	Criterio string `form:"criterio" validate:"required,max=120"`
}

// EnrollmentServiceConfig tunes lookups.
type EnrollmentServiceConfig struct {
	// AcademicYear pins the year searched; zero follows the clock.
	AcademicYear int
	Now          func() time.Time
}

// EnrollmentService resolves search criteria and codes to enrollment records.
type EnrollmentService struct {
	repo      enrollmentRepository
	metrics   queryObserver
	validator *validator.Validate
	logger    *zap.Logger
	cfg       EnrollmentServiceConfig
}

// NewEnrollmentService constructs EnrollmentService.
func NewEnrollmentService(repo enrollmentRepository, metrics queryObserver, validate *validator.Validate, logger *zap.Logger, cfg EnrollmentServiceConfig) *EnrollmentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &EnrollmentService{repo: repo, metrics: metrics, validator: validate, logger: logger, cfg: cfg}
}

// AcademicYear returns the year searches are restricted to.
func (s *EnrollmentService) AcademicYear() int {
	if s.cfg.AcademicYear > 0 {
		return s.cfg.AcademicYear
	}
	return s.cfg.Now().Year()
}

// Search returns current-year records matching the raw criterion.
func (s *EnrollmentService) Search(ctx context.Context, req SearchRequest) ([]models.EnrollmentRecord, error) {
	req.Criterio = strings.TrimSpace(req.Criterio)
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.WrapAs(appErrors.ErrValidation, err, msgCriterionRequired)
	}

	criterion := models.ParseCriterion(req.Criterio)
	year := s.AcademicYear()

	start := time.Now()
	records, err := s.repo.Search(ctx, criterion, year)
	s.observe("enrollment_search", start)
	if err != nil {
		s.logger.Error("search enrollments", zap.String("criterion", criterion.String()), zap.Int("year", year), zap.Error(err))
		return nil, appErrors.WrapAs(appErrors.ErrDependency, err, msgSearchFailed)
	}
	if len(records) == 0 {
		return nil, appErrors.Clone(appErrors.ErrNotFound, msgStudentNotFound)
	}
	return records, nil
}

// Get returns the most recent record whose code or identifier equals code.
func (s *EnrollmentService) Get(ctx context.Context, code string) (*models.EnrollmentRecord, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, msgCodeRequired)
	}

	start := time.Now()
	record, err := s.repo.FindOneByCodeOrID(ctx, code)
	s.observe("enrollment_find_one", start)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, msgStudentNotFound)
		}
		s.logger.Error("find enrollment", zap.String("code", code), zap.Error(err))
		return nil, appErrors.WrapAs(appErrors.ErrDependency, err, msgLookupFailed)
	}
	return record, nil
}

// GetMany returns the most recent record of each known code, in request order.
func (s *EnrollmentService) GetMany(ctx context.Context, codes []string) ([]models.EnrollmentRecord, error) {
	cleaned := make([]string, 0, len(codes))
	for _, code := range codes {
		if code = strings.TrimSpace(code); code != "" {
			cleaned = append(cleaned, code)
		}
	}
	if len(cleaned) == 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, msgCodesRequired)
	}

	start := time.Now()
	records, err := s.repo.FindManyByCodes(ctx, cleaned)
	s.observe("enrollment_find_many", start)
	if err != nil {
		s.logger.Error("find enrollments", zap.Strings("codes", cleaned), zap.Error(err))
		return nil, appErrors.WrapAs(appErrors.ErrDependency, err, msgSearchFailed)
	}
	if len(records) == 0 {
		return nil, appErrors.Clone(appErrors.ErrNotFound, msgStudentsNotFound)
	}
	if len(records) < len(cleaned) {
		s.logger.Warn("some codes have no enrollment", zap.Int("requested", len(cleaned)), zap.Int("found", len(records)))
	}
	return records, nil
}

// YearCensus counts stored rows per year.
func (s *EnrollmentService) YearCensus(ctx context.Context) ([]models.YearCount, error) {
	start := time.Now()
	counts, err := s.repo.YearCensus(ctx)
	s.observe("enrollment_year_census", start)
	if err != nil {
		s.logger.Error("year census", zap.Error(err))
		return nil, appErrors.WrapAs(appErrors.ErrDependency, err, msgCensusFailed)
	}
	return counts, nil
}

func (s *EnrollmentService) observe(label string, start time.Time) {
	if s.metrics != nil {
		s.metrics.ObserveDBQuery(label, time.Since(start))
	}
}
