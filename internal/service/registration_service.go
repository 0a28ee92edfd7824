package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/matricula-api/internal/layout"
	"github.com/noah-isme/matricula-api/internal/models"
	appErrors "github.com/noah-isme/matricula-api/pkg/errors"
	"github.com/noah-isme/matricula-api/pkg/export"
	"github.com/noah-isme/matricula-api/pkg/storage"
)

const (
	renderSingle = "single"
	renderBatch  = "batch"

	documentAuthor  = "Institucion Educativa de Occidente"
	documentCreator = "matricula-api"

	msgRenderFailed = "Error al generar el documento"
	msgTooManyCodes = "Demasiados códigos solicitados (máximo %d)"

	defaultMaxBatch = 200
)

type recordSource interface {
	Get(ctx context.Context, code string) (*models.EnrollmentRecord, error)
	GetMany(ctx context.Context, codes []string) ([]models.EnrollmentRecord, error)
}

type assetLocator interface {
	Lookup(name string) (string, bool, error)
}

type renderObserver interface {
	ObserveRender(kind string, pages int, duration time.Duration, err error)
}

// Document is a rendered registration form ready to be served.
type Document struct {
	Filename string
	Content  []byte
	Pages    int
}

// RegistrationConfig tunes document rendering.
type RegistrationConfig struct {
	MaxBatch int
	Now      func() time.Time
}

// RegistrationService renders registration forms for one or many students.
type RegistrationService struct {
	records recordSource
	assets  assetLocator
	metrics renderObserver
	logger  *zap.Logger
	cfg     RegistrationConfig
}

// NewRegistrationService constructs RegistrationService.
func NewRegistrationService(records recordSource, assets assetLocator, metrics renderObserver, logger *zap.Logger, cfg RegistrationConfig) *RegistrationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.MaxBatch <= 0 {
		cfg.MaxBatch = defaultMaxBatch
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &RegistrationService{records: records, assets: assets, metrics: metrics, logger: logger, cfg: cfg}
}

// RenderSingle renders the form of the student whose code or identifier is code.
func (s *RegistrationService) RenderSingle(ctx context.Context, code string) (*Document, error) {
	record, err := s.records.Get(ctx, code)
	if err != nil {
		return nil, err
	}
	content, pages, err := s.render(renderSingle, []models.EnrollmentRecord{*record})
	if err != nil {
		return nil, err
	}
	return &Document{Filename: SingleFilename(record.Codigo), Content: content, Pages: pages}, nil
}

// RenderBatch renders one page per known code, in request order.
func (s *RegistrationService) RenderBatch(ctx context.Context, codes []string) (*Document, error) {
	if n := countDistinct(codes); n > s.cfg.MaxBatch {
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf(msgTooManyCodes, s.cfg.MaxBatch))
	}
	records, err := s.records.GetMany(ctx, codes)
	if err != nil {
		return nil, err
	}
	content, pages, err := s.render(renderBatch, records)
	if err != nil {
		return nil, err
	}
	return &Document{Filename: BatchFilename(s.cfg.Now()), Content: content, Pages: pages}, nil
}

// RenderRecords renders already loaded records without touching the store.
func (s *RegistrationService) RenderRecords(records []models.EnrollmentRecord) ([]byte, error) {
	content, _, err := s.render(renderBatch, records)
	return content, err
}

// SingleFilename is the download name of a single-student form.
func SingleFilename(code string) string {
	return "Estudiante_" + code + ".pdf"
}

// BatchFilename is the download name of a consolidated document generated at t.
func BatchFilename(t time.Time) string {
	return "Estudiantes_Consolidado_" + t.Format("20060102_150405") + ".pdf"
}

func (s *RegistrationService) render(kind string, records []models.EnrollmentRecord) (content []byte, pages int, err error) {
	start := time.Now()
	defer func() {
		if s.metrics != nil {
			s.metrics.ObserveRender(kind, pages, time.Since(start), err)
		}
	}()

	assets, err := s.resolveAssets()
	if err != nil {
		return nil, 0, err
	}

	doc := export.NewPDFDocument(layout.PageSetup, export.Metadata{
		Title:   documentTitle(records),
		Author:  documentAuthor,
		Creator: documentCreator,
	})
	if err := doc.RegisterImages(assets.Paths()...); err != nil {
		s.logger.Error("register form images", zap.Error(err))
		return nil, 0, appErrors.WrapAs(appErrors.ErrAssetMissing, err, "")
	}

	laidOut, err := layout.BuildPages(records, doc, assets)
	if err != nil {
		if errors.Is(err, layout.ErrNoRecords) {
			return nil, 0, appErrors.Clone(appErrors.ErrNotFound, msgStudentsNotFound)
		}
		return nil, 0, appErrors.WrapAs(appErrors.ErrInternal, err, msgRenderFailed)
	}
	for _, page := range laidOut {
		if err := doc.AddPage(page.Ops); err != nil {
			s.logger.Error("draw form page", zap.Int("page", page.Index), zap.String("code", page.Code), zap.Error(err))
			return nil, 0, appErrors.WrapAs(appErrors.ErrInternal, err, msgRenderFailed)
		}
	}

	content, err = doc.Bytes()
	if err != nil {
		s.logger.Error("encode form document", zap.Error(err))
		return nil, 0, appErrors.WrapAs(appErrors.ErrInternal, err, msgRenderFailed)
	}
	return content, doc.PageCount(), nil
}

func (s *RegistrationService) resolveAssets() (layout.Assets, error) {
	var assets layout.Assets
	if s.assets == nil {
		return assets, nil
	}
	targets := []struct {
		name string
		dst  *string
	}{
		{storage.AssetEmblem, &assets.Emblem},
		{storage.AssetIDCode, &assets.IDCode},
		{storage.AssetPrincipal, &assets.Principal},
	}
	for _, t := range targets {
		path, ok, err := s.assets.Lookup(t.name)
		if err != nil {
			s.logger.Error("resolve form image", zap.String("asset", t.name), zap.Error(err))
			return layout.Assets{}, appErrors.WrapAs(appErrors.ErrAssetMissing, err, "")
		}
		if !ok {
			s.logger.Debug("form image absent", zap.String("asset", t.name))
			continue
		}
		*t.dst = path
	}
	return assets, nil
}

func documentTitle(records []models.EnrollmentRecord) string {
	if len(records) == 1 {
		return "Registro de Matricula " + records[0].Codigo
	}
	return "Registro de Matricula Consolidado"
}

func countDistinct(codes []string) int {
	seen := make(map[string]struct{}, len(codes))
	for _, code := range codes {
		if code = strings.TrimSpace(code); code != "" {
			seen[code] = struct{}{}
		}
	}
	return len(seen)
}
