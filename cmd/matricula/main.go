// Command matricula is the operator CLI: search enrollments, render
// registration forms to files and inspect the record store.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/noah-isme/matricula-api/internal/repository"
	"github.com/noah-isme/matricula-api/internal/service"
	"github.com/noah-isme/matricula-api/pkg/config"
	"github.com/noah-isme/matricula-api/pkg/database"
	"github.com/noah-isme/matricula-api/pkg/logger"
	"github.com/noah-isme/matricula-api/pkg/storage"
)

// app holds the lazily opened dependencies shared by the subcommands.
type app struct {
	cfg *config.Config
	log *zap.Logger
	db  *sqlx.DB
}

func (a *app) init() error {
	if a.cfg != nil {
		return nil
	}
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log, err := logger.New(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	a.cfg, a.log = cfg, log
	return nil
}

func (a *app) enrollments(ctx context.Context) (*service.EnrollmentService, error) {
	if err := a.init(); err != nil {
		return nil, err
	}
	if a.db == nil {
		db, err := database.NewPostgres(ctx, a.cfg.Database)
		if err != nil {
			return nil, err
		}
		a.db = db
	}
	repo := repository.NewEnrollmentRepository(a.db)
	return service.NewEnrollmentService(repo, nil, nil, a.log, service.EnrollmentServiceConfig{
		AcademicYear: a.cfg.Reports.AcademicYear,
	}), nil
}

// registration builds the renderer. records may be nil when only
// RenderRecords is used.
func (a *app) registration(records *service.EnrollmentService) (*service.RegistrationService, error) {
	if err := a.init(); err != nil {
		return nil, err
	}
	assets, err := storage.NewAssetStore(a.cfg.Reports.AssetsDir)
	if err != nil {
		return nil, err
	}
	return service.NewRegistrationService(records, assets, nil, a.log, service.RegistrationConfig{
		MaxBatch: a.cfg.Reports.MaxBatch,
	}), nil
}

func (a *app) close() {
	if a.db != nil {
		_ = a.db.Close()
	}
	if a.log != nil {
		_ = a.log.Sync()
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "matricula",
		Short:         "Enrollment lookup and registration form rendering",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newSearchCmd(a),
		newSingleCmd(a),
		newBatchCmd(a),
		newCensusCmd(a),
		newSampleCmd(a),
	)
	return root
}

func main() {
	a := &app{}
	err := newRootCmd(a).Execute()
	a.close()
	if err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error: %v", err))
		os.Exit(1)
	}
}
