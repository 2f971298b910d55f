// Package migration applies the versioned SQL scripts embedded in the binary.
package migration

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"

	"github.com/vpndash/vpndash/internal/shared/config"
	"github.com/vpndash/vpndash/internal/shared/logger"
)

//go:embed scripts/sqlite/*.sql scripts/mysql/*.sql
var embeddedScripts embed.FS

// ScriptsDir is where `migrate create` writes new scripts, relative to the repo root.
const ScriptsDir = "internal/infrastructure/migration/scripts"

// Strategy defines the interface for different migration strategies
type Strategy interface {
	// Migrate executes the migration strategy
	Migrate(ctx context.Context, db *gorm.DB) error
	// GetName returns the strategy name
	GetName() string
}

// MigrationStatus is one script and whether it has been applied.
type MigrationStatus struct {
	Version int64
	Path    string
	Applied bool
}

// GooseStrategy runs the embedded scripts of one dialect with goose.
type GooseStrategy struct {
	driver string
	logger logger.Interface
}

func NewGooseStrategy(driver string, log logger.Interface) *GooseStrategy {
	return &GooseStrategy{
		driver: driver,
		logger: log.With("component", "migration.goose"),
	}
}

func (s *GooseStrategy) GetName() string {
	return "goose"
}

func dialectFor(driver string) (goose.Dialect, string, error) {
	switch driver {
	case config.DriverSQLite, "":
		return goose.DialectSQLite3, config.DriverSQLite, nil
	case config.DriverMySQL:
		return goose.DialectMySQL, config.DriverMySQL, nil
	default:
		return "", "", fmt.Errorf("unsupported migration dialect: %s", driver)
	}
}

func (s *GooseStrategy) provider(db *gorm.DB) (*goose.Provider, error) {
	dialect, dir, err := dialectFor(s.driver)
	if err != nil {
		return nil, err
	}

	fsys, err := fs.Sub(embeddedScripts, "scripts/"+dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded scripts: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	p, err := goose.NewProvider(dialect, sqlDB, fsys)
	if err != nil {
		return nil, fmt.Errorf("failed to create goose provider: %w", err)
	}
	return p, nil
}

// Migrate applies all pending scripts.
func (s *GooseStrategy) Migrate(ctx context.Context, db *gorm.DB) error {
	p, err := s.provider(db)
	if err != nil {
		return err
	}

	from, err := p.GetDBVersion(ctx)
	if err != nil {
		return fmt.Errorf("failed to get current version: %w", err)
	}

	results, err := p.Up(ctx)
	if err != nil {
		s.logger.Errorw("migration failed", "error", err)
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	for _, r := range results {
		s.logger.Infow("migration applied",
			"version", r.Source.Version,
			"path", r.Source.Path,
			"duration", r.Duration)
	}

	to, err := p.GetDBVersion(ctx)
	if err != nil {
		return fmt.Errorf("failed to get final version: %w", err)
	}

	s.logger.Infow("migration completed successfully",
		"from_version", from,
		"to_version", to)
	return nil
}

// MigrateDown rolls back up to steps scripts.
func (s *GooseStrategy) MigrateDown(ctx context.Context, db *gorm.DB, steps int) error {
	p, err := s.provider(db)
	if err != nil {
		return err
	}

	for i := 0; i < steps; i++ {
		r, err := p.Down(ctx)
		if err != nil {
			if errors.Is(err, goose.ErrNoNextVersion) {
				s.logger.Infow("no more migrations to roll back")
				return nil
			}
			s.logger.Errorw("down migration failed", "error", err)
			return fmt.Errorf("failed to run down migration: %w", err)
		}
		s.logger.Infow("migration rolled back", "version", r.Source.Version)
	}
	return nil
}

func (s *GooseStrategy) GetVersion(ctx context.Context, db *gorm.DB) (int64, error) {
	p, err := s.provider(db)
	if err != nil {
		return 0, err
	}
	return p.GetDBVersion(ctx)
}

func (s *GooseStrategy) Status(ctx context.Context, db *gorm.DB) ([]MigrationStatus, error) {
	p, err := s.provider(db)
	if err != nil {
		return nil, err
	}

	statuses, err := p.Status(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get status: %w", err)
	}

	out := make([]MigrationStatus, 0, len(statuses))
	for _, st := range statuses {
		out = append(out, MigrationStatus{
			Version: st.Source.Version,
			Path:    st.Source.Path,
			Applied: st.State == goose.StateApplied,
		})
	}
	return out, nil
}

// Create writes a new timestamped SQL script for the configured dialect under root.
func (s *GooseStrategy) Create(root, name string) (string, error) {
	_, dir, err := dialectFor(s.driver)
	if err != nil {
		return "", err
	}

	target := filepath.Join(root, ScriptsDir, dir)
	if err := goose.Create(nil, target, name, "sql"); err != nil {
		return "", fmt.Errorf("failed to create migration: %w", err)
	}

	s.logger.Infow("migration created successfully", "name", name, "dir", target)
	return target, nil
}
