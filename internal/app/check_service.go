package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/example/django2gorm/internal/core/scan"
	"github.com/example/django2gorm/internal/core/tablecheck"
	"github.com/example/django2gorm/internal/core/tablename"
	"github.com/example/django2gorm/internal/ports/primary"
	"github.com/example/django2gorm/internal/ports/secondary"
)

// CheckServiceImpl implements the CheckService interface.
type CheckServiceImpl struct {
	store  secondary.ArtifactStore
	opener secondary.CatalogOpener
	namer  tablename.Namer
	logger *slog.Logger
}

// NewCheckService creates a new CheckService with injected dependencies.
func NewCheckService(
	store secondary.ArtifactStore,
	opener secondary.CatalogOpener,
	namer tablename.Namer,
	logger *slog.Logger,
) *CheckServiceImpl {
	if logger == nil {
		logger = slog.Default()
	}
	return &CheckServiceImpl{
		store:  store,
		opener: opener,
		namer:  namer,
		logger: logger,
	}
}

// Check converts the input and looks its tables up in the database.
func (s *CheckServiceImpl) Check(ctx context.Context, req primary.CheckRequest) (*primary.CheckReport, error) {
	lines, err := loadInput(ctx, s.store, req.InputPath, req.InputLines)
	if err != nil {
		return nil, err
	}
	if req.DSN == "" {
		return nil, fmt.Errorf("a DSN is required to check tables")
	}

	result := scan.Run(lines, scan.Options{Namer: s.namer, Logger: s.logger})

	catalog, err := s.opener.Open(ctx, req.Driver, req.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s catalog: %w", req.Driver, err)
	}
	defer catalog.Close()

	tables, err := catalog.ListTables(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}

	s.logger.Debug("catalog tables listed",
		slog.String("driver", req.Driver),
		slog.Int("tables", len(tables)),
	)

	report := &primary.CheckReport{Driver: req.Driver}
	for _, st := range tablecheck.Compare(result.Declarations, tables) {
		report.Tables = append(report.Tables, primary.TableStatus{
			Declaration: st.Declaration,
			Table:       st.Table,
			Explicit:    st.Explicit,
			Exists:      st.Exists,
			Suggestions: st.Suggestions,
		})
	}
	return report, nil
}
