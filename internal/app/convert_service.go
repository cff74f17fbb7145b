package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/example/django2gorm/internal/core/scan"
	"github.com/example/django2gorm/internal/core/tablename"
	"github.com/example/django2gorm/internal/models"
	"github.com/example/django2gorm/internal/ports/primary"
	"github.com/example/django2gorm/internal/ports/secondary"
	"github.com/example/django2gorm/internal/scaffold"
)

// DiagnosticsSuffix is appended to the output path to name the diagnostics
// file.
const DiagnosticsSuffix = ".errors"

// ConvertSettings are the conversion settings that do not vary per request.
type ConvertSettings struct {
	Namer tablename.Namer
	// Assembly is the base assembler configuration. The scaffolding toggles
	// of each ConvertRequest override its own.
	Assembly scaffold.Options
	// Strict aborts the run, writing nothing, when any error-severity
	// diagnostic is recorded.
	Strict bool
}

// ConvertServiceImpl implements the ConvertService interface.
type ConvertServiceImpl struct {
	store     secondary.ArtifactStore
	generator *scaffold.Generator
	settings  ConvertSettings
	logger    *slog.Logger
}

// NewConvertService creates a new ConvertService with injected dependencies.
func NewConvertService(
	store secondary.ArtifactStore,
	generator *scaffold.Generator,
	settings ConvertSettings,
	logger *slog.Logger,
) *ConvertServiceImpl {
	if logger == nil {
		logger = slog.Default()
	}
	return &ConvertServiceImpl{
		store:     store,
		generator: generator,
		settings:  settings,
		logger:    logger,
	}
}

// Convert converts a models.py file and writes the generated GORM models.
func (s *ConvertServiceImpl) Convert(ctx context.Context, req primary.ConvertRequest) (*primary.ConvertResponse, error) {
	// 1. Pre-flight: input must exist, output must not
	lines, err := loadInput(ctx, s.store, req.InputPath, req.InputLines)
	if err != nil {
		return nil, err
	}
	if req.OutputPath == "" {
		return nil, fmt.Errorf("output path is required")
	}
	exists, err := s.store.Exists(ctx, req.OutputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to check output file: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("%w: %s", ErrOutputExists, req.OutputPath)
	}

	// 2. Scan
	result := s.scan(lines)
	if s.settings.Strict {
		if err := strictError(result); err != nil {
			return nil, err
		}
	}

	// 3. Assemble
	opts := s.settings.Assembly
	opts.IncludeScaffolding = req.IncludeScaffolding
	opts.AutoAddUser = req.AutoAddUser
	opts.AutoAddGroup = req.AutoAddGroup
	out, err := s.generator.Assemble(result, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to assemble output: %w", err)
	}

	// 4. Write
	if err := s.store.Create(ctx, req.OutputPath, []byte(out.Text)); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return nil, fmt.Errorf("%w: %s", ErrOutputExists, req.OutputPath)
		}
		return nil, fmt.Errorf("failed to write output file: %w", err)
	}

	resp := &primary.ConvertResponse{
		OutputPath:  req.OutputPath,
		Result:      result,
		Diagnostics: out.Diagnostics,
	}

	if text := out.DiagnosticsText(); text != "" {
		path := req.OutputPath + DiagnosticsSuffix
		if err := s.store.Replace(ctx, path, []byte(text)); err != nil {
			if rmErr := s.store.Remove(ctx, req.OutputPath); rmErr != nil {
				s.logger.Warn("failed to remove output after diagnostics error",
					slog.String("output", req.OutputPath),
					slog.String("error", rmErr.Error()),
				)
			}
			return nil, fmt.Errorf("failed to write diagnostics file: %w", err)
		}
		resp.DiagnosticsPath = path
	}

	s.logger.Info("conversion complete",
		slog.String("output", req.OutputPath),
		slog.Int("declarations", len(result.Declarations)),
		slog.Int("diagnostics", len(out.Diagnostics)),
	)

	return resp, nil
}

// Inspect converts the input without writing anything.
func (s *ConvertServiceImpl) Inspect(ctx context.Context, req primary.InspectRequest) (*models.ConversionResult, error) {
	lines, err := loadInput(ctx, s.store, req.InputPath, req.InputLines)
	if err != nil {
		return nil, err
	}
	return s.scan(lines), nil
}

func (s *ConvertServiceImpl) scan(lines []string) *models.ConversionResult {
	return scan.Run(lines, scan.Options{
		Namer:  s.settings.Namer,
		Logger: s.logger,
	})
}

// strictError returns ErrUnexpectedParse for the first error-severity
// diagnostic, or nil.
func strictError(result *models.ConversionResult) error {
	for _, d := range result.Diagnostics {
		if d.Severity == models.SeverityError {
			return fmt.Errorf("%w: %s", ErrUnexpectedParse, d.String())
		}
	}
	return nil
}
