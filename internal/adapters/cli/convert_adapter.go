package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/example/django2gorm/internal/models"
	"github.com/example/django2gorm/internal/ports/primary"
)

// ConvertAdapter is a thin adapter that translates CLI operations to ConvertService calls.
// It depends only on the ConvertService interface, enabling easy testing with mocks.
type ConvertAdapter struct {
	service primary.ConvertService
	out     io.Writer
}

// NewConvertAdapter creates a new ConvertAdapter with the given service.
func NewConvertAdapter(service primary.ConvertService, out io.Writer) *ConvertAdapter {
	return &ConvertAdapter{
		service: service,
		out:     out,
	}
}

// Convert runs a conversion and reports the written files and diagnostics.
func (a *ConvertAdapter) Convert(ctx context.Context, req primary.ConvertRequest) (*primary.ConvertResponse, error) {
	resp, err := a.service.Convert(ctx, req)
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(a.out, "✓ Wrote %s (%d models)\n", resp.OutputPath, len(resp.Result.Declarations))

	if len(resp.Diagnostics) > 0 {
		fmt.Fprintln(a.out)
		for _, d := range resp.Diagnostics {
			fmt.Fprintln(a.out, diagnosticColor(d.Severity).Sprintf("!! %s", d.String()))
		}
		fmt.Fprintln(a.out)
		fmt.Fprintf(a.out, "%d diagnostics written to %s\n", len(resp.Diagnostics), resp.DiagnosticsPath)
	}

	return resp, nil
}

// Inspect prints the conversion result as YAML without writing files.
func (a *ConvertAdapter) Inspect(ctx context.Context, req primary.InspectRequest) (*models.ConversionResult, error) {
	result, err := a.service.Inspect(ctx, req)
	if err != nil {
		return nil, err
	}

	enc := yaml.NewEncoder(a.out)
	enc.SetIndent(2)
	if err := enc.Encode(result); err != nil {
		return nil, fmt.Errorf("failed to encode result: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode result: %w", err)
	}

	return result, nil
}

func diagnosticColor(s models.Severity) *color.Color {
	if s == models.SeverityError {
		return color.New(color.FgRed)
	}
	return color.New(color.FgYellow)
}
