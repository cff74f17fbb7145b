// Package primary defines the primary ports (driving adapters) for the application.
// These are the interfaces through which the outside world drives the application.
package primary

import (
	"context"

	"github.com/example/django2gorm/internal/models"
)

// ConvertService defines the primary port for converting a Django models.py
// file into GORM model definitions.
type ConvertService interface {
	// Convert runs pre-flight checks, converts the input and writes the
	// output file (and the diagnostics file when needed).
	Convert(ctx context.Context, req ConvertRequest) (*ConvertResponse, error)

	// Inspect converts the input without writing anything.
	Inspect(ctx context.Context, req InspectRequest) (*models.ConversionResult, error)
}

// ConvertRequest contains parameters for a conversion. Exactly one of
// InputPath and InputLines is used; InputLines wins when non-nil.
type ConvertRequest struct {
	InputPath  string
	InputLines []string
	OutputPath string

	IncludeScaffolding bool
	AutoAddUser        bool
	AutoAddGroup       bool
}

// ConvertResponse contains the result of a conversion.
type ConvertResponse struct {
	OutputPath      string
	DiagnosticsPath string // empty when no diagnostics were recorded
	Result          *models.ConversionResult
	Diagnostics     []models.Diagnostic
}

// InspectRequest contains parameters for a dry conversion.
type InspectRequest struct {
	InputPath  string
	InputLines []string
}
