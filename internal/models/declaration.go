// Package models holds the data that flows through a conversion: source
// lines, declarations with their field entries, and diagnostics.
package models

// SourceLine is one line of input as seen by the scanner.
type SourceLine struct {
	Raw     string
	Number  int // 1-based
	Trimmed string
}

// Declaration is one Django model class, which becomes one GORM struct.
type Declaration struct {
	Name          string       `yaml:"name"`
	Line          int          `yaml:"line"`
	Fields        []FieldEntry `yaml:"fields"`
	DefaultTable  string       `yaml:"default_table"`
	ExplicitTable string       `yaml:"explicit_table,omitempty"`
	Closed        bool         `yaml:"-"`

	// Rendered holds the struct text once the declaration is closed.
	Rendered []string `yaml:"-"`
}

// EffectiveTable returns the table identifier used by every tag and by the
// TableName accessor of the declaration.
func (d *Declaration) EffectiveTable() string {
	if d.ExplicitTable != "" {
		return d.ExplicitTable
	}
	return d.DefaultTable
}

// HasExplicitTable reports whether a Meta.db_table override was seen.
func (d *Declaration) HasExplicitTable() bool {
	return d.ExplicitTable != ""
}

// ConversionResult is everything the scanner learned about the input.
type ConversionResult struct {
	Declarations   []*Declaration `yaml:"declarations"`
	Diagnostics    []Diagnostic   `yaml:"diagnostics,omitempty"`
	FoundUser      bool           `yaml:"found_user"`
	FoundGroup     bool           `yaml:"found_group"`
	ExplicitTables bool           `yaml:"explicit_tables"`
}

// HasErrors reports whether any error-severity diagnostic was recorded.
func (r *ConversionResult) HasErrors() bool {
	for _, d := range r.Diagnostics {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}

// TableNames returns the effective table identifier of each declaration in
// source order.
func (r *ConversionResult) TableNames() []string {
	names := make([]string, 0, len(r.Declarations))
	for _, d := range r.Declarations {
		names = append(names, d.EffectiveTable())
	}
	return names
}
