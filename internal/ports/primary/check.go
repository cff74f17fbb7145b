package primary

import "context"

// CheckService defines the primary port for comparing converted table
// identifiers with the tables of a live database.
type CheckService interface {
	// Check converts the input and looks up every effective table
	// identifier in the database catalog.
	Check(ctx context.Context, req CheckRequest) (*CheckReport, error)
}

// CheckRequest contains parameters for a table check.
type CheckRequest struct {
	InputPath  string
	InputLines []string
	Driver     string // sqlite, postgres or mysql
	DSN        string
}

// CheckReport is the outcome of a table check.
type CheckReport struct {
	Driver string
	Tables []TableStatus
}

// Missing returns the statuses of tables not found in the database.
func (r *CheckReport) Missing() []TableStatus {
	var missing []TableStatus
	for _, t := range r.Tables {
		if !t.Exists {
			missing = append(missing, t)
		}
	}
	return missing
}

// TableStatus describes one declaration's table.
type TableStatus struct {
	Declaration string
	Table       string
	Explicit    bool
	Exists      bool
	Suggestions []string
}
