package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/example/django2gorm/internal/ports/primary"
)

// CheckAdapter is a thin adapter that translates CLI operations to CheckService calls.
type CheckAdapter struct {
	service primary.CheckService
	out     io.Writer
}

// NewCheckAdapter creates a new CheckAdapter with the given service.
func NewCheckAdapter(service primary.CheckService, out io.Writer) *CheckAdapter {
	return &CheckAdapter{
		service: service,
		out:     out,
	}
}

// Check prints one row per declaration with the table it maps to and
// whether that table exists.
func (a *CheckAdapter) Check(ctx context.Context, req primary.CheckRequest) (*primary.CheckReport, error) {
	report, err := a.service.Check(ctx, req)
	if err != nil {
		return nil, err
	}

	if len(report.Tables) == 0 {
		fmt.Fprintln(a.out, "No models found.")
		return report, nil
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "MODEL\tTABLE\tSTATUS")
	fmt.Fprintln(w, "-----\t-----\t------")

	for _, t := range report.Tables {
		table := t.Table
		if t.Explicit {
			table += " (db_table)"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", t.Declaration, table, status(t))
	}
	w.Flush()

	missing := report.Missing()
	fmt.Fprintln(a.out)
	if len(missing) == 0 {
		fmt.Fprintf(a.out, "✓ All %d tables found in %s\n", len(report.Tables), report.Driver)
	} else {
		fmt.Fprintln(a.out, color.New(color.FgRed).Sprintf("!! %d of %d tables missing in %s", len(missing), len(report.Tables), report.Driver))
	}

	return report, nil
}

func status(t primary.TableStatus) string {
	if t.Exists {
		return "✓ exists"
	}
	s := "!! missing"
	if len(t.Suggestions) > 0 {
		s += " (try: " + strings.Join(t.Suggestions, ", ") + ")"
	}
	return s
}
