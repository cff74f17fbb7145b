// Package tablecheck compares converted table identifiers with the tables
// that actually exist in a database.
// This is part of the Functional Core - no I/O, only pure functions.
package tablecheck

import (
	"sort"
	"strings"

	"github.com/example/django2gorm/internal/models"
)

// Status is the outcome for one declaration.
type Status struct {
	Declaration string
	Table       string
	Explicit    bool
	Exists      bool
	Suggestions []string
}

// Compare looks up the effective table of every declaration in existing.
// Missing tables get suggestions: tables named after Django's
// "<app_label>_<model>" convention, or the bare lowercase model name.
func Compare(decls []*models.Declaration, existing []string) []Status {
	set := make(map[string]bool, len(existing))
	for _, t := range existing {
		set[strings.ToLower(t)] = true
	}

	statuses := make([]Status, 0, len(decls))
	for _, d := range decls {
		table := d.EffectiveTable()
		st := Status{
			Declaration: d.Name,
			Table:       table,
			Explicit:    d.HasExplicitTable(),
			Exists:      set[strings.ToLower(table)],
		}
		if !st.Exists {
			st.Suggestions = Suggest(d.Name, existing)
		}
		statuses = append(statuses, st)
	}
	return statuses
}

// Suggest returns existing tables that look like the table of a model named
// name, sorted.
func Suggest(name string, existing []string) []string {
	lower := strings.ToLower(name)
	var out []string
	for _, t := range existing {
		lt := strings.ToLower(t)
		if lt == lower || strings.HasSuffix(lt, "_"+lower) {
			out = append(out, t)
		}
	}
	sort.Strings(out)
	return out
}
