// Package tablename decides the table identifier of each declaration and
// renders closed declarations once that identifier is final.
package tablename

import (
	"fmt"
	"strings"

	"github.com/jinzhu/inflection"

	"github.com/example/django2gorm/internal/core/field"
	"github.com/example/django2gorm/internal/core/lexer"
	"github.com/example/django2gorm/internal/models"
)

// Pluralization modes for default table identifiers.
const (
	PluralizeSuffix  = "suffix"
	PluralizeInflect = "inflect"
)

// DefaultPrefix is prepended to every default table identifier.
const DefaultPrefix = "app_"

// Namer computes default table identifiers.
type Namer struct {
	Prefix    string
	Pluralize string
}

// DefaultNamer returns the "app_<name>s" convention.
func DefaultNamer() Namer {
	return Namer{Prefix: DefaultPrefix, Pluralize: PluralizeSuffix}
}

// Default returns the default table identifier for a declaration name.
func (n Namer) Default(name string) string {
	lower := strings.ToLower(name)
	if n.Pluralize == PluralizeInflect {
		return n.Prefix + inflection.Plural(lower)
	}
	return n.Prefix + lower + "s"
}

// Unquote strips Python string quoting from a db_table value: a leading
// u/r/b prefix and every quote character.
func Unquote(value string) string {
	value = strings.TrimSpace(lexer.StripComment(value))
	if len(value) > 1 && strings.ContainsRune("uUrRbB", rune(value[0])) && strings.ContainsRune(`"'`, rune(value[1])) {
		value = value[1:]
	}
	return strings.NewReplacer(`"`, "", `'`, "").Replace(value)
}

// Render fills in the tags of every entry of d against its effective table
// identifier and stores the struct text, TableName accessor included, in
// d.Rendered. Tags are rendered only here, after db_table is known.
func Render(d *models.Declaration) {
	table := d.EffectiveTable()

	lines := make([]string, 0, len(d.Fields)+8)
	lines = append(lines, fmt.Sprintf("type %s struct {", d.Name))
	for i := range d.Fields {
		d.Fields[i].Tag = field.Tag(d.Fields[i], table)
		lines = append(lines, field.Line(d.Fields[i]))
	}
	lines = append(lines,
		"}",
		"",
		fmt.Sprintf("func (%s) TableName() string {", d.Name),
		fmt.Sprintf("\treturn %q", table),
		"}",
		"",
	)

	d.Rendered = lines
	d.Closed = true
}
