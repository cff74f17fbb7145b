package models

// FieldKind classifies a FieldEntry.
type FieldKind string

const (
	KindScalar     FieldKind = "scalar"
	KindPrimaryKey FieldKind = "primary_key"
	KindForeignKey FieldKind = "foreign_key"
	KindOneToOne   FieldKind = "one_to_one"
	KindManyToMany FieldKind = "many_to_many"
	KindUnknown    FieldKind = "unknown"
	KindComment    FieldKind = "comment"
)

// FieldEntry is one resolved attribute of a Declaration. Relationship
// declarations produce more than one entry (an identifier column plus the
// association, or a note plus a slice field).
//
// Tag is empty until the owning declaration is closed and rendered.
type FieldEntry struct {
	Source  string    `yaml:"source,omitempty"`
	Name    string    `yaml:"name,omitempty"`
	Kind    FieldKind `yaml:"kind"`
	Type    string    `yaml:"type,omitempty"`
	Column  string    `yaml:"column,omitempty"`
	Related string    `yaml:"related,omitempty"`
	Tag     string    `yaml:"tag,omitempty"`
	Line    int       `yaml:"line"`
	Note    string    `yaml:"note,omitempty"`
}
