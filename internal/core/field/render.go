package field

import (
	"fmt"

	"github.com/example/django2gorm/internal/models"
)

// Tag returns the gorm tag of an entry for a declaration whose effective
// table identifier is table. Entries that carry no tag return "".
func Tag(f models.FieldEntry, table string) string {
	switch f.Kind {
	case models.KindPrimaryKey:
		return `gorm:"primaryKey"`
	case models.KindScalar:
		return fmt.Sprintf(`gorm:"column:%s"`, f.Column)
	case models.KindForeignKey:
		if f.Column == "" {
			return ""
		}
		return fmt.Sprintf(`gorm:"foreignKey:%s;association_foreignkey:id"`, f.Column)
	case models.KindOneToOne:
		if f.Column == "" {
			return ""
		}
		return fmt.Sprintf(`gorm:"foreignKey:%s"`, f.Column)
	case models.KindManyToMany:
		return fmt.Sprintf(`gorm:"many2many:%s_%s;joinForeignKey:%s_id"`, table, f.Source, table)
	}
	return ""
}

// Line renders an entry as one line of a struct body. Tag must already be
// set on relationship and column entries.
func Line(f models.FieldEntry) string {
	switch f.Kind {
	case models.KindComment, models.KindUnknown:
		return "\t// " + f.Note
	case models.KindPrimaryKey:
		return fmt.Sprintf("\t%s\t\t%s\t\t`%s`", f.Name, f.Type, f.Tag)
	}
	if f.Tag == "" {
		return fmt.Sprintf("\t%s\t\t%s", f.Name, f.Type)
	}
	return fmt.Sprintf("\t%s\t\t%s\t`%s`", f.Name, f.Type, f.Tag)
}
