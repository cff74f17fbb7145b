package field

import (
	"fmt"
	"strings"

	"github.com/example/django2gorm/internal/core/lexer"
	"github.com/example/django2gorm/internal/models"
)

// Sentinel is the type written when the related declaration of a
// relationship cannot be determined.
const Sentinel = "########"

// ManyToManyNote is emitted above every many-to-many field. The generated
// join-table naming is a guess.
const ManyToManyNote = "!! NOTE: m2m key relationship/name may not work"

var relationshipKinds = map[string]models.FieldKind{
	"ForeignKey":      models.KindForeignKey,
	"OneToOneField":   models.KindOneToOne,
	"ManyToManyField": models.KindManyToMany,
}

// RelationshipKind returns the field kind of a relationship constructor.
func RelationshipKind(constructor string) (models.FieldKind, bool) {
	kind, ok := relationshipKinds[constructor]
	return kind, ok
}

func resolveRelationship(tok lexer.Token, kind models.FieldKind, ctx Context) Result {
	var res Result
	line := tok.Line.Number

	related, ok := RelatedName(tok.Args, ctx.Declaration)
	if !ok {
		related = Sentinel
		res.Diagnostics = append(res.Diagnostics, models.Diagnostic{
			Line:     line,
			Severity: models.SeverityWarning,
			Code:     models.CodeMalformedRelationship,
			Message:  fmt.Sprintf("cannot determine related model of %s: %s", tok.Constructor, tok.Line.Trimmed),
		})
	}

	name := Capitalize(tok.Name)

	switch kind {
	case models.KindManyToMany:
		res.Entries = append(res.Entries,
			models.FieldEntry{
				Source: tok.Name,
				Kind:   models.KindComment,
				Line:   line,
				Note:   ManyToManyNote,
			},
			models.FieldEntry{
				Source:  tok.Name,
				Name:    name,
				Kind:    kind,
				Type:    "[]" + related,
				Related: related,
				Line:    line,
			},
		)
	default:
		res.Entries = append(res.Entries,
			models.FieldEntry{
				Source: tok.Name,
				Name:   name + "ID",
				Kind:   kind,
				Type:   "int64",
				Column: tok.Name + "_id",
				Line:   line,
			},
			models.FieldEntry{
				Source:  tok.Name,
				Name:    name,
				Kind:    kind,
				Type:    related,
				Related: related,
				Line:    line,
			},
		)
	}

	return res
}

// RelatedName extracts the related model from the arguments of a
// relationship constructor. The first positional argument wins; a "to"
// keyword is honoured when no positional argument is given. Quoted
// references ("app.Model") keep only the model part and 'self' resolves to
// the enclosing declaration.
func RelatedName(args []string, self string) (string, bool) {
	var ref string
	for i, arg := range args {
		key, value, isKeyword := strings.Cut(arg, "=")
		if !isKeyword || strings.ContainsAny(key, `'"`) {
			if i == 0 {
				ref = arg
			}
			break
		}
		if strings.TrimSpace(key) == "to" {
			ref = strings.TrimSpace(value)
			break
		}
	}

	ref = strings.Trim(ref, "() ")
	ref = strings.Trim(ref, `'"`)
	if i := strings.LastIndex(ref, "."); i >= 0 {
		ref = ref[i+1:]
	}
	if ref == "self" {
		ref = self
	}
	if ref == "" || strings.ContainsAny(ref, " =()") {
		return "", false
	}
	return ref, true
}
