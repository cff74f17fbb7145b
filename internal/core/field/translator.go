// Package field translates Django field declarations into GORM field
// entries. Tags are not rendered here: entries stay unrendered until the
// owning declaration is closed and its table identifier is final.
package field

import (
	"fmt"
	"strings"

	"github.com/example/django2gorm/internal/core/lexer"
	"github.com/example/django2gorm/internal/models"
)

// ScalarTypes maps Django field constructors to Go types.
var ScalarTypes = map[string]string{
	"BooleanField":     "bool",
	"IntegerField":     "int",
	"BigIntegerField":  "int64",
	"CharField":        "string",
	"TextField":        "string",
	"DateTimeField":    "time.Time",
	"NullBooleanField": "sql.NullBool",
	"BinaryField":      "[]byte",
}

// identifierAliases are field names that become the primary key when the
// declaration carries primary_key.
var identifierAliases = map[string]bool{
	"id": true,
	"pk": true,
	"ID": true,
	"PK": true,
}

// ignorableCalls are substrings of lines that look like fields but only
// configure diagnostics, such as module-level loggers.
var ignorableCalls = []string{"getLogger"}

// Context carries what the translator needs to know about its surroundings.
type Context struct {
	// Declaration is the name of the open declaration, used for 'self'
	// relationships.
	Declaration string
	// PrevTrimmed is the trimmed text of the line immediately before this one.
	PrevTrimmed string
}

// Result is the outcome of translating one line.
type Result struct {
	Entries     []models.FieldEntry
	Diagnostics []models.Diagnostic
}

// Translate maps one FieldAssignment token to field entries.
func Translate(tok lexer.Token, ctx Context) Result {
	line := tok.Line.Number

	if tok.Err != nil {
		if isContinuation(ctx.PrevTrimmed) {
			return Result{}
		}
		return Result{
			Entries: []models.FieldEntry{unhandled(tok)},
			Diagnostics: []models.Diagnostic{{
				Line:     line,
				Severity: models.SeverityError,
				Code:     models.CodeUnparseableFieldLine,
				Message:  fmt.Sprintf("%s (%v)", tok.Line.Trimmed, tok.Err),
			}},
		}
	}

	if identifierAliases[tok.Name] && strings.Contains(tok.Line.Trimmed, "primary_key") {
		return Result{Entries: []models.FieldEntry{{
			Source: tok.Name,
			Name:   strings.ToUpper(tok.Name),
			Kind:   models.KindPrimaryKey,
			Type:   "int64",
			Line:   line,
		}}}
	}

	if goType, ok := ScalarTypes[tok.Constructor]; ok {
		return Result{Entries: []models.FieldEntry{{
			Source: tok.Name,
			Name:   Capitalize(tok.Name),
			Kind:   models.KindScalar,
			Type:   goType,
			Column: strings.ToLower(tok.Name),
			Line:   line,
		}}}
	}

	if kind, ok := RelationshipKind(tok.Constructor); ok {
		return resolveRelationship(tok, kind, ctx)
	}

	if isContinuation(ctx.PrevTrimmed) || isIgnorable(tok.Line.Trimmed) {
		return Result{}
	}

	return Result{
		Entries: []models.FieldEntry{{
			Source: tok.Name,
			Kind:   models.KindUnknown,
			Line:   line,
			Note:   fmt.Sprintf("!! unknown type in line %d, original: %s", line, tok.Line.Trimmed),
		}},
		Diagnostics: []models.Diagnostic{{
			Line:     line,
			Severity: models.SeverityWarning,
			Code:     models.CodeUnresolvedFieldKind,
			Message:  "Unknown/unhandled line: " + tok.Constructor,
		}},
	}
}

// CommentEntry returns the passthrough entry for a source comment or
// docstring line.
func CommentEntry(tok lexer.Token) models.FieldEntry {
	text := tok.Line.Trimmed
	if tok.Kind == lexer.Docstring {
		text = strings.ReplaceAll(text, `"""`, "")
	} else {
		text = strings.ReplaceAll(text, "#", "")
	}
	return models.FieldEntry{
		Kind: models.KindComment,
		Line: tok.Line.Number,
		Note: text,
	}
}

func unhandled(tok lexer.Token) models.FieldEntry {
	return models.FieldEntry{
		Source: tok.Name,
		Kind:   models.KindUnknown,
		Line:   tok.Line.Number,
		Note:   fmt.Sprintf("!! Unhandled item in line %d, original: %s", tok.Line.Number, tok.Line.Trimmed),
	}
}

func isContinuation(prev string) bool {
	return strings.HasSuffix(prev, ",") || strings.HasSuffix(prev, `\`)
}

func isIgnorable(line string) bool {
	for _, call := range ignorableCalls {
		if strings.Contains(line, call) {
			return true
		}
	}
	return false
}
