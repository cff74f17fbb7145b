// Package lexer classifies lines of a Django models.py file into a small
// typed grammar. It works one line at a time and never builds a syntax tree.
// This is part of the Functional Core - no I/O, only pure functions.
package lexer

import (
	"errors"
	"strings"
	"unicode"

	"github.com/example/django2gorm/internal/models"
)

// Kind is the grammatical category of a line.
type Kind int

const (
	Blank Kind = iota
	DeclarationStart
	ProcedureStart
	MetaMarker
	Docstring
	Comment
	TableAssignment
	FieldAssignment
	Other
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case Blank:
		return "blank"
	case DeclarationStart:
		return "declaration-start"
	case ProcedureStart:
		return "procedure-start"
	case MetaMarker:
		return "meta-marker"
	case Docstring:
		return "docstring"
	case Comment:
		return "comment"
	case TableAssignment:
		return "table-assignment"
	case FieldAssignment:
		return "field-assignment"
	default:
		return "other"
	}
}

// FieldNamespace is the module prefix that marks a line as a field
// declaration candidate.
const FieldNamespace = "models."

// ErrNoCallee is set on a FieldAssignment token whose right-hand side does
// not start with a constructor name.
var ErrNoCallee = errors.New("right-hand side does not name a constructor")

// ErrBadFieldName is set on a FieldAssignment token whose left-hand side is
// not a plain identifier.
var ErrBadFieldName = errors.New("left-hand side is not an identifier")

// Token is one classified line.
type Token struct {
	Kind Kind
	Line models.SourceLine

	// Name is the declaration name for DeclarationStart and the field name
	// for FieldAssignment.
	Name string

	// Callee is the dotted constructor expression ("models.CharField") and
	// Constructor its last segment ("CharField").
	Callee      string
	Constructor string

	// Call is true when the callee is followed by "(". Args holds the
	// top-level arguments found on this line and Closed reports whether the
	// matching ")" was seen.
	Call   bool
	Args   []string
	Closed bool

	// Value is the raw right-hand side of a TableAssignment.
	Value string

	// Err is set when a line has the shape of a field assignment but could
	// not be tokenized.
	Err error
}

// Classify turns one raw line into a Token. The raw form is needed because
// an unindented "def " ends the current declaration.
func Classify(raw string, number int) Token {
	raw = strings.TrimRight(raw, "\r\n")
	trimmed := strings.TrimSpace(raw)
	tok := Token{
		Kind: Other,
		Line: models.SourceLine{Raw: raw, Number: number, Trimmed: trimmed},
	}

	switch {
	case strings.HasPrefix(raw, "def "):
		tok.Kind = ProcedureStart
	case trimmed == "":
		tok.Kind = Blank
	case strings.HasPrefix(trimmed, "class") && strings.HasSuffix(trimmed, "Model):"):
		classifyDeclaration(&tok)
	case isMetaMarker(trimmed):
		tok.Kind = MetaMarker
	case strings.HasPrefix(trimmed, `"""`):
		tok.Kind = Docstring
	case strings.HasPrefix(trimmed, "#"):
		tok.Kind = Comment
	case isTableAssignment(trimmed):
		tok.Kind = TableAssignment
		tok.Value = strings.TrimSpace(trimmed[strings.Index(trimmed, "=")+1:])
	case strings.Contains(trimmed, "=") && strings.Contains(trimmed, FieldNamespace):
		classifyField(&tok)
	}

	return tok
}

func classifyDeclaration(tok *Token) {
	parts := strings.Fields(tok.Line.Trimmed)
	if len(parts) < 2 || parts[0] != "class" {
		return
	}
	name, _, _ := strings.Cut(parts[1], "(")
	if name == "" {
		return
	}
	tok.Kind = DeclarationStart
	tok.Name = name
}

func isMetaMarker(trimmed string) bool {
	if !strings.HasPrefix(trimmed, "class Meta:") {
		return false
	}
	rest := strings.TrimSpace(strings.TrimPrefix(trimmed, "class Meta:"))
	return rest == "" || strings.HasPrefix(rest, "#")
}

func isTableAssignment(trimmed string) bool {
	lhs, _, found := strings.Cut(trimmed, "=")
	if !found {
		return false
	}
	return strings.TrimSpace(lhs) == "db_table"
}

func classifyField(tok *Token) {
	tok.Kind = FieldAssignment

	lhs, rhs, _ := strings.Cut(tok.Line.Trimmed, "=")
	name := strings.TrimSpace(lhs)
	if !isIdentifier(name) {
		tok.Err = ErrBadFieldName
		return
	}
	tok.Name = name

	rhs = strings.TrimSpace(rhs)
	callee := scanDotted(rhs)
	if callee == "" {
		tok.Err = ErrNoCallee
		return
	}
	tok.Callee = callee
	tok.Constructor = callee[strings.LastIndex(callee, ".")+1:]

	rest := strings.TrimSpace(rhs[len(callee):])
	if strings.HasPrefix(rest, "(") {
		tok.Call = true
		tok.Args, tok.Closed = splitArgs(rest[1:])
	}
}

// scanDotted returns the leading dotted identifier of s ("models.CharField"
// out of "models.CharField(max_length=20)").
func scanDotted(s string) string {
	end := 0
	for i, r := range s {
		if r == '.' || r == '_' || unicode.IsLetter(r) || (i > 0 && unicode.IsDigit(r)) {
			end = i + len(string(r))
			continue
		}
		break
	}
	dotted := strings.Trim(s[:end], ".")
	if dotted == "" || !isIdentStart(rune(dotted[0])) {
		return ""
	}
	return dotted
}

// splitArgs splits the argument text following an opening parenthesis on
// top-level commas. Quotes, backslash escapes and nested brackets are
// respected. The second return value reports whether the closing parenthesis
// was found.
func splitArgs(s string) ([]string, bool) {
	var (
		args    []string
		current strings.Builder
		depth   int
		quote   rune
		escaped bool
	)

	flush := func() {
		if arg := strings.TrimSpace(current.String()); arg != "" {
			args = append(args, arg)
		}
		current.Reset()
	}

	for _, r := range s {
		if quote != 0 {
			current.WriteRune(r)
			switch {
			case escaped:
				escaped = false
			case r == '\\':
				escaped = true
			case r == quote:
				quote = 0
			}
			continue
		}

		switch r {
		case '\'', '"':
			quote = r
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			if depth == 0 {
				flush()
				return args, true
			}
			depth--
		case ',':
			if depth == 0 {
				flush()
				continue
			}
		case '#':
			if depth == 0 {
				flush()
				return args, false
			}
		}
		current.WriteRune(r)
	}

	flush()
	return args, false
}

// StripComment removes a trailing "#" comment that is not inside a string
// literal.
func StripComment(s string) string {
	var (
		quote   rune
		escaped bool
	)
	for i, r := range s {
		switch {
		case escaped:
			escaped = false
		case quote != 0 && r == '\\':
			escaped = true
		case quote != 0:
			if r == quote {
				quote = 0
			}
		case r == '\'' || r == '"':
			quote = r
		case r == '#':
			return strings.TrimRight(s[:i], " \t")
		}
	}
	return s
}

// Unterminated reports whether tok opens a constructor call whose closing
// parenthesis is not on the same line.
func (t Token) Unterminated() bool {
	return t.Kind == FieldAssignment && t.Err == nil && t.Call && !t.Closed
}

func isIdentifier(s string) bool {
	if s == "" || !isIdentStart(rune(s[0])) {
		return false
	}
	for _, r := range s {
		if r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}
