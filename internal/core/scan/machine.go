// Package scan is the single-pass conversion engine. A Machine folds source
// lines through an explicit State, opening and closing declarations at
// boundary lines and routing the lines in between to the field translator.
package scan

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/example/django2gorm/internal/core/field"
	"github.com/example/django2gorm/internal/core/lexer"
	"github.com/example/django2gorm/internal/core/tablename"
	"github.com/example/django2gorm/internal/models"
)

// Phase of the boundary state machine.
type Phase int

const (
	Idle Phase = iota
	InDeclaration
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	if p == InDeclaration {
		return "in-declaration"
	}
	return "idle"
}

// maxJoinedLines bounds how many physical lines an unterminated constructor
// call may span before it is translated as-is.
const maxJoinedLines = 64

// Names of declarations whose presence suppresses the generated defaults.
const (
	IdentityDeclaration = "User"
	GroupDeclaration    = "Group"
)

// State is the complete scan state. Step takes a State and returns the next
// one; nothing else is carried between lines.
type State struct {
	Phase   Phase
	Current *models.Declaration

	// PrevTrimmed is the previous line, trimmed. PrevKind is the kind of the
	// last non-blank line.
	PrevTrimmed string
	PrevKind    lexer.Kind

	// Pending is a field assignment whose constructor call continues on the
	// following lines.
	Pending *Pending

	Result models.ConversionResult
}

// Pending accumulates the physical lines of one logical field line.
type Pending struct {
	First lexer.Token
	Text  string
	Lines int
	Prev  string
}

// Options configure a Machine.
type Options struct {
	Namer  tablename.Namer
	Logger *slog.Logger
}

// Machine holds the configuration of the state machine. It has no mutable
// state of its own and may be reused.
type Machine struct {
	namer  tablename.Namer
	logger *slog.Logger
}

// New creates a Machine.
func New(opts Options) *Machine {
	if opts.Namer.Prefix == "" && opts.Namer.Pluralize == "" {
		opts.Namer = tablename.DefaultNamer()
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Machine{namer: opts.Namer, logger: opts.Logger}
}

// Run scans every line and returns the conversion result.
func (m *Machine) Run(lines []string) *models.ConversionResult {
	var s State
	for i, raw := range lines {
		s = m.Step(s, raw, i+1)
	}
	s = m.Finish(s)
	return &s.Result
}

// Run scans lines with a Machine built from opts.
func Run(lines []string, opts Options) *models.ConversionResult {
	return New(opts).Run(lines)
}

// Step advances the state by one source line.
func (m *Machine) Step(s State, raw string, number int) State {
	tok := lexer.Classify(raw, number)

	if s.Pending != nil {
		if tok.Kind == lexer.DeclarationStart || tok.Kind == lexer.ProcedureStart || s.Pending.Lines >= maxJoinedLines {
			s = m.flushPending(s)
		} else {
			return m.join(s, tok)
		}
	}

	switch tok.Kind {
	case lexer.ProcedureStart:
		if s.Phase == InDeclaration {
			s = m.close(s)
		}

	case lexer.DeclarationStart:
		if s.Phase == InDeclaration {
			s = m.close(s)
		}
		s = m.open(s, tok)

	case lexer.Comment, lexer.Docstring:
		if s.Phase == InDeclaration {
			s.Current.Fields = append(s.Current.Fields, field.CommentEntry(tok))
		}

	case lexer.TableAssignment:
		if s.Phase == InDeclaration && s.PrevKind == lexer.MetaMarker {
			s.Current.ExplicitTable = tablename.Unquote(tok.Value)
			s.Result.ExplicitTables = true
			m.logger.Debug("explicit table identifier",
				slog.String("declaration", s.Current.Name),
				slog.String("table", s.Current.ExplicitTable),
				slog.Int("line", number),
			)
		}

	case lexer.FieldAssignment:
		if s.Phase != InDeclaration {
			break
		}
		if tok.Unterminated() {
			s.Pending = &Pending{
				First: tok,
				Text:  lexer.StripComment(tok.Line.Raw),
				Lines: 1,
				Prev:  s.PrevTrimmed,
			}
			break
		}
		s = m.translate(s, tok, s.PrevTrimmed)
	}

	return advance(s, tok)
}

// Finish closes whatever is still open at end of input.
func (m *Machine) Finish(s State) State {
	if s.Pending != nil {
		s = m.flushPending(s)
	}
	if s.Phase == InDeclaration {
		s = m.close(s)
	}
	return s
}

func advance(s State, tok lexer.Token) State {
	s.PrevTrimmed = tok.Line.Trimmed
	if tok.Kind != lexer.Blank {
		s.PrevKind = tok.Kind
	}
	return s
}

func (m *Machine) open(s State, tok lexer.Token) State {
	d := &models.Declaration{
		Name:         tok.Name,
		Line:         tok.Line.Number,
		DefaultTable: m.namer.Default(tok.Name),
	}
	switch d.Name {
	case IdentityDeclaration:
		s.Result.FoundUser = true
	case GroupDeclaration:
		s.Result.FoundGroup = true
	}

	m.logger.Debug("declaration opened",
		slog.String("declaration", d.Name),
		slog.Int("line", d.Line),
		slog.String("default_table", d.DefaultTable),
	)

	s.Phase = InDeclaration
	s.Current = d
	return s
}

func (m *Machine) close(s State) State {
	d := s.Current
	tablename.Render(d)
	s.Result.Declarations = append(s.Result.Declarations, d)

	m.logger.Debug("declaration closed",
		slog.String("declaration", d.Name),
		slog.Int("fields", len(d.Fields)),
		slog.String("table", d.EffectiveTable()),
	)

	s.Phase = Idle
	s.Current = nil
	return s
}

func (m *Machine) translate(s State, tok lexer.Token, prev string) State {
	res := field.Translate(tok, field.Context{
		Declaration: s.Current.Name,
		PrevTrimmed: prev,
	})
	s.Current.Fields = append(s.Current.Fields, res.Entries...)
	s.Result.Diagnostics = append(s.Result.Diagnostics, res.Diagnostics...)

	for _, d := range res.Diagnostics {
		m.logger.Debug("diagnostic recorded",
			slog.Int("line", d.Line),
			slog.String("code", d.Code),
			slog.String("message", d.Message),
		)
	}
	return s
}

// join appends a physical line to the pending logical line and translates it
// once the constructor call is closed. Notes and diagnostics of a joined
// line quote the whole logical line.
func (m *Machine) join(s State, tok lexer.Token) State {
	p := *s.Pending
	if tok.Line.Trimmed != "" {
		p.Text = p.Text + " " + lexer.StripComment(tok.Line.Trimmed)
	}
	p.Lines++

	joined := lexer.Classify(p.Text, p.First.Line.Number)
	if joined.Unterminated() {
		s.Pending = &p
		return advance(s, tok)
	}

	s.Pending = nil
	s = m.translate(s, joined, p.Prev)
	return advance(s, tok)
}

// flushPending translates an unterminated call with whatever arguments were
// collected and records which physical lines it absorbed.
func (m *Machine) flushPending(s State) State {
	p := s.Pending
	s.Pending = nil
	joined := lexer.Classify(p.Text, p.First.Line.Number)
	if joined.Kind != lexer.FieldAssignment {
		joined = p.First
	}

	first := p.First.Line.Number
	d := models.Diagnostic{
		Line:     first,
		Severity: models.SeverityWarning,
		Code:     models.CodeUnterminatedCall,
		Message: fmt.Sprintf("%s: call is not closed, lines %d-%d were read as its arguments",
			p.First.Constructor, first, first+p.Lines-1),
	}
	s.Result.Diagnostics = append(s.Result.Diagnostics, d)
	m.logger.Debug("diagnostic recorded",
		slog.Int("line", d.Line),
		slog.String("code", d.Code),
		slog.String("message", d.Message),
	)

	return m.translate(s, joined, p.Prev)
}
