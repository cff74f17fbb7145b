package models

import "fmt"

// Severity of a Diagnostic.
type Severity string

const (
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Diagnostic codes.
const (
	CodeUnresolvedFieldKind   = "unresolved-field-kind"
	CodeMalformedRelationship = "malformed-relationship-arguments"
	CodeUnparseableFieldLine  = "unparseable-field-line"
	CodeUnterminatedCall      = "unterminated-call"
	CodeFormatFailed          = "format-failed"
)

// Diagnostic annotates a source line the translator could not confidently
// resolve. Diagnostics never remove data.
type Diagnostic struct {
	Line     int      `yaml:"line"`
	Severity Severity `yaml:"severity"`
	Code     string   `yaml:"code"`
	Message  string   `yaml:"message"`
}

// String renders the diagnostic the way it appears in the .errors file.
func (d Diagnostic) String() string {
	if d.Line == 0 {
		return d.Message
	}
	return fmt.Sprintf("%d: %s", d.Line, d.Message)
}
