// Package diagnostics collects and renders the errors, warnings and
// hints produced while parsing and linting. A Bag accumulates every
// record raised during one session; nothing in the toolchain ever
// stops because a diagnostic was reported.
package diagnostics

import (
	"fmt"
	"sort"

	"github.com/kyanite-dev/kyanite/internal/span"
)

// Severity is the reporting level of a diagnostic.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityAdvice
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityAdvice:
		return "advice"
	default:
		return "unknown"
	}
}

// Label attaches a message to a secondary span of a diagnostic.
type Label struct {
	Span    span.Span
	Message string
}

// Diagnostic is one reported problem: a message, a severity, a primary
// span and optionally labeled sub-spans and a help note.
type Diagnostic struct {
	Severity Severity
	Code     string
	Message  string
	Span     span.Span
	Labels   []Label
	Help     string
}

func (d Diagnostic) String() string {
	if d.Code != "" {
		return fmt.Sprintf("%s[%s]: %s", d.Severity, d.Code, d.Message)
	}
	return fmt.Sprintf("%s: %s", d.Severity, d.Message)
}

// WithLabel returns a copy of the diagnostic with an extra labeled span.
func (d Diagnostic) WithLabel(sp span.Span, msg string) Diagnostic {
	d.Labels = append(d.Labels, Label{Span: sp, Message: msg})
	return d
}

// WithHelp returns a copy of the diagnostic with a help note attached.
func (d Diagnostic) WithHelp(help string) Diagnostic {
	d.Help = help
	return d
}

// Error constructs an error-severity diagnostic.
func Error(message string, sp span.Span) Diagnostic {
	return Diagnostic{Severity: SeverityError, Message: message, Span: sp}
}

// Warning constructs a warning-severity diagnostic.
func Warning(message string, sp span.Span) Diagnostic {
	return Diagnostic{Severity: SeverityWarning, Message: message, Span: sp}
}

// Advice constructs an advice-severity diagnostic.
func Advice(message string, sp span.Span) Diagnostic {
	return Diagnostic{Severity: SeverityAdvice, Message: message, Span: sp}
}

// Bag accumulates diagnostics for one parse or lint session. It is
// single-writer: each parser/linter instance owns exactly one Bag.
type Bag struct {
	list []Diagnostic
}

// NewBag creates an empty diagnostic bag.
func NewBag() *Bag {
	return &Bag{}
}

// Add records a diagnostic. Every record is kept; the bag never
// truncates to the first error.
func (b *Bag) Add(d Diagnostic) {
	b.list = append(b.list, d)
}

// Len returns the number of recorded diagnostics.
func (b *Bag) Len() int {
	return len(b.list)
}

// Mark returns a position in the bag that Truncate can later rewind
// to. Speculative parse attempts take a mark before starting and
// truncate back to it when the attempt is discarded, so diagnostics
// from rejected grammar choices never surface.
func (b *Bag) Mark() int {
	return len(b.list)
}

// Truncate discards every diagnostic recorded after the given mark.
func (b *Bag) Truncate(mark int) {
	if mark >= 0 && mark <= len(b.list) {
		b.list = b.list[:mark]
	}
}

// Diagnostics returns the recorded diagnostics in report order:
// ascending primary span, errors before warnings on ties.
func (b *Bag) Diagnostics() []Diagnostic {
	out := make([]Diagnostic, len(b.list))
	copy(out, b.list)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Span.Start != out[j].Span.Start {
			return out[i].Span.Start < out[j].Span.Start
		}
		return out[i].Severity < out[j].Severity
	})
	return out
}

// HasErrors reports whether any error-severity diagnostic was recorded.
func (b *Bag) HasErrors() bool {
	for _, d := range b.list {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}
