package diagnostics

import (
	"fmt"
	"io"
	"strings"

	"github.com/kyanite-dev/kyanite/internal/span"
)

// Render writes a human-readable report for one diagnostic: the
// severity header, a source excerpt with a caret underline for the
// primary span, any labeled sub-spans and the help note.
func Render(w io.Writer, file *span.File, d Diagnostic) {
	if d.Code != "" {
		fmt.Fprintf(w, "%s[%s]: %s\n", d.Severity, d.Code, d.Message)
	} else {
		fmt.Fprintf(w, "%s: %s\n", d.Severity, d.Message)
	}

	renderSpan(w, file, d.Span, "")
	for _, label := range d.Labels {
		renderSpan(w, file, label.Span, label.Message)
	}
	if d.Help != "" {
		fmt.Fprintf(w, "  help: %s\n", d.Help)
	}
}

// RenderAll renders every diagnostic in the slice, separated by blank
// lines.
func RenderAll(w io.Writer, file *span.File, ds []Diagnostic) {
	for i, d := range ds {
		if i > 0 {
			fmt.Fprintln(w)
		}
		Render(w, file, d)
	}
}

func renderSpan(w io.Writer, file *span.File, sp span.Span, label string) {
	if file == nil || !sp.IsValid() {
		return
	}
	pos := file.Position(sp.Start)
	fmt.Fprintf(w, "  --> %s\n", pos)

	line := file.Line(pos.Line)
	fmt.Fprintf(w, "   %d | %s\n", pos.Line, line)

	// Caret underline, clamped to the line the span starts on.
	width := int(sp.Len())
	if width < 1 {
		width = 1
	}
	if rest := len(line) - (pos.Column - 1); width > rest && rest > 0 {
		width = rest
	}
	pad := len(fmt.Sprintf("%d", pos.Line))
	underline := strings.Repeat(" ", pos.Column-1) + strings.Repeat("^", width)
	if label != "" {
		underline += " " + label
	}
	fmt.Fprintf(w, "   %s | %s\n", strings.Repeat(" ", pad), underline)
}
