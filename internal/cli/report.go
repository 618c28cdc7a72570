package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"

	"github.com/kyanite-dev/kyanite/internal/diagnostics"
)

// WriteText renders a lint run for terminals: each finding in the
// labeled-span format, then a one-line summary.
func WriteText(w io.Writer, s *Summary) error {
	for _, res := range s.Results {
		if len(res.Diagnostics) > 0 {
			diagnostics.RenderAll(w, res.File, res.Diagnostics)
		}
	}
	_, err := fmt.Fprintf(w, "checked %s files (%s) in %s: %d errors, %d warnings\n",
		humanize.Comma(int64(s.Files)),
		humanize.Bytes(uint64(s.Bytes)),
		s.Duration.Round(time.Millisecond),
		s.Errors,
		s.Warnings,
	)
	return err
}

// jsonFinding is one diagnostic in machine-readable output, with the
// span resolved to 1-based line/column.
type jsonFinding struct {
	Severity string `json:"severity"`
	Code     string `json:"code,omitempty"`
	Message  string `json:"message"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Help     string `json:"help,omitempty"`
}

type jsonFile struct {
	Path     string        `json:"path"`
	Findings []jsonFinding `json:"findings"`
}

type jsonReport struct {
	Files      int        `json:"files"`
	Bytes      int64      `json:"bytes"`
	DurationMS int64      `json:"duration_ms"`
	Errors     int        `json:"errors"`
	Warnings   int        `json:"warnings"`
	Results    []jsonFile `json:"results"`
}

// WriteJSON renders a lint run as one JSON document. Files without
// findings are omitted.
func WriteJSON(w io.Writer, s *Summary) error {
	report := jsonReport{
		Files:      s.Files,
		Bytes:      s.Bytes,
		DurationMS: s.Duration.Milliseconds(),
		Errors:     s.Errors,
		Warnings:   s.Warnings,
		Results:    []jsonFile{},
	}
	for _, res := range s.Results {
		if len(res.Diagnostics) == 0 {
			continue
		}
		jf := jsonFile{Path: res.Path}
		for _, d := range res.Diagnostics {
			pos := res.File.Position(d.Span.Start)
			jf.Findings = append(jf.Findings, jsonFinding{
				Severity: d.Severity.String(),
				Code:     d.Code,
				Message:  d.Message,
				Line:     pos.Line,
				Column:   pos.Column,
				Help:     d.Help,
			})
		}
		report.Results = append(report.Results, jf)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return errors.Wrap(err, "encode lint report")
	}
	return nil
}
