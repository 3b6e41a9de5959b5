// Package report renders analysis reports for people and for other programs.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gcbaptista/go-movie-analyzer/config"
	internalErrors "github.com/gcbaptista/go-movie-analyzer/internal/errors"
	"github.com/gcbaptista/go-movie-analyzer/model"
)

// Printer writes reports in one of the supported formats.
type Printer struct {
	format string
}

// NewPrinter creates a Printer for format ("text", "json" or "yaml").
func NewPrinter(format string) (*Printer, error) {
	if !config.IsSupportedFormat(format) {
		return nil, internalErrors.NewValidationError("format",
			"must be one of "+strings.Join(config.SupportedFormats, ", ")+", got '"+format+"'")
	}
	return &Printer{format: format}, nil
}

// Print writes the whole report to w.
func (p *Printer) Print(w io.Writer, report *model.Report) error {
	switch p.format {
	case config.FormatJSON:
		return writeJSON(w, report)
	case config.FormatYAML:
		return writeYAML(w, report)
	}

	if _, err := fmt.Fprintf(w, "Run %s: %d movies, %d in all three lists\n\n", report.RunID, report.MovieCount, report.TopCount); err != nil {
		return err
	}
	for _, section := range report.Sections {
		if err := p.PrintSection(w, section); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

// PrintSection writes a single section to w.
func (p *Printer) PrintSection(w io.Writer, section model.Section) error {
	switch p.format {
	case config.FormatJSON:
		return writeJSON(w, section)
	case config.FormatYAML:
		return writeYAML(w, section)
	}

	if section.Question != "" {
		if _, err := fmt.Fprintln(w, section.Question); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%d\t[%s]\n", section.ResultLength, strings.Join(FormatItems(section), ", "))
	return err
}

// FormatItems renders each result of a section as a short tuple-like string,
// e.g. "(3, Tom Hanks)".
func FormatItems(section model.Section) []string {
	var items []string
	switch {
	case section.Movies != nil:
		for _, k := range section.Movies {
			items = append(items, k.String())
		}
	case section.Names != nil:
		items = append(items, section.Names...)
	case section.Counts != nil:
		for _, c := range section.Counts {
			items = append(items, "("+strconv.Itoa(c.Count)+", "+c.Name+")")
		}
	case section.Ratings != nil:
		for _, r := range section.Ratings {
			items = append(items, "("+strconv.FormatFloat(r.Average, 'f', -1, 64)+", "+r.Name+")")
		}
	case section.Filmography != nil:
		for _, f := range section.Filmography {
			parts := []string{f.Name}
			for _, k := range f.Movies {
				parts = append(parts, k.String())
			}
			items = append(items, "["+strings.Join(parts, ", ")+"]")
		}
	case section.Pairs != nil:
		for _, pc := range section.Pairs {
			items = append(items, "("+strconv.Itoa(pc.Count)+", ("+pc.Director+", "+pc.Actor+"))")
		}
	}
	return items
}

func writeJSON(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to encode report as json: %w", err)
	}
	return nil
}

func writeYAML(w io.Writer, v interface{}) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to encode report as yaml: %w", err)
	}
	return encoder.Close()
}
