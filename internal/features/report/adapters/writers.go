package adapters

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"freight-emissions/internal/features/report/domain"
	"freight-emissions/internal/features/report/ports"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// NewWriter returns the writer for an output format.
func NewWriter(format string) (ports.ReportWriter, error) {
	switch strings.ToLower(format) {
	case FormatText, "":
		return NewTextWriter(language.English), nil
	case FormatJSON:
		return JSONWriter{}, nil
	case FormatYAML, "yml":
		return YAMLWriter{}, nil
	}
	return nil, fmt.Errorf("unknown output format %q", format)
}

// TextWriter renders the output sheet for humans, with localized number grouping.
type TextWriter struct {
	printer *message.Printer
}

// NewTextWriter creates a TextWriter formatting numbers for tag.
func NewTextWriter(tag language.Tag) *TextWriter {
	return &TextWriter{printer: message.NewPrinter(tag)}
}

// Write renders the report.
func (t *TextWriter) Write(w io.Writer, r *domain.Report) error {
	p := t.printer
	var b strings.Builder

	p.Fprintf(&b, "Report %s (%s)\n", r.ID, r.GeneratedAt.Format("2006-01-02 15:04:05 MST"))
	p.Fprintf(&b, "Origin %s, container type %s, %d containers\n\n", r.OriginServiceCenter, r.ContainerType, r.ContainerCount)

	p.Fprintf(&b, "%-38s %14.2f kg CO2\n", "Variable road freight emissions", r.RoadTotalKg)
	p.Fprintf(&b, "%-38s %14.2f kg CO2\n", "Variable air freight emissions", r.AirTotalKg)
	p.Fprintf(&b, "%-38s %14.2f kg CO2\n", "Repositioning/Provisioning emissions", r.RepositioningTotalKg)
	p.Fprintf(&b, "  pool of %.2f kg CO2 from %d legs shared over %d containers\n",
		r.Repositioning.PoolTotalKg, r.Repositioning.PoolLegs, r.Repositioning.Denominator)

	if !r.Complete {
		p.Fprintf(&b, "\nINCOMPLETE: %d legs failed and are not included in the totals\n", len(r.FailedLegs))
		for _, leg := range r.FailedLegs {
			p.Fprintf(&b, "  %s leg %d (%s) failed at %s: %s\n", leg.Scope, leg.Index, leg.Mode, leg.Stage, leg.Error)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// JSONWriter renders indented JSON.
type JSONWriter struct{}

// Write renders the report.
func (JSONWriter) Write(w io.Writer, r *domain.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// YAMLWriter renders YAML.
type YAMLWriter struct{}

// Write renders the report.
func (YAMLWriter) Write(w io.Writer, r *domain.Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return err
	}
	return enc.Close()
}
