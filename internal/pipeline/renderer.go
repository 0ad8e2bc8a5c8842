package pipeline

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/nickbeaird/recordexpungPDX/internal/model"
)

// Output formats
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Record is one charge's line in the output: its result or the reason it has none
type Record struct {
	Index  int                      `json:"index" yaml:"index"`
	Source string                   `json:"source,omitempty" yaml:"source,omitempty"`
	Charge model.Charge             `json:"charge" yaml:"charge"`
	Result *model.ExpungementResult `json:"result,omitempty" yaml:"result,omitempty"`
	Error  string                   `json:"error,omitempty" yaml:"error,omitempty"`
}

// Renderer writes records in a machine-readable format
type Renderer struct {
	format string
}

// NewRenderer creates a renderer for "json" or "yaml"
func NewRenderer(format string) (*Renderer, error) {
	switch format {
	case FormatJSON, FormatYAML:
		return &Renderer{format: format}, nil
	case "":
		return &Renderer{format: FormatJSON}, nil
	default:
		return nil, fmt.Errorf("unsupported output format %q (want json or yaml)", format)
	}
}

// Render writes all records to w
func (r *Renderer) Render(w io.Writer, records []Record) error {
	doc := struct {
		Results []Record `json:"results" yaml:"results"`
	}{Results: records}

	switch r.format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	}
}

// RenderSummary prints one line per charge plus status totals
func (r *Renderer) RenderSummary(w io.Writer, records []Record) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tSTATUTE\tTYPE\tSTATUS\tREASON")

	counts := make(map[model.EligibilityStatus]int)
	failures := 0
	for _, rec := range records {
		if rec.Result == nil {
			failures++
			fmt.Fprintf(tw, "%d\t%s\t-\terror\t%s\n", rec.Index, rec.Charge.Statute, rec.Error)
			continue
		}
		counts[rec.Result.TypeEligibility.Status]++
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
			rec.Index,
			rec.Result.Statute,
			rec.Result.TypeName,
			rec.Result.TypeEligibility.Status,
			rec.Result.TypeEligibility.Reason,
		)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w)
	for _, status := range model.Statuses() {
		fmt.Fprintf(w, "  %-20s %d\n", status, counts[status])
	}
	fmt.Fprintf(w, "  %-20s %d\n", "errors", failures)
	return nil
}
