// Package renderer turns batch results into markdown reports for the
// terminal and the web UI.
package renderer

import (
	"embed"
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/etnz/totalreturn"
)

//go:embed templates/*.md
var templates embed.FS

// Report is the data handed to the summary template.
type Report struct {
	Generated time.Time
	Rows      []totalreturn.ReturnResult
}

// Actions returns the rows that carry a bonus/allotment description.
func (r Report) Actions() []totalreturn.ReturnResult {
	var out []totalreturn.ReturnResult
	for _, row := range r.Rows {
		if row.BonusAllotDesc != "" {
			out = append(out, row)
		}
	}
	return out
}

// Failures returns the error-only rows.
func (r Report) Failures() []totalreturn.ReturnResult {
	var out []totalreturn.ReturnResult
	for _, row := range r.Rows {
		if row.Failed() {
			out = append(out, row)
		}
	}
	return out
}

var funcs = template.FuncMap{
	"cny": CNY,
	"pct": func(v float64) string { return fmt.Sprintf("%+.4f%%", v) },
}

// RenderSummary renders the batch result rows to a markdown string.
func RenderSummary(rows []totalreturn.ReturnResult) string {
	return render("summary.md", Report{Generated: time.Now(), Rows: rows})
}

// render executes one embedded template file over data.
func render(file string, data any) string {
	content, err := templates.ReadFile("templates/" + file)
	if err != nil {
		return fmt.Sprintf("error reading template %q: %v", file, err)
	}
	tmpl, err := template.New(file).Funcs(funcs).Parse(string(content))
	if err != nil {
		return fmt.Sprintf("error parsing template %q: %v", file, err)
	}
	var sb strings.Builder
	if err := tmpl.Execute(&sb, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", file, err)
	}
	return sb.String()
}
