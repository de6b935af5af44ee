// Package report renders a finished run as a standalone HTML page.
package report

import (
	"fmt"
	"html/template"
	"io"
	"os"
	"time"

	"github.com/fieldworks/crew-recommender/pkg/core/model"
)

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Recommendation report - {{.ProgramID}}</title>
<style>
body { font-family: sans-serif; margin: 2rem; color: #222; }
h1 { font-size: 1.4rem; }
h2 { font-size: 1.1rem; margin-top: 2rem; }
table { border-collapse: collapse; margin-top: 0.5rem; }
th, td { border: 1px solid #bbb; padding: 0.3rem 0.6rem; text-align: left; }
th { background: #eee; }
.totals { margin-top: 1rem; }
.empty { color: #777; font-style: italic; }
</style>
</head>
<body>
<h1>Recommendation report</h1>
<p>
Program <strong>{{.ProgramID}}</strong>{{if .ProgramTitle}} ({{.ProgramTitle}}){{end}},
customer <strong>{{.CustomerID}}</strong>.
Generated {{.GeneratedAt}}.
</p>

<h2>Recommendations</h2>
{{if .Recommendations}}
<table>
<tr><th>Activity</th><th>Company</th><th>Crew</th><th>Site</th><th>Project</th><th>Start</th><th>End</th></tr>
{{range .Recommendations}}
<tr>
<td>{{.ActivityID}}</td>
<td>{{.CompanyID}}</td>
<td>{{.CrewID}}</td>
<td>{{.SiteID}}</td>
<td>{{.ProjectID}}</td>
<td>{{.StartDate}}</td>
<td>{{.EndDate}}</td>
</tr>
{{end}}
</table>
{{else}}
<p class="empty">No activities could be assigned.</p>
{{end}}

<h2>Company allocations</h2>
{{if .Statistics.CompanyAllocations}}
<table>
<tr><th>Company</th><th>Allocated</th><th>Requested %</th><th>Provided %</th></tr>
{{range .Statistics.CompanyAllocations}}
<tr>
<td>{{.CompanyID}}</td>
<td>{{.Allocated}}</td>
<td>{{.RequestedPercentage}}</td>
<td>{{.ProvidedPercentage}}</td>
</tr>
{{end}}
</table>
{{else}}
<p class="empty">No companies took part in this run.</p>
{{end}}

<p class="totals">
Provided capacity: <strong>{{.Statistics.ProvidedCapacity}}</strong>,
allocated capacity: <strong>{{.Statistics.AllocatedCapacity}}</strong>.
</p>
</body>
</html>
`

var page = template.Must(template.New("report").Parse(pageTemplate))

type pageData struct {
	ProgramID       string
	ProgramTitle    string
	CustomerID      string
	GeneratedAt     string
	Recommendations []model.Recommendation
	Statistics      model.Statistics
}

// Render writes the HTML report for one run to w.
func Render(w io.Writer, plan *model.ProgramPlan, result *model.RecommendationResult) error {
	data := pageData{
		ProgramID:       plan.ProgramID,
		ProgramTitle:    plan.ProgramTitle,
		CustomerID:      plan.CustomerID,
		GeneratedAt:     time.Now().UTC().Format(time.RFC3339),
		Recommendations: result.Recommendations,
		Statistics:      result.Statistics,
	}
	if err := page.Execute(w, data); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	return nil
}

// WriteFile renders the report to path.
func WriteFile(path string, plan *model.ProgramPlan, result *model.RecommendationResult) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer f.Close()

	if err := Render(f, plan, result); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write report file: %w", err)
	}
	return nil
}
