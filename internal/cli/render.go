package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"text/template"

	"github.com/worklog/report-dashboard/internal/core/catalog"
	"github.com/worklog/report-dashboard/internal/core/domain"
	"github.com/worklog/report-dashboard/internal/listview"
	"github.com/worklog/report-dashboard/internal/tab"
)

var funcs = template.FuncMap{
	"join":   strings.Join,
	"inc":    func(i int) int { return i + 1 },
	"header": header,
	"cells":  func(cells []string) string { return strings.Join(cells, "\t") },
	"pages":  pageList,
	"deref": func(p *int) string {
		if p == nil {
			return "-"
		}
		return fmt.Sprint(*p)
	},
}

var categoriesTmpl = template.Must(template.New("categories").Funcs(funcs).Parse(
	`CATEGORY	TITLE	DATE FIELD	FILTERS
{{range .}}{{.Category}}	{{.Title}}	{{if .DateField}}{{.DateField}}{{else}}-{{end}}	{{range $i, $f := .Filters}}{{if $i}}, {{end}}{{$f.Field}}{{end}}
{{end}}`))

var viewTmpl = template.Must(template.New("view").Funcs(funcs).Parse(
	`{{.Title}}
{{if .Search}}search: {{.Search}}
{{end}}{{range $k, $v := .Filters}}{{$k}}: {{$v}}
{{end}}
{{with .Table}}{{header .Headers}}
{{if .Empty}}{{.EmptyMessage}}
{{else}}{{range .Rows}}{{cells .Cells}}
{{end}}{{end}}{{with .Pagination}}
page {{inc .PageIndex}} of {{.TotalPages}} ({{.TotalItems}} records)	{{pages .}}
{{end}}{{end}}`))

var statsTmpl = template.Must(template.New("stats").Funcs(funcs).Parse(
	`{{.Category}}
total	{{.Stats.TotalRecords}}
active	{{.Stats.ActiveRecords}}
inactive	{{.Stats.InactiveRecords}}
completed	{{deref .Stats.CompletedRecords}}
pending	{{deref .Stats.PendingRecords}}
`))

func header(hs []listview.Header) string {
	labels := make([]string, len(hs))
	for i, h := range hs {
		label := strings.ToUpper(h.Label)
		switch h.Direction {
		case listview.Asc:
			label += " ^"
		case listview.Desc:
			label += " v"
		}
		labels[i] = label
	}
	return strings.Join(labels, "\t")
}

func pageList(p *listview.Pagination) string {
	parts := make([]string, 0, len(p.Pages)+2)
	if !p.PrevDisabled {
		parts = append(parts, "<")
	}
	for _, n := range p.Pages {
		if n == p.PageIndex+1 {
			parts = append(parts, fmt.Sprintf("[%d]", n))
			continue
		}
		parts = append(parts, fmt.Sprint(n))
	}
	if !p.NextDisabled && p.TotalPages > 0 {
		parts = append(parts, ">")
	}
	return strings.Join(parts, " ")
}

func execute(w io.Writer, t *template.Template, data any) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	if err := t.Execute(tw, data); err != nil {
		return fmt.Errorf("render %s: %w", t.Name(), err)
	}
	return tw.Flush()
}

func renderCategories(w io.Writer, ds []*catalog.Descriptor) error {
	return execute(w, categoriesTmpl, ds)
}

func renderView(w io.Writer, v tab.View) error {
	return execute(w, viewTmpl, v)
}

func renderStats(w io.Writer, c domain.Category, s domain.Stats) error {
	return execute(w, statsTmpl, struct {
		Category domain.Category
		Stats    domain.Stats
	}{c, s})
}
