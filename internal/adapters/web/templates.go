package web

import (
	"bytes"
	"html/template"
	"slices"

	"go.trai.ch/glance/internal/core/domain"
	"go.trai.ch/glance/internal/ui/style"
)

type navItem struct {
	Page   domain.Page
	Active bool
}

type layoutData struct {
	AppTitle  string
	PageTitle string
	Nav       []navItem
	Content   any
}

var pageTitles = map[string]string{
	"home":     "Home",
	"table":    "Data Table",
	"plot":     "Plot Explorer",
	"extra":    "Extra",
	"failure":  "Unavailable",
	"notfound": "Not found",
	"error":    "Error",
}

var templateFuncs = template.FuncMap{
	"has": slices.Contains[[]string],
	"accent": func() template.CSS {
		return template.CSS(style.Iris)
	},
	"ink": func() template.CSS {
		return template.CSS(style.Ink)
	},
	"mist": func() template.CSS {
		return template.CSS(style.Mist)
	},
	"muted": func() template.CSS {
		return template.CSS(style.Slate)
	},
}

func parseTemplates() map[string]*template.Template {
	base := template.Must(template.New("layout").Funcs(templateFuncs).Parse(layoutTemplate))
	out := make(map[string]*template.Template, len(pageTemplates))
	for name, body := range pageTemplates {
		out[name] = template.Must(template.Must(base.Clone()).Parse(body))
	}
	return out
}

// renderHTML executes the named page inside the layout.
func (s *Server) renderHTML(status int, name string, active domain.PageID, content any) (*response, error) {
	data := layoutData{
		AppTitle:  s.dash.Title(),
		PageTitle: pageTitles[name],
		Content:   content,
	}
	for _, p := range s.dash.Navigation() {
		data.Nav = append(data.Nav, navItem{Page: p, Active: p.ID == active})
	}

	var buf bytes.Buffer
	if err := s.templates[name].ExecuteTemplate(&buf, "layout", data); err != nil {
		return nil, err
	}
	return newResponse(status, contentHTML, buf.Bytes()), nil
}

const layoutTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.PageTitle}} · {{.AppTitle}}</title>
<style>
body { margin: 0; font-family: system-ui, sans-serif; color: {{ink}}; background: {{mist}}; }
header { display: flex; gap: 1.5rem; align-items: baseline; padding: 1rem 2rem; background: #fff; border-bottom: 2px solid {{accent}}; }
header a { color: {{muted}}; text-decoration: none; }
header a.active { color: {{accent}}; font-weight: 600; }
header .brand { color: {{ink}}; font-weight: 700; font-size: 1.2rem; }
main { padding: 1.5rem 2rem; }
table { border-collapse: collapse; background: #fff; font-size: 0.9rem; }
th, td { padding: 0.3rem 0.6rem; border: 1px solid #e4e7ec; text-align: left; }
th { background: #f2f4f7; }
td.num { text-align: right; font-variant-numeric: tabular-nums; }
.scroll { max-height: 28rem; overflow: auto; margin-bottom: 1.5rem; }
.note { color: {{muted}}; }
.failure { border-left: 4px solid #D93025; background: #fff; padding: 1rem 1.5rem; }
</style>
</head>
<body>
<header>
<a class="brand" href="/">{{.AppTitle}}</a>
{{range .Nav}}<a href="{{.Page.Path}}"{{if .Active}} class="active"{{end}}>{{.Page.Emoji}} {{.Page.Title}}</a>
{{end}}</header>
<main>
{{template "content" .Content}}
</main>
</body>
</html>
`

var pageTemplates = map[string]string{
	"home": `{{define "content"}}
<h1>{{.Title}}</h1>
<p>{{.Intro}}</p>
<ul>
{{range .Pages}}<li>{{.Emoji}} <a href="{{.Path}}">{{.Title}}</a>: {{.Summary}}</li>
{{end}}</ul>
<h2>Preview</h2>
{{if .Empty}}<p class="note">The dataset has no rows.</p>{{else}}
<div class="scroll"><table>
<tr>{{range .Headers}}<th>{{.}}</th>{{end}}</tr>
{{range .Preview}}<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
{{end}}</table></div>{{end}}
<p class="note">Data has {{.Rows}} rows and {{.Columns}} columns.</p>
{{end}}`,

	"table": `{{define "content"}}
<h1>Data Table</h1>
{{if .View.Empty}}<p class="note">The dataset has no rows.</p>{{else}}
<h2>Summary</h2>
<table>
<tr><th>Column</th><th>Count</th><th>Mean</th><th>Std Dev</th><th>Min</th><th>Max</th><th>Trend</th></tr>
{{range .View.Summaries}}{{$label := .Label}}<tr><td>{{.Label}}</td><td class="num">{{.Count}}</td><td class="num">{{.Mean}}</td><td class="num">{{.StdDev}}</td><td class="num">{{.Min}}</td><td class="num">{{.Max}}</td><td>{{with index $.Sparklines .Column}}<img src="{{.}}" alt="trend of {{$label}}">{{end}}</td></tr>
{{end}}</table>
<h2>Rows</h2>
<div class="scroll"><table>
<tr>{{range .View.Headers}}<th>{{.}}</th>{{end}}</tr>
{{range .View.Rows}}<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
{{end}}</table></div>
{{if .View.Truncated}}<p class="note">Showing {{len .View.Rows}} of {{.View.TotalRows}} rows.</p>{{end}}
{{end}}
{{end}}`,

	"plot": `{{define "content"}}
<h1>Plot Explorer</h1>
<form method="get" action="/plot">
<fieldset><legend>Columns</legend>
{{range .View.Available}}<label><input type="checkbox" name="col" value="{{.}}"{{if has $.View.Selected .}} checked{{end}}> {{.}}</label>
{{end}}</fieldset>
<label>From row <input type="number" name="from" min="0" value="{{.View.Start}}"></label>
<label>To row <input type="number" name="to" min="0" value="{{.View.End}}"></label>
<button type="submit">Plot</button>
</form>
{{if .View.Ignored}}<p class="note">Ignored columns: {{range $i, $c := .View.Ignored}}{{if $i}}, {{end}}{{$c}}{{end}}</p>{{end}}
{{if .Chart}}<p><img src="{{.Chart}}" alt="plot of the selected columns" width="{{.View.Width}}" height="{{.View.Height}}"></p>
<p><a href="{{.Download}}">Download selection as CSV</a></p>
{{else}}<p class="note">No data to plot. Select at least one numeric column.</p>{{end}}
<p class="note">Rows {{.View.Start}} to {{.View.End}} of {{.Rows}}.</p>
{{end}}`,

	"extra": `{{define "content"}}
<h1>{{.Title}}</h1>
{{range .Paragraphs}}<p>{{.}}</p>
{{end}}{{end}}`,

	"failure": `{{define "content"}}
<div class="failure">
<h1>{{.Title}}</h1>
<p>{{.Message}}</p>
{{if .Source}}<p class="note">Source: {{.Source}}</p>{{end}}
</div>
{{end}}`,

	"notfound": `{{define "content"}}
<h1>Page not found or not discovered</h1>
<p class="note">{{.}}</p>
<p><a href="/">Back to the home page</a></p>
{{end}}`,

	"error": `{{define "content"}}
<h1>Something went wrong</h1>
<p>{{.}}</p>
{{end}}`,
}
