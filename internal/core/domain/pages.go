package domain

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// PageID identifies one page of the dashboard.
type PageID string

const (
	// PageHome is the landing page.
	PageHome PageID = "home"
	// PageTable is the data table with per-column summaries.
	PageTable PageID = "table"
	// PagePlot is the plot explorer.
	PagePlot PageID = "plot"
	// PageExtra is the placeholder page.
	PageExtra PageID = "extra"
)

// SpanName returns the tracing span name of a render of the page.
func (id PageID) SpanName() string {
	return PageSpanPrefix + string(id)
}

// PageSpanPrefix prefixes the span names of page renders.
const PageSpanPrefix = "page."

// Page describes a navigable page.
type Page struct {
	ID      PageID
	Slug    string
	Title   string
	Emoji   string
	Path    string
	Summary string
}

var pageEmojis = []string{"📈", "🎯", "📊", "🔬", "🔍"}

var pageTable = []struct {
	id      PageID
	slug    string
	path    string
	summary string
}{
	{PageTable, "1_data_table", "/table", "Every row of the dataset with a summary and sparkline per numeric column."},
	{PagePlot, "2_plot_explorer", "/plot", "Pick columns and a row range and compare them on one chart."},
	{PageExtra, "3_extra", "/extra", "A placeholder for further analysis."},
}

// Navigation returns the discoverable pages in menu order.
// The home page is not part of the list.
func Navigation() []Page {
	pages := make([]Page, len(pageTable))
	for i, p := range pageTable {
		pages[i] = Page{
			ID:      p.id,
			Slug:    p.slug,
			Title:   DisplayName(p.slug),
			Emoji:   PageEmoji(i),
			Path:    p.path,
			Summary: p.summary,
		}
	}
	return pages
}

// LookupPage finds a page by identifier.
func LookupPage(id PageID) (Page, error) {
	for _, p := range Navigation() {
		if p.ID == id {
			return p, nil
		}
	}
	return Page{}, ErrPageNotFound
}

// PageEmoji returns the emoji for the page at index i, cycling through the palette.
func PageEmoji(i int) string {
	if i < 0 {
		i = -i
	}
	return pageEmojis[i%len(pageEmojis)]
}

// DisplayName turns a page slug such as "1_data_table" into "Data Table".
func DisplayName(slug string) string {
	name := strings.TrimLeft(slug, "0123456789_- ")
	name = strings.ReplaceAll(name, "_", " ")
	return cases.Title(language.English).String(name)
}

// PrettyColumnName turns a header like "temperature_2m (°C)" into "Temperature 2m (°C)".
func PrettyColumnName(name string) string {
	return cases.Title(language.English, cases.NoLower).String(strings.ReplaceAll(name, "_", " "))
}
