// Package style holds the brand colours and icons shared by the terminal
// output and the HTML pages.
package style

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Brand Colors.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	White  = lipgloss.Color("#FFFFFF")
	Ink    = lipgloss.Color("#0B0F19")
	Mist   = lipgloss.Color("#F6F7FB")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
	Sky    = lipgloss.Color("#0EA5E9")
	Rose   = lipgloss.Color("#E11D48")
)

// Series is the colour cycle for chart lines.
var Series = []lipgloss.Color{Iris, Sky, Green, Yellow, Rose, Slate}

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Arrow   = "→"
	Dot     = "●"
)

// SeriesColor returns the chart colour for the i-th series.
func SeriesColor(i int) lipgloss.Color {
	if i < 0 {
		i = -i
	}
	return Series[i%len(Series)]
}

// Hex returns the colour without its leading '#', the form chart libraries expect.
func Hex(c lipgloss.Color) string {
	return strings.TrimPrefix(string(c), "#")
}

// Banner renders the startup line printed when the server is ready.
func Banner(title, url string) string {
	name := lipgloss.NewStyle().Bold(true).Foreground(Iris).Render(title)
	link := lipgloss.NewStyle().Underline(true).Render(url)
	return Dot + " " + name + " is serving at " + link
}
