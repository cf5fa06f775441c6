package domain

// NavEntry is one line of the page directory shown on the home page and in the header.
type NavEntry struct {
	Page   Page
	Active bool
}

// HomeView is the rendered landing page.
type HomeView struct {
	Title   string
	Intro   string
	Pages   []Page
	Headers []string
	Preview [][]string
	Rows    int
	Columns int
	Empty   bool
}

// ColumnSummary holds the formatted statistics of one numeric column.
// Undefined statistics are empty strings.
type ColumnSummary struct {
	Column string
	Label  string
	Count  int
	Mean   string
	StdDev string
	Min    string
	Max    string
}

// Sparkline is a miniature line chart of one numeric column.
// Min and Max are the column's own range.
type Sparkline struct {
	Column string
	Values []float64
	Min    float64
	Max    float64
	Width  int
	Height int
}

// TableView is the rendered data table page.
type TableView struct {
	Headers    []string
	Rows       [][]string
	TotalRows  int
	Truncated  bool
	Summaries  []ColumnSummary
	Sparklines []Sparkline
	Empty      bool
}

// Point is one plotted value. Label is the time column's cell for the row, if any.
type Point struct {
	Row   int
	Value float64
	Label string
}

// PlotSeries is the data of one selected column.
type PlotSeries struct {
	Column string
	Label  string
	Points []Point
}

// PlotView is the rendered plot explorer page.
type PlotView struct {
	Available  []string
	Selected   []string
	Ignored    []string
	Start      int
	End        int
	TimeColumn string
	Series     []PlotSeries
	Width      int
	Height     int
	Empty      bool
}

// ExtraView is the placeholder page.
type ExtraView struct {
	Title      string
	Paragraphs []string
}

// FailureView replaces every page when the dataset failed to load.
type FailureView struct {
	Title   string
	Message string
	Source  string
}
