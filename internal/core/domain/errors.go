package domain

import "go.trai.ch/zerr"

var (
	// ErrDataFileNotFound is returned when the CSV file does not exist.
	ErrDataFileNotFound = zerr.New("data file not found")

	// ErrDataFileUnreadable is returned when the CSV file exists but cannot be read.
	ErrDataFileUnreadable = zerr.New("data file is unreadable")

	// ErrDatasetMalformed is returned when the CSV content cannot form a dataset.
	ErrDatasetMalformed = zerr.New("malformed CSV")

	// ErrMissingHeader is returned when the CSV file has no header row.
	ErrMissingHeader = zerr.New("missing header row")

	// ErrEmptyColumnName is returned when a header field is blank.
	ErrEmptyColumnName = zerr.New("empty column name in header")

	// ErrDuplicateColumn is returned when two header fields share a name.
	ErrDuplicateColumn = zerr.New("duplicate column name in header")

	// ErrRaggedRow is returned when a data row has a different field count than the header.
	ErrRaggedRow = zerr.New("row field count does not match header")

	// ErrDatasetUnavailable is returned by page renders when the dataset failed to load.
	ErrDatasetUnavailable = zerr.New("dataset is unavailable")

	// ErrPageNotFound is returned when a page identifier is not part of the navigation.
	ErrPageNotFound = zerr.New("page not found or not discovered")

	// ErrChartRenderFailed is returned when a chart cannot be drawn.
	ErrChartRenderFailed = zerr.New("failed to render chart")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigNotFound is returned when an explicitly requested config file does not exist.
	ErrConfigNotFound = zerr.New("config file not found")

	// ErrInvalidConfig is returned when a config value is out of range.
	ErrInvalidConfig = zerr.New("invalid config value")

	// ErrServerFailed is returned when the HTTP server stops unexpectedly.
	ErrServerFailed = zerr.New("http server failed")
)

// LoadError is the single error kind produced by the data loader.
// It covers missing files, unreadable files and malformed CSV content.
type LoadError struct {
	Path string
	Err  error
}

// NewLoadError wraps err as a LoadError for path.
func NewLoadError(path string, err error) *LoadError {
	return &LoadError{Path: path, Err: err}
}

func (e *LoadError) Error() string {
	if e.Err == nil {
		return "failed to load dataset " + e.Path
	}
	return "failed to load dataset " + e.Path + ": " + e.Err.Error()
}

// Unwrap returns the underlying cause.
func (e *LoadError) Unwrap() error {
	return e.Err
}

// Message returns the error message without the cause chain.
// It lets the logger print the load failure as its own line.
func (e *LoadError) Message() string {
	return "failed to load dataset " + e.Path
}
