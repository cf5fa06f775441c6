package domain

import "go.trai.ch/zerr"

// Config is the resolved application configuration.
type Config struct {
	// Source is the config file it was read from, empty when defaults are used.
	Source string
	Title  string
	Data   string

	Server    ServerConfig
	Table     TableConfig
	Plot      PlotConfig
	Sparkline SparklineConfig
	Cache     CacheConfig
	Metrics   MetricsConfig
}

// ServerConfig controls the HTTP listener.
type ServerConfig struct {
	Addr        string
	OpenBrowser bool
}

// TableConfig controls the table page.
type TableConfig struct {
	// MaxRows caps the rows of the grid. Zero shows every row.
	MaxRows   int
	Precision int
}

// PlotConfig controls the plot explorer.
type PlotConfig struct {
	DefaultColumns int
	Width          int
	Height         int
}

// SparklineConfig controls the table page sparklines.
type SparklineConfig struct {
	Width     int
	Height    int
	MaxPoints int
}

// CacheConfig sizes the render cache. Zero disables it.
type CacheConfig struct {
	Size int
}

// MetricsConfig toggles the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool
}

// DefaultConfig returns the configuration used when no file sets a value.
func DefaultConfig() Config {
	return Config{
		Title: DefaultTitle,
		Data:  DefaultDataFile,
		Server: ServerConfig{
			Addr:        DefaultAddr,
			OpenBrowser: true,
		},
		Table: TableConfig{
			Precision: 2,
		},
		Plot: PlotConfig{
			DefaultColumns: 5,
			Width:          960,
			Height:         420,
		},
		Sparkline: SparklineConfig{
			Width:     160,
			Height:    32,
			MaxPoints: 200,
		},
		Cache:   CacheConfig{Size: 128},
		Metrics: MetricsConfig{Enabled: true},
	}
}

// Validate rejects values the pages cannot render with.
func (c *Config) Validate() error {
	checks := []struct {
		key string
		ok  bool
		val int
	}{
		{"table.max_rows", c.Table.MaxRows >= 0, c.Table.MaxRows},
		{"table.precision", c.Table.Precision >= 0 && c.Table.Precision <= 12, c.Table.Precision},
		{"plot.default_columns", c.Plot.DefaultColumns >= 1, c.Plot.DefaultColumns},
		{"plot.width", c.Plot.Width > 0, c.Plot.Width},
		{"plot.height", c.Plot.Height > 0, c.Plot.Height},
		{"sparkline.width", c.Sparkline.Width > 0, c.Sparkline.Width},
		{"sparkline.height", c.Sparkline.Height > 0, c.Sparkline.Height},
		{"sparkline.max_points", c.Sparkline.MaxPoints == 0 || c.Sparkline.MaxPoints >= 2, c.Sparkline.MaxPoints},
		{"cache.size", c.Cache.Size >= 0, c.Cache.Size},
	}
	for _, chk := range checks {
		if !chk.ok {
			err := zerr.With(ErrInvalidConfig, "key", chk.key)
			return zerr.With(err, "value", chk.val)
		}
	}
	if c.Server.Addr == "" {
		return zerr.With(ErrInvalidConfig, "key", "server.addr")
	}
	return nil
}
