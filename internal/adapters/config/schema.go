package config

// Glancefile represents the structure of the glance.yaml configuration file.
// Pointer fields distinguish an explicit zero from an omitted key.
type Glancefile struct {
	Version   string        `yaml:"version"`
	Title     string        `yaml:"title"`
	Data      string        `yaml:"data"`
	Server    *ServerDTO    `yaml:"server"`
	Table     *TableDTO     `yaml:"table"`
	Plot      *PlotDTO      `yaml:"plot"`
	Sparkline *SparklineDTO `yaml:"sparkline"`
	Cache     *CacheDTO     `yaml:"cache"`
	Metrics   *MetricsDTO   `yaml:"metrics"`
}

// ServerDTO is the server section.
type ServerDTO struct {
	Addr        string `yaml:"addr"`
	OpenBrowser *bool  `yaml:"open_browser"`
}

// TableDTO is the table section.
type TableDTO struct {
	MaxRows   *int `yaml:"max_rows"`
	Precision *int `yaml:"precision"`
}

// PlotDTO is the plot section.
type PlotDTO struct {
	DefaultColumns *int `yaml:"default_columns"`
	Width          *int `yaml:"width"`
	Height         *int `yaml:"height"`
}

// SparklineDTO is the sparkline section.
type SparklineDTO struct {
	Width     *int `yaml:"width"`
	Height    *int `yaml:"height"`
	MaxPoints *int `yaml:"max_points"`
}

// CacheDTO is the cache section.
type CacheDTO struct {
	Size *int `yaml:"size"`
}

// MetricsDTO is the metrics section.
type MetricsDTO struct {
	Enabled *bool `yaml:"enabled"`
}
