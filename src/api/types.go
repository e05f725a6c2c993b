package api

// Record is one row of the uploaded table, keyed by header name. Values are
// whatever the service inferred: string, float64, bool or nil after JSON
// decoding.
type Record map[string]any

// ColumnType classifies a column as inferred by the service.
type ColumnType string

const (
	ColumnNumeric     ColumnType = "numeric"
	ColumnCategorical ColumnType = "categorical"
	ColumnDatetime    ColumnType = "datetime"
	ColumnOther       ColumnType = "other"
)

// ColumnInfo describes one column of the uploaded dataset.
type ColumnInfo struct {
	Type         ColumnType `json:"type"`
	DType        string     `json:"dtype,omitempty"`
	UniqueValues int        `json:"unique_values,omitempty"`
	NullValues   int        `json:"null_values,omitempty"`
	SampleValues []any      `json:"sample_values,omitempty"`
}

// UploadResponse is the body of POST /upload. Data carries a bounded window
// of rows; TotalRows is the authoritative count.
type UploadResponse struct {
	Success    bool                  `json:"success"`
	Data       []Record              `json:"data"`
	Headers    []string              `json:"headers"`
	ColumnInfo map[string]ColumnInfo `json:"column_info"`
	TotalRows  int                   `json:"total_rows"`
	Error      string                `json:"error,omitempty"`
}

// ChartConfig is the body of POST /generate_chart.
type ChartConfig struct {
	ChartType   string `json:"chart_type"`
	XAxis       string `json:"x_axis"`
	YAxis       string `json:"y_axis,omitempty"`
	ColorScheme string `json:"color_scheme,omitempty"`
	Title       string `json:"title,omitempty"`
}

// ChartResponse is the body of POST /generate_chart. Chart is a JSON-encoded
// chart specification (traces + layout) consumed by the render surface.
type ChartResponse struct {
	Success bool   `json:"success"`
	Chart   string `json:"chart"`
	Error   string `json:"error,omitempty"`
}

// DataStats is the body of GET /get_data_stats.
type DataStats struct {
	TotalRows          int `json:"total_rows"`
	TotalColumns       int `json:"total_columns"`
	NumericColumns     int `json:"numeric_columns"`
	CategoricalColumns int `json:"categorical_columns"`
	MissingValues      int `json:"missing_values"`
	MemoryUsage        int `json:"memory_usage"`
}

// ChartTypes lists the chart kinds the service knows how to generate.
var ChartTypes = []string{"bar", "line", "scatter", "pie", "area", "histogram", "box", "heatmap"}

// ColorSchemes lists the palette names the service accepts.
var ColorSchemes = []string{"default", "viridis", "plasma", "blues", "reds", "greens", "sunset", "ocean", "purple"}

// ExportFormats lists the data export encodings the service supports.
var ExportFormats = []string{"csv", "json"}
