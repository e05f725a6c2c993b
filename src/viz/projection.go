package viz

import (
	"fmt"

	"github.com/Bhakti2904/Autoviz-Smart-Data-Visualizer/src/api"
)

// PreviewRowLimit caps the preview projection at the first 10 rows,
// regardless of how many rows the upload returned or how large the dataset
// is server-side.
const PreviewRowLimit = 10

// DatasetView is the structured projection of a dataset the UI consumes:
// header order, the bounded preview window, column-type counts and the
// default axis selections. It carries no markup.
type DatasetView struct {
	FileName  string
	Headers   []string
	Preview   []api.Record
	TotalRows int

	TotalColumns       int
	NumericColumns     int
	CategoricalColumns int

	// DefaultX/DefaultY follow the "first two headers" rule: with at least
	// two headers X=headers[0] and Y=headers[1], otherwise both stay empty.
	DefaultX string
	DefaultY string
}

// ProjectDataset derives the view for a dataset. Column counts come from the
// service's column_info, never from sampling rows.
func ProjectDataset(ds *Dataset) DatasetView {
	v := DatasetView{
		FileName:     ds.FileName,
		Headers:      ds.Headers,
		TotalRows:    ds.TotalRows,
		TotalColumns: len(ds.Headers),
	}
	n := len(ds.Rows)
	if n > PreviewRowLimit {
		n = PreviewRowLimit
	}
	v.Preview = ds.Rows[:n]
	for _, info := range ds.Columns {
		switch info.Type {
		case api.ColumnNumeric:
			v.NumericColumns++
		case api.ColumnCategorical:
			v.CategoricalColumns++
		}
	}
	if len(ds.Headers) >= 2 {
		v.DefaultX = ds.Headers[0]
		v.DefaultY = ds.Headers[1]
	}
	return v
}

// CellString formats one preview cell for display. JSON numbers decode as
// float64; integral values print without a fractional part.
func CellString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		if x == float64(int64(x)) {
			return fmt.Sprintf("%d", int64(x))
		}
		return fmt.Sprintf("%g", x)
	case bool:
		if x {
			return "true"
		}
		return "false"
	default:
		return fmt.Sprintf("%v", x)
	}
}
