// Package chartspec decodes the chart specification the AutoViz service
// returns from /generate_chart: a plotly-style JSON document with a list of
// traces under "data" and figure-wide settings under "layout". The client
// only checks structural well-formedness; the render surface decides what it
// can draw.
package chartspec

import (
	"encoding/json"
	"fmt"
)

// Trace is one data series of a chart. X and Y hold heterogeneous values
// (strings for categorical axes, numbers otherwise). Pie traces use
// Labels/Values instead of X/Y.
type Trace struct {
	Type        string    `json:"type"`
	Name        string    `json:"name,omitempty"`
	X           []any     `json:"x,omitempty"`
	Y           []any     `json:"y,omitempty"`
	Labels      []any     `json:"labels,omitempty"`
	Values      []float64 `json:"values,omitempty"`
	Fill        string    `json:"fill,omitempty"`
	Mode        string    `json:"mode,omitempty"`
	Orientation string    `json:"orientation,omitempty"`
}

// Layout carries the figure-level settings the client cares about. Plotly
// encodes titles either as a bare string or as {"text": ...}; Title handles
// both.
type Layout struct {
	Title  Title `json:"title"`
	XAxis  Axis  `json:"xaxis"`
	YAxis  Axis  `json:"yaxis"`
	Width  int   `json:"width,omitempty"`
	Height int   `json:"height,omitempty"`
}

// Axis is a plotly axis block; only the title is used for rendering.
type Axis struct {
	Title Title `json:"title"`
}

// Title unmarshals from either "..." or {"text": "..."}.
type Title struct {
	Text string
}

func (t *Title) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		t.Text = s
		return nil
	}
	var obj struct {
		Text string `json:"text"`
	}
	if err := json.Unmarshal(b, &obj); err != nil {
		return err
	}
	t.Text = obj.Text
	return nil
}

func (t Title) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Text string `json:"text"`
	}{t.Text})
}

// Spec is a parsed chart specification.
type Spec struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`

	// Raw preserves the exact payload the service produced, so exports and
	// re-renders never depend on what this package chose to decode.
	Raw string `json:"-"`
}

// Title returns the figure title, falling back to the first named trace.
func (s *Spec) Title() string {
	if s.Layout.Title.Text != "" {
		return s.Layout.Title.Text
	}
	for _, tr := range s.Data {
		if tr.Name != "" {
			return tr.Name
		}
	}
	return ""
}

// Parse decodes a chart payload and verifies it is structurally sound:
// valid JSON with at least one trace. Field contents beyond that are the
// render surface's problem.
func Parse(payload string) (*Spec, error) {
	if payload == "" {
		return nil, fmt.Errorf("empty chart payload")
	}
	var s Spec
	if err := json.Unmarshal([]byte(payload), &s); err != nil {
		return nil, fmt.Errorf("malformed chart payload: %w", err)
	}
	if len(s.Data) == 0 {
		return nil, fmt.Errorf("chart payload has no traces")
	}
	s.Raw = payload
	return &s, nil
}
