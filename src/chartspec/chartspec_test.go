package chartspec

import "testing"

func TestParseBarSpec(t *testing.T) {
	payload := `{
		"data":[{"type":"bar","name":"revenue","x":["north","south"],"y":[10,12.5]}],
		"layout":{"title":{"text":"Revenue by Region"},"xaxis":{"title":{"text":"region"}},"yaxis":{"title":{"text":"revenue"}}}
	}`
	spec, err := Parse(payload)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(spec.Data) != 1 {
		t.Fatalf("traces: got %d want 1", len(spec.Data))
	}
	tr := spec.Data[0]
	if tr.Type != "bar" || tr.Name != "revenue" {
		t.Fatalf("trace decoded wrong: %+v", tr)
	}
	if len(tr.X) != 2 || len(tr.Y) != 2 {
		t.Fatalf("trace values: x=%d y=%d", len(tr.X), len(tr.Y))
	}
	if spec.Title() != "Revenue by Region" {
		t.Fatalf("title: %q", spec.Title())
	}
	if spec.Layout.XAxis.Title.Text != "region" {
		t.Fatalf("x axis title: %q", spec.Layout.XAxis.Title.Text)
	}
	if spec.Raw != payload {
		t.Fatal("raw payload not preserved")
	}
}

func TestParseStringTitle(t *testing.T) {
	spec, err := Parse(`{"data":[{"type":"line","x":[1,2],"y":[3,4]}],"layout":{"title":"Plain Title"}}`)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if spec.Title() != "Plain Title" {
		t.Fatalf("title: %q", spec.Title())
	}
}

func TestTitleFallsBackToTraceName(t *testing.T) {
	spec, err := Parse(`{"data":[{"type":"line","name":"series one","x":[1],"y":[2]}],"layout":{}}`)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if spec.Title() != "series one" {
		t.Fatalf("title: %q", spec.Title())
	}
}

func TestParsePieSpec(t *testing.T) {
	spec, err := Parse(`{"data":[{"type":"pie","labels":["a","b"],"values":[3,7]}],"layout":{}}`)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	tr := spec.Data[0]
	if len(tr.Labels) != 2 || len(tr.Values) != 2 {
		t.Fatalf("pie trace decoded wrong: %+v", tr)
	}
	if tr.Values[1] != 7 {
		t.Fatalf("values: %v", tr.Values)
	}
}

func TestParseRejectsBadPayloads(t *testing.T) {
	cases := []struct {
		name    string
		payload string
	}{
		{"empty", ""},
		{"not json", "{nope"},
		{"no traces", `{"data":[],"layout":{}}`},
		{"missing data", `{"layout":{}}`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := Parse(c.payload); err == nil {
				t.Fatalf("expected error for %q", c.payload)
			}
		})
	}
}
