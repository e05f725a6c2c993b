package viz

import (
	"sync"

	"github.com/Bhakti2904/Autoviz-Smart-Data-Visualizer/src/api"
	"github.com/Bhakti2904/Autoviz-Smart-Data-Visualizer/src/chartspec"
)

// Dataset is the most recently uploaded table as the client holds it: the
// row window the service sent back, the header order (which fixes column
// display order) and the per-column inferred metadata. TotalRows is
// authoritative and may exceed len(Rows).
type Dataset struct {
	FileName  string
	Headers   []string
	Rows      []api.Record
	TotalRows int
	Columns   map[string]api.ColumnInfo
}

// Store holds the current dataset and chart specification. The orchestrator
// is the single writer; render and export paths only read. The lock keeps
// reads coherent when the UI toolkit polls from its own goroutines.
type Store struct {
	mu    sync.RWMutex
	data  *Dataset
	chart *chartspec.Spec
}

// ReplaceDataset installs a new dataset wholesale and drops any chart
// specification, since a chart referencing a superseded dataset must not
// survive an upload.
func (s *Store) ReplaceDataset(ds *Dataset) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = ds
	s.chart = nil
}

// SetChart installs the current chart specification, replacing any prior one.
func (s *Store) SetChart(spec *chartspec.Spec) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chart = spec
}

// Clear drops both the dataset and the chart specification.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = nil
	s.chart = nil
}

// Dataset returns the current dataset, or nil before the first successful
// upload.
func (s *Store) Dataset() *Dataset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data
}

// Chart returns the current chart specification, or nil when no chart has
// been generated for the current dataset.
func (s *Store) Chart() *chartspec.Spec {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.chart
}
