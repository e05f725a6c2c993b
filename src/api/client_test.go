package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadSendsMultipartAndDecodes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/upload", r.URL.Path)

		f, hdr, err := r.FormFile("file")
		require.NoError(t, err)
		defer f.Close()
		assert.Equal(t, "sales.csv", hdr.Filename)
		body, err := io.ReadAll(f)
		require.NoError(t, err)
		assert.Equal(t, "region,revenue\nnorth,10\n", string(body))

		json.NewEncoder(w).Encode(UploadResponse{
			Success:   true,
			Headers:   []string{"region", "revenue"},
			Data:      []Record{{"region": "north", "revenue": 10.0}},
			TotalRows: 1,
			ColumnInfo: map[string]ColumnInfo{
				"region":  {Type: ColumnCategorical},
				"revenue": {Type: ColumnNumeric, DType: "float64"},
			},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	resp, err := c.Upload(context.Background(), "sales.csv", strings.NewReader("region,revenue\nnorth,10\n"))
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, []string{"region", "revenue"}, resp.Headers)
	assert.Equal(t, 1, resp.TotalRows)
	assert.Equal(t, ColumnNumeric, resp.ColumnInfo["revenue"].Type)
}

func TestUploadServiceFailurePassesThrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]any{"success": false, "error": "Unsupported file format"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	resp, err := c.Upload(context.Background(), "x.bin", strings.NewReader("x"))
	require.NoError(t, err, "a decodable error body is a service failure, not a transport one")
	assert.False(t, resp.Success)
	assert.Equal(t, "Unsupported file format", resp.Error)
}

func TestUploadTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // closed before the call

	c := NewClient(srv.URL)
	_, err := c.Upload(context.Background(), "x.csv", strings.NewReader("x"))
	require.Error(t, err)
}

func TestGenerateChartPostsConfig(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/generate_chart", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var got map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, "bar", got["chart_type"])
		assert.Equal(t, "region", got["x_axis"])
		assert.Equal(t, "revenue", got["y_axis"])
		assert.Equal(t, "viridis", got["color_scheme"])

		json.NewEncoder(w).Encode(ChartResponse{Success: true, Chart: `{"data":[],"layout":{}}`})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	resp, err := c.GenerateChart(context.Background(), ChartConfig{
		ChartType:   "bar",
		XAxis:       "region",
		YAxis:       "revenue",
		ColorScheme: "viridis",
		Title:       "Revenue",
	})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.Chart)
}

func TestExportDataReturnsRawBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/export_data/csv", r.URL.Path)
		w.Header().Set("Content-Type", "text/csv")
		io.WriteString(w, "region,revenue\nnorth,10\n")
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	body, err := c.ExportData(context.Background(), "csv")
	require.NoError(t, err)
	assert.Equal(t, "region,revenue\nnorth,10\n", string(body))
}

func TestExportDataNon2xxIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadRequest)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.ExportData(context.Background(), "parquet")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "export_data/parquet")
}

func TestDataStats(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/get_data_stats", r.URL.Path)
		json.NewEncoder(w).Encode(DataStats{TotalRows: 42, TotalColumns: 3, NumericColumns: 2, CategoricalColumns: 1})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	stats, err := c.DataStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 42, stats.TotalRows)
	assert.Equal(t, 2, stats.NumericColumns)
}

func TestBaseURLTrailingSlash(t *testing.T) {
	c := NewClient("http://localhost:5000/")
	assert.Equal(t, "http://localhost:5000", c.BaseURL())
}
