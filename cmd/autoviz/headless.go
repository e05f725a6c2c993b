package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Bhakti2904/Autoviz-Smart-Data-Visualizer/src/api"
	"github.com/Bhakti2904/Autoviz-Smart-Data-Visualizer/src/config"
	"github.com/Bhakti2904/Autoviz-Smart-Data-Visualizer/src/render"
	"github.com/Bhakti2904/Autoviz-Smart-Data-Visualizer/src/viz"
)

type headlessOpts struct {
	chartType   string
	xAxis       string
	yAxis       string
	colorScheme string
	title       string
	formats     []string
	outDir      string
}

// runHeadlessExport drives the same orchestrator the viewer uses, without a
// window: upload, generate, export the chart PNG and optionally the data.
func runHeadlessExport(cfg *config.Config, dataFile string, opts headlessOpts) error {
	f, err := os.Open(dataFile)
	if err != nil {
		return err
	}
	defer f.Close()

	client := api.NewClient(cfg.Server.URL)
	engine := render.NewEngine()
	orch := viz.New(client, viz.Options{
		Surface:  engine,
		Notifier: viz.LogNotifier{},
	})

	ctx := context.Background()
	if err := orch.Upload(ctx, filepath.Base(dataFile), f); err != nil {
		return fmt.Errorf("upload: %w", err)
	}

	view, _ := orch.DatasetView()
	chartCfg := api.ChartConfig{
		ChartType:   opts.chartType,
		XAxis:       opts.xAxis,
		YAxis:       opts.yAxis,
		ColorScheme: opts.colorScheme,
		Title:       opts.title,
	}
	if chartCfg.XAxis == "" {
		chartCfg.XAxis = view.DefaultX
	}
	if chartCfg.YAxis == "" {
		chartCfg.YAxis = view.DefaultY
	}
	if err := orch.GenerateChart(ctx, chartCfg); err != nil {
		return fmt.Errorf("generate chart: %w", err)
	}

	outDir := opts.outDir
	if outDir == "" {
		outDir = cfg.Export.Dir
	}
	sink := viz.DirSink{Dir: outDir}
	if err := orch.ExportChart("png", sink); err != nil {
		return fmt.Errorf("export chart: %w", err)
	}
	for _, format := range opts.formats {
		if err := orch.ExportData(ctx, format, sink); err != nil {
			return fmt.Errorf("export data (%s): %w", format, err)
		}
	}
	viz.Infof("exports written to %s", outDir)
	return nil
}
