package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/Bhakti2904/Autoviz-Smart-Data-Visualizer/src/api"
	"github.com/Bhakti2904/Autoviz-Smart-Data-Visualizer/src/config"
	"github.com/Bhakti2904/Autoviz-Smart-Data-Visualizer/src/viz"
)

var (
	flagServer   string
	flagLogLevel string
)

func loadConfig() (*config.Config, error) {
	// .env is optional; it only feeds the AUTOVIZ_* overrides.
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if flagServer != "" {
		cfg.Server.URL = flagServer
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	viz.SetLogLevel(cfg.Log.Level)
	return cfg, nil
}

func main() {
	root := &cobra.Command{
		Use:   "autoviz",
		Short: "AutoViz desktop client: upload tabular data, configure and render charts, export results",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			runViewer(cfg)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&flagServer, "server", "", "AutoViz service URL (overrides config)")
	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level: debug, info, warn, error")

	exportCmd := &cobra.Command{
		Use:   "export <datafile>",
		Short: "Headless pipeline: upload a file, generate a chart and export chart/data without a window",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return runHeadlessExport(cfg, args[0], headlessOpts{
				chartType:   mustFlag(cmd, "chart-type"),
				xAxis:       mustFlag(cmd, "x"),
				yAxis:       mustFlag(cmd, "y"),
				colorScheme: mustFlag(cmd, "color-scheme"),
				title:       mustFlag(cmd, "title"),
				formats:     mustSlice(cmd, "data-format"),
				outDir:      mustFlag(cmd, "out"),
			})
		},
	}
	exportCmd.Flags().String("chart-type", "bar", "chart type: "+fmt.Sprint(api.ChartTypes))
	exportCmd.Flags().String("x", "", "X-axis column (defaults to the first header)")
	exportCmd.Flags().String("y", "", "Y-axis column (defaults to the second header)")
	exportCmd.Flags().String("color-scheme", "default", "color scheme: "+fmt.Sprint(api.ColorSchemes))
	exportCmd.Flags().String("title", "", "chart title")
	exportCmd.Flags().StringSlice("data-format", nil, "also export the dataset in these formats (csv, json)")
	exportCmd.Flags().String("out", "", "output directory (defaults to the configured export dir)")
	root.AddCommand(exportCmd)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "autoviz:", err)
		os.Exit(1)
	}
}

func mustFlag(cmd *cobra.Command, name string) string {
	v, _ := cmd.Flags().GetString(name)
	return v
}

func mustSlice(cmd *cobra.Command, name string) []string {
	v, _ := cmd.Flags().GetStringSlice(name)
	return v
}
