package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"NavChart/internal/aligner"
	"NavChart/internal/chart"
	"NavChart/internal/collector"
	"NavChart/internal/config"
	"NavChart/internal/renderer"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if lvl, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		logger.SetLevel(lvl)
	}

	logger.Info("NavChart starting...")

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatalf("config validation: %v", err)
	}

	funds := cfg.ActiveFunds()
	logger.Infof("charting %d funds, page size %d", len(funds), cfg.Fetch.PageSize)

	// Fetch and align
	fetcher := collector.NewEastmoneyFetcher(cfg.Timeout())
	logger.Infof("data source: %s", fetcher.Name())

	data := aligner.New(fetcher, cfg.Fetch.PageSize, logger).Align(funds)
	if data.Empty() {
		logger.Error("no usable NAV data for any fund, no chart produced")
		os.Exit(1)
	}

	// Build and render
	line := chart.NewBuilder(cfg.Chart.MarginRatio, cfg.Chart.Width, cfg.Chart.Height, logger).
		Build(data, funds)

	path, err := renderer.NewHTMLRenderer().Render(line, cfg.Output.Dir)
	if err != nil {
		logger.Fatalf("write chart: %v", err)
	}

	dates := data.SortedDates()
	logger.Infof("chart written to %s", path)
	logger.Infof("date range: %s to %s (%d trading days)", dates[0], dates[len(dates)-1], len(dates))
	logger.Info("open the file in a browser to view the chart")
}
