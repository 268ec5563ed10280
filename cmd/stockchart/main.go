package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"StockChart/internal/collector"
	"StockChart/internal/config"
	"StockChart/internal/console"
	"StockChart/internal/recorder"
	"StockChart/internal/render"
	"StockChart/internal/widget"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	if v := os.Getenv("LOG_FILE"); v != "" {
		f, err := os.OpenFile(v, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("[FATAL] open log file: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}
	log.Println("[INFO] StockChart starting...")

	// .env is optional; real environment variables take precedence
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("[WARN] load .env: %v", err)
	}

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}
	interval, _ := cfg.Interval()

	// Init fetcher
	timeout := time.Duration(cfg.DataSource.TimeoutSec) * time.Second
	var fetcher collector.Fetcher
	switch cfg.DataSource.Provider {
	case config.ProviderYahoo:
		fetcher = collector.NewYahooFetcher(cfg.Proxy, timeout)
	case config.ProviderMock:
		fetcher = &collector.MockFetcher{Price: 500}
	default:
		fetcher = collector.NewTwelveDataFetcher(cfg.DataSource.BaseURL, cfg.DataSource.APIKey, cfg.Proxy, timeout)
	}
	log.Printf("[INFO] data source: %s (%s)", fetcher.Name(), cfg.DataSource.Symbol)

	col := collector.NewCollector(fetcher, cfg.DataSource.Symbol)

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w := widget.New(ctx, col, rec, widget.Options{
		Symbol:      cfg.DataSource.Symbol,
		Provider:    fetcher.Name(),
		Interval:    interval,
		RefreshSpec: cfg.Schedule.RefreshCron,
		Render: render.Options{
			Title:  cfg.DataSource.DisplayName,
			Width:  cfg.Chart.Width,
			Height: cfg.Chart.Height,
			Color:  cfg.ColorEnabled(),
		},
		Output: os.Stdout,
	})
	if err := w.Mount(); err != nil {
		log.Fatalf("[FATAL] mount widget: %v", err)
	}
	defer w.Unmount()

	// Commands from stdin stand in for pointer and button events
	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := console.Run(ctx, os.Stdin, os.Stdout, w.HandleCommand); err != nil {
			log.Printf("[ERROR] console: %v", err)
		}
	}()

	// Wait for shutdown signal or quit
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-sigCh:
		log.Println("[INFO] shutdown signal received, stopping...")
	case <-done:
		log.Println("[INFO] input closed, stopping...")
	}
	cancel()
	log.Println("[INFO] StockChart stopped")
}
