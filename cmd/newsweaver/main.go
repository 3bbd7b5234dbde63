package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/umputun/newsweaver/pkg/config"
	"github.com/umputun/newsweaver/pkg/content"
	"github.com/umputun/newsweaver/pkg/domain"
	"github.com/umputun/newsweaver/pkg/enrich"
	"github.com/umputun/newsweaver/pkg/feed"
	"github.com/umputun/newsweaver/pkg/llm"
	"github.com/umputun/newsweaver/pkg/store"
	"github.com/umputun/newsweaver/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"f" long:"config" env:"CONFIG" default:"newsweaver.yml" description:"config file path"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	if opts.NoColor {
		color.NoColor = true
	}

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	if err := run(ctx, opts); err != nil {
		log.Printf("[ERROR] %v", err)
		cancel()
		os.Exit(1)
	}
	cancel()

	log.Print("[INFO] shutdown complete")
}

func run(ctx context.Context, opts Opts) error {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	setupLog(opts.Debug, cfg.LLM.APIKey)
	log.Printf("[INFO] starting newsweaver version %s", revision)

	if err := config.VerifyAgainstEmbeddedSchema(cfg); err != nil {
		log.Printf("[WARN] config schema check: %v", err)
	}

	db, err := store.New(ctx, store.Config{
		DSN:             cfg.Storage.DSN,
		MaxOpenConns:    cfg.Storage.MaxOpenConns,
		MaxIdleConns:    cfg.Storage.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Storage.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer func() {
		if e := db.Close(); e != nil {
			log.Printf("[WARN] failed to close storage: %v", e)
		}
	}()

	seeds := make([]domain.Feed, 0, len(cfg.DefaultFeeds))
	for _, f := range cfg.DefaultFeeds {
		seeds = append(seeds, domain.Feed{Name: f.Name, URL: f.URL, Category: f.Category})
	}
	if err := db.Feeds.Seed(ctx, seeds); err != nil {
		return fmt.Errorf("failed to seed default feeds: %w", err)
	}

	fetcher := feed.NewHTTPFetcher(cfg.Fetch.Timeout, cfg.Fetch.UserAgent)
	gateway := llm.NewEnricher(cfg.GetLLMConfig())
	orchestrator := enrich.NewOrchestrator(gateway, cfg.Enrich.MaxConcurrent)
	summarizer := enrich.NewService(gateway)

	var extractor server.Extractor
	if cfg.Extraction.Enabled {
		extractor = content.NewExtractor(cfg.Extraction.Timeout, cfg.Extraction.UserAgent)
		log.Printf("[INFO] full-article extraction enabled")
	}

	srv := server.New(server.Deps{
		Config:     cfg,
		Feeds:      db.Feeds,
		Favorites:  db.Favorites,
		Fetcher:    fetcher,
		Enricher:   orchestrator,
		Summarizer: summarizer,
		Extractor:  extractor,
		Version:    revision,
		Debug:      opts.Debug,
	})

	return srv.Run(ctx)
}

func setupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	if dbg {
		logOpts = append(logOpts, lgr.Debug, lgr.CallerFile, lgr.CallerFunc)
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))

	// keep the API key out of logs
	for _, s := range secs {
		if s != "" {
			logOpts = append(logOpts, lgr.Secret(s))
		}
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
