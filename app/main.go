package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Anamsayyed016/Naukrimili-sub015/app/api"
	"github.com/Anamsayyed016/Naukrimili-sub015/app/cache"
	"github.com/Anamsayyed016/Naukrimili-sub015/app/cfg"
	"github.com/Anamsayyed016/Naukrimili-sub015/app/database"
	"github.com/Anamsayyed016/Naukrimili-sub015/app/providers"
	"github.com/Anamsayyed016/Naukrimili-sub015/app/scraper"
	"github.com/Anamsayyed016/Naukrimili-sub015/app/search"
)

func main() {
	conf, err := cfg.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	if conf == nil {
		// Help was shown, exit gracefully
		return
	}

	logLevel := slog.LevelInfo
	if conf.Debug {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})))

	slog.Info("Starting job aggregator", "version", conf.Version)

	db, err := database.NewConnection(conf.DBHost, conf.DBPort, conf.DBUser, conf.DBPassword, conf.DBName)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	migrationVersion, dirty, err := database.RunMigrations(db)
	if err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database ready",
		"host", conf.DBHost, "name", conf.DBName,
		"migration_version", migrationVersion, "dirty", dirty)

	resultCache, err := buildCache(conf)
	if err != nil {
		slog.Error("Failed to initialize cache backend", "error", err)
		os.Exit(1)
	}
	defer resultCache.Close()

	sources, err := providers.LoadSources(conf.SourcesFile)
	if err != nil {
		slog.Error("Failed to load sources configuration", "file", conf.SourcesFile, "error", err)
		os.Exit(1)
	}
	registry := providers.BuildRegistry(conf, sources)
	slog.Info("Provider registry built", "providers", len(registry))

	repo := database.NewJobRepository(db)
	orchestrator := search.NewOrchestrator(repo, registry, resultCache, conf)
	jobScraper := scraper.NewScraper(registry, repo, time.Duration(conf.ProviderTimeout)*time.Second)

	scrapeCtx, cancelScrapes := context.WithCancel(context.Background())
	defer cancelScrapes()

	var runner *scraper.Runner
	if conf.ScrapeInterval > 0 {
		runner = scraper.NewRunner(jobScraper, sources.Scrape, conf.ScrapeInterval)
		if err := runner.Start(scrapeCtx); err != nil {
			slog.Error("Failed to start periodic scrape", "error", err)
			os.Exit(1)
		}
	} else {
		slog.Info("Periodic scrape disabled", "scrape_interval", conf.ScrapeInterval)
	}

	handler := api.NewHandler(orchestrator, jobScraper, resultCache, conf.MaxPageSize, conf.Version)
	engine := api.NewServer(handler, conf.APIAccessKey)

	httpServer := &http.Server{
		Addr:         ":" + conf.Port,
		Handler:      engine,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErrChan := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "port", conf.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		slog.Info("Received signal", "signal", sig.String())
	case err := <-serverErrChan:
		slog.Error("Server error", "error", err)
	}

	slog.Info("Shutting down gracefully")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	cancelScrapes()
	if runner != nil {
		runner.Stop()
	}

	slog.Info("Shutdown complete")
}

func buildCache(conf *cfg.Cfg) (cache.Cache, error) {
	if conf.CacheBackend == "redis" {
		slog.Info("Using Redis cache backend", "addr", conf.RedisAddr)
		return cache.NewRedisCache(conf.RedisAddr)
	}
	return cache.NewMemoryCache(), nil
}
