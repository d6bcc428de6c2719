package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"stocksync/internal/config"
	"stocksync/internal/events"
	"stocksync/internal/feed"
	"stocksync/internal/logger"
	"stocksync/internal/report"
	"stocksync/internal/services/direct"
	"stocksync/internal/services/dropship"
	"stocksync/internal/syncer"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Initialize logger
	logger := logger.New(cfg.LogLevel)

	// Cancel in-flight requests on SIGINT/SIGTERM
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-quit
		logger.Info("Shutting down...")
		cancel()
	}()

	// Run reporting and events are optional
	var store *report.Store
	if cfg.ReportDatabaseURL != "" {
		store, err = report.New(cfg.ReportDatabaseURL)
		if err != nil {
			logger.Fatal("Failed to open report store: %v", err)
		}
		defer store.Close()
	}
	var publisher *events.Publisher
	if cfg.KafkaBrokers != "" {
		publisher = events.NewPublisher(cfg.KafkaBrokers, cfg.KafkaTopic, logger)
		defer publisher.Close()
	}

	// Download the feed once; both targets reconcile against the same
	// snapshot.
	downloader := feed.NewDownloader(cfg.FeedURL, cfg.FeedHeaderRows, logger)
	records, err := downloader.Fetch(ctx)
	if err != nil {
		logger.Fatal("Failed to download feed: %v", err)
	}

	targets := []syncer.Target{
		{
			Name:           "direct",
			Client:         direct.NewClient(cfg.DirectBaseURL, cfg.DirectClientID, cfg.DirectAPIKey, logger),
			Currency:       direct.Currency,
			StockBatchSize: direct.StockBatchSize,
			PriceBatchSize: direct.PriceBatchSize,
		},
		{
			Name:           "dropship",
			Client:         dropship.NewClient(cfg.DropshipBaseURL, cfg.DropshipToken, cfg.DropshipCampaignID, logger),
			WarehouseID:    cfg.DropshipWarehouseID,
			Currency:       dropship.Currency,
			StockBatchSize: dropship.StockBatchSize,
			PriceBatchSize: dropship.PriceBatchSize,
		},
	}

	s := syncer.New(logger)
	failed := false
	for _, target := range targets {
		// One target failing must not keep the other from syncing.
		startedAt := time.Now().UTC()
		result, err := s.Run(ctx, target, records)
		if err != nil {
			logger.Error("[%s] sync failed: %v", target.Name, err)
			failed = true
			continue
		}

		runID := uuid.New().String()
		if store != nil {
			err := store.Save(&report.SyncRun{
				ID:           runID,
				Target:       result.Target,
				TotalOffers:  len(result.Stocks),
				InStock:      len(result.InStock),
				StockBatches: result.StockBatches,
				PriceBatches: result.PriceBatches,
				ItemErrors:   len(result.ItemErrors),
				StartedAt:    startedAt,
				FinishedAt:   time.Now().UTC(),
			})
			if err != nil {
				logger.Error("[%s] failed to save run report: %v", target.Name, err)
			}
		}
		if publisher != nil {
			err := publisher.PublishRunCompleted(ctx, events.Event{
				RunID:       runID,
				Target:      result.Target,
				TotalOffers: len(result.Stocks),
				InStock:     len(result.InStock),
				ItemErrors:  len(result.ItemErrors),
			})
			if err != nil {
				logger.Error("[%s] failed to publish run event: %v", target.Name, err)
			}
		}
	}

	if failed {
		os.Exit(1)
	}
}
