// Package syncer holds the feed reconciliation and batching pipeline: it
// turns the supplier feed plus a marketplace catalog into complete stock and
// price update sets and pushes them in API-sized batches.
package syncer

import (
	"context"
	"fmt"
	"time"

	"stocksync/internal/logger"
	"stocksync/internal/marketplace"
	"stocksync/internal/models"
)

// Target is everything target-specific the pipeline needs: credentials and
// wire shape live behind Client, the rest is flat configuration. The two
// marketplaces impose independent per-endpoint batch limits.
type Target struct {
	Name           string
	Client         marketplace.Client
	WarehouseID    string
	Currency       string
	StockBatchSize int
	PriceBatchSize int
}

// Result is what one target sync produced and submitted.
type Result struct {
	Target       string
	Stocks       []models.StockUpdate
	InStock      []models.StockUpdate
	Prices       []models.PriceUpdate
	StockBatches int
	PriceBatches int
	ItemErrors   []models.ItemError
}

type Syncer struct {
	logger *logger.Logger
	now    func() time.Time
}

func New(logger *logger.Logger) *Syncer {
	return &Syncer{
		logger: logger,
		now:    time.Now,
	}
}

// Run performs one full sync of a target: fetch the catalog, reconcile the
// feed against it, then submit stock and price updates batch by batch.
// Batches already submitted stand if a later one fails; the sync is
// idempotent and self-corrects on the next scheduled run.
func (s *Syncer) Run(ctx context.Context, target Target, feed []models.FeedRecord) (*Result, error) {
	offerIDs, err := FetchOfferIDs(ctx, target.Client)
	if err != nil {
		return nil, fmt.Errorf("fetching %s catalog: %w", target.Name, err)
	}
	s.logger.Info("[%s] catalog fetched: %d offers", target.Name, len(offerIDs))

	stocks, err := BuildStockUpdates(feed, offerIDs, target.WarehouseID, s.now())
	if err != nil {
		return nil, fmt.Errorf("reconciling %s stocks: %w", target.Name, err)
	}
	prices, err := BuildPriceUpdates(feed, offerIDs, target.Currency)
	if err != nil {
		return nil, fmt.Errorf("reconciling %s prices: %w", target.Name, err)
	}

	result := &Result{
		Target: target.Name,
		Stocks: stocks,
		Prices: prices,
	}

	stockBatches, err := Chunk(stocks, target.StockBatchSize)
	if err != nil {
		return nil, fmt.Errorf("batching %s stocks: %w", target.Name, err)
	}
	for i, batch := range stockBatches {
		res, err := target.Client.SubmitStocks(ctx, batch)
		if err != nil {
			return nil, fmt.Errorf("submitting %s stock batch %d/%d: %w", target.Name, i+1, len(stockBatches), err)
		}
		result.StockBatches++
		result.ItemErrors = append(result.ItemErrors, s.reportItemErrors(target.Name, "stock", i+1, res)...)
	}

	priceBatches, err := Chunk(prices, target.PriceBatchSize)
	if err != nil {
		return nil, fmt.Errorf("batching %s prices: %w", target.Name, err)
	}
	for i, batch := range priceBatches {
		res, err := target.Client.SubmitPrices(ctx, batch)
		if err != nil {
			return nil, fmt.Errorf("submitting %s price batch %d/%d: %w", target.Name, i+1, len(priceBatches), err)
		}
		result.PriceBatches++
		result.ItemErrors = append(result.ItemErrors, s.reportItemErrors(target.Name, "price", i+1, res)...)
	}

	for _, stock := range stocks {
		if stock.Quantity != 0 {
			result.InStock = append(result.InStock, stock)
		}
	}
	s.logger.Info("[%s] sync done: %d offers, %d in stock, %d priced, %d item errors",
		target.Name, len(stocks), len(result.InStock), len(prices), len(result.ItemErrors))
	return result, nil
}

// reportItemErrors surfaces per-item errors carried inside a 2xx submission
// response. They don't abort the run, but they must never pass silently.
func (s *Syncer) reportItemErrors(target, kind string, batch int, res *models.SubmissionResult) []models.ItemError {
	if res == nil {
		return nil
	}
	for _, itemErr := range res.Errors {
		s.logger.Error("[%s] %s batch %d item error: %s - %s", target, kind, batch, itemErr.Code, itemErr.Message)
	}
	if !res.Success && len(res.Errors) == 0 {
		s.logger.Error("[%s] %s batch %d reported failure without details", target, kind, batch)
	}
	return res.Errors
}
