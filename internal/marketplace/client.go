// Package marketplace defines the contract every marketplace API client
// implements, plus the error types shared by all of them.
package marketplace

import (
	"context"

	"stocksync/internal/models"
)

// OfferPage is one page of the catalog listing. Exactly one of the two
// termination signals is meaningful per marketplace: Total >= 0 means the
// endpoint reports a catalog total (stop once that many ids are collected),
// Total < 0 means the listing ends when NextCursor comes back empty.
type OfferPage struct {
	OfferIDs   []string
	NextCursor string
	Total      int
}

// Client is the per-target API surface the sync pipeline depends on.
type Client interface {
	// ListOffers returns one catalog page. An empty cursor requests the
	// first page.
	ListOffers(ctx context.Context, cursor string) (*OfferPage, error)

	// SubmitStocks pushes one batch of stock updates.
	SubmitStocks(ctx context.Context, batch []models.StockUpdate) (*models.SubmissionResult, error)

	// SubmitPrices pushes one batch of price updates.
	SubmitPrices(ctx context.Context, batch []models.PriceUpdate) (*models.SubmissionResult, error)
}
