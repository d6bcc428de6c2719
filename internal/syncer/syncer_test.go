package syncer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stocksync/internal/logger"
	"stocksync/internal/marketplace"
	"stocksync/internal/models"
)

type fakeClient struct {
	pages        []*marketplace.OfferPage
	stockBatches [][]models.StockUpdate
	priceBatches [][]models.PriceUpdate
	stockResult  *models.SubmissionResult
	stockErr     error
	priceErr     error
}

func (f *fakeClient) ListOffers(ctx context.Context, cursor string) (*marketplace.OfferPage, error) {
	page := f.pages[0]
	if len(f.pages) > 1 {
		f.pages = f.pages[1:]
	}
	return page, nil
}

func (f *fakeClient) SubmitStocks(ctx context.Context, batch []models.StockUpdate) (*models.SubmissionResult, error) {
	if f.stockErr != nil {
		return nil, f.stockErr
	}
	f.stockBatches = append(f.stockBatches, batch)
	if f.stockResult != nil {
		return f.stockResult, nil
	}
	return &models.SubmissionResult{Success: true}, nil
}

func (f *fakeClient) SubmitPrices(ctx context.Context, batch []models.PriceUpdate) (*models.SubmissionResult, error) {
	if f.priceErr != nil {
		return nil, f.priceErr
	}
	f.priceBatches = append(f.priceBatches, batch)
	return &models.SubmissionResult{Success: true}, nil
}

func testTarget(client marketplace.Client) Target {
	return Target{
		Name:           "test",
		Client:         client,
		Currency:       "RUB",
		StockBatchSize: 2,
		PriceBatchSize: 2,
	}
}

func testFeed() []models.FeedRecord {
	return []models.FeedRecord{
		{Code: "A", Quantity: ">10", Price: "100.00"},
		{Code: "B", Quantity: "5", Price: "50.00"},
	}
}

func TestSyncerRun(t *testing.T) {
	client := &fakeClient{pages: []*marketplace.OfferPage{
		{OfferIDs: []string{"A", "B", "C"}, NextCursor: "", Total: -1},
	}}

	result, err := New(logger.New("error")).Run(context.Background(), testTarget(client), testFeed())
	require.NoError(t, err)

	// Three stock updates, batch size two -> two batches; their
	// concatenation covers the whole catalog.
	assert.Equal(t, 2, result.StockBatches)
	require.Len(t, client.stockBatches, 2)
	var submitted []models.StockUpdate
	for _, batch := range client.stockBatches {
		submitted = append(submitted, batch...)
	}
	assert.Equal(t, result.Stocks, submitted)

	assert.Equal(t, 1, result.PriceBatches)
	require.Len(t, client.priceBatches, 1)
	assert.Len(t, client.priceBatches[0], 2)

	// C was zeroed, so only A and B are actually in stock.
	require.Len(t, result.InStock, 2)
	assert.Equal(t, "A", result.InStock[0].OfferID)
	assert.Equal(t, "B", result.InStock[1].OfferID)
	assert.Empty(t, result.ItemErrors)
}

func TestSyncerRunCollectsItemErrors(t *testing.T) {
	client := &fakeClient{
		pages: []*marketplace.OfferPage{
			{OfferIDs: []string{"A", "B"}, NextCursor: "", Total: -1},
		},
		stockResult: &models.SubmissionResult{
			Success: false,
			Errors:  []models.ItemError{{Code: "TOO_MANY_REQUESTS", Message: "slow down"}},
		},
	}

	result, err := New(logger.New("error")).Run(context.Background(), testTarget(client), testFeed())
	require.NoError(t, err)
	require.Len(t, result.ItemErrors, 1)
	assert.Equal(t, "TOO_MANY_REQUESTS", result.ItemErrors[0].Code)
}

func TestSyncerRunSubmitFailure(t *testing.T) {
	wantErr := errors.New("connection reset")
	client := &fakeClient{
		pages: []*marketplace.OfferPage{
			{OfferIDs: []string{"A"}, NextCursor: "", Total: -1},
		},
		stockErr: wantErr,
	}

	_, err := New(logger.New("error")).Run(context.Background(), testTarget(client), testFeed())
	assert.ErrorIs(t, err, wantErr)
}

func TestSyncerRunBadBatchSize(t *testing.T) {
	client := &fakeClient{pages: []*marketplace.OfferPage{
		{OfferIDs: []string{"A"}, NextCursor: "", Total: -1},
	}}
	target := testTarget(client)
	target.StockBatchSize = 0

	_, err := New(logger.New("error")).Run(context.Background(), target, testFeed())
	assert.ErrorIs(t, err, ErrInvalidChunkSize)
}

func TestSyncerRunBadFeedAbortsBeforeSubmit(t *testing.T) {
	client := &fakeClient{pages: []*marketplace.OfferPage{
		{OfferIDs: []string{"A"}, NextCursor: "", Total: -1},
	}}
	feed := []models.FeedRecord{{Code: "A", Quantity: "lots", Price: "10.00"}}

	_, err := New(logger.New("error")).Run(context.Background(), testTarget(client), feed)
	var derr *DataIntegrityError
	require.True(t, errors.As(err, &derr))
	assert.Empty(t, client.stockBatches)
	assert.Empty(t, client.priceBatches)
}
