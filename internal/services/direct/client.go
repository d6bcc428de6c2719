// Package direct is the API client for the direct-fulfillment marketplace.
// Its catalog listing reports a total count, so pagination stops once that
// many items have been read.
package direct

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"stocksync/internal/logger"
	"stocksync/internal/marketplace"
	"stocksync/internal/models"
)

type Client struct {
	baseURL    string
	clientID   string
	apiKey     string
	httpClient *http.Client
	logger     *logger.Logger
}

func NewClient(baseURL, clientID, apiKey string, logger *logger.Logger) *Client {
	return &Client{
		baseURL:  baseURL,
		clientID: clientID,
		apiKey:   apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// ListOffers fetches one catalog page. The cursor is the last offer id of
// the previous page, empty for the first page.
func (c *Client) ListOffers(ctx context.Context, cursor string) (*marketplace.OfferPage, error) {
	payload := listRequest{
		Filter: listFilter{Visibility: "ALL"},
		LastID: cursor,
		Limit:  pageLimit,
	}

	var listResp listResponse
	if err := c.post(ctx, "/v2/product/list", payload, &listResp); err != nil {
		return nil, err
	}

	page := &marketplace.OfferPage{
		OfferIDs:   make([]string, 0, len(listResp.Result.Items)),
		NextCursor: listResp.Result.LastID,
		Total:      listResp.Result.Total,
	}
	for _, item := range listResp.Result.Items {
		page.OfferIDs = append(page.OfferIDs, item.OfferID)
	}
	return page, nil
}

// SubmitStocks pushes one batch of stock updates.
func (c *Client) SubmitStocks(ctx context.Context, batch []models.StockUpdate) (*models.SubmissionResult, error) {
	payload := stocksRequest{Stocks: make([]stockEntry, 0, len(batch))}
	for _, update := range batch {
		payload.Stocks = append(payload.Stocks, stockEntry{
			OfferID: update.OfferID,
			Stock:   update.Quantity,
		})
	}

	var importResp importResponse
	if err := c.post(ctx, "/v1/product/import/stocks", payload, &importResp); err != nil {
		return nil, err
	}
	return submissionResult(importResp), nil
}

// SubmitPrices pushes one batch of price updates.
func (c *Client) SubmitPrices(ctx context.Context, batch []models.PriceUpdate) (*models.SubmissionResult, error) {
	payload := pricesRequest{Prices: make([]priceEntry, 0, len(batch))}
	for _, update := range batch {
		payload.Prices = append(payload.Prices, priceEntry{
			AutoActionEnabled: "UNKNOWN",
			CurrencyCode:      update.Currency,
			OfferID:           update.OfferID,
			OldPrice:          "0",
			Price:             strconv.FormatInt(update.Amount, 10),
		})
	}

	var importResp importResponse
	if err := c.post(ctx, "/v1/product/import/prices", payload, &importResp); err != nil {
		return nil, err
	}
	return submissionResult(importResp), nil
}

func (c *Client) post(ctx context.Context, path string, payload, out interface{}) error {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+path, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	// Add authentication headers
	req.Header.Set("Client-Id", c.clientID)
	req.Header.Set("Api-Key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return marketplace.NewStatusError(resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// submissionResult flattens the per-item import report into the normalized
// result shape. The batch counts as successful only when every item updated.
func submissionResult(resp importResponse) *models.SubmissionResult {
	result := &models.SubmissionResult{Success: true}
	for _, item := range resp.Result {
		if !item.Updated {
			result.Success = false
		}
		for _, itemErr := range item.Errors {
			result.Errors = append(result.Errors, models.ItemError{
				Code:    itemErr.Code,
				Message: item.OfferID + ": " + itemErr.Message,
			})
		}
	}
	return result
}
