// Package dropship is the API client for the dropship-style marketplace.
// Catalog pagination uses a continuation token that comes back empty on the
// last page, and stock updates are scoped to a warehouse.
package dropship

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"stocksync/internal/logger"
	"stocksync/internal/marketplace"
	"stocksync/internal/models"
)

type Client struct {
	baseURL    string
	token      string
	campaignID string
	httpClient *http.Client
	logger     *logger.Logger
}

func NewClient(baseURL, token, campaignID string, logger *logger.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		token:      token,
		campaignID: campaignID,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// ListOffers fetches one catalog page. This endpoint reports no total; the
// listing ends when the returned page token is empty.
func (c *Client) ListOffers(ctx context.Context, cursor string) (*marketplace.OfferPage, error) {
	url := fmt.Sprintf("%s/campaigns/%s/offer-mapping-entries", c.baseURL, c.campaignID)

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	c.setHeaders(req)

	q := req.URL.Query()
	q.Set("limit", fmt.Sprintf("%d", pageLimit))
	if cursor != "" {
		q.Set("page_token", cursor)
	}
	req.URL.RawQuery = q.Encode()

	var listResp listResponse
	if err := c.do(req, &listResp); err != nil {
		return nil, err
	}

	page := &marketplace.OfferPage{
		OfferIDs:   make([]string, 0, len(listResp.Result.OfferMappingEntries)),
		NextCursor: listResp.Result.Paging.NextPageToken,
		Total:      -1,
	}
	for _, entry := range listResp.Result.OfferMappingEntries {
		page.OfferIDs = append(page.OfferIDs, entry.Offer.ShopSKU)
	}
	return page, nil
}

// SubmitStocks pushes one batch of warehouse-scoped stock updates.
func (c *Client) SubmitStocks(ctx context.Context, batch []models.StockUpdate) (*models.SubmissionResult, error) {
	payload := stocksRequest{SKUs: make([]skuStocks, 0, len(batch))}
	for _, update := range batch {
		payload.SKUs = append(payload.SKUs, skuStocks{
			SKU:         update.OfferID,
			WarehouseID: update.WarehouseID,
			Items: []stockItem{
				{
					Count:     update.Quantity,
					Type:      "FIT",
					UpdatedAt: update.UpdatedAt.Format(time.RFC3339),
				},
			},
		})
	}

	url := fmt.Sprintf("%s/campaigns/%s/offers/stocks", c.baseURL, c.campaignID)
	var updateResp updateResponse
	if err := c.send(ctx, "PUT", url, payload, &updateResp); err != nil {
		return nil, err
	}
	return submissionResult(updateResp), nil
}

// SubmitPrices pushes one batch of price updates.
func (c *Client) SubmitPrices(ctx context.Context, batch []models.PriceUpdate) (*models.SubmissionResult, error) {
	payload := pricesRequest{Offers: make([]offerPrice, 0, len(batch))}
	for _, update := range batch {
		payload.Offers = append(payload.Offers, offerPrice{
			ID: update.OfferID,
			Price: priceValue{
				Value:      update.Amount,
				CurrencyID: update.Currency,
			},
		})
	}

	url := fmt.Sprintf("%s/campaigns/%s/offer-prices/updates", c.baseURL, c.campaignID)
	var updateResp updateResponse
	if err := c.send(ctx, "POST", url, payload, &updateResp); err != nil {
		return nil, err
	}
	return submissionResult(updateResp), nil
}

func (c *Client) send(ctx context.Context, method, url string, payload, out interface{}) error {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	c.setHeaders(req)

	return c.do(req, out)
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
}

func (c *Client) do(req *http.Request, out interface{}) error {
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

func submissionResult(resp updateResponse) *models.SubmissionResult {
	result := &models.SubmissionResult{Success: resp.Status == "OK"}
	for _, respErr := range resp.Errors {
		result.Errors = append(result.Errors, models.ItemError{
			Code:    respErr.Code,
			Message: respErr.Message,
		})
	}
	return result
}
