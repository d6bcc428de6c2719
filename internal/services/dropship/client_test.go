package dropship

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stocksync/internal/logger"
	"stocksync/internal/marketplace"
	"stocksync/internal/models"
)

func testClient(url string) *Client {
	return NewClient(url, "token-1", "camp-1", logger.New("error"))
}

func TestListOffers(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "/campaigns/camp-1/offer-mapping-entries", r.URL.Path)
		assert.Equal(t, "Bearer token-1", r.Header.Get("Authorization"))
		assert.Equal(t, "next-page", r.URL.Query().Get("page_token"))

		resp := listResponse{Result: listResult{
			OfferMappingEntries: []offerMappingEntry{
				{Offer: offerRef{ShopSKU: "136748"}},
				{Offer: offerRef{ShopSKU: "321456"}},
			},
			Paging: paging{NextPageToken: "after"},
		}}
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	page, err := testClient(server.URL).ListOffers(context.Background(), "next-page")
	require.NoError(t, err)
	assert.Equal(t, []string{"136748", "321456"}, page.OfferIDs)
	assert.Equal(t, "after", page.NextCursor)
	assert.Equal(t, -1, page.Total)
}

func TestListOffersFirstPageOmitsToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, present := r.URL.Query()["page_token"]
		assert.False(t, present)
		json.NewEncoder(w).Encode(listResponse{})
	}))
	defer server.Close()

	_, err := testClient(server.URL).ListOffers(context.Background(), "")
	require.NoError(t, err)
}

func TestSubmitStocksPayload(t *testing.T) {
	updatedAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	var got stocksRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "PUT", r.Method)
		assert.Equal(t, "/campaigns/camp-1/offers/stocks", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(updateResponse{Status: "OK"})
	}))
	defer server.Close()

	result, err := testClient(server.URL).SubmitStocks(context.Background(), []models.StockUpdate{
		{OfferID: "A", Quantity: 100, WarehouseID: "wh-1", UpdatedAt: updatedAt},
	})
	require.NoError(t, err)
	assert.True(t, result.Success)

	require.Len(t, got.SKUs, 1)
	assert.Equal(t, skuStocks{
		SKU:         "A",
		WarehouseID: "wh-1",
		Items: []stockItem{
			{Count: 100, Type: "FIT", UpdatedAt: "2024-03-01T12:00:00Z"},
		},
	}, got.SKUs[0])
}

func TestSubmitPricesPayload(t *testing.T) {
	var got pricesRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/campaigns/camp-1/offer-prices/updates", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(updateResponse{Status: "OK"})
	}))
	defer server.Close()

	_, err := testClient(server.URL).SubmitPrices(context.Background(), []models.PriceUpdate{
		{OfferID: "A", Amount: 19990, Currency: Currency},
	})
	require.NoError(t, err)
	require.Len(t, got.Offers, 1)
	assert.Equal(t, offerPrice{
		ID:    "A",
		Price: priceValue{Value: 19990, CurrencyID: "RUR"},
	}, got.Offers[0])
}

func TestSubmitReportsErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(updateResponse{
			Status: "ERROR",
			Errors: []updateError{{Code: "LIMIT", Message: "too many skus"}},
		})
	}))
	defer server.Close()

	result, err := testClient(server.URL).SubmitStocks(context.Background(), nil)
	require.NoError(t, err)
	assert.False(t, result.Success)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "LIMIT", result.Errors[0].Code)
}

func TestAuthError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad token", http.StatusUnauthorized)
	}))
	defer server.Close()

	_, err := testClient(server.URL).ListOffers(context.Background(), "")
	var authErr *marketplace.AuthError
	require.True(t, errors.As(err, &authErr))
	assert.Equal(t, http.StatusUnauthorized, authErr.Status)
}
