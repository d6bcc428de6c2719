package syncer

import (
	"errors"
	"strconv"
	"time"

	"stocksync/internal/models"
)

// Quantity tokens used by the supplier workbook. ">10" means plenty in stock
// and maps to 100; "1" means the last unit is withheld from sale and maps
// to 0. Supplier rule, keep the mapping exact.
const (
	quantityManyToken     = ">10"
	quantityWithheldToken = "1"
	quantityManyValue     = 100
)

// ParseQuantity maps a feed quantity field to the stock count submitted to
// the marketplace.
func ParseQuantity(code, quantity string) (int, error) {
	switch quantity {
	case "":
		return 0, &DataIntegrityError{Code: code, Field: "quantity", Reason: "is missing"}
	case quantityManyToken:
		return quantityManyValue, nil
	case quantityWithheldToken:
		return 0, nil
	}
	n, err := strconv.Atoi(quantity)
	if err != nil || n < 0 {
		return 0, &DataIntegrityError{Code: code, Field: "quantity", Reason: "not a valid count: " + strconv.Quote(quantity)}
	}
	return n, nil
}

// BuildStockUpdates reconciles the supplier feed against the full catalog of
// listed offer ids. Every catalog member gets exactly one update: offers
// present in the feed use the feed quantity, everything else is zeroed out so
// stale stock never stays purchasable. Matched updates come first in feed
// order, zero-fills follow in catalog order.
//
// warehouseID may be empty for targets whose stock endpoint is not
// warehouse-scoped; now stamps warehouse-scoped updates.
func BuildStockUpdates(feed []models.FeedRecord, offerIDs []string, warehouseID string, now time.Time) ([]models.StockUpdate, error) {
	remaining := make(map[string]struct{}, len(offerIDs))
	for _, id := range offerIDs {
		remaining[id] = struct{}{}
	}

	stocks := make([]models.StockUpdate, 0, len(offerIDs))
	stamp := now.UTC().Truncate(time.Second)
	for _, record := range feed {
		if record.Code == "" {
			return nil, &DataIntegrityError{Field: "code", Reason: "is missing"}
		}
		if _, listed := remaining[record.Code]; !listed {
			continue
		}
		count, err := ParseQuantity(record.Code, record.Quantity)
		if err != nil {
			return nil, err
		}
		update := models.StockUpdate{OfferID: record.Code, Quantity: count}
		if warehouseID != "" {
			update.WarehouseID = warehouseID
			update.UpdatedAt = stamp
		}
		stocks = append(stocks, update)
		delete(remaining, record.Code)
	}

	// Zero out whatever is listed but absent from the feed.
	for _, id := range offerIDs {
		if _, ok := remaining[id]; !ok {
			continue
		}
		update := models.StockUpdate{OfferID: id, Quantity: 0}
		if warehouseID != "" {
			update.WarehouseID = warehouseID
			update.UpdatedAt = stamp
		}
		stocks = append(stocks, update)
	}
	return stocks, nil
}

// BuildPriceUpdates emits one price update per feed record that is listed in
// the catalog, in feed order. Catalog offers absent from the feed keep their
// current remote price.
func BuildPriceUpdates(feed []models.FeedRecord, offerIDs []string, currency string) ([]models.PriceUpdate, error) {
	listed := make(map[string]struct{}, len(offerIDs))
	for _, id := range offerIDs {
		listed[id] = struct{}{}
	}

	var prices []models.PriceUpdate
	for _, record := range feed {
		if record.Code == "" {
			return nil, &DataIntegrityError{Field: "code", Reason: "is missing"}
		}
		if _, ok := listed[record.Code]; !ok {
			continue
		}
		amount, err := ParseAmount(record.Price)
		if err != nil {
			var derr *DataIntegrityError
			if errors.As(err, &derr) {
				derr.Code = record.Code
			}
			return nil, err
		}
		prices = append(prices, models.PriceUpdate{
			OfferID:  record.Code,
			Amount:   amount,
			Currency: currency,
		})
		delete(listed, record.Code)
	}
	return prices, nil
}
