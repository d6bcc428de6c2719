package dropship

// Batch limits and currency imposed by the dropship marketplace API.
const (
	StockBatchSize = 100
	PriceBatchSize = 900
	Currency       = "RUR"
)

const pageLimit = 200

type listResponse struct {
	Result listResult `json:"result"`
}

type listResult struct {
	OfferMappingEntries []offerMappingEntry `json:"offerMappingEntries"`
	Paging              paging              `json:"paging"`
}

type offerMappingEntry struct {
	Offer offerRef `json:"offer"`
}

type offerRef struct {
	ShopSKU string `json:"shopSku"`
}

type paging struct {
	NextPageToken string `json:"nextPageToken"`
}

type stocksRequest struct {
	SKUs []skuStocks `json:"skus"`
}

type skuStocks struct {
	SKU         string      `json:"sku"`
	WarehouseID string      `json:"warehouseId"`
	Items       []stockItem `json:"items"`
}

type stockItem struct {
	Count     int    `json:"count"`
	Type      string `json:"type"`
	UpdatedAt string `json:"updatedAt"`
}

type pricesRequest struct {
	Offers []offerPrice `json:"offers"`
}

type offerPrice struct {
	ID    string     `json:"id"`
	Price priceValue `json:"price"`
}

type priceValue struct {
	Value      int64  `json:"value"`
	CurrencyID string `json:"currencyId"`
}

type updateResponse struct {
	Status string        `json:"status"`
	Errors []updateError `json:"errors"`
}

type updateError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
