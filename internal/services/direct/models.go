package direct

// Batch limits and currency imposed by the direct-fulfillment marketplace
// API. The stock and price endpoints have independent limits.
const (
	StockBatchSize = 2000
	PriceBatchSize = 500
	Currency       = "RUB"
)

const pageLimit = 1000

type listRequest struct {
	Filter listFilter `json:"filter"`
	LastID string     `json:"last_id"`
	Limit  int        `json:"limit"`
}

type listFilter struct {
	Visibility string `json:"visibility"`
}

type listResponse struct {
	Result listResult `json:"result"`
}

type listResult struct {
	Items  []listItem `json:"items"`
	Total  int        `json:"total"`
	LastID string     `json:"last_id"`
}

type listItem struct {
	OfferID string `json:"offer_id"`
}

type stockEntry struct {
	OfferID string `json:"offer_id"`
	Stock   int    `json:"stock"`
}

type stocksRequest struct {
	Stocks []stockEntry `json:"stocks"`
}

type priceEntry struct {
	AutoActionEnabled string `json:"auto_action_enabled"`
	CurrencyCode      string `json:"currency_code"`
	OfferID           string `json:"offer_id"`
	OldPrice          string `json:"old_price"`
	Price             string `json:"price"`
}

type pricesRequest struct {
	Prices []priceEntry `json:"prices"`
}

type importResponse struct {
	Result []importResult `json:"result"`
}

type importResult struct {
	OfferID string        `json:"offer_id"`
	Updated bool          `json:"updated"`
	Errors  []importError `json:"errors"`
}

type importError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
