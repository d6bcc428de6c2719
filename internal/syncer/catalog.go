package syncer

import (
	"context"
	"fmt"

	"stocksync/internal/marketplace"
)

// OfferLister is the slice of the marketplace client the catalog fetch needs.
type OfferLister interface {
	ListOffers(ctx context.Context, cursor string) (*marketplace.OfferPage, error)
}

// FetchOfferIDs walks the paginated catalog listing to exhaustion and returns
// every listed offer id, deduplicated, in first-seen order.
//
// Both pagination contracts are supported: endpoints that report a catalog
// total terminate once that many ids have been accumulated, endpoints that
// don't terminate when the continuation cursor comes back empty. A failed
// page request aborts the whole fetch; no partial catalog is returned.
func FetchOfferIDs(ctx context.Context, lister OfferLister) ([]string, error) {
	var (
		offerIDs []string
		seen     = make(map[string]struct{})
		cursor   string
		fetched  int
	)
	for {
		page, err := lister.ListOffers(ctx, cursor)
		if err != nil {
			return nil, fmt.Errorf("listing offers: %w", err)
		}
		fetched += len(page.OfferIDs)
		for _, id := range page.OfferIDs {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			offerIDs = append(offerIDs, id)
		}
		if page.Total >= 0 {
			if fetched >= page.Total {
				break
			}
		} else if page.NextCursor == "" {
			break
		}
		// An empty page with more supposedly remaining would loop forever.
		if len(page.OfferIDs) == 0 {
			return nil, fmt.Errorf("listing offers: empty page before pagination end (cursor %q)", cursor)
		}
		cursor = page.NextCursor
	}
	return offerIDs, nil
}
