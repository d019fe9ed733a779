package storage

import (
	"context"

	"github.com/chrsmk/meeple-market/pkg/models"
)

// BidReader defines the interface for reading the bid ledger.
type BidReader interface {
	// ListBids retrieves the accepted bids for an auction, most recent first.
	ListBids(ctx context.Context, auctionID string, limit int32) ([]models.Bid, error)

	// HighestBid retrieves the highest accepted bid for an auction, or nil if
	// none was ever accepted. Because accepted amounts are strictly
	// increasing, the highest bid is also the most recent one.
	HighestBid(ctx context.Context, auctionID string) (*models.Bid, error)
}
