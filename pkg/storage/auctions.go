package storage

import (
	"context"
	"time"

	"github.com/chrsmk/meeple-market/pkg/models"
)

// AuctionReader defines the interface for reading auction state.
type AuctionReader interface {
	// GetAuction retrieves an auction by its ID.
	GetAuction(ctx context.Context, auctionID string) (*models.Auction, error)

	// ListActiveAuctions retrieves auctions currently open for bidding.
	ListActiveAuctions(ctx context.Context, limit int32) ([]models.Auction, error)

	// ListExpiredAuctions retrieves auctions still marked active whose
	// deadline has passed. Used by the expiry sweep.
	ListExpiredAuctions(ctx context.Context, now time.Time, limit int32) ([]models.Auction, error)
}

// AuctionWriter defines the conditional writes that advance auction state.
// Every method is a single atomic unit against the store, guarded by the
// version the caller read; a conflicting concurrent write surfaces as
// ErrConcurrentModification and never as a silent overwrite.
type AuctionWriter interface {
	// CommitBid appends the bid and advances the auction's current price,
	// bid count and (possibly extended) end time in one atomic write.
	CommitBid(ctx context.Context, auction *models.Auction, bid *models.Bid, newEndTime time.Time) error

	// CompleteBuyNow ends the auction at its buy-now price, marks the listing
	// sold, and inserts the settlement transaction in one atomic write.
	CompleteBuyNow(ctx context.Context, auction *models.Auction, txn *models.Transaction) error

	// SettleAuction transitions an expired auction to ended. With a winner,
	// winnerID and txn are set and the listing goes to sold; without one
	// (no bids, or reserve not met) both are empty and the listing goes to
	// inactive. Settling an auction that already left active is a no-op
	// conflict, reported as ErrConcurrentModification.
	SettleAuction(ctx context.Context, auction *models.Auction, winnerID string, txn *models.Transaction) error
}

// AuctionStore combines the reader and writer interfaces.
type AuctionStore interface {
	AuctionReader
	AuctionWriter
}
