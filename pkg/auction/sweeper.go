package auction

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/chrsmk/meeple-market/pkg/config"
	"github.com/chrsmk/meeple-market/pkg/events"
	"github.com/chrsmk/meeple-market/pkg/models"
	"github.com/chrsmk/meeple-market/pkg/storage"
)

// Sweeper settles auctions whose deadline has passed. It is the only
// component with no direct caller: it runs on a schedule, and all of its
// writes go through the same status-active guard as bids and buy-nows, so
// sweeping an already-settled auction or racing an in-flight bid is a clean
// conflict, never a double settlement.
type Sweeper struct {
	store    Store
	fees     config.Fees
	pageSize int32
	events   events.Publisher
	now      func() time.Time
}

// NewSweeper creates a new Sweeper. A nil publisher disables event fan-out.
func NewSweeper(store Store, cfg *config.Config, publisher events.Publisher) *Sweeper {
	if publisher == nil {
		publisher = &events.NoOpPublisher{}
	}
	return &Sweeper{
		store:    store,
		fees:     cfg.Fees,
		pageSize: cfg.SweepPageSize,
		events:   publisher,
		now:      time.Now,
	}
}

// SweepResult counts what one sweep invocation did.
type SweepResult struct {
	// Sold auctions settled with a winner and a transaction.
	Sold int
	// Unsold auctions ended with no bids.
	Unsold int
	// ReserveNotMet auctions ended with bids below the reserve price.
	ReserveNotMet int
	// Skipped auctions that conflicted with a concurrent write. The next
	// sweep picks them up if they still need settling.
	Skipped int
	// Failed auctions that could not be settled for any other reason.
	Failed int
}

// SweepExpired settles one page of expired auctions. Per auction: no accepted
// bids means unsold, a highest bid below the reserve means no winner, and
// otherwise the highest bidder wins and a transaction is created. One failing
// auction never blocks the rest of the page.
func (s *Sweeper) SweepExpired(ctx context.Context) (*SweepResult, error) {
	expired, err := s.store.ListExpiredAuctions(ctx, s.now(), s.pageSize)
	if err != nil {
		return nil, err
	}

	result := &SweepResult{}
	for i := range expired {
		a := &expired[i]
		if err := s.settle(ctx, a, result); err != nil {
			if errors.Is(err, storage.ErrConcurrentModification) {
				result.Skipped++
				continue
			}
			slog.Error("failed to settle auction", "auctionId", a.Id, "error", err)
			result.Failed++
		}
	}
	return result, nil
}

func (s *Sweeper) settle(ctx context.Context, a *models.Auction, result *SweepResult) error {
	highest, err := s.store.HighestBid(ctx, a.Id)
	if err != nil {
		return err
	}

	winner := ""
	amount := a.CurrentPrice
	switch {
	case highest == nil:
		if err := s.store.SettleAuction(ctx, a, "", nil); err != nil {
			return err
		}
		result.Unsold++
	case a.ReservePrice != nil && highest.Amount.LessThan(*a.ReservePrice):
		if err := s.store.SettleAuction(ctx, a, "", nil); err != nil {
			return err
		}
		result.ReserveNotMet++
	default:
		listing, err := s.store.GetListing(ctx, a.ListingId)
		if err != nil {
			return err
		}
		txn := settlementTransaction(a, listing, highest.BidderId, highest.Amount, s.fees, s.now())
		if err := s.store.SettleAuction(ctx, a, highest.BidderId, txn); err != nil {
			return err
		}
		winner = highest.BidderId
		amount = highest.Amount
		result.Sold++
	}

	if err := s.events.Publish(ctx, events.Event{
		Type:      events.EventAuctionEnded,
		AuctionId: a.Id,
		WinnerId:  winner,
		Amount:    amount,
		BidCount:  a.BidCount,
		EndTime:   a.EndTime,
	}); err != nil {
		slog.Warn("failed to publish auction event", "auctionId", a.Id, "error", err)
	}

	return nil
}
