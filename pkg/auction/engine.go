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
	"github.com/google/uuid"
)

// Store is the slice of the data layer the engine and sweeper operate on:
// auction reads, the conditional writes that advance auction state, the bid
// ledger, and the listing read needed at settlement time for the currency on
// the transaction record.
type Store interface {
	storage.BiddingStore

	GetListing(ctx context.Context, listingID string) (*models.Listing, error)
}

// BidResult is the committed outcome of an accepted bid.
type BidResult struct {
	BidId        string
	CurrentPrice models.Money
	EndTime      time.Time
	BidCount     int64
}

// Snapshot is the authoritative current state of an auction for display to
// bidders, including the next acceptable bid.
type Snapshot struct {
	Auction    *models.Auction
	MinimumBid models.Money
}

// Engine validates and commits bids and buy-nows against the store's
// concurrency guard. It holds no mutable state of its own: correctness under
// concurrent callers comes entirely from the conditional writes, so the
// engine is safe to run on any number of instances.
type Engine struct {
	store   Store
	fees    config.Fees
	events  events.Publisher
	retries int
	now     func() time.Time
}

// NewEngine creates a new Engine. A nil publisher disables event fan-out.
func NewEngine(store Store, cfg *config.Config, publisher events.Publisher) *Engine {
	if publisher == nil {
		publisher = &events.NoOpPublisher{}
	}
	retries := cfg.BidRetryAttempts
	if retries < 1 {
		retries = 1
	}
	return &Engine{
		store:   store,
		fees:    cfg.Fees,
		events:  publisher,
		retries: retries,
		now:     time.Now,
	}
}

// PlaceBid validates and commits a bid. Preconditions are checked in order,
// each with a distinct rejection: the auction must exist, must still be open
// (status active and deadline not passed), the bidder must not be the seller,
// and the amount must meet current price plus increment. A bid landing inside
// the anti-snipe window pushes the deadline to now plus the extension.
//
// On a concurrency conflict the engine re-reads and revalidates, up to the
// configured attempt bound. clientToken, when supplied, doubles as the bid id
// and lets a retried request recognize its own committed bid instead of
// applying it twice.
func (e *Engine) PlaceBid(ctx context.Context, auctionID, bidderID string, amount models.Money, clientToken string) (*BidResult, error) {
	var lastErr error
	for attempt := 0; attempt < e.retries; attempt++ {
		a, err := e.store.GetAuction(ctx, auctionID)
		if err != nil {
			return nil, err
		}

		now := e.now()
		if a.Status != models.AuctionActive || a.Expired(now) {
			return nil, ErrAuctionEnded
		}
		if bidderID == a.SellerId {
			return nil, ErrSelfBidForbidden
		}
		minimum := a.MinimumBid()
		if amount.LessThan(minimum) {
			// A retried request whose first attempt committed fails the
			// threshold against its own bid. Recognize it before rejecting.
			if result, ok := e.replayedBid(ctx, auctionID, clientToken); ok {
				return result, nil
			}
			return nil, &BidTooLowError{Minimum: minimum}
		}

		newEndTime := a.EndTime
		if a.EndTime.Sub(now) <= a.Extension() {
			newEndTime = now.Add(a.Extension())
		}

		bid := &models.Bid{
			Id:        clientToken,
			AuctionId: auctionID,
			BidderId:  bidderID,
			Amount:    amount,
			CreatedAt: now,
		}
		if bid.Id == "" {
			bid.Id = uuid.NewString()
		}

		err = e.store.CommitBid(ctx, a, bid, newEndTime)
		if err == nil {
			e.publish(ctx, events.Event{
				Type:      events.EventBidPlaced,
				AuctionId: auctionID,
				BidId:     bid.Id,
				BidderId:  bidderID,
				Amount:    amount,
				BidCount:  a.BidCount + 1,
				EndTime:   newEndTime,
			})
			return &BidResult{
				BidId:        bid.Id,
				CurrentPrice: amount,
				EndTime:      newEndTime,
				BidCount:     a.BidCount + 1,
			}, nil
		}
		if !errors.Is(err, storage.ErrConcurrentModification) {
			return nil, err
		}
		if result, ok := e.replayedBid(ctx, auctionID, clientToken); ok {
			return result, nil
		}
		lastErr = err
	}
	return nil, lastErr
}

// replayedBid reports whether the latest committed bid on the auction carries
// the caller's idempotency token, meaning a previous attempt of this exact
// request already committed. The committed outcome is returned so the retry
// is answered without double-applying the bid.
func (e *Engine) replayedBid(ctx context.Context, auctionID, clientToken string) (*BidResult, bool) {
	if clientToken == "" {
		return nil, false
	}
	latest, err := e.store.HighestBid(ctx, auctionID)
	if err != nil || latest == nil || latest.Id != clientToken {
		return nil, false
	}
	a, err := e.store.GetAuction(ctx, auctionID)
	if err != nil {
		return nil, false
	}
	return &BidResult{
		BidId:        latest.Id,
		CurrentPrice: a.CurrentPrice,
		EndTime:      a.EndTime,
		BidCount:     a.BidCount,
	}, true
}

// BuyNow ends the auction at its buy-now price and settles the sale. The
// terminal write is conditioned on the auction still being active, so buy-now
// and bidding are mutually exclusive even when attempted concurrently: the
// loser of the race observes the ended auction on re-read and is rejected.
func (e *Engine) BuyNow(ctx context.Context, auctionID, buyerID string) (*models.Transaction, error) {
	var lastErr error
	for attempt := 0; attempt < e.retries; attempt++ {
		a, err := e.store.GetAuction(ctx, auctionID)
		if err != nil {
			return nil, err
		}

		now := e.now()
		if a.Status != models.AuctionActive || a.Expired(now) {
			return nil, ErrAuctionEnded
		}
		if a.BuyNowPrice == nil {
			return nil, ErrBuyNowUnavailable
		}
		if buyerID == a.SellerId {
			return nil, ErrSelfBidForbidden
		}

		listing, err := e.store.GetListing(ctx, a.ListingId)
		if err != nil {
			return nil, err
		}

		txn := settlementTransaction(a, listing, buyerID, *a.BuyNowPrice, e.fees, now)
		if err := e.store.CompleteBuyNow(ctx, a, txn); err != nil {
			if errors.Is(err, storage.ErrConcurrentModification) {
				// A concurrent bid bumped the version, or a terminal write
				// won the race. Re-read to find out which.
				lastErr = err
				continue
			}
			return nil, err
		}

		e.publish(ctx, events.Event{
			Type:      events.EventAuctionEnded,
			AuctionId: auctionID,
			WinnerId:  buyerID,
			Amount:    *a.BuyNowPrice,
			BidCount:  a.BidCount,
			EndTime:   now,
		})
		return txn, nil
	}
	return nil, lastErr
}

// Snapshot returns the latest committed auction state. No caching: bidders
// need the authoritative current price before submitting.
func (e *Engine) Snapshot(ctx context.Context, auctionID string) (*Snapshot, error) {
	a, err := e.store.GetAuction(ctx, auctionID)
	if err != nil {
		return nil, err
	}
	return &Snapshot{Auction: a, MinimumBid: a.MinimumBid()}, nil
}

// BidHistory returns the accepted bids for an auction, most recent first.
func (e *Engine) BidHistory(ctx context.Context, auctionID string, limit int32) ([]models.Bid, error) {
	if _, err := e.store.GetAuction(ctx, auctionID); err != nil {
		return nil, err
	}
	return e.store.ListBids(ctx, auctionID, limit)
}

func (e *Engine) publish(ctx context.Context, event events.Event) {
	if err := e.events.Publish(ctx, event); err != nil {
		slog.Warn("failed to publish auction event", "type", event.Type, "auctionId", event.AuctionId, "error", err)
	}
}

// settlementTransaction builds the settlement record for a completed sale.
// Fees are computed from configuration, rounded half-up to cents.
func settlementTransaction(a *models.Auction, listing *models.Listing, buyerID string, amount models.Money, fees config.Fees, now time.Time) *models.Transaction {
	return &models.Transaction{
		Id:           uuid.NewString(),
		ListingId:    a.ListingId,
		BuyerId:      buyerID,
		SellerId:     a.SellerId,
		Amount:       amount,
		PlatformFee:  amount.MulRate(fees.PlatformFeeRate),
		VatAmount:    amount.MulRate(fees.VatRate),
		Currency:     listing.Currency,
		EscrowStatus: models.EscrowPending,
		CompletedAt:  now,
		CreatedAt:    now,
	}
}
