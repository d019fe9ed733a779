package auction

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/chrsmk/meeple-market/pkg/config"
	"github.com/chrsmk/meeple-market/pkg/events"
	"github.com/chrsmk/meeple-market/pkg/models"
	"github.com/chrsmk/meeple-market/pkg/storage"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Fees: config.Fees{
			PlatformFeeRate: decimal.RequireFromString("0.05"),
			VatRate:         decimal.RequireFromString("0.20"),
		},
		DefaultExtension: 5 * time.Minute,
		SweepPageSize:    100,
		BidRetryAttempts: 3,
	}
}

// recordingPublisher captures published events for assertions.
type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
}

func (p *recordingPublisher) Publish(ctx context.Context, event events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

// seedAuction populates the store with a listing and its active auction:
// starting price 10, increment 1, deadline one hour out.
func seedAuction(store *memStore, mutate func(*models.Auction)) {
	store.putListing(models.Listing{
		Id:          "listing1",
		SellerId:    "seller1",
		Title:       "Terraforming Mars",
		ListingType: models.ListingAuction,
		Currency:    "EUR",
		Status:      models.ListingActive,
	})
	a := models.Auction{
		Id:               "auction1",
		ListingId:        "listing1",
		SellerId:         "seller1",
		StartingPrice:    models.MustMoney("10"),
		CurrentPrice:     models.MustMoney("10"),
		BidIncrement:     models.MustMoney("1"),
		EndTime:          time.Now().Add(time.Hour),
		ExtensionSeconds: 300,
		Status:           models.AuctionActive,
	}
	if mutate != nil {
		mutate(&a)
	}
	store.putAuction(a)
}

func TestPlaceBid(t *testing.T) {
	ctx := context.Background()

	t.Run("Rejects Below Minimum", func(t *testing.T) {
		store := newMemStore()
		seedAuction(store, nil)
		engine := NewEngine(store, testConfig(), nil)

		_, err := engine.PlaceBid(ctx, "auction1", "bidder1", models.MustMoney("10.50"), "")

		var tooLow *BidTooLowError
		require.ErrorAs(t, err, &tooLow)
		assert.Equal(t, "11.00", tooLow.Minimum.StringFixed(2))

		// rejections never reach the ledger
		bids, _ := store.ListBids(ctx, "auction1", 0)
		assert.Empty(t, bids)
	})

	t.Run("Accepts At Threshold", func(t *testing.T) {
		store := newMemStore()
		seedAuction(store, nil)
		publisher := &recordingPublisher{}
		engine := NewEngine(store, testConfig(), publisher)

		result, err := engine.PlaceBid(ctx, "auction1", "bidder1", models.MustMoney("11"), "")

		require.NoError(t, err)
		assert.Equal(t, "11.00", result.CurrentPrice.StringFixed(2))
		assert.Equal(t, int64(1), result.BidCount)

		a, _ := store.GetAuction(ctx, "auction1")
		assert.Equal(t, "11.00", a.CurrentPrice.StringFixed(2))
		assert.Equal(t, int64(1), a.BidCount)

		require.Len(t, publisher.events, 1)
		assert.Equal(t, events.EventBidPlaced, publisher.events[0].Type)
	})

	t.Run("Unknown Auction", func(t *testing.T) {
		store := newMemStore()
		engine := NewEngine(store, testConfig(), nil)

		_, err := engine.PlaceBid(ctx, "missing", "bidder1", models.MustMoney("11"), "")

		assert.ErrorIs(t, err, storage.ErrAuctionNotFound)
	})

	t.Run("Ended By Status", func(t *testing.T) {
		store := newMemStore()
		seedAuction(store, func(a *models.Auction) { a.Status = models.AuctionEnded })
		engine := NewEngine(store, testConfig(), nil)

		_, err := engine.PlaceBid(ctx, "auction1", "bidder1", models.MustMoney("11"), "")

		assert.ErrorIs(t, err, ErrAuctionEnded)
	})

	t.Run("Ended By Deadline", func(t *testing.T) {
		// deadline passed but the sweep has not flipped the status yet
		store := newMemStore()
		seedAuction(store, func(a *models.Auction) { a.EndTime = time.Now().Add(-time.Minute) })
		engine := NewEngine(store, testConfig(), nil)

		_, err := engine.PlaceBid(ctx, "auction1", "bidder1", models.MustMoney("11"), "")

		assert.ErrorIs(t, err, ErrAuctionEnded)
	})

	t.Run("Seller Cannot Bid", func(t *testing.T) {
		store := newMemStore()
		seedAuction(store, nil)
		engine := NewEngine(store, testConfig(), nil)

		_, err := engine.PlaceBid(ctx, "auction1", "seller1", models.MustMoney("11"), "")

		assert.ErrorIs(t, err, ErrSelfBidForbidden)
	})

	t.Run("Precondition Order", func(t *testing.T) {
		// expiry outranks self-bid, self-bid outranks bid-too-low
		store := newMemStore()
		seedAuction(store, func(a *models.Auction) { a.EndTime = time.Now().Add(-time.Minute) })
		engine := NewEngine(store, testConfig(), nil)

		_, err := engine.PlaceBid(ctx, "auction1", "seller1", models.MustMoney("0.01"), "")
		assert.ErrorIs(t, err, ErrAuctionEnded)

		store = newMemStore()
		seedAuction(store, nil)
		engine = NewEngine(store, testConfig(), nil)

		_, err = engine.PlaceBid(ctx, "auction1", "seller1", models.MustMoney("0.01"), "")
		assert.ErrorIs(t, err, ErrSelfBidForbidden)
	})
}

func TestPlaceBidAntiSnipe(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	t.Run("Inside Window Resets Deadline", func(t *testing.T) {
		store := newMemStore()
		seedAuction(store, func(a *models.Auction) { a.EndTime = now.Add(2 * time.Minute) })
		engine := NewEngine(store, testConfig(), nil)
		engine.now = func() time.Time { return now }

		result, err := engine.PlaceBid(ctx, "auction1", "bidder1", models.MustMoney("11"), "")

		require.NoError(t, err)
		// pushed to now + extension, not added to the old deadline
		assert.True(t, result.EndTime.Equal(now.Add(5*time.Minute)))
	})

	t.Run("Outside Window Keeps Deadline", func(t *testing.T) {
		endTime := now.Add(30 * time.Minute)
		store := newMemStore()
		seedAuction(store, func(a *models.Auction) { a.EndTime = endTime })
		engine := NewEngine(store, testConfig(), nil)
		engine.now = func() time.Time { return now }

		result, err := engine.PlaceBid(ctx, "auction1", "bidder1", models.MustMoney("11"), "")

		require.NoError(t, err)
		assert.True(t, result.EndTime.Equal(endTime))
	})
}

func TestPlaceBidRetry(t *testing.T) {
	ctx := context.Background()

	t.Run("Recovers From One Conflict", func(t *testing.T) {
		store := newMemStore()
		seedAuction(store, nil)
		engine := NewEngine(store, testConfig(), nil)

		// a competitor commits between our read and our write, once
		interleaved := false
		store.commitHook = func() {
			if interleaved {
				return
			}
			interleaved = true
			a, err := store.GetAuction(ctx, "auction1")
			require.NoError(t, err)
			competitor := &models.Bid{Id: "rival", AuctionId: "auction1", BidderId: "bidder2", Amount: models.MustMoney("11"), CreatedAt: time.Now()}
			require.NoError(t, store.CommitBid(ctx, a, competitor, a.EndTime))
		}

		result, err := engine.PlaceBid(ctx, "auction1", "bidder1", models.MustMoney("15"), "")

		require.NoError(t, err)
		assert.Equal(t, "15.00", result.CurrentPrice.StringFixed(2))
		assert.Equal(t, int64(2), result.BidCount)
	})

	t.Run("Gives Up After Bounded Attempts", func(t *testing.T) {
		store := newMemStore()
		seedAuction(store, nil)
		engine := NewEngine(store, testConfig(), nil)

		attempts := 0
		store.commitHook = func() {
			attempts++
			if attempts > 10 {
				t.Fatal("engine retried without bound")
			}
			hooked := store.commitHook
			store.commitHook = nil
			a, err := store.GetAuction(ctx, "auction1")
			require.NoError(t, err)
			competitor := &models.Bid{Id: fmt.Sprintf("rival%d", attempts), AuctionId: "auction1", BidderId: "bidder2", Amount: a.MinimumBid(), CreatedAt: time.Now()}
			require.NoError(t, store.CommitBid(ctx, a, competitor, a.EndTime))
			store.commitHook = hooked
		}

		_, err := engine.PlaceBid(ctx, "auction1", "bidder1", models.MustMoney("1000"), "")

		assert.ErrorIs(t, err, storage.ErrConcurrentModification)
		assert.Equal(t, 3, attempts)
	})
}

func TestPlaceBidIdempotency(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	seedAuction(store, nil)
	engine := NewEngine(store, testConfig(), nil)

	first, err := engine.PlaceBid(ctx, "auction1", "bidder1", models.MustMoney("11"), "req-42")
	require.NoError(t, err)

	// the caller timed out and retries the identical request
	second, err := engine.PlaceBid(ctx, "auction1", "bidder1", models.MustMoney("11"), "req-42")
	require.NoError(t, err)

	assert.Equal(t, first.BidId, second.BidId)
	assert.Equal(t, 0, first.CurrentPrice.Cmp(second.CurrentPrice))
	assert.Equal(t, first.BidCount, second.BidCount)

	bids, _ := store.ListBids(ctx, "auction1", 0)
	assert.Len(t, bids, 1)
}

func TestPlaceBidConcurrent(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	seedAuction(store, nil)
	engine := NewEngine(store, testConfig(), nil)

	const bidders = 20
	var wg sync.WaitGroup
	for i := 0; i < bidders; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			amount := models.MustMoney(fmt.Sprintf("%d", 11+n))
			_, _ = engine.PlaceBid(ctx, "auction1", fmt.Sprintf("bidder%d", n), amount, "")
		}(i)
	}
	wg.Wait()

	a, err := store.GetAuction(ctx, "auction1")
	require.NoError(t, err)
	bids, err := store.ListBids(ctx, "auction1", 0)
	require.NoError(t, err)

	// exactly one bid per accepted amount, strictly increasing, no lost update
	require.NotEmpty(t, bids)
	assert.Equal(t, int64(len(bids)), a.BidCount)
	assert.Equal(t, 0, a.CurrentPrice.Cmp(bids[0].Amount))
	for i := 0; i+1 < len(bids); i++ {
		// most recent first
		assert.Equal(t, 1, bids[i].Amount.Cmp(bids[i+1].Amount))
	}
}

func TestBuyNow(t *testing.T) {
	ctx := context.Background()
	buyNow := models.MustMoney("100")

	t.Run("Settles Atomically", func(t *testing.T) {
		store := newMemStore()
		seedAuction(store, func(a *models.Auction) {
			a.CurrentPrice = models.MustMoney("60")
			a.BuyNowPrice = &buyNow
		})
		publisher := &recordingPublisher{}
		engine := NewEngine(store, testConfig(), publisher)

		txn, err := engine.BuyNow(ctx, "auction1", "buyer1")
		require.NoError(t, err)

		assert.Equal(t, "100.00", txn.Amount.StringFixed(2))
		assert.Equal(t, "5.00", txn.PlatformFee.StringFixed(2))
		assert.Equal(t, "20.00", txn.VatAmount.StringFixed(2))
		assert.Equal(t, "EUR", txn.Currency)
		assert.Equal(t, models.EscrowPending, txn.EscrowStatus)

		// auction ended, listing sold, exactly one transaction: all or nothing
		a, _ := store.GetAuction(ctx, "auction1")
		l, _ := store.GetListing(ctx, "listing1")
		assert.True(t,
			a.Status == models.AuctionEnded &&
				a.WinnerId == "buyer1" &&
				l.Status == models.ListingSold &&
				len(store.transactions) == 1)

		// the auction is terminal: further bids are rejected
		_, err = engine.PlaceBid(ctx, "auction1", "bidder1", models.MustMoney("200"), "")
		assert.ErrorIs(t, err, ErrAuctionEnded)

		require.Len(t, publisher.events, 1)
		assert.Equal(t, events.EventAuctionEnded, publisher.events[0].Type)
		assert.Equal(t, "buyer1", publisher.events[0].WinnerId)
	})

	t.Run("Unavailable Without Price", func(t *testing.T) {
		store := newMemStore()
		seedAuction(store, nil)
		engine := NewEngine(store, testConfig(), nil)

		_, err := engine.BuyNow(ctx, "auction1", "buyer1")

		assert.ErrorIs(t, err, ErrBuyNowUnavailable)
	})

	t.Run("Seller Cannot Buy", func(t *testing.T) {
		store := newMemStore()
		seedAuction(store, func(a *models.Auction) { a.BuyNowPrice = &buyNow })
		engine := NewEngine(store, testConfig(), nil)

		_, err := engine.BuyNow(ctx, "auction1", "seller1")

		assert.ErrorIs(t, err, ErrSelfBidForbidden)
	})

	t.Run("Ended Auction", func(t *testing.T) {
		store := newMemStore()
		seedAuction(store, func(a *models.Auction) {
			a.BuyNowPrice = &buyNow
			a.Status = models.AuctionEnded
		})
		engine := NewEngine(store, testConfig(), nil)

		_, err := engine.BuyNow(ctx, "auction1", "buyer1")

		assert.ErrorIs(t, err, ErrAuctionEnded)
	})
}

func TestSnapshot(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	seedAuction(store, func(a *models.Auction) { a.CurrentPrice = models.MustMoney("42") })
	engine := NewEngine(store, testConfig(), nil)

	snap, err := engine.Snapshot(ctx, "auction1")

	require.NoError(t, err)
	assert.Equal(t, "42.00", snap.Auction.CurrentPrice.StringFixed(2))
	assert.Equal(t, "43.00", snap.MinimumBid.StringFixed(2))
}

func TestBidHistory(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	seedAuction(store, nil)
	engine := NewEngine(store, testConfig(), nil)

	for _, amount := range []string{"11", "12", "13"} {
		_, err := engine.PlaceBid(ctx, "auction1", "bidder1", models.MustMoney(amount), "")
		require.NoError(t, err)
	}

	history, err := engine.BidHistory(ctx, "auction1", 0)

	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, "13.00", history[0].Amount.StringFixed(2))
	assert.Equal(t, "11.00", history[2].Amount.StringFixed(2))

	_, err = engine.BidHistory(ctx, "missing", 0)
	assert.ErrorIs(t, err, storage.ErrAuctionNotFound)
}
