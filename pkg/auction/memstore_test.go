package auction

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/chrsmk/meeple-market/pkg/models"
	"github.com/chrsmk/meeple-market/pkg/storage"
)

// memStore is an in-memory Store with the same optimistic concurrency
// semantics as the DynamoDB implementation: every auction write is guarded by
// the version the caller read and the status still being active. It lets the
// engine and sweeper tests exercise real interleavings without a database.
type memStore struct {
	mu           sync.Mutex
	listings     map[string]*models.Listing
	auctions     map[string]*models.Auction
	bids         map[string][]models.Bid
	transactions map[string]*models.Transaction

	// commitHook, when set, runs inside CommitBid before the guard check.
	// Tests use it to interleave a competing write.
	commitHook func()
}

func newMemStore() *memStore {
	return &memStore{
		listings:     make(map[string]*models.Listing),
		auctions:     make(map[string]*models.Auction),
		bids:         make(map[string][]models.Bid),
		transactions: make(map[string]*models.Transaction),
	}
}

func (m *memStore) putListing(l models.Listing) { m.listings[l.Id] = &l }
func (m *memStore) putAuction(a models.Auction) { m.auctions[a.Id] = &a }

func (m *memStore) GetListing(ctx context.Context, listingID string) (*models.Listing, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	l, ok := m.listings[listingID]
	if !ok {
		return nil, fmt.Errorf("listing %s: %w", listingID, storage.ErrListingNotFound)
	}
	copied := *l
	return &copied, nil
}

func (m *memStore) GetAuction(ctx context.Context, auctionID string) (*models.Auction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.auctions[auctionID]
	if !ok {
		return nil, fmt.Errorf("auction %s: %w", auctionID, storage.ErrAuctionNotFound)
	}
	copied := *a
	return &copied, nil
}

func (m *memStore) ListActiveAuctions(ctx context.Context, limit int32) ([]models.Auction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Auction
	now := time.Now()
	for _, a := range m.auctions {
		if a.Status == models.AuctionActive && now.Before(a.EndTime) {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (m *memStore) ListExpiredAuctions(ctx context.Context, now time.Time, limit int32) ([]models.Auction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Auction
	for _, a := range m.auctions {
		if a.Status == models.AuctionActive && !now.Before(a.EndTime) {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (m *memStore) CommitBid(ctx context.Context, auction *models.Auction, bid *models.Bid, newEndTime time.Time) error {
	if m.commitHook != nil {
		m.commitHook()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	stored, ok := m.auctions[auction.Id]
	if !ok {
		return fmt.Errorf("auction %s: %w", auction.Id, storage.ErrAuctionNotFound)
	}
	if stored.Version != auction.Version || stored.Status != models.AuctionActive {
		return fmt.Errorf("commit bid: %w", storage.ErrConcurrentModification)
	}
	stored.CurrentPrice = bid.Amount
	stored.EndTime = newEndTime
	stored.BidCount++
	stored.Version++
	m.bids[auction.Id] = append(m.bids[auction.Id], *bid)
	return nil
}

func (m *memStore) CompleteBuyNow(ctx context.Context, auction *models.Auction, txn *models.Transaction) error {
	return m.settle(auction, txn.BuyerId, txn, models.ListingSold)
}

func (m *memStore) SettleAuction(ctx context.Context, auction *models.Auction, winnerID string, txn *models.Transaction) error {
	status := models.ListingInactive
	if winnerID != "" {
		status = models.ListingSold
	}
	return m.settle(auction, winnerID, txn, status)
}

func (m *memStore) settle(auction *models.Auction, winnerID string, txn *models.Transaction, listingStatus models.ListingStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored, ok := m.auctions[auction.Id]
	if !ok {
		return fmt.Errorf("auction %s: %w", auction.Id, storage.ErrAuctionNotFound)
	}
	if stored.Version != auction.Version || stored.Status != models.AuctionActive {
		return fmt.Errorf("settle: %w", storage.ErrConcurrentModification)
	}
	stored.Status = models.AuctionEnded
	stored.WinnerId = winnerID
	stored.Version++
	if txn != nil {
		stored.CurrentPrice = txn.Amount
		m.transactions[txn.Id] = txn
	}
	if l, ok := m.listings[stored.ListingId]; ok {
		l.Status = listingStatus
	}
	return nil
}

func (m *memStore) ListBids(ctx context.Context, auctionID string, limit int32) ([]models.Bid, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	bids := m.bids[auctionID]
	out := make([]models.Bid, 0, len(bids))
	for i := len(bids) - 1; i >= 0; i-- {
		out = append(out, bids[i])
		if limit > 0 && int32(len(out)) == limit {
			break
		}
	}
	return out, nil
}

func (m *memStore) HighestBid(ctx context.Context, auctionID string) (*models.Bid, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	bids := m.bids[auctionID]
	if len(bids) == 0 {
		return nil, nil
	}
	latest := bids[len(bids)-1]
	return &latest, nil
}

var _ Store = (*memStore)(nil)
