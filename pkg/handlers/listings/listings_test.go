package listings

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/chrsmk/meeple-market/pkg/api"
	"github.com/chrsmk/meeple-market/pkg/config"
	"github.com/chrsmk/meeple-market/pkg/middleware"
	"github.com/chrsmk/meeple-market/pkg/models"
	"github.com/chrsmk/meeple-market/pkg/storage"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeListingStore is an in-memory ListingStore recording what the handlers
// write.
type fakeListingStore struct {
	listings     map[string]*models.Listing
	auctions     map[string]*models.Auction
	transactions []*models.Transaction
}

func newFakeListingStore() *fakeListingStore {
	return &fakeListingStore{
		listings: make(map[string]*models.Listing),
		auctions: make(map[string]*models.Auction),
	}
}

func (f *fakeListingStore) GetListing(ctx context.Context, listingID string) (*models.Listing, error) {
	listing, ok := f.listings[listingID]
	if !ok {
		return nil, storage.ErrListingNotFound
	}
	cp := *listing
	return &cp, nil
}

func (f *fakeListingStore) ListListings(ctx context.Context, status models.ListingStatus, limit int32) ([]models.Listing, error) {
	var out []models.Listing
	for _, listing := range f.listings {
		if listing.Status == status {
			out = append(out, *listing)
		}
	}
	return out, nil
}

func (f *fakeListingStore) ListListingsBySeller(ctx context.Context, sellerID string) ([]models.Listing, error) {
	var out []models.Listing
	for _, listing := range f.listings {
		if listing.SellerId == sellerID {
			out = append(out, *listing)
		}
	}
	return out, nil
}

func (f *fakeListingStore) CreateListing(ctx context.Context, listing *models.Listing, auction *models.Auction) error {
	if _, exists := f.listings[listing.Id]; exists {
		return storage.ErrConcurrentModification
	}
	f.listings[listing.Id] = listing
	if auction != nil {
		f.auctions[auction.Id] = auction
	}
	return nil
}

func (f *fakeListingStore) DeactivateListing(ctx context.Context, listingID, sellerID string) error {
	listing, ok := f.listings[listingID]
	if !ok || listing.SellerId != sellerID || listing.Status != models.ListingActive {
		return storage.ErrListingUnavailable
	}
	listing.Status = models.ListingInactive
	return nil
}

func (f *fakeListingStore) PurchaseListing(ctx context.Context, listing *models.Listing, txn *models.Transaction) error {
	stored, ok := f.listings[listing.Id]
	if !ok || stored.Status != models.ListingActive {
		return storage.ErrListingUnavailable
	}
	stored.Status = models.ListingSold
	f.transactions = append(f.transactions, txn)
	return nil
}

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

func createListingRequest(t *testing.T, body api.NewListing, userID string) *http.Request {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/listings", bytes.NewReader(payload))
	if userID != "" {
		req.Header.Set(middleware.UserIDHeader, userID)
	}
	return req
}

func strPtr(s string) *string { return &s }

func TestCreateListingHandler(t *testing.T) {
	t.Run("Fixed Price", func(t *testing.T) {
		store := newFakeListingStore()
		handler := NewListingsHandler(store, testConfig())

		rr := httptest.NewRecorder()
		handler.CreateListing(rr, createListingRequest(t, api.NewListing{
			Title:           "Brass Birmingham",
			ListingType:     api.ListingTypeFixed,
			Price:           strPtr("45.00"),
			Currency:        "EUR",
			Condition:       api.Good,
			LocationCity:    "Berlin",
			LocationCountry: "DE",
		}, "seller1"))

		require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

		var resp api.NewListingResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.Listing.Id)
		assert.Equal(t, "seller1", resp.Listing.SellerId)
		assert.Equal(t, api.ListingStatusActive, resp.Listing.Status)
		assert.Nil(t, resp.Auction)

		require.Len(t, store.listings, 1)
	})

	t.Run("Auction Creates Both Records", func(t *testing.T) {
		store := newFakeListingStore()
		handler := NewListingsHandler(store, testConfig())

		endTime := time.Now().Add(48 * time.Hour).UTC().Truncate(time.Second)
		rr := httptest.NewRecorder()
		handler.CreateListing(rr, createListingRequest(t, api.NewListing{
			Title:       "Gloomhaven",
			ListingType: api.ListingTypeAuction,
			Currency:    "EUR",
			Condition:   api.LikeNew,
			Auction: &api.NewAuction{
				StartingPrice: "20",
				BidIncrement:  "1",
				ReservePrice:  strPtr("60"),
				EndTime:       endTime,
			},
		}, "seller1"))

		require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

		var resp api.NewListingResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		require.NotNil(t, resp.Auction)
		assert.Equal(t, resp.Listing.Id, resp.Auction.ListingId)
		assert.Equal(t, "20", resp.Auction.StartingPrice)
		assert.Equal(t, "20", resp.Auction.CurrentPrice)
		assert.Equal(t, "21", resp.Auction.MinimumBid)
		assert.Equal(t, api.AuctionStatusActive, resp.Auction.Status)

		require.Len(t, store.auctions, 1)
		for _, a := range store.auctions {
			// unset extension falls back to the configured default
			assert.Equal(t, int64(300), a.ExtensionSeconds)
		}
	})

	t.Run("Validation", func(t *testing.T) {
		cases := []struct {
			name string
			body api.NewListing
		}{
			{"Fixed Without Price", api.NewListing{Title: "Root", ListingType: api.ListingTypeFixed, Currency: "EUR"}},
			{"Auction Without Block", api.NewListing{Title: "Root", ListingType: api.ListingTypeAuction, Currency: "EUR"}},
			{"Missing Title", api.NewListing{ListingType: api.ListingTypeFixed, Price: strPtr("10"), Currency: "EUR"}},
			{"Past End Time", api.NewListing{
				Title: "Root", ListingType: api.ListingTypeAuction, Currency: "EUR",
				Auction: &api.NewAuction{StartingPrice: "10", BidIncrement: "1", EndTime: time.Now().Add(-time.Hour)},
			}},
			{"Zero Increment", api.NewListing{
				Title: "Root", ListingType: api.ListingTypeAuction, Currency: "EUR",
				Auction: &api.NewAuction{StartingPrice: "10", BidIncrement: "0", EndTime: time.Now().Add(time.Hour)},
			}},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				handler := NewListingsHandler(newFakeListingStore(), testConfig())
				rr := httptest.NewRecorder()
				handler.CreateListing(rr, createListingRequest(t, tc.body, "seller1"))
				assert.Equal(t, http.StatusBadRequest, rr.Code)
			})
		}
	})

	t.Run("Missing Identity", func(t *testing.T) {
		handler := NewListingsHandler(newFakeListingStore(), testConfig())
		rr := httptest.NewRecorder()
		handler.CreateListing(rr, createListingRequest(t, api.NewListing{Title: "Root", ListingType: api.ListingTypeTrade, Currency: "EUR"}, ""))
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestPurchaseListingHandler(t *testing.T) {
	price := models.MustMoney("40")
	seedFixed := func(store *fakeListingStore) {
		store.listings["listing1"] = &models.Listing{
			Id:          "listing1",
			SellerId:    "seller1",
			Title:       "Wingspan",
			ListingType: models.ListingFixed,
			Price:       &price,
			Currency:    "EUR",
			Status:      models.ListingActive,
		}
	}

	purchase := func(handler *ListingsHandler, buyerID string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/listings/listing1/purchase", nil)
		if buyerID != "" {
			req.Header.Set(middleware.UserIDHeader, buyerID)
		}
		rr := httptest.NewRecorder()
		handler.PurchaseListing(rr, req, "listing1")
		return rr
	}

	t.Run("Success", func(t *testing.T) {
		store := newFakeListingStore()
		seedFixed(store)
		handler := NewListingsHandler(store, testConfig())

		rr := purchase(handler, "buyer1")
		require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

		var txn api.Transaction
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &txn))
		assert.Equal(t, "40", txn.Amount)
		assert.Equal(t, "2.00", txn.PlatformFee)
		assert.Equal(t, "8.00", txn.VatAmount)
		assert.Equal(t, "EUR", txn.Currency)
		assert.Equal(t, string(models.EscrowPending), txn.EscrowStatus)

		assert.Equal(t, models.ListingSold, store.listings["listing1"].Status)
		require.Len(t, store.transactions, 1)
	})

	t.Run("Seller Cannot Buy", func(t *testing.T) {
		store := newFakeListingStore()
		seedFixed(store)
		handler := NewListingsHandler(store, testConfig())

		rr := purchase(handler, "seller1")
		assert.Equal(t, http.StatusForbidden, rr.Code)
		assert.Empty(t, store.transactions)
	})

	t.Run("Not Fixed Price", func(t *testing.T) {
		store := newFakeListingStore()
		seedFixed(store)
		store.listings["listing1"].ListingType = models.ListingAuction
		store.listings["listing1"].Price = nil
		handler := NewListingsHandler(store, testConfig())

		rr := purchase(handler, "buyer1")
		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	})

	t.Run("Already Sold", func(t *testing.T) {
		store := newFakeListingStore()
		seedFixed(store)
		store.listings["listing1"].Status = models.ListingSold
		handler := NewListingsHandler(store, testConfig())

		rr := purchase(handler, "buyer1")
		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	})

	t.Run("Unknown Listing", func(t *testing.T) {
		handler := NewListingsHandler(newFakeListingStore(), testConfig())

		rr := purchase(handler, "buyer1")
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestListUserListingsHandler(t *testing.T) {
	store := newFakeListingStore()
	store.listings["listing1"] = &models.Listing{Id: "listing1", SellerId: "seller1", Status: models.ListingActive}
	store.listings["listing2"] = &models.Listing{Id: "listing2", SellerId: "seller1", Status: models.ListingSold}
	store.listings["listing3"] = &models.Listing{Id: "listing3", SellerId: "seller2", Status: models.ListingActive}
	handler := NewListingsHandler(store, testConfig())

	rr := httptest.NewRecorder()
	handler.ListUserListings(rr, httptest.NewRequest(http.MethodGet, "/users/seller1/listings", nil), "seller1")

	require.Equal(t, http.StatusOK, rr.Code)

	var out []api.Listing
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
	// all statuses, sold included
	assert.Len(t, out, 2)
}

func TestDeactivateListingHandler(t *testing.T) {
	store := newFakeListingStore()
	store.listings["listing1"] = &models.Listing{
		Id:       "listing1",
		SellerId: "seller1",
		Status:   models.ListingActive,
	}
	handler := NewListingsHandler(store, testConfig())

	t.Run("Owner Withdraws", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/listings/listing1", nil)
		req.Header.Set(middleware.UserIDHeader, "seller1")
		rr := httptest.NewRecorder()
		handler.DeactivateListing(rr, req, "listing1")

		assert.Equal(t, http.StatusNoContent, rr.Code)
		assert.Equal(t, models.ListingInactive, store.listings["listing1"].Status)
	})

	t.Run("Already Withdrawn", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/listings/listing1", nil)
		req.Header.Set(middleware.UserIDHeader, "seller1")
		rr := httptest.NewRecorder()
		handler.DeactivateListing(rr, req, "listing1")

		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	})
}
