// Package listings exposes the marketplace listing surface over HTTP:
// creation, browsing, withdrawal and fixed-price purchase.
package listings

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/chrsmk/meeple-market/pkg/api"
	"github.com/chrsmk/meeple-market/pkg/config"
	"github.com/chrsmk/meeple-market/pkg/handlers/respond"
	"github.com/chrsmk/meeple-market/pkg/mapping"
	"github.com/chrsmk/meeple-market/pkg/middleware"
	"github.com/chrsmk/meeple-market/pkg/models"
	"github.com/chrsmk/meeple-market/pkg/storage"
	"github.com/google/uuid"
)

// ListingsHandler holds the dependencies for listing-related handlers.
type ListingsHandler struct {
	Store storage.ListingStore
	Cfg   *config.Config
}

// NewListingsHandler creates a new ListingsHandler.
func NewListingsHandler(store storage.ListingStore, cfg *config.Config) *ListingsHandler {
	return &ListingsHandler{Store: store, Cfg: cfg}
}

// CreateListing handles the logic for creating a new listing. An auction-type
// listing is created together with its auction record, atomically.
func (h *ListingsHandler) CreateListing(w http.ResponseWriter, r *http.Request) {
	sellerID := middleware.CallerID(r)
	if sellerID == "" {
		respond.Unauthorized(w)
		return
	}

	var newListing api.NewListing
	if err := json.NewDecoder(r.Body).Decode(&newListing); err != nil {
		respond.BadRequest(w, "invalid request body")
		return
	}

	listing, err := mapping.ToDomainNewListing(&newListing)
	if err != nil {
		respond.BadRequest(w, err.Error())
		return
	}
	if listing.Title == "" || listing.Currency == "" {
		respond.BadRequest(w, "title and currency are required")
		return
	}

	now := time.Now()
	listing.Id = uuid.NewString()
	listing.SellerId = sellerID
	listing.Status = models.ListingActive
	listing.CreatedAt = now
	listing.UpdatedAt = now

	var auction *models.Auction
	switch listing.ListingType {
	case models.ListingFixed:
		if listing.Price == nil {
			respond.BadRequest(w, "fixed-price listings require a price")
			return
		}
	case models.ListingAuction:
		if newListing.Auction == nil {
			respond.BadRequest(w, "auction listings require an auction block")
			return
		}
		auction, err = mapping.ToDomainNewAuction(newListing.Auction)
		if err != nil {
			respond.BadRequest(w, err.Error())
			return
		}
		if !auction.EndTime.After(now) {
			respond.BadRequest(w, "auction end_time must be in the future")
			return
		}
		if !auction.StartingPrice.IsPositive() || !auction.BidIncrement.IsPositive() {
			respond.BadRequest(w, "starting_price and bid_increment must be positive")
			return
		}
		auction.Id = uuid.NewString()
		auction.ListingId = listing.Id
		auction.SellerId = sellerID
		auction.Status = models.AuctionActive
		auction.CreatedAt = now
		auction.UpdatedAt = now
		if auction.ExtensionSeconds == 0 {
			auction.ExtensionSeconds = int64(h.Cfg.DefaultExtension.Seconds())
		}
	case models.ListingTrade:
		// no price, no auction: contact happens off-platform
	default:
		respond.BadRequest(w, "unknown listing_type")
		return
	}

	if err := h.Store.CreateListing(r.Context(), listing, auction); err != nil {
		respond.Error(w, err)
		return
	}

	response := api.NewListingResponse{Listing: *mapping.ToApiListing(listing)}
	if auction != nil {
		response.Auction = mapping.ToApiAuction(auction)
	}
	respond.JSON(w, http.StatusCreated, response)
}

// ListListings handles the logic for browsing listings, newest first.
func (h *ListingsHandler) ListListings(w http.ResponseWriter, r *http.Request, params api.ListListingsParams) {
	status := models.ListingActive
	if params.Status != nil {
		status = models.ListingStatus(*params.Status)
	}
	limit := int32(0)
	if params.Limit != nil {
		limit = *params.Limit
	}

	domainListings, err := h.Store.ListListings(r.Context(), status, limit)
	if err != nil {
		respond.Error(w, err)
		return
	}

	apiListings := make([]*api.Listing, len(domainListings))
	for i := range domainListings {
		apiListings[i] = mapping.ToApiListing(&domainListings[i])
	}
	respond.JSON(w, http.StatusOK, apiListings)
}

// ListUserListings handles the logic for listing everything a seller has
// posted, in any status.
func (h *ListingsHandler) ListUserListings(w http.ResponseWriter, r *http.Request, userId string) {
	domainListings, err := h.Store.ListListingsBySeller(r.Context(), userId)
	if err != nil {
		respond.Error(w, err)
		return
	}

	apiListings := make([]*api.Listing, len(domainListings))
	for i := range domainListings {
		apiListings[i] = mapping.ToApiListing(&domainListings[i])
	}
	respond.JSON(w, http.StatusOK, apiListings)
}

// GetListingById handles the logic for retrieving a listing.
func (h *ListingsHandler) GetListingById(w http.ResponseWriter, r *http.Request, listingId string) {
	listing, err := h.Store.GetListing(r.Context(), listingId)
	if err != nil {
		respond.Error(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, mapping.ToApiListing(listing))
}

// DeactivateListing handles the logic for withdrawing a listing. Only the
// owner can withdraw, and only while the listing is still active.
func (h *ListingsHandler) DeactivateListing(w http.ResponseWriter, r *http.Request, listingId string) {
	sellerID := middleware.CallerID(r)
	if sellerID == "" {
		respond.Unauthorized(w)
		return
	}

	if err := h.Store.DeactivateListing(r.Context(), listingId, sellerID); err != nil {
		respond.Error(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// PurchaseListing handles the logic for buying a fixed-price listing. The
// listing flips to sold and the settlement transaction is created in one
// atomic write, so two concurrent purchases cannot both succeed.
func (h *ListingsHandler) PurchaseListing(w http.ResponseWriter, r *http.Request, listingId string) {
	buyerID := middleware.CallerID(r)
	if buyerID == "" {
		respond.Unauthorized(w)
		return
	}

	listing, err := h.Store.GetListing(r.Context(), listingId)
	if err != nil {
		respond.Error(w, err)
		return
	}
	if listing.ListingType != models.ListingFixed || listing.Price == nil || listing.Status != models.ListingActive {
		respond.Error(w, storage.ErrListingUnavailable)
		return
	}
	if buyerID == listing.SellerId {
		respond.JSON(w, http.StatusForbidden, api.Error{Code: "self_purchase_forbidden", Message: "seller cannot buy their own listing"})
		return
	}

	now := time.Now()
	amount := *listing.Price
	txn := &models.Transaction{
		Id:           uuid.NewString(),
		ListingId:    listing.Id,
		BuyerId:      buyerID,
		SellerId:     listing.SellerId,
		Amount:       amount,
		PlatformFee:  amount.MulRate(h.Cfg.Fees.PlatformFeeRate),
		VatAmount:    amount.MulRate(h.Cfg.Fees.VatRate),
		Currency:     listing.Currency,
		EscrowStatus: models.EscrowPending,
		CompletedAt:  now,
		CreatedAt:    now,
	}

	if err := h.Store.PurchaseListing(r.Context(), listing, txn); err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, mapping.ToApiTransaction(txn))
}
