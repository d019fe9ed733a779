package handlers

import (
	"net/http"

	"github.com/chrsmk/meeple-market/pkg/api"
	"github.com/chrsmk/meeple-market/pkg/config"
	"github.com/chrsmk/meeple-market/pkg/handlers/auctions"
	"github.com/chrsmk/meeple-market/pkg/handlers/listings"
	"github.com/chrsmk/meeple-market/pkg/handlers/users"
	"github.com/chrsmk/meeple-market/pkg/storage"
)

// ApiHandler implements the generated server interface by delegating to the
// per-resource handlers. It holds our application's dependencies.
type ApiHandler struct {
	Listings *listings.ListingsHandler
	Auctions *auctions.AuctionsHandler
	Users    *users.UsersHandler
}

// NewApiHandler creates a new ApiHandler wired to the store and engine.
func NewApiHandler(store storage.ApiStore, engine auctions.Bidding, cfg *config.Config) *ApiHandler {
	return &ApiHandler{
		Listings: listings.NewListingsHandler(store, cfg),
		Auctions: auctions.NewAuctionsHandler(engine, store),
		Users:    users.NewUsersHandler(store),
	}
}

// Make sure we conform to the interface
var _ api.ServerInterface = (*ApiHandler)(nil)

func (h *ApiHandler) CreateListing(w http.ResponseWriter, r *http.Request) {
	h.Listings.CreateListing(w, r)
}

func (h *ApiHandler) ListListings(w http.ResponseWriter, r *http.Request, params api.ListListingsParams) {
	h.Listings.ListListings(w, r, params)
}

func (h *ApiHandler) GetListingById(w http.ResponseWriter, r *http.Request, listingId string) {
	h.Listings.GetListingById(w, r, listingId)
}

func (h *ApiHandler) DeactivateListing(w http.ResponseWriter, r *http.Request, listingId string) {
	h.Listings.DeactivateListing(w, r, listingId)
}

func (h *ApiHandler) PurchaseListing(w http.ResponseWriter, r *http.Request, listingId string) {
	h.Listings.PurchaseListing(w, r, listingId)
}

func (h *ApiHandler) ListAuctions(w http.ResponseWriter, r *http.Request, params api.ListAuctionsParams) {
	h.Auctions.ListAuctions(w, r, params)
}

func (h *ApiHandler) GetAuctionById(w http.ResponseWriter, r *http.Request, auctionId string) {
	h.Auctions.GetAuctionById(w, r, auctionId)
}

func (h *ApiHandler) ListAuctionBids(w http.ResponseWriter, r *http.Request, auctionId string, params api.ListAuctionBidsParams) {
	h.Auctions.ListAuctionBids(w, r, auctionId, params)
}

func (h *ApiHandler) PlaceBid(w http.ResponseWriter, r *http.Request, auctionId string) {
	h.Auctions.PlaceBid(w, r, auctionId)
}

func (h *ApiHandler) BuyNow(w http.ResponseWriter, r *http.Request, auctionId string) {
	h.Auctions.BuyNow(w, r, auctionId)
}

func (h *ApiHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	h.Users.CreateUser(w, r)
}

func (h *ApiHandler) GetUserById(w http.ResponseWriter, r *http.Request, userId string) {
	h.Users.GetUserById(w, r, userId)
}

func (h *ApiHandler) ListUserListings(w http.ResponseWriter, r *http.Request, userId string) {
	h.Listings.ListUserListings(w, r, userId)
}

func (h *ApiHandler) ListUserTransactions(w http.ResponseWriter, r *http.Request, userId string) {
	h.Users.ListUserTransactions(w, r, userId)
}
