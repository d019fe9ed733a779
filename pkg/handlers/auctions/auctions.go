// Package auctions exposes the bidding surface over HTTP: auction snapshots,
// bid history, placing bids and buy-now.
package auctions

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/chrsmk/meeple-market/pkg/api"
	"github.com/chrsmk/meeple-market/pkg/auction"
	"github.com/chrsmk/meeple-market/pkg/handlers/respond"
	"github.com/chrsmk/meeple-market/pkg/mapping"
	"github.com/chrsmk/meeple-market/pkg/middleware"
	"github.com/chrsmk/meeple-market/pkg/models"
	"github.com/chrsmk/meeple-market/pkg/storage"
)

// Bidding is the slice of the auction engine the handlers call.
type Bidding interface {
	PlaceBid(ctx context.Context, auctionID, bidderID string, amount models.Money, clientToken string) (*auction.BidResult, error)
	BuyNow(ctx context.Context, auctionID, buyerID string) (*models.Transaction, error)
	Snapshot(ctx context.Context, auctionID string) (*auction.Snapshot, error)
	BidHistory(ctx context.Context, auctionID string, limit int32) ([]models.Bid, error)
}

// AuctionsHandler holds the dependencies for auction-related handlers.
type AuctionsHandler struct {
	Engine Bidding
	Store  storage.AuctionReader
}

// NewAuctionsHandler creates a new AuctionsHandler.
func NewAuctionsHandler(engine Bidding, store storage.AuctionReader) *AuctionsHandler {
	return &AuctionsHandler{Engine: engine, Store: store}
}

// ListAuctions handles the logic for listing auctions open for bidding.
func (h *AuctionsHandler) ListAuctions(w http.ResponseWriter, r *http.Request, params api.ListAuctionsParams) {
	limit := int32(0)
	if params.Limit != nil {
		limit = *params.Limit
	}

	domainAuctions, err := h.Store.ListActiveAuctions(r.Context(), limit)
	if err != nil {
		respond.Error(w, err)
		return
	}

	apiAuctions := make([]*api.Auction, len(domainAuctions))
	for i := range domainAuctions {
		apiAuctions[i] = mapping.ToApiAuction(&domainAuctions[i])
	}
	respond.JSON(w, http.StatusOK, apiAuctions)
}

// GetAuctionById handles the logic for retrieving an auction snapshot.
func (h *AuctionsHandler) GetAuctionById(w http.ResponseWriter, r *http.Request, auctionId string) {
	snap, err := h.Engine.Snapshot(r.Context(), auctionId)
	if err != nil {
		respond.Error(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, mapping.ToApiAuction(snap.Auction))
}

// ListAuctionBids handles the logic for listing an auction's accepted bids,
// most recent first.
func (h *AuctionsHandler) ListAuctionBids(w http.ResponseWriter, r *http.Request, auctionId string, params api.ListAuctionBidsParams) {
	limit := int32(0)
	if params.Limit != nil {
		limit = *params.Limit
	}

	domainBids, err := h.Engine.BidHistory(r.Context(), auctionId, limit)
	if err != nil {
		respond.Error(w, err)
		return
	}

	apiBids := make([]*api.Bid, len(domainBids))
	for i := range domainBids {
		apiBids[i] = mapping.ToApiBid(&domainBids[i])
	}
	respond.JSON(w, http.StatusOK, apiBids)
}

// PlaceBid handles the logic for placing a bid on an auction.
func (h *AuctionsHandler) PlaceBid(w http.ResponseWriter, r *http.Request, auctionId string) {
	bidderID := middleware.CallerID(r)
	if bidderID == "" {
		respond.Unauthorized(w)
		return
	}

	var newBid api.NewBid
	if err := json.NewDecoder(r.Body).Decode(&newBid); err != nil {
		respond.BadRequest(w, "invalid request body")
		return
	}

	amount, err := models.NewMoney(newBid.Amount)
	if err != nil || !amount.IsPositive() {
		respond.BadRequest(w, "amount must be a positive decimal")
		return
	}

	clientToken := ""
	if newBid.ClientToken != nil {
		clientToken = *newBid.ClientToken
	}

	result, err := h.Engine.PlaceBid(r.Context(), auctionId, bidderID, amount, clientToken)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, api.BidResult{
		BidId:        result.BidId,
		CurrentPrice: result.CurrentPrice.String(),
		EndTime:      result.EndTime,
		BidCount:     result.BidCount,
	})
}

// BuyNow handles the logic for ending an auction at its buy-now price.
func (h *AuctionsHandler) BuyNow(w http.ResponseWriter, r *http.Request, auctionId string) {
	buyerID := middleware.CallerID(r)
	if buyerID == "" {
		respond.Unauthorized(w)
		return
	}

	txn, err := h.Engine.BuyNow(r.Context(), auctionId, buyerID)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, mapping.ToApiTransaction(txn))
}
