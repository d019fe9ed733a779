// Package respond centralizes JSON responses and the mapping from the
// engine's typed outcomes to transport status codes, so every handler
// reports the same failure the same way.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/chrsmk/meeple-market/pkg/api"
	"github.com/chrsmk/meeple-market/pkg/auction"
	"github.com/chrsmk/meeple-market/pkg/storage"
)

// JSON writes v as a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to write response", "error", err)
	}
}

// BadRequest reports a malformed or invalid request.
func BadRequest(w http.ResponseWriter, message string) {
	JSON(w, http.StatusBadRequest, api.Error{Code: "invalid_request", Message: message})
}

// Unauthorized reports a request with no caller identity.
func Unauthorized(w http.ResponseWriter) {
	JSON(w, http.StatusUnauthorized, api.Error{Code: "unauthorized", Message: "caller identity required"})
}

// Error maps a typed engine or storage outcome to its status code and error
// body. Unrecognized errors are reported as internal and logged; the typed
// kinds are expected outcomes and are not.
func Error(w http.ResponseWriter, err error) {
	var tooLow *auction.BidTooLowError
	switch {
	case errors.As(err, &tooLow):
		minimum := tooLow.Minimum.String()
		JSON(w, http.StatusUnprocessableEntity, api.Error{Code: "bid_too_low", Message: tooLow.Error(), Minimum: &minimum})
	case errors.Is(err, auction.ErrAuctionEnded):
		JSON(w, http.StatusConflict, api.Error{Code: "auction_ended", Message: "auction has ended"})
	case errors.Is(err, auction.ErrSelfBidForbidden):
		JSON(w, http.StatusForbidden, api.Error{Code: "self_bid_forbidden", Message: "seller cannot bid on their own auction"})
	case errors.Is(err, auction.ErrBuyNowUnavailable):
		JSON(w, http.StatusUnprocessableEntity, api.Error{Code: "buy_now_unavailable", Message: "buy-now is not available for this auction"})
	case errors.Is(err, storage.ErrListingNotFound),
		errors.Is(err, storage.ErrAuctionNotFound),
		errors.Is(err, storage.ErrUserNotFound),
		errors.Is(err, storage.ErrTransactionNotFound):
		JSON(w, http.StatusNotFound, api.Error{Code: "not_found", Message: "resource not found"})
	case errors.Is(err, storage.ErrListingUnavailable):
		JSON(w, http.StatusUnprocessableEntity, api.Error{Code: "listing_unavailable", Message: "listing is not available"})
	case errors.Is(err, storage.ErrConcurrentModification):
		JSON(w, http.StatusConflict, api.Error{Code: "concurrent_modification", Message: "a conflicting write was detected, re-fetch and retry"})
	case errors.Is(err, storage.ErrStoreUnavailable):
		JSON(w, http.StatusServiceUnavailable, api.Error{Code: "store_unavailable", Message: "store unavailable, retry later"})
	default:
		slog.Error("unhandled error", "error", err)
		JSON(w, http.StatusInternalServerError, api.Error{Code: "internal", Message: "internal error"})
	}
}
