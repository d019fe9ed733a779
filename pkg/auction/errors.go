package auction

import (
	"errors"
	"fmt"

	"github.com/chrsmk/meeple-market/pkg/models"
)

// ErrAuctionEnded is returned when a bid or buy-now targets an auction that
// is no longer active, or whose deadline has passed even if the sweep has not
// flipped its status yet.
var ErrAuctionEnded = errors.New("auction has ended")

// ErrSelfBidForbidden is returned when the listing's seller tries to bid on
// or buy their own auction.
var ErrSelfBidForbidden = errors.New("seller cannot bid on their own auction")

// ErrBuyNowUnavailable is returned when buy-now is attempted on an auction
// with no buy-now price configured.
var ErrBuyNowUnavailable = errors.New("buy-now is not available for this auction")

// BidTooLowError is returned when a bid does not meet the minimum acceptable
// amount. It carries the computed minimum so the caller can tell the bidder
// what to offer.
type BidTooLowError struct {
	Minimum models.Money
}

func (e *BidTooLowError) Error() string {
	return fmt.Sprintf("bid too low: minimum acceptable amount is %s", e.Minimum.StringFixed(2))
}
