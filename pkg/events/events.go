package events

import (
	"context"
	"time"

	"github.com/chrsmk/meeple-market/pkg/models"
)

// EventType identifies what happened on an auction.
type EventType string

const (
	EventBidPlaced    EventType = "bidPlaced"
	EventAuctionEnded EventType = "auctionEnded"
)

// Event is the payload published when an auction changes state. Delivery is
// best effort: the write path never fails because of a publish error.
type Event struct {
	Type      EventType    `json:"type"`
	AuctionId string       `json:"auction_id"`
	BidId     string       `json:"bid_id,omitempty"`
	BidderId  string       `json:"bidder_id,omitempty"`
	WinnerId  string       `json:"winner_id,omitempty"`
	Amount    models.Money `json:"amount"`
	BidCount  int64        `json:"bid_count"`
	EndTime   time.Time    `json:"end_time"`
}

// Publisher defines the interface for publishing auction events for
// asynchronous fan-out to live viewers.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// NoOpPublisher is a publisher that does nothing. Used in tests and when no
// queue is configured.
type NoOpPublisher struct{}

// Publish does nothing.
func (p *NoOpPublisher) Publish(ctx context.Context, event Event) error {
	return nil
}
