package websockets

import (
	"time"

	"github.com/chrsmk/meeple-market/pkg/models"
)

// MessageType defines the type of a WebSocket message.
type MessageType string

const (
	// MessageTypeBidPlaced announces a newly accepted bid to auction viewers.
	MessageTypeBidPlaced MessageType = "bidPlaced"
	// MessageTypeAuctionEnded announces that an auction reached a terminal state.
	MessageTypeAuctionEnded MessageType = "auctionEnded"
)

// Message represents a generic WebSocket message.
type Message struct {
	Type    MessageType `json:"type"`
	Payload interface{} `json:"payload"`
}

// BidPlacedPayload is the payload for a bidPlaced message.
type BidPlacedPayload struct {
	AuctionID    string       `json:"auction_id"`
	BidderID     string       `json:"bidder_id"`
	CurrentPrice models.Money `json:"current_price"`
	BidCount     int64        `json:"bid_count"`
	EndTime      time.Time    `json:"end_time"`
}

// AuctionEndedPayload is the payload for an auctionEnded message.
type AuctionEndedPayload struct {
	AuctionID  string       `json:"auction_id"`
	WinnerID   string       `json:"winner_id,omitempty"`
	FinalPrice models.Money `json:"final_price"`
}
