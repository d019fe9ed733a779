package models

import (
	"time"
)

// ListingType defines what kind of sale a listing offers.
type ListingType string

const (
	ListingFixed   ListingType = "fixed"
	ListingAuction ListingType = "auction"
	ListingTrade   ListingType = "trade"
)

// ListingStatus defines the possible states of a listing.
type ListingStatus string

const (
	ListingActive   ListingStatus = "active"
	ListingSold     ListingStatus = "sold"
	ListingInactive ListingStatus = "inactive"
)

// Condition is the physical condition of the boxed game.
type Condition string

const (
	ConditionNew        Condition = "new"
	ConditionLikeNew    Condition = "like_new"
	ConditionVeryGood   Condition = "very_good"
	ConditionGood       Condition = "good"
	ConditionAcceptable Condition = "acceptable"
)

// AuctionStatus defines the possible states of an auction. Transitions are
// one-directional: active -> {ended, cancelled}. Reserved is a pre-active
// hold and is never reachable from active.
type AuctionStatus string

const (
	AuctionReserved  AuctionStatus = "reserved"
	AuctionActive    AuctionStatus = "active"
	AuctionEnded     AuctionStatus = "ended"
	AuctionCancelled AuctionStatus = "cancelled"
)

// EscrowStatus tracks downstream payment handling of a transaction.
type EscrowStatus string

const (
	EscrowPending  EscrowStatus = "pending"
	EscrowReleased EscrowStatus = "released"
	EscrowRefunded EscrowStatus = "refunded"
)

// Listing represents a sellable item on the marketplace.
type Listing struct {
	Id              string        `dynamodbav:"id"`
	SellerId        string        `dynamodbav:"seller_id"`
	Title           string        `dynamodbav:"title"`
	ListingType     ListingType   `dynamodbav:"listing_type"`
	Price           *Money        `dynamodbav:"price,omitempty"` // fixed-price listings only
	Currency        string        `dynamodbav:"currency"`
	Condition       Condition     `dynamodbav:"condition"`
	LocationCity    string        `dynamodbav:"location_city"`
	LocationCountry string        `dynamodbav:"location_country"`
	Photos          []string      `dynamodbav:"photos,omitempty"`
	Description     string        `dynamodbav:"description"`
	Status          ListingStatus `dynamodbav:"status"`
	CreatedAt       time.Time     `dynamodbav:"created_at"`
	UpdatedAt       time.Time     `dynamodbav:"updated_at"`
}

// Auction is the bidding contract for exactly one auction-type listing.
// SellerId is denormalized from the listing so bid validation needs a single
// point read. Version backs the optimistic concurrency guard: every write to
// the auction row increments it and is conditioned on the value the writer
// last read.
type Auction struct {
	Id               string        `dynamodbav:"id"`
	ListingId        string        `dynamodbav:"listing_id"`
	SellerId         string        `dynamodbav:"seller_id"`
	StartingPrice    Money         `dynamodbav:"starting_price"`
	CurrentPrice     Money         `dynamodbav:"current_price"`
	ReservePrice     *Money        `dynamodbav:"reserve_price,omitempty"`
	BidIncrement     Money         `dynamodbav:"bid_increment"`
	EndTime          time.Time     `dynamodbav:"end_time"`
	ExtensionSeconds int64         `dynamodbav:"extension_seconds"`
	BuyNowPrice      *Money        `dynamodbav:"buy_now_price,omitempty"`
	Status           AuctionStatus `dynamodbav:"status"`
	WinnerId         string        `dynamodbav:"winner_id,omitempty"`
	BidCount         int64         `dynamodbav:"bid_count"`
	Version          int64         `dynamodbav:"version"`
	CreatedAt        time.Time     `dynamodbav:"created_at"`
	UpdatedAt        time.Time     `dynamodbav:"updated_at"`
}

// Extension returns the anti-snipe window as a duration.
func (a *Auction) Extension() time.Duration {
	return time.Duration(a.ExtensionSeconds) * time.Second
}

// Expired reports whether the auction deadline has passed at the given time.
// An auction past its deadline is treated as ended for bidding purposes even
// if the sweep has not yet flipped its status.
func (a *Auction) Expired(now time.Time) bool {
	return !now.Before(a.EndTime)
}

// MinimumBid is the lowest acceptable next bid: current price plus increment.
func (a *Auction) MinimumBid() Money {
	return a.CurrentPrice.Add(a.BidIncrement)
}

// Bid is the immutable record of one accepted bid. The bids table is the
// authoritative ledger; rejected attempts never produce a record.
type Bid struct {
	Id        string    `dynamodbav:"id"`
	AuctionId string    `dynamodbav:"auction_id"`
	BidderId  string    `dynamodbav:"bidder_id"`
	Amount    Money     `dynamodbav:"amount"`
	IsProxy   bool      `dynamodbav:"is_proxy"`
	CreatedAt time.Time `dynamodbav:"created_at"`
}

// Transaction is the settlement record produced when a sale completes, either
// by auction win, buy-now, or a fixed-price purchase.
type Transaction struct {
	Id           string       `dynamodbav:"id"`
	ListingId    string       `dynamodbav:"listing_id"`
	BuyerId      string       `dynamodbav:"buyer_id"`
	SellerId     string       `dynamodbav:"seller_id"`
	Amount       Money        `dynamodbav:"amount"`
	PlatformFee  Money        `dynamodbav:"platform_fee"`
	VatAmount    Money        `dynamodbav:"vat_amount"`
	Currency     string       `dynamodbav:"currency"`
	EscrowStatus EscrowStatus `dynamodbav:"escrow_status"`
	CompletedAt  time.Time    `dynamodbav:"completed_at"`
	CreatedAt    time.Time    `dynamodbav:"created_at"`
}

// User is the marketplace profile synced from the identity provider. The
// service trusts the caller id as already authenticated upstream.
type User struct {
	Id              string    `dynamodbav:"id"`
	Username        string    `dynamodbav:"username"`
	Email           string    `dynamodbav:"email"`
	LocationCity    string    `dynamodbav:"location_city,omitempty"`
	LocationCountry string    `dynamodbav:"location_country,omitempty"`
	CreatedAt       time.Time `dynamodbav:"created_at"`
	UpdatedAt       time.Time `dynamodbav:"updated_at"`
}
