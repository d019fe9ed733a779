package storage

// BiddingStore is the slice of the data layer the auction engine depends on:
// auction reads, the conditional writes that advance auction state, and the
// bid ledger.
type BiddingStore interface {
	AuctionStore
	BidReader
}

// ApiStore defines the complete set of operations needed by the HTTP API.
// Components should depend on the more granular interfaces where they can.
type ApiStore interface {
	ListingStore
	AuctionStore
	BidReader
	TransactionReader
	UserStore
}

// Storage defines the root interface for the entire data layer.
type Storage interface {
	ApiStore
	WebSocketManager
}
