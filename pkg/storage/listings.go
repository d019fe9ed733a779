package storage

import (
	"context"

	"github.com/chrsmk/meeple-market/pkg/models"
)

// ListingReader defines the interface for reading listings.
type ListingReader interface {
	// GetListing retrieves a listing by its ID.
	GetListing(ctx context.Context, listingID string) (*models.Listing, error)

	// ListListings retrieves listings in the given status, newest first.
	ListListings(ctx context.Context, status models.ListingStatus, limit int32) ([]models.Listing, error)

	// ListListingsBySeller retrieves all listings owned by a seller.
	ListListingsBySeller(ctx context.Context, sellerID string) ([]models.Listing, error)
}

// ListingWriter defines the interface for creating and managing listings.
type ListingWriter interface {
	// CreateListing persists a new listing. For auction-type listings the
	// associated auction record is created in the same atomic write, so a
	// listing and its auction are never observable separately.
	CreateListing(ctx context.Context, listing *models.Listing, auction *models.Auction) error

	// DeactivateListing soft-deletes an active listing on seller withdrawal.
	DeactivateListing(ctx context.Context, listingID, sellerID string) error

	// PurchaseListing settles a fixed-price sale: listing to sold plus the
	// settlement transaction, in one atomic write.
	PurchaseListing(ctx context.Context, listing *models.Listing, txn *models.Transaction) error
}

// ListingStore combines the reader and writer interfaces.
type ListingStore interface {
	ListingReader
	ListingWriter
}
