package mapping

import (
	"fmt"

	"github.com/chrsmk/meeple-market/pkg/api"
	"github.com/chrsmk/meeple-market/pkg/models"
)

// ToApiListing converts a domain Listing model to an API Listing model.
func ToApiListing(listing *models.Listing) *api.Listing {
	out := &api.Listing{
		Id:              listing.Id,
		SellerId:        listing.SellerId,
		Title:           listing.Title,
		ListingType:     api.ListingType(listing.ListingType),
		Price:           moneyPtrToString(listing.Price),
		Currency:        listing.Currency,
		Condition:       api.ListingCondition(listing.Condition),
		LocationCity:    listing.LocationCity,
		LocationCountry: listing.LocationCountry,
		Description:     listing.Description,
		Status:          api.ListingStatus(listing.Status),
		CreatedAt:       listing.CreatedAt,
	}
	if len(listing.Photos) > 0 {
		photos := listing.Photos
		out.Photos = &photos
	}
	return out
}

// ToApiAuction converts a domain Auction model to an API Auction model. The
// minimum acceptable next bid is included so bidders never have to compute it
// client-side.
func ToApiAuction(auction *models.Auction) *api.Auction {
	out := &api.Auction{
		Id:               auction.Id,
		ListingId:        auction.ListingId,
		SellerId:         auction.SellerId,
		StartingPrice:    auction.StartingPrice.String(),
		CurrentPrice:     auction.CurrentPrice.String(),
		MinimumBid:       auction.MinimumBid().String(),
		BidIncrement:     auction.BidIncrement.String(),
		ReservePrice:     moneyPtrToString(auction.ReservePrice),
		BuyNowPrice:      moneyPtrToString(auction.BuyNowPrice),
		EndTime:          auction.EndTime,
		ExtensionSeconds: auction.ExtensionSeconds,
		Status:           api.AuctionStatus(auction.Status),
		BidCount:         auction.BidCount,
	}
	if auction.WinnerId != "" {
		winner := auction.WinnerId
		out.WinnerId = &winner
	}
	return out
}

// ToApiBid converts a domain Bid model to an API Bid model.
func ToApiBid(bid *models.Bid) *api.Bid {
	return &api.Bid{
		Id:        bid.Id,
		AuctionId: bid.AuctionId,
		BidderId:  bid.BidderId,
		Amount:    bid.Amount.String(),
		IsProxy:   bid.IsProxy,
		CreatedAt: bid.CreatedAt,
	}
}

// ToApiTransaction converts a domain Transaction model to an API Transaction model.
func ToApiTransaction(txn *models.Transaction) *api.Transaction {
	return &api.Transaction{
		Id:           txn.Id,
		ListingId:    txn.ListingId,
		BuyerId:      txn.BuyerId,
		SellerId:     txn.SellerId,
		Amount:       txn.Amount.String(),
		PlatformFee:  txn.PlatformFee.String(),
		VatAmount:    txn.VatAmount.String(),
		Currency:     txn.Currency,
		EscrowStatus: string(txn.EscrowStatus),
		CompletedAt:  txn.CompletedAt,
	}
}

// ToApiUser converts a domain User model to an API User model.
func ToApiUser(user *models.User) *api.User {
	return &api.User{
		Id:              user.Id,
		Username:        user.Username,
		Email:           user.Email,
		LocationCity:    stringPtr(user.LocationCity),
		LocationCountry: stringPtr(user.LocationCountry),
		CreatedAt:       user.CreatedAt,
	}
}

// ToDomainNewListing converts an API NewListing model to a domain Listing
// model. Identity, status and timestamps are assigned by the handler.
func ToDomainNewListing(newListing *api.NewListing) (*models.Listing, error) {
	listing := &models.Listing{
		Title:           newListing.Title,
		ListingType:     models.ListingType(newListing.ListingType),
		Currency:        newListing.Currency,
		Condition:       models.Condition(newListing.Condition),
		LocationCity:    newListing.LocationCity,
		LocationCountry: newListing.LocationCountry,
		Description:     newListing.Description,
	}
	if newListing.Photos != nil {
		listing.Photos = *newListing.Photos
	}
	if newListing.Price != nil {
		price, err := models.NewMoney(*newListing.Price)
		if err != nil {
			return nil, fmt.Errorf("price: %w", err)
		}
		listing.Price = &price
	}
	return listing, nil
}

// ToDomainNewAuction converts an API NewAuction model to a domain Auction
// model. The current price starts at the starting price.
func ToDomainNewAuction(newAuction *api.NewAuction) (*models.Auction, error) {
	starting, err := models.NewMoney(newAuction.StartingPrice)
	if err != nil {
		return nil, fmt.Errorf("starting_price: %w", err)
	}
	increment, err := models.NewMoney(newAuction.BidIncrement)
	if err != nil {
		return nil, fmt.Errorf("bid_increment: %w", err)
	}

	auction := &models.Auction{
		StartingPrice: starting,
		CurrentPrice:  starting,
		BidIncrement:  increment,
		EndTime:       newAuction.EndTime,
	}
	if newAuction.ReservePrice != nil {
		reserve, err := models.NewMoney(*newAuction.ReservePrice)
		if err != nil {
			return nil, fmt.Errorf("reserve_price: %w", err)
		}
		auction.ReservePrice = &reserve
	}
	if newAuction.BuyNowPrice != nil {
		buyNow, err := models.NewMoney(*newAuction.BuyNowPrice)
		if err != nil {
			return nil, fmt.Errorf("buy_now_price: %w", err)
		}
		auction.BuyNowPrice = &buyNow
	}
	if newAuction.ExtensionSeconds != nil {
		auction.ExtensionSeconds = *newAuction.ExtensionSeconds
	}
	return auction, nil
}

// ToDomainNewUser converts an API NewUser model to a domain User model.
func ToDomainNewUser(newUser *api.NewUser) *models.User {
	user := &models.User{
		Id:       newUser.Id,
		Username: newUser.Username,
		Email:    newUser.Email,
	}
	if newUser.LocationCity != nil {
		user.LocationCity = *newUser.LocationCity
	}
	if newUser.LocationCountry != nil {
		user.LocationCountry = *newUser.LocationCountry
	}
	return user
}

func moneyPtrToString(m *models.Money) *string {
	if m == nil {
		return nil
	}
	s := m.String()
	return &s
}

func stringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
