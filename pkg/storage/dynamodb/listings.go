package dynamodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chrsmk/meeple-market/pkg/models"
	"github.com/chrsmk/meeple-market/pkg/storage"
)

const (
	listingStatusGSI = "status-created_at-index"
	listingSellerGSI = "seller_id-index"
)

// CreateListing persists a new listing, and for auction-type listings the
// auction record in the same transaction so the two are never observable
// separately.
func (s *Store) CreateListing(ctx context.Context, listing *models.Listing, auction *models.Auction) error {
	listingAV, err := attributevalue.MarshalMap(listing)
	if err != nil {
		return fmt.Errorf("failed to marshal listing: %w", err)
	}

	items := []types.TransactWriteItem{
		{
			Put: &types.Put{
				TableName:           aws.String(s.ListingsTableName),
				Item:                listingAV,
				ConditionExpression: aws.String("attribute_not_exists(id)"),
			},
		},
	}

	if auction != nil {
		auctionAV, err := attributevalue.MarshalMap(auction)
		if err != nil {
			return fmt.Errorf("failed to marshal auction: %w", err)
		}
		items = append(items, types.TransactWriteItem{
			Put: &types.Put{
				TableName:           aws.String(s.AuctionsTableName),
				Item:                auctionAV,
				ConditionExpression: aws.String("attribute_not_exists(id)"),
			},
		})
	}

	if _, err := s.Client.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items}); err != nil {
		return mapWriteError("failed to create listing", err)
	}

	return nil
}

// GetListing retrieves a listing from DynamoDB by its ID.
func (s *Store) GetListing(ctx context.Context, listingID string) (*models.Listing, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"id": listingID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal listing ID: %w", err)
	}

	result, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.ListingsTableName),
		Key:       key,
	})
	if err != nil {
		return nil, mapReadError("failed to get listing", err)
	}

	if result.Item == nil {
		return nil, fmt.Errorf("listing %s: %w", listingID, storage.ErrListingNotFound)
	}

	var listing models.Listing
	if err := attributevalue.UnmarshalMap(result.Item, &listing); err != nil {
		return nil, fmt.Errorf("failed to unmarshal listing: %w", err)
	}

	return &listing, nil
}

// ListListings retrieves listings in the given status, newest first.
func (s *Store) ListListings(ctx context.Context, status models.ListingStatus, limit int32) ([]models.Listing, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.ListingsTableName),
		IndexName:              aws.String(listingStatusGSI),
		KeyConditionExpression: aws.String("#status = :status"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		},
		ScanIndexForward: aws.Bool(false),
	}
	if limit > 0 {
		input.Limit = aws.Int32(limit)
	}

	result, err := s.Client.Query(ctx, input)
	if err != nil {
		return nil, mapReadError("failed to query listings by status", err)
	}

	var listings []models.Listing
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &listings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal listings: %w", err)
	}

	return listings, nil
}

// ListListingsBySeller retrieves all listings owned by a seller.
func (s *Store) ListListingsBySeller(ctx context.Context, sellerID string) ([]models.Listing, error) {
	result, err := s.Client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(s.ListingsTableName),
		IndexName:              aws.String(listingSellerGSI),
		KeyConditionExpression: aws.String("seller_id = :seller"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":seller": &types.AttributeValueMemberS{Value: sellerID},
		},
	})
	if err != nil {
		return nil, mapReadError("failed to query listings by seller", err)
	}

	var listings []models.Listing
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &listings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal listings: %w", err)
	}

	return listings, nil
}

// DeactivateListing soft-deletes an active listing. The condition pins both
// ownership and the active status, so a sold listing can never be withdrawn.
func (s *Store) DeactivateListing(ctx context.Context, listingID, sellerID string) error {
	nowAV, err := attributevalue.Marshal(time.Now())
	if err != nil {
		return fmt.Errorf("failed to marshal timestamp: %w", err)
	}

	_, err = s.Client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(s.ListingsTableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: listingID},
		},
		UpdateExpression:    aws.String("SET #status = :inactive, updated_at = :now"),
		ConditionExpression: aws.String("seller_id = :seller AND #status = :active"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":inactive": &types.AttributeValueMemberS{Value: string(models.ListingInactive)},
			":active":   &types.AttributeValueMemberS{Value: string(models.ListingActive)},
			":seller":   &types.AttributeValueMemberS{Value: sellerID},
			":now":      nowAV,
		},
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return fmt.Errorf("listing %s: %w", listingID, storage.ErrListingUnavailable)
		}
		return mapWriteError("failed to deactivate listing", err)
	}

	return nil
}

// PurchaseListing settles a fixed-price sale: the listing flips to sold and
// the transaction is inserted in one atomic write. The condition on the
// listing row means two concurrent purchases cannot both commit.
func (s *Store) PurchaseListing(ctx context.Context, listing *models.Listing, txn *models.Transaction) error {
	nowAV, err := attributevalue.Marshal(time.Now())
	if err != nil {
		return fmt.Errorf("failed to marshal timestamp: %w", err)
	}
	txnAV, err := attributevalue.MarshalMap(txn)
	if err != nil {
		return fmt.Errorf("failed to marshal transaction: %w", err)
	}

	input := &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Update: &types.Update{
					TableName: aws.String(s.ListingsTableName),
					Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: listing.Id},
					},
					UpdateExpression:    aws.String("SET #status = :sold, updated_at = :now"),
					ConditionExpression: aws.String("#status = :active AND listing_type = :fixed"),
					ExpressionAttributeNames: map[string]string{
						"#status": "status",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":sold":   &types.AttributeValueMemberS{Value: string(models.ListingSold)},
						":active": &types.AttributeValueMemberS{Value: string(models.ListingActive)},
						":fixed":  &types.AttributeValueMemberS{Value: string(models.ListingFixed)},
						":now":    nowAV,
					},
				},
			},
			{
				Put: &types.Put{
					TableName:           aws.String(s.TransactionsTableName),
					Item:                txnAV,
					ConditionExpression: aws.String("attribute_not_exists(id)"),
				},
			},
		},
	}

	if _, err := s.Client.TransactWriteItems(ctx, input); err != nil {
		mapped := mapWriteError("failed to purchase listing", err)
		if errors.Is(mapped, storage.ErrConcurrentModification) {
			return fmt.Errorf("listing %s: %w", listing.Id, storage.ErrListingUnavailable)
		}
		return mapped
	}

	return nil
}
