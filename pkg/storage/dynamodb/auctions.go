package dynamodb

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chrsmk/meeple-market/pkg/models"
	"github.com/chrsmk/meeple-market/pkg/storage"
)

// auctionStatusGSI indexes auctions by status with end_time as the sort key,
// which serves both the active-auction listing and the expiry sweep.
const auctionStatusGSI = "status-end_time-index"

// GetAuction retrieves an auction from DynamoDB by its ID.
func (s *Store) GetAuction(ctx context.Context, auctionID string) (*models.Auction, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"id": auctionID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal auction ID: %w", err)
	}

	result, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.AuctionsTableName),
		Key:       key,
	})
	if err != nil {
		return nil, mapReadError("failed to get auction", err)
	}

	if result.Item == nil {
		return nil, fmt.Errorf("auction %s: %w", auctionID, storage.ErrAuctionNotFound)
	}

	var auction models.Auction
	if err := attributevalue.UnmarshalMap(result.Item, &auction); err != nil {
		return nil, fmt.Errorf("failed to unmarshal auction: %w", err)
	}

	return &auction, nil
}

// ListActiveAuctions retrieves auctions that are open for bidding, ordered by
// soonest deadline first.
func (s *Store) ListActiveAuctions(ctx context.Context, limit int32) ([]models.Auction, error) {
	return s.queryAuctionsByStatus(ctx, "#status = :status AND end_time > :now", time.Now(), limit)
}

// ListExpiredAuctions retrieves auctions still marked active whose deadline
// has passed, for the expiry sweep to settle.
func (s *Store) ListExpiredAuctions(ctx context.Context, now time.Time, limit int32) ([]models.Auction, error) {
	return s.queryAuctionsByStatus(ctx, "#status = :status AND end_time <= :now", now, limit)
}

func (s *Store) queryAuctionsByStatus(ctx context.Context, keyCondition string, now time.Time, limit int32) ([]models.Auction, error) {
	nowStr, err := now.MarshalText()
	if err != nil {
		return nil, fmt.Errorf("failed to marshal cutoff time: %w", err)
	}

	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.AuctionsTableName),
		IndexName:              aws.String(auctionStatusGSI),
		KeyConditionExpression: aws.String(keyCondition),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(models.AuctionActive)},
			":now":    &types.AttributeValueMemberS{Value: string(nowStr)},
		},
	}
	if limit > 0 {
		input.Limit = aws.Int32(limit)
	}

	result, err := s.Client.Query(ctx, input)
	if err != nil {
		return nil, mapReadError("failed to query auctions by status", err)
	}

	var auctions []models.Auction
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &auctions); err != nil {
		return nil, fmt.Errorf("failed to unmarshal auctions: %w", err)
	}

	return auctions, nil
}
