package dynamodb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chrsmk/meeple-market/pkg/models"
)

// ListBids retrieves the accepted bids for an auction, most recent first.
// The bids table is keyed by auction_id with created_at as the sort key, so
// a reverse query gives the display order directly.
func (s *Store) ListBids(ctx context.Context, auctionID string, limit int32) ([]models.Bid, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.BidsTableName),
		KeyConditionExpression: aws.String("auction_id = :auction"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":auction": &types.AttributeValueMemberS{Value: auctionID},
		},
		ScanIndexForward: aws.Bool(false),
	}
	if limit > 0 {
		input.Limit = aws.Int32(limit)
	}

	result, err := s.Client.Query(ctx, input)
	if err != nil {
		return nil, mapReadError("failed to query bids", err)
	}

	var bids []models.Bid
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &bids); err != nil {
		return nil, fmt.Errorf("failed to unmarshal bids: %w", err)
	}

	return bids, nil
}

// HighestBid retrieves the highest accepted bid for an auction, or nil when
// no bid was ever accepted. Accepted amounts are strictly increasing, so the
// most recent bid is the highest.
func (s *Store) HighestBid(ctx context.Context, auctionID string) (*models.Bid, error) {
	bids, err := s.ListBids(ctx, auctionID, 1)
	if err != nil {
		return nil, err
	}
	if len(bids) == 0 {
		return nil, nil
	}
	return &bids[0], nil
}
