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
)

// CommitBid atomically appends a bid to the ledger and advances the auction
// row. The auction update is conditioned on the version the engine validated
// against AND the status still being active, so a concurrent bid, buy-now or
// sweep on the same auction cancels the whole transaction instead of losing
// an update.
func (s *Store) CommitBid(ctx context.Context, auction *models.Auction, bid *models.Bid, newEndTime time.Time) error {
	now := time.Now()

	bidAV, err := attributevalue.MarshalMap(bid)
	if err != nil {
		return fmt.Errorf("failed to marshal bid: %w", err)
	}
	amountAV, err := attributevalue.Marshal(bid.Amount)
	if err != nil {
		return fmt.Errorf("failed to marshal bid amount: %w", err)
	}
	endTimeAV, err := attributevalue.Marshal(newEndTime)
	if err != nil {
		return fmt.Errorf("failed to marshal end time: %w", err)
	}
	nowAV, err := attributevalue.Marshal(now)
	if err != nil {
		return fmt.Errorf("failed to marshal timestamp: %w", err)
	}

	input := &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				// Operation 1: Advance the auction row under the version guard.
				Update: &types.Update{
					TableName: aws.String(s.AuctionsTableName),
					Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: auction.Id},
					},
					UpdateExpression:    aws.String("SET current_price = :amount, end_time = :end_time, bid_count = bid_count + :inc, version = version + :inc, updated_at = :now"),
					ConditionExpression: aws.String("version = :version AND #status = :active"),
					ExpressionAttributeNames: map[string]string{
						"#status": "status",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":amount":   amountAV,
						":end_time": endTimeAV,
						":version":  &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", auction.Version)},
						":active":   &types.AttributeValueMemberS{Value: string(models.AuctionActive)},
						":inc":      &types.AttributeValueMemberN{Value: "1"},
						":now":      nowAV,
					},
				},
			},
			{
				// Operation 2: Append the bid to the ledger.
				Put: &types.Put{
					TableName:           aws.String(s.BidsTableName),
					Item:                bidAV,
					ConditionExpression: aws.String("attribute_not_exists(auction_id) AND attribute_not_exists(created_at)"),
				},
			},
		},
	}

	if _, err := s.Client.TransactWriteItems(ctx, input); err != nil {
		return mapWriteError("failed to commit bid", err)
	}

	return nil
}
