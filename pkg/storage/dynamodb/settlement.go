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

// CompleteBuyNow ends the auction at its buy-now price and settles the sale.
// Auction, listing and transaction move together or not at all; the
// status = active condition makes buy-now and any concurrent bid or sweep
// mutually exclusive terminal operations.
func (s *Store) CompleteBuyNow(ctx context.Context, auction *models.Auction, txn *models.Transaction) error {
	items, err := s.settlementItems(auction, txn.BuyerId, txn, models.ListingSold)
	if err != nil {
		return err
	}

	if _, err := s.Client.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items}); err != nil {
		return mapWriteError("failed to complete buy-now", err)
	}

	return nil
}

// SettleAuction transitions an expired auction out of active. With a winner
// the listing is marked sold and the transaction inserted; without one (no
// bids, or reserve not met) the listing goes inactive and no transaction is
// written. The status = active guard makes the sweep idempotent: a second
// sweep of the same auction fails the condition and reports a conflict the
// caller treats as already-settled.
func (s *Store) SettleAuction(ctx context.Context, auction *models.Auction, winnerID string, txn *models.Transaction) error {
	listingStatus := models.ListingInactive
	if winnerID != "" {
		listingStatus = models.ListingSold
	}

	items, err := s.settlementItems(auction, winnerID, txn, listingStatus)
	if err != nil {
		return err
	}

	if _, err := s.Client.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items}); err != nil {
		return mapWriteError("failed to settle auction", err)
	}

	return nil
}

// settlementItems builds the transact items shared by buy-now and sweep
// settlement: auction to ended (conditioned on still-active and the version
// read), listing status flip, and optionally the transaction insert.
func (s *Store) settlementItems(auction *models.Auction, winnerID string, txn *models.Transaction, listingStatus models.ListingStatus) ([]types.TransactWriteItem, error) {
	now := time.Now()
	nowAV, err := attributevalue.Marshal(now)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal timestamp: %w", err)
	}

	finalPrice := auction.CurrentPrice
	if txn != nil {
		finalPrice = txn.Amount
	}
	priceAV, err := attributevalue.Marshal(finalPrice)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal final price: %w", err)
	}

	items := []types.TransactWriteItem{
		{
			// Operation 1: End the auction under the status and version guard.
			Update: &types.Update{
				TableName: aws.String(s.AuctionsTableName),
				Key: map[string]types.AttributeValue{
					"id": &types.AttributeValueMemberS{Value: auction.Id},
				},
				UpdateExpression:    aws.String("SET #status = :ended, winner_id = :winner, current_price = :price, version = version + :inc, updated_at = :now"),
				ConditionExpression: aws.String("#status = :active AND version = :version"),
				ExpressionAttributeNames: map[string]string{
					"#status": "status",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":ended":   &types.AttributeValueMemberS{Value: string(models.AuctionEnded)},
					":active":  &types.AttributeValueMemberS{Value: string(models.AuctionActive)},
					":winner":  &types.AttributeValueMemberS{Value: winnerID},
					":price":   priceAV,
					":version": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", auction.Version)},
					":inc":     &types.AttributeValueMemberN{Value: "1"},
					":now":     nowAV,
				},
			},
		},
		{
			// Operation 2: Flip the listing status.
			Update: &types.Update{
				TableName: aws.String(s.ListingsTableName),
				Key: map[string]types.AttributeValue{
					"id": &types.AttributeValueMemberS{Value: auction.ListingId},
				},
				UpdateExpression:    aws.String("SET #status = :listing_status, updated_at = :now"),
				ConditionExpression: aws.String("attribute_exists(id)"),
				ExpressionAttributeNames: map[string]string{
					"#status": "status",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":listing_status": &types.AttributeValueMemberS{Value: string(listingStatus)},
					":now":            nowAV,
				},
			},
		},
	}

	if txn != nil {
		txnAV, err := attributevalue.MarshalMap(txn)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal transaction: %w", err)
		}
		items = append(items, types.TransactWriteItem{
			// Operation 3: Insert the settlement transaction.
			Put: &types.Put{
				TableName:           aws.String(s.TransactionsTableName),
				Item:                txnAV,
				ConditionExpression: aws.String("attribute_not_exists(id)"),
			},
		})
	}

	return items, nil
}
