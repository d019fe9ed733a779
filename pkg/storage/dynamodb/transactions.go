package dynamodb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chrsmk/meeple-market/pkg/models"
	"github.com/chrsmk/meeple-market/pkg/storage"
)

const transactionBuyerGSI = "buyer_id-created_at-index"

// GetTransaction retrieves a transaction from DynamoDB by its ID.
func (s *Store) GetTransaction(ctx context.Context, txID string) (*models.Transaction, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"id": txID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal transaction ID: %w", err)
	}

	result, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.TransactionsTableName),
		Key:       key,
	})
	if err != nil {
		return nil, mapReadError("failed to get transaction", err)
	}

	if result.Item == nil {
		return nil, fmt.Errorf("transaction %s: %w", txID, storage.ErrTransactionNotFound)
	}

	var txn models.Transaction
	if err := attributevalue.UnmarshalMap(result.Item, &txn); err != nil {
		return nil, fmt.Errorf("failed to unmarshal transaction: %w", err)
	}

	return &txn, nil
}

// ListTransactionsByBuyer retrieves all transactions for a buyer, newest first.
func (s *Store) ListTransactionsByBuyer(ctx context.Context, buyerID string) ([]models.Transaction, error) {
	result, err := s.Client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(s.TransactionsTableName),
		IndexName:              aws.String(transactionBuyerGSI),
		KeyConditionExpression: aws.String("buyer_id = :buyer"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":buyer": &types.AttributeValueMemberS{Value: buyerID},
		},
		ScanIndexForward: aws.Bool(false),
	})
	if err != nil {
		return nil, mapReadError("failed to query transactions by buyer", err)
	}

	var txns []models.Transaction
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &txns); err != nil {
		return nil, fmt.Errorf("failed to unmarshal transactions: %w", err)
	}

	return txns, nil
}
