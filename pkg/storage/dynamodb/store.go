package dynamodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chrsmk/meeple-market/pkg/storage"
)

// DynamoDBAPI captures the subset of the DynamoDB client used by the store.
// Defined here so tests can substitute a mock.
type DynamoDBAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	TransactWriteItems(ctx context.Context, params *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

// Store implements the Storage interface using AWS DynamoDB.
type Store struct {
	Client                        DynamoDBAPI
	ListingsTableName             string
	AuctionsTableName             string
	BidsTableName                 string
	TransactionsTableName         string
	UsersTableName                string
	WebsocketConnectionsTableName string
}

// Tables names the DynamoDB tables backing the store.
type Tables struct {
	Listings             string
	Auctions             string
	Bids                 string
	Transactions         string
	Users                string
	WebsocketConnections string
}

// New creates a new Store.
func New(client DynamoDBAPI, tables Tables) *Store {
	return &Store{
		Client:                        client,
		ListingsTableName:             tables.Listings,
		AuctionsTableName:             tables.Auctions,
		BidsTableName:                 tables.Bids,
		TransactionsTableName:         tables.Transactions,
		UsersTableName:                tables.Users,
		WebsocketConnectionsTableName: tables.WebsocketConnections,
	}
}

// Make sure we conform to the interface
var _ storage.Storage = (*Store)(nil)

// mapWriteError translates DynamoDB failures into the store error taxonomy.
// A failed condition means another writer got there first; anything else is
// an unknown-outcome store failure the caller may retry idempotently.
func mapWriteError(op string, err error) error {
	var tce *types.TransactionCanceledException
	if errors.As(err, &tce) {
		for _, reason := range tce.CancellationReasons {
			if reason.Code != nil && *reason.Code == "ConditionalCheckFailed" {
				return fmt.Errorf("%s: %w", op, storage.ErrConcurrentModification)
			}
		}
	}
	var ccf *types.ConditionalCheckFailedException
	if errors.As(err, &ccf) {
		return fmt.Errorf("%s: %w", op, storage.ErrConcurrentModification)
	}
	return fmt.Errorf("%s: %w: %v", op, storage.ErrStoreUnavailable, err)
}

// mapReadError translates DynamoDB read failures.
func mapReadError(op string, err error) error {
	return fmt.Errorf("%s: %w: %v", op, storage.ErrStoreUnavailable, err)
}
