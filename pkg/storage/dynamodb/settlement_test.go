package dynamodb

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chrsmk/meeple-market/pkg/models"
	"github.com/chrsmk/meeple-market/pkg/storage"
	"github.com/chrsmk/meeple-market/pkg/storage/dynamodb/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestStore(client DynamoDBAPI) *Store {
	return &Store{
		Client:                client,
		ListingsTableName:     "listings",
		AuctionsTableName:     "auctions",
		BidsTableName:         "bids",
		TransactionsTableName: "transactions",
	}
}

func TestSettleAuction(t *testing.T) {
	auction := &models.Auction{
		Id:           "auction1",
		ListingId:    "listing1",
		SellerId:     "seller1",
		CurrentPrice: models.MustMoney("42.50"),
		Version:      7,
		Status:       models.AuctionActive,
	}
	txn := &models.Transaction{
		Id:        "txn1",
		ListingId: "listing1",
		BuyerId:   "bidder1",
		SellerId:  "seller1",
		Amount:    models.MustMoney("42.50"),
	}

	t.Run("With Winner", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := newTestStore(mockClient)

		mockClient.On("TransactWriteItems", mock.Anything, mock.MatchedBy(func(input *dynamodb.TransactWriteItemsInput) bool {
			// auction update, listing update, transaction insert
			return len(input.TransactItems) == 3
		})).Once().Return(&dynamodb.TransactWriteItemsOutput{}, nil)

		err := store.SettleAuction(context.Background(), auction, "bidder1", txn)

		assert.NoError(t, err)
		mockClient.AssertExpectations(t)
	})

	t.Run("Without Winner", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := newTestStore(mockClient)

		mockClient.On("TransactWriteItems", mock.Anything, mock.MatchedBy(func(input *dynamodb.TransactWriteItemsInput) bool {
			// no transaction item when there is no winner
			return len(input.TransactItems) == 2
		})).Once().Return(&dynamodb.TransactWriteItemsOutput{}, nil)

		err := store.SettleAuction(context.Background(), auction, "", nil)

		assert.NoError(t, err)
		mockClient.AssertExpectations(t)
	})

	t.Run("Already Settled", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := newTestStore(mockClient)

		reasons := []types.CancellationReason{{Code: aws.String("ConditionalCheckFailed")}}
		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).Return(nil, &types.TransactionCanceledException{CancellationReasons: reasons})

		err := store.SettleAuction(context.Background(), auction, "bidder1", txn)

		assert.Error(t, err)
		assert.ErrorIs(t, err, storage.ErrConcurrentModification)
		mockClient.AssertExpectations(t)
	})
}

func TestCompleteBuyNow(t *testing.T) {
	price := models.MustMoney("80.00")
	auction := &models.Auction{
		Id:           "auction1",
		ListingId:    "listing1",
		SellerId:     "seller1",
		CurrentPrice: models.MustMoney("30.00"),
		BuyNowPrice:  &price,
		Version:      2,
		Status:       models.AuctionActive,
	}
	txn := &models.Transaction{
		Id:        "txn1",
		ListingId: "listing1",
		BuyerId:   "buyer1",
		SellerId:  "seller1",
		Amount:    price,
	}

	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := newTestStore(mockClient)

		mockClient.On("TransactWriteItems", mock.Anything, mock.MatchedBy(func(input *dynamodb.TransactWriteItemsInput) bool {
			return len(input.TransactItems) == 3
		})).Once().Return(&dynamodb.TransactWriteItemsOutput{}, nil)

		err := store.CompleteBuyNow(context.Background(), auction, txn)

		assert.NoError(t, err)
		mockClient.AssertExpectations(t)
	})

	t.Run("Lost Race", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := newTestStore(mockClient)

		reasons := []types.CancellationReason{{Code: aws.String("ConditionalCheckFailed")}}
		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).Return(nil, &types.TransactionCanceledException{CancellationReasons: reasons})

		err := store.CompleteBuyNow(context.Background(), auction, txn)

		assert.Error(t, err)
		assert.ErrorIs(t, err, storage.ErrConcurrentModification)
		mockClient.AssertExpectations(t)
	})
}
