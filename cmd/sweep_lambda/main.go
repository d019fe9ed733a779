package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/chrsmk/meeple-market/pkg/auction"
	"github.com/chrsmk/meeple-market/pkg/config"
	"github.com/chrsmk/meeple-market/pkg/events"
	dydbstore "github.com/chrsmk/meeple-market/pkg/storage/dynamodb"
	"github.com/joho/godotenv"
)

var sweeper *auction.Sweeper

func init() {
	// Load environment variables for local testing.
	godotenv.Load()

	awsCfg, err := awsconfig.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	dbClient := dynamodb.NewFromConfig(awsCfg)
	tables := dydbstore.Tables{
		Listings:     os.Getenv("DYNAMODB_LISTINGS_TABLE_NAME"),
		Auctions:     os.Getenv("DYNAMODB_AUCTIONS_TABLE_NAME"),
		Bids:         os.Getenv("DYNAMODB_BIDS_TABLE_NAME"),
		Transactions: os.Getenv("DYNAMODB_TRANSACTIONS_TABLE_NAME"),
		Users:        os.Getenv("DYNAMODB_USERS_TABLE_NAME"),
	}
	if tables.Listings == "" || tables.Auctions == "" || tables.Bids == "" || tables.Transactions == "" {
		log.Fatal("One or more DynamoDB table name environment variables are not set")
	}
	store := dydbstore.New(dbClient, tables)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	var publisher events.Publisher
	if queueURL := os.Getenv("SQS_EVENTS_QUEUE_URL"); queueURL != "" {
		publisher = events.NewSQSPublisher(sqs.NewFromConfig(awsCfg), queueURL)
	}

	sweeper = auction.NewSweeper(store, cfg, publisher)
}

// HandleRequest is triggered by an EventBridge Schedule. It settles one page
// of expired auctions; anything beyond the page is picked up by the next run.
func HandleRequest(ctx context.Context) error {
	result, err := sweeper.SweepExpired(ctx)
	if err != nil {
		slog.Error("sweep failed", "error", err)
		return err
	}

	slog.Info("sweep finished",
		"sold", result.Sold,
		"unsold", result.Unsold,
		"reserve_not_met", result.ReserveNotMet,
		"skipped", result.Skipped,
		"failed", result.Failed,
	)
	return nil
}

func main() {
	lambda.Start(HandleRequest)
}
