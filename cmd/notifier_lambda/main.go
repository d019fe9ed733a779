package main

import (
	"context"
	"encoding/json"
	"log"
	"log/slog"
	"os"

	awsevents "github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/chrsmk/meeple-market/pkg/events"
	dydbstore "github.com/chrsmk/meeple-market/pkg/storage/dynamodb"
	"github.com/chrsmk/meeple-market/pkg/websockets"
	"github.com/joho/godotenv"
)

var publisher websockets.Publisher

func init() {
	// Load environment variables from .env file (useful for local testing).
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	connectionsTable := os.Getenv("DYNAMODB_CONNECTIONS_TABLE_NAME")
	if connectionsTable == "" {
		log.Fatal("DYNAMODB_CONNECTIONS_TABLE_NAME environment variable not set")
	}
	store := dydbstore.New(dynamodb.NewFromConfig(awsCfg), dydbstore.Tables{
		WebsocketConnections: connectionsTable,
	})

	apiEndpoint := os.Getenv("WEBSOCKET_API_ENDPOINT")
	if apiEndpoint == "" {
		log.Fatal("WEBSOCKET_API_ENDPOINT environment variable not set")
	}

	publisher, err = websockets.NewPublisher(store, store, apiEndpoint)
	if err != nil {
		log.Fatalf("unable to create websocket publisher: %v", err)
	}
}

// HandleRequest consumes auction events from SQS and fans them out to
// connected viewers.
func HandleRequest(ctx context.Context, sqsEvent awsevents.SQSEvent) error {
	for _, record := range sqsEvent.Records {
		var event events.Event
		if err := json.Unmarshal([]byte(record.Body), &event); err != nil {
			// A malformed body will never unmarshal on retry; log and drop.
			slog.Error("skipping malformed event", "message_id", record.MessageId, "error", err)
			continue
		}

		message, ok := toMessage(event)
		if !ok {
			slog.Warn("skipping event of unknown type", "type", event.Type, "message_id", record.MessageId)
			continue
		}

		// Returning the error makes SQS redeliver the whole batch, which is
		// fine: fan-out is idempotent from the viewer's perspective.
		if err := publisher.Publish(ctx, message); err != nil {
			slog.Error("failed to publish message", "auction_id", event.AuctionId, "error", err)
			return err
		}
	}
	return nil
}

func toMessage(event events.Event) (websockets.Message, bool) {
	switch event.Type {
	case events.EventBidPlaced:
		return websockets.Message{
			Type: websockets.MessageTypeBidPlaced,
			Payload: websockets.BidPlacedPayload{
				AuctionID:    event.AuctionId,
				BidderID:     event.BidderId,
				CurrentPrice: event.Amount,
				BidCount:     event.BidCount,
				EndTime:      event.EndTime,
			},
		}, true
	case events.EventAuctionEnded:
		return websockets.Message{
			Type: websockets.MessageTypeAuctionEnded,
			Payload: websockets.AuctionEndedPayload{
				AuctionID:  event.AuctionId,
				WinnerID:   event.WinnerId,
				FinalPrice: event.Amount,
			},
		}, true
	default:
		return websockets.Message{}, false
	}
}

func main() {
	lambda.Start(HandleRequest)
}
