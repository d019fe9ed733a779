package main

import (
	"context"
	"fmt"
	"log"
	"os"

	awsevents "github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	wshandlers "github.com/chrsmk/meeple-market/pkg/handlers/websockets"
	dydbstore "github.com/chrsmk/meeple-market/pkg/storage/dynamodb"
	"github.com/joho/godotenv"
)

var handler *wshandlers.Handler

func init() {
	// Load environment variables for local testing.
	godotenv.Load()

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

	handler = wshandlers.NewHandler(store)
}

// HandleRequest dispatches API Gateway websocket lifecycle events to the
// matching handler.
func HandleRequest(ctx context.Context, request awsevents.APIGatewayWebsocketProxyRequest) (awsevents.APIGatewayProxyResponse, error) {
	switch request.RequestContext.RouteKey {
	case "$connect":
		return handler.HandleConnect(ctx, request)
	case "$disconnect":
		return handler.HandleDisconnect(ctx, request)
	case "$default":
		return handler.HandleDefault(ctx, request)
	default:
		return awsevents.APIGatewayProxyResponse{StatusCode: 400}, fmt.Errorf("unknown route key %q", request.RequestContext.RouteKey)
	}
}

func main() {
	lambda.Start(HandleRequest)
}
