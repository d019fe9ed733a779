package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/chrsmk/meeple-market/pkg/api"
	"github.com/chrsmk/meeple-market/pkg/auction"
	"github.com/chrsmk/meeple-market/pkg/config"
	"github.com/chrsmk/meeple-market/pkg/events"
	"github.com/chrsmk/meeple-market/pkg/handlers"
	wshandlers "github.com/chrsmk/meeple-market/pkg/handlers/websockets"
	"github.com/chrsmk/meeple-market/pkg/middleware"
	dydbstore "github.com/chrsmk/meeple-market/pkg/storage/dynamodb"
	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// AWS Session
	awsCfg, err := awsconfig.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	dbClient := dynamodb.NewFromConfig(awsCfg)
	tables := dydbstore.Tables{
		Listings:             os.Getenv("DYNAMODB_LISTINGS_TABLE_NAME"),
		Auctions:             os.Getenv("DYNAMODB_AUCTIONS_TABLE_NAME"),
		Bids:                 os.Getenv("DYNAMODB_BIDS_TABLE_NAME"),
		Transactions:         os.Getenv("DYNAMODB_TRANSACTIONS_TABLE_NAME"),
		Users:                os.Getenv("DYNAMODB_USERS_TABLE_NAME"),
		WebsocketConnections: os.Getenv("DYNAMODB_CONNECTIONS_TABLE_NAME"),
	}
	if tables.Listings == "" || tables.Auctions == "" || tables.Bids == "" ||
		tables.Transactions == "" || tables.Users == "" {
		log.Fatal("One or more DynamoDB table name environment variables are not set")
	}

	// Create our storage implementation
	store := dydbstore.New(dbClient, tables)

	// Domain configuration (fees, anti-snipe window, retry bounds)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	// SQS publisher for auction events. Without a queue the API still works,
	// live viewers just don't get pushed updates.
	var publisher events.Publisher
	if queueURL := os.Getenv("SQS_EVENTS_QUEUE_URL"); queueURL != "" {
		publisher = events.NewSQSPublisher(sqs.NewFromConfig(awsCfg), queueURL)
	} else {
		log.Println("SQS_EVENTS_QUEUE_URL not set, auction events will not be published")
	}

	engine := auction.NewEngine(store, cfg, publisher)

	// Create our handler
	handler := handlers.NewApiHandler(store, engine, cfg)

	// Create a new Chi router
	router := chi.NewRouter()
	router.Use(middleware.NewStructuredLogger(slog.Default()))

	// Use the generated function to mount our handler on the router
	api.HandlerFromMux(handler, router)

	// Local-development websocket endpoint. In AWS this surface is served by
	// API Gateway and the ws lambda instead.
	router.Handle("/ws", wshandlers.NewHandler(store))

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080" // Default port if not specified
	}

	log.Printf("Starting server on port %s", port)

	// Start the server
	err = http.ListenAndServe(":"+port, router)
	if err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
