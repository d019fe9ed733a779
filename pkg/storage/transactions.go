package storage

import (
	"context"

	"github.com/chrsmk/meeple-market/pkg/models"
)

// TransactionReader defines the interface for reading settlement records.
// Transactions are only ever created by settlement (buy-now, auction win, or
// fixed-price purchase), so there is no writer interface outside those paths.
type TransactionReader interface {
	// GetTransaction retrieves a transaction by its ID.
	GetTransaction(ctx context.Context, txID string) (*models.Transaction, error)

	// ListTransactionsByBuyer retrieves all transactions where the user is
	// the buyer, newest first.
	ListTransactionsByBuyer(ctx context.Context, buyerID string) ([]models.Transaction, error)
}
