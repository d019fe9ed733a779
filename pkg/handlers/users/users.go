// Package users exposes profile sync and the buyer's transaction history.
package users

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/chrsmk/meeple-market/pkg/api"
	"github.com/chrsmk/meeple-market/pkg/handlers/respond"
	"github.com/chrsmk/meeple-market/pkg/mapping"
	"github.com/chrsmk/meeple-market/pkg/storage"
)

// Store is the slice of the data layer the user handlers call.
type Store interface {
	storage.UserStore
	storage.TransactionReader
}

// UsersHandler holds the dependencies for user-related handlers.
type UsersHandler struct {
	Store Store
}

// NewUsersHandler creates a new UsersHandler.
func NewUsersHandler(store Store) *UsersHandler {
	return &UsersHandler{Store: store}
}

// CreateUser handles profile sync from the identity provider. Upserts:
// syncing the same profile twice is a last-write-wins overwrite.
func (h *UsersHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var newUser api.NewUser
	if err := json.NewDecoder(r.Body).Decode(&newUser); err != nil {
		respond.BadRequest(w, "invalid request body")
		return
	}
	if newUser.Id == "" || newUser.Username == "" {
		respond.BadRequest(w, "id and username are required")
		return
	}

	user := mapping.ToDomainNewUser(&newUser)
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	if err := h.Store.PutUser(r.Context(), user); err != nil {
		respond.Error(w, err)
		return
	}
	respond.JSON(w, http.StatusCreated, mapping.ToApiUser(user))
}

// GetUserById handles the logic for retrieving a user profile.
func (h *UsersHandler) GetUserById(w http.ResponseWriter, r *http.Request, userId string) {
	user, err := h.Store.GetUser(r.Context(), userId)
	if err != nil {
		respond.Error(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, mapping.ToApiUser(user))
}

// ListUserTransactions handles the logic for retrieving a buyer's settled
// transactions, newest first.
func (h *UsersHandler) ListUserTransactions(w http.ResponseWriter, r *http.Request, userId string) {
	domainTxns, err := h.Store.ListTransactionsByBuyer(r.Context(), userId)
	if err != nil {
		respond.Error(w, err)
		return
	}

	apiTxns := make([]*api.Transaction, len(domainTxns))
	for i := range domainTxns {
		apiTxns[i] = mapping.ToApiTransaction(&domainTxns[i])
	}
	respond.JSON(w, http.StatusOK, apiTxns)
}
