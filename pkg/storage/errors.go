package storage

import "errors"

// ErrListingNotFound is returned when a referenced listing does not exist.
var ErrListingNotFound = errors.New("listing not found")

// ErrAuctionNotFound is returned when a referenced auction does not exist.
var ErrAuctionNotFound = errors.New("auction not found")

// ErrUserNotFound is returned when a referenced user profile does not exist.
var ErrUserNotFound = errors.New("user not found")

// ErrTransactionNotFound is returned when a referenced transaction does not exist.
var ErrTransactionNotFound = errors.New("transaction not found")

// ErrListingUnavailable is returned when a purchase or deactivation targets a
// listing that is not in a state that allows it (already sold, inactive, or
// not a fixed-price listing).
var ErrListingUnavailable = errors.New("listing not available")

// ErrConcurrentModification is returned when the store's concurrency guard
// detected a conflicting write to the same row since the caller read it.
// Callers should re-read current state before retrying.
var ErrConcurrentModification = errors.New("concurrent modification detected")

// ErrStoreUnavailable is returned when the store could not be reached or the
// commit outcome is unknown. Safe to retry idempotently.
var ErrStoreUnavailable = errors.New("store unavailable")
