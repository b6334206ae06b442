// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/splitscan/splitscan/internal/models"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")

// Store defines the interface for receipt and split persistence.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL,
// etc.) without changing the service layer.
type Store interface {
	// SaveReceipt persists a parsed receipt. The receipt's ID and
	// CreatedAt fields are populated by the store when unset.
	SaveReceipt(ctx context.Context, receipt *models.Receipt) error

	// GetReceipt retrieves a receipt by its ID.
	// Returns an error wrapping ErrNotFound when it does not exist.
	GetReceipt(ctx context.Context, receiptID string) (*models.Receipt, error)

	// SaveSplit persists a computed bill split together with the inputs
	// that produced it. ID and CreatedAt are populated when unset.
	SaveSplit(ctx context.Context, split *models.BillSplit) error

	// GetSplit retrieves a bill split by its ID.
	// Returns an error wrapping ErrNotFound when it does not exist.
	GetSplit(ctx context.Context, splitID string) (*models.BillSplit, error)

	// Close releases any resources held by the store.
	Close() error
}
