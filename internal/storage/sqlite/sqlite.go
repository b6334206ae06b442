// Package sqlite provides a SQLite-backed implementation of the
// storage.Store interface.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/splitscan/splitscan/internal/models"
	"github.com/splitscan/splitscan/internal/storage"
)

// Ensure SQLiteStore implements storage.Store
var _ storage.Store = (*SQLiteStore)(nil)

// SQLiteStore implements storage.Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// New creates a new SQLiteStore with the given database path.
// It creates the parent directories and runs migrations automatically.
func New(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// SaveReceipt persists a parsed receipt.
func (s *SQLiteStore) SaveReceipt(ctx context.Context, receipt *models.Receipt) error {
	if receipt.ID == "" {
		receipt.ID = uuid.New().String()
	}
	if receipt.CreatedAt == 0 {
		receipt.CreatedAt = time.Now().Unix()
	}

	record, err := json.Marshal(receipt.Record)
	if err != nil {
		return fmt.Errorf("failed to encode receipt record: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		"INSERT INTO receipts (id, store_name, total_amount, subtotal_amount, tax_amount, record, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
		receipt.ID, receipt.StoreName,
		nullableFloat(receipt.Total), nullableFloat(receipt.Subtotal), nullableFloat(receipt.Tax),
		string(record), receipt.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert receipt: %w", err)
	}
	return nil
}

// GetReceipt retrieves a receipt by ID.
func (s *SQLiteStore) GetReceipt(ctx context.Context, receiptID string) (*models.Receipt, error) {
	receipt := &models.Receipt{}
	var total, subtotal, tax sql.NullFloat64
	var record string

	err := s.db.QueryRowContext(ctx,
		"SELECT id, store_name, total_amount, subtotal_amount, tax_amount, record, created_at FROM receipts WHERE id = ?",
		receiptID,
	).Scan(&receipt.ID, &receipt.StoreName, &total, &subtotal, &tax, &record, &receipt.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("receipt %s: %w", receiptID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get receipt: %w", err)
	}

	receipt.Total = floatPtr(total)
	receipt.Subtotal = floatPtr(subtotal)
	receipt.Tax = floatPtr(tax)

	if err := json.Unmarshal([]byte(record), &receipt.Record); err != nil {
		return nil, fmt.Errorf("failed to decode receipt record: %w", err)
	}
	return receipt, nil
}

// SaveSplit persists a computed bill split.
func (s *SQLiteStore) SaveSplit(ctx context.Context, split *models.BillSplit) error {
	if split.ID == "" {
		split.ID = uuid.New().String()
	}
	if split.CreatedAt == 0 {
		split.CreatedAt = time.Now().Unix()
	}

	receiptData, err := json.Marshal(split.ReceiptData)
	if err != nil {
		return fmt.Errorf("failed to encode receipt data: %w", err)
	}
	participants, err := json.Marshal(split.Participants)
	if err != nil {
		return fmt.Errorf("failed to encode participants: %w", err)
	}
	result := split.Result
	if result == nil {
		result = json.RawMessage("null")
	}

	_, err = s.db.ExecContext(ctx,
		"INSERT INTO bill_splits (id, receipt_data, participants, split_method, tax_rate, tip_percentage, split_result, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
		split.ID, string(receiptData), string(participants), split.SplitMethod,
		split.TaxRate, split.TipPercentage, string(result), split.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert bill split: %w", err)
	}
	return nil
}

// GetSplit retrieves a bill split by ID.
func (s *SQLiteStore) GetSplit(ctx context.Context, splitID string) (*models.BillSplit, error) {
	split := &models.BillSplit{}
	var receiptData, participants, result string

	err := s.db.QueryRowContext(ctx,
		"SELECT id, receipt_data, participants, split_method, tax_rate, tip_percentage, split_result, created_at FROM bill_splits WHERE id = ?",
		splitID,
	).Scan(&split.ID, &receiptData, &participants, &split.SplitMethod,
		&split.TaxRate, &split.TipPercentage, &result, &split.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("bill split %s: %w", splitID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get bill split: %w", err)
	}

	if err := json.Unmarshal([]byte(receiptData), &split.ReceiptData); err != nil {
		return nil, fmt.Errorf("failed to decode receipt data: %w", err)
	}
	if err := json.Unmarshal([]byte(participants), &split.Participants); err != nil {
		return nil, fmt.Errorf("failed to decode participants: %w", err)
	}
	split.Result = json.RawMessage(result)
	return split, nil
}

func nullableFloat(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}

func floatPtr(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}
