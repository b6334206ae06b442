// Package service exposes receipt parsing and bill splitting as Connect
// RPC services backed by a storage.Store.
package service

import (
	"context"
	"log/slog"
	"strconv"

	"connectrpc.com/connect"

	"github.com/splitscan/splitscan/internal/models"
	"github.com/splitscan/splitscan/internal/parser"
	"github.com/splitscan/splitscan/internal/storage"
)

// ReceiptService turns raw OCR text into stored, structured receipts.
type ReceiptService struct {
	store  storage.Store
	parser *parser.Parser
}

// NewReceiptService creates a ReceiptService with the given storage backend
// and extraction configuration.
func NewReceiptService(store storage.Store, cfg parser.Config) *ReceiptService {
	return &ReceiptService{store: store, parser: parser.New(cfg)}
}

// ParseReceipt runs extraction over raw receipt text and persists the
// result. Extraction never fails: unrecognizable fields come back empty and
// the response still carries a receipt ID. The only error paths are an empty
// request and storage trouble.
func (s *ReceiptService) ParseReceipt(ctx context.Context, req *connect.Request[ParseReceiptRequest]) (*connect.Response[ParseReceiptResponse], error) {
	if req.Msg.Text == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, errNoText)
	}

	record := s.parser.Parse(req.Msg.Text)
	slog.Debug("Parsed receipt",
		"store_name", record.StoreName,
		"items", len(record.Items),
		"total", record.Total,
	)

	receipt := &models.Receipt{
		StoreName: record.StoreName,
		Total:     parseAmount(record.Total),
		Subtotal:  parseAmount(record.Subtotal),
		Tax:       parseAmount(record.Tax),
		Record:    record,
	}
	if err := s.store.SaveReceipt(ctx, receipt); err != nil {
		slog.Error("SaveReceipt failed", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	return connect.NewResponse(&ParseReceiptResponse{
		ReceiptID: receipt.ID,
		Data:      record,
	}), nil
}

// parseAmount converts an extracted numeric string to a nullable float.
// Empty or malformed strings yield nil, preserving the missing-vs-zero
// distinction in storage.
func parseAmount(s string) *float64 {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}
