package service

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strconv"

	"connectrpc.com/connect"

	"github.com/splitscan/splitscan/internal/calculator"
	"github.com/splitscan/splitscan/internal/models"
	"github.com/splitscan/splitscan/internal/storage"
)

var (
	errNoText         = errors.New("no receipt text provided")
	errNoParticipants = errors.New("at least one participant is required")
)

// SplitService computes and persists bill splits.
type SplitService struct {
	store storage.Store
}

// NewSplitService creates a SplitService with the given storage backend.
func NewSplitService(store storage.Store) *SplitService {
	return &SplitService{store: store}
}

// SplitBill splits a receipt among participants and persists the outcome
// with the inputs that produced it. "even" divides the receipt total per
// head; any other method splits itemized.
func (s *SplitService) SplitBill(ctx context.Context, req *connect.Request[SplitBillRequest]) (*connect.Response[SplitBillResponse], error) {
	if len(req.Msg.Participants) == 0 {
		return nil, connect.NewError(connect.CodeInvalidArgument, errNoParticipants)
	}

	method := req.Msg.SplitMethod
	if method != "even" {
		method = "itemized"
	}

	resp := &SplitBillResponse{}
	var resultJSON []byte
	var err error

	switch method {
	case "even":
		total := receiptTotal(req.Msg.ReceiptData)
		even, calcErr := calculator.CalculateEvenSplit(total, len(req.Msg.Participants))
		if calcErr != nil {
			return nil, asConnectError(calcErr)
		}
		resp.EvenSplit = &even
		resultJSON, err = json.Marshal(even)
	default:
		result := calculator.SplitReceiptItems(
			req.Msg.ReceiptData, req.Msg.Participants,
			req.Msg.TaxRate, req.Msg.TipPercentage,
		)
		resp.SplitResult = &result
		resultJSON, err = json.Marshal(result)
	}
	if err != nil {
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	split := &models.BillSplit{
		ReceiptData:   req.Msg.ReceiptData,
		Participants:  req.Msg.Participants,
		SplitMethod:   method,
		TaxRate:       req.Msg.TaxRate,
		TipPercentage: req.Msg.TipPercentage,
		Result:        resultJSON,
	}
	if err := s.store.SaveSplit(ctx, split); err != nil {
		slog.Error("SaveSplit failed", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	slog.Info("Bill split stored",
		"split_id", split.ID,
		"method", method,
		"participants", len(split.Participants),
	)
	resp.SplitID = split.ID
	return connect.NewResponse(resp), nil
}

// EvenSplit divides a total by a head count without touching storage.
func (s *SplitService) EvenSplit(ctx context.Context, req *connect.Request[EvenSplitRequest]) (*connect.Response[EvenSplitResponse], error) {
	result, err := calculator.CalculateEvenSplit(req.Msg.TotalAmount, req.Msg.NumPeople)
	if err != nil {
		return nil, asConnectError(err)
	}
	return connect.NewResponse(&EvenSplitResponse{Result: result}), nil
}

// GetReceipt retrieves a stored receipt by ID.
func (s *SplitService) GetReceipt(ctx context.Context, req *connect.Request[GetReceiptRequest]) (*connect.Response[GetReceiptResponse], error) {
	receipt, err := s.store.GetReceipt(ctx, req.Msg.ReceiptID)
	if err != nil {
		return nil, asConnectError(err)
	}
	return connect.NewResponse(&GetReceiptResponse{Receipt: *receipt}), nil
}

// GetSplit retrieves a stored bill split by ID.
func (s *SplitService) GetSplit(ctx context.Context, req *connect.Request[GetSplitRequest]) (*connect.Response[GetSplitResponse], error) {
	split, err := s.store.GetSplit(ctx, req.Msg.SplitID)
	if err != nil {
		return nil, asConnectError(err)
	}
	return connect.NewResponse(&GetSplitResponse{Split: *split}), nil
}

// receiptTotal reads the extracted total as a number, falling back to 0 for
// missing or malformed values so even splits degrade instead of failing.
func receiptTotal(record models.ReceiptRecord) float64 {
	if record.Total == "" {
		return 0
	}
	v, err := strconv.ParseFloat(record.Total, 64)
	if err != nil {
		return 0
	}
	return v
}

// asConnectError maps domain errors to RPC codes: validation failures are
// the caller's fault, missing records are not found, everything else is
// internal.
func asConnectError(err error) *connect.Error {
	var verr *calculator.ValidationError
	switch {
	case errors.As(err, &verr):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, storage.ErrNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}
