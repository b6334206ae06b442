package service

import "github.com/splitscan/splitscan/internal/models"

// Request/response shapes for the Connect services. These are the wire
// contract the frontend and persistence layers depend on; field tags follow
// the persisted JSON forms in internal/models.

type ParseReceiptRequest struct {
	// Text is the raw OCR output for one receipt, newline-delimited, with
	// no guaranteed structure or completeness.
	Text string `json:"text"`
}

type ParseReceiptResponse struct {
	ReceiptID string               `json:"receipt_id"`
	Data      models.ReceiptRecord `json:"data"`
}

type SplitBillRequest struct {
	ReceiptData  models.ReceiptRecord `json:"receipt_data"`
	Participants []string             `json:"participants"`

	// SplitMethod selects "even" for a per-head division of the receipt
	// total; anything else splits itemized.
	SplitMethod string `json:"split_method"`

	// TaxRate and TipPercentage are on a 0-100 scale, not fractions.
	TaxRate       float64 `json:"tax_rate"`
	TipPercentage float64 `json:"tip_percentage"`
}

type SplitBillResponse struct {
	SplitID string `json:"bill_split_id"`

	// Exactly one of the two results is set, matching SplitMethod.
	SplitResult *models.SplitResult `json:"split_result,omitempty"`
	EvenSplit   *models.EvenSplit   `json:"even_split,omitempty"`
}

type EvenSplitRequest struct {
	TotalAmount float64 `json:"total_amount"`
	NumPeople   int     `json:"num_people"`
}

type EvenSplitResponse struct {
	Result models.EvenSplit `json:"result"`
}

type GetReceiptRequest struct {
	ReceiptID string `json:"receipt_id"`
}

type GetReceiptResponse struct {
	Receipt models.Receipt `json:"receipt"`
}

type GetSplitRequest struct {
	SplitID string `json:"split_id"`
}

type GetSplitResponse struct {
	Split models.BillSplit `json:"split"`
}
