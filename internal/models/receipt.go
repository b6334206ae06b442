package models

// ReceiptItem is a single priced line entry recovered from receipt text.
type ReceiptItem struct {
	// Name is the product description with any price token stripped.
	Name string `json:"name"`

	// Price is the two-decimal price token as it appeared in the text.
	// Kept as a string because extraction never guarantees numeric validity.
	Price string `json:"price"`
}

// ReceiptRecord is the structured output of parsing one receipt's OCR text.
// Extraction is best-effort: any field may be empty when the text did not
// yield a recognizable value. A ReceiptRecord is immutable once returned;
// the caller owns its lifetime.
type ReceiptRecord struct {
	// StoreName is the merchant name found near the top of the receipt.
	StoreName string `json:"store_name"`

	// Items are the recovered product/price pairs in document order.
	Items []ReceiptItem `json:"items"`

	// Subtotal, Tax and Total are numeric strings ("" when not found).
	Subtotal string `json:"subtotal"`
	Tax      string `json:"tax"`
	Total    string `json:"total"`

	// Date is reserved for a future extraction pass and is always empty
	// in this version, consistent with the other optional fields.
	Date string `json:"date"`
}

// Receipt is a persisted receipt: the parsed record plus the scalar summary
// fields the storage layer indexes on. Money fields are pointers because a
// receipt with no recognizable total is still worth storing.
type Receipt struct {
	// ID is the unique identifier for the receipt (UUID format).
	ID string `json:"id"`

	StoreName string   `json:"store_name"`
	Total     *float64 `json:"total_amount"`
	Subtotal  *float64 `json:"subtotal_amount"`
	Tax       *float64 `json:"tax_amount"`

	// Record is the full structured extraction result.
	Record ReceiptRecord `json:"record"`

	// CreatedAt is the Unix timestamp when the receipt was stored.
	CreatedAt int64 `json:"created_at"`
}
