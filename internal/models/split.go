package models

import "encoding/json"

// Participant is one person taking part in a bill split.
// The monetary fields are computed outputs: they are reset and rebuilt on
// every calculation and are only meaningful inside a SplitResult snapshot.
type Participant struct {
	// ID is a small sequential identifier, unique within one splitter.
	ID int `json:"id"`

	// Name is the display name of the participant.
	Name string `json:"name"`

	// Email is optional contact information.
	Email string `json:"email,omitempty"`

	// Items are the shares of items attributed to this participant.
	Items []ItemShare `json:"items"`

	// Subtotal is the sum of this participant's item shares (pre tax/tip).
	Subtotal float64 `json:"subtotal"`

	// TaxShare and TipShare are this participant's proportional slices of
	// the bill-level tax and tip.
	TaxShare float64 `json:"tax_share"`
	TipShare float64 `json:"tip_share"`

	// Total is subtotal + tax share + tip share.
	Total float64 `json:"total"`
}

// ItemShare records one participant's slice of a single item.
type ItemShare struct {
	ItemID int    `json:"item_id"`
	Name   string `json:"name"`

	// Price is this participant's portion of the item price, not the full
	// item price.
	Price float64 `json:"price"`

	// Share is the fraction of the item attributed to this participant.
	Share float64 `json:"share"`
}

// Item is a priced entry on the bill, optionally assigned to participants.
type Item struct {
	// ID is a small sequential identifier, unique within one splitter.
	ID int `json:"id"`

	// Name is the item description.
	Name string `json:"name"`

	// Price is the item cost. Missing input prices are coerced to 0.
	Price float64 `json:"price"`

	// Participants lists assigned participant IDs in assignment order.
	// Order matters: the first assignee absorbs rounding remainders in
	// even splits and drives display order.
	Participants []int `json:"participants"`

	// CustomShares maps participant ID to a fraction in [0,1]. When
	// non-empty the shares override equal splitting and must sum to
	// 1.0 within a 0.01 tolerance.
	CustomShares map[int]float64 `json:"custom_shares,omitempty"`

	// PricePerPerson is precomputed at add time for inspection only;
	// the calculation recomputes splits from scratch.
	PricePerPerson float64 `json:"price_per_person"`
}

// Summary holds the bill-level totals of a calculation.
type Summary struct {
	TotalSubtotal float64 `json:"total_subtotal"`
	TotalTax      float64 `json:"total_tax"`
	TotalTip      float64 `json:"total_tip"`
	GrandTotal    float64 `json:"grand_total"`

	// TaxRate and TipPercentage echo the configuration on a 0-100 scale.
	TaxRate       float64 `json:"tax_rate"`
	TipPercentage float64 `json:"tip_percentage"`
}

// SplitResult is the full output of one split calculation: bill totals plus
// a snapshot of every participant with its computed shares. It has no
// identity of its own beyond "last computed from this splitter state".
type SplitResult struct {
	Summary      Summary       `json:"summary"`
	Participants []Participant `json:"participants"`
	Items        []Item        `json:"items"`
}

// EvenSplit is the diagnostic result of dividing a total by a head count.
// Unlike the splitter's reconciled even split, the rounding difference is
// surfaced for the caller to handle rather than forced to zero.
type EvenSplit struct {
	PerPerson          float64 `json:"per_person"`
	Total              float64 `json:"total"`
	NumPeople          int     `json:"num_people"`
	AllocatedTotal     float64 `json:"allocated_total"`
	RoundingDifference float64 `json:"rounding_difference"`
}

// SplitterState is the serialized form of a splitter: its inputs plus a
// freshly computed calculation. Importing reads only the input fields.
type SplitterState struct {
	Participants  []Participant `json:"participants"`
	Items         []Item        `json:"items"`
	TaxRate       float64       `json:"tax_rate"`
	TipPercentage float64       `json:"tip_percentage"`
	Calculation   *SplitResult  `json:"calculation,omitempty"`
}

// BillSplit is a persisted split: the inputs that produced it alongside the
// result, so a stored split can be inspected or replayed later.
type BillSplit struct {
	// ID is the unique identifier for the split (UUID format).
	ID string `json:"id"`

	// ReceiptData is the receipt the split was computed from.
	ReceiptData ReceiptRecord `json:"receipt_data"`

	// Participants are the display names the caller supplied, in order.
	Participants []string `json:"participants"`

	// SplitMethod is "itemized" or "even".
	SplitMethod string `json:"split_method"`

	TaxRate       float64 `json:"tax_rate"`
	TipPercentage float64 `json:"tip_percentage"`

	// Result is the computed outcome: a SplitResult for itemized splits,
	// an EvenSplit for even ones. Stored opaquely so the two shapes can
	// share one column.
	Result json.RawMessage `json:"split_result"`

	// CreatedAt is the Unix timestamp when the split was stored.
	CreatedAt int64 `json:"created_at"`
}
