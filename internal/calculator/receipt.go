package calculator

import (
	"regexp"
	"strconv"

	"github.com/splitscan/splitscan/internal/models"
)

// SplitReceiptItems builds a splitter from a parsed receipt and computes the
// split in one call. Items with unparseable prices are skipped; empty prices
// are coerced to 0. Every item is auto-assigned to the first participant,
// the historical default for callers that assign items manually afterwards.
func SplitReceiptItems(record models.ReceiptRecord, participants []string, taxRate, tipPercentage float64) models.SplitResult {
	s, itemIDs := splitterFromReceipt(record, participants, taxRate, tipPercentage)
	if len(participants) > 0 {
		firstID := 1
		for _, itemID := range itemIDs {
			_ = s.AssignItem(itemID, firstID, 1.0)
		}
	}
	return s.CalculateSplit()
}

// SplitReceiptItemsAll is SplitReceiptItems with every item assigned to all
// participants, splitting each item equally across the whole party.
func SplitReceiptItemsAll(record models.ReceiptRecord, participants []string, taxRate, tipPercentage float64) models.SplitResult {
	s, itemIDs := splitterFromReceipt(record, participants, taxRate, tipPercentage)
	for _, itemID := range itemIDs {
		for pid := 1; pid <= len(participants); pid++ {
			_ = s.AssignItem(itemID, pid, 1.0)
		}
	}
	return s.CalculateSplit()
}

func splitterFromReceipt(record models.ReceiptRecord, participants []string, taxRate, tipPercentage float64) (*Splitter, []int) {
	s := NewSplitter()
	for _, name := range participants {
		s.AddParticipant(name, "")
	}

	var itemIDs []int
	for _, item := range record.Items {
		price := 0.0
		if item.Price != "" {
			v, err := strconv.ParseFloat(item.Price, 64)
			if err != nil {
				continue
			}
			price = v
		}
		id, err := s.AddItem(item.Name, price, nil, nil)
		if err != nil {
			continue
		}
		itemIDs = append(itemIDs, id)
	}

	s.SetTaxAndTip(taxRate, tipPercentage)
	return s, itemIDs
}

var taxTokenPattern = regexp.MustCompile(`\d+\.?\d*`)

// TaxAmount salvages a numeric value from a raw extracted tax field such as
// "$1.23" or "TAX 1.23". Returns 0 when nothing numeric is present.
func TaxAmount(field string) float64 {
	if field == "" {
		return 0
	}
	token := taxTokenPattern.FindString(field)
	if token == "" {
		return 0
	}
	v, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0
	}
	return v
}
