// Package calculator implements the bill allocation engine: it assigns item
// costs to participants, distributes tax and tip proportionally, and handles
// cent-level rounding.
package calculator

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/splitscan/splitscan/internal/models"
)

// ValidationError reports a caller mistake: an unknown ID, an invalid share
// set, a non-positive head count. It is never raised for degraded input data.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func validationErrorf(format string, args ...any) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// Splitter owns the mutable state of one bill-splitting session: its
// participants, items, and tax/tip configuration. It is not safe for
// concurrent use; run one Splitter per session.
type Splitter struct {
	participants []*models.Participant
	items        []*models.Item

	// O(1) ID lookup; the slices preserve registration order.
	participantIdx map[int]int
	itemIdx        map[int]int

	taxRate       float64
	tipPercentage float64

	// IncludeUnassigned keeps unassigned item prices in the shared
	// subtotal that tax, tip, and proportions are computed from, even
	// though nobody is charged for them. This mirrors the historical
	// accounting behavior; set it to false to exclude them.
	IncludeUnassigned bool
}

// NewSplitter returns an empty splitter with the historical defaults.
func NewSplitter() *Splitter {
	return &Splitter{
		participantIdx:    make(map[int]int),
		itemIdx:           make(map[int]int),
		IncludeUnassigned: true,
	}
}

// AddParticipant registers a participant and returns its ID. Names are not
// deduplicated; two participants may share a name.
func (s *Splitter) AddParticipant(name, email string) int {
	p := &models.Participant{
		ID:    len(s.participants) + 1,
		Name:  name,
		Email: email,
		Items: []models.ItemShare{},
	}
	s.participantIdx[p.ID] = len(s.participants)
	s.participants = append(s.participants, p)
	return p.ID
}

// AddItem registers an item and returns its ID. participants and
// customShares are optional; when customShares is non-empty its values must
// sum to 1.0 within a 0.01 tolerance or the item is rejected with a
// ValidationError.
func (s *Splitter) AddItem(name string, price float64, participants []int, customShares map[int]float64) (int, error) {
	if len(customShares) > 0 {
		sum := 0.0
		for _, share := range customShares {
			sum += share
		}
		if math.Abs(sum-1.0) > 0.01 {
			return 0, validationErrorf("custom shares must sum to 1.0, got %.4f", sum)
		}
	}

	item := &models.Item{
		ID:           len(s.items) + 1,
		Name:         name,
		Price:        price,
		Participants: append([]int{}, participants...),
		CustomShares: copyShares(customShares),
	}

	// Informational only; CalculateSplit recomputes from scratch.
	if len(participants) > 0 {
		if len(customShares) > 0 {
			item.PricePerPerson = item.Price
		} else {
			item.PricePerPerson = item.Price / float64(len(participants))
		}
	}

	s.itemIdx[item.ID] = len(s.items)
	s.items = append(s.items, item)
	return item.ID, nil
}

// AssignItem assigns an item to a participant, replacing any existing
// assignment of that participant to that item, so repeated calls are
// idempotent per participant. A share other than 1.0 is recorded as a
// custom share.
func (s *Splitter) AssignItem(itemID, participantID int, share float64) error {
	item, ok := s.itemByID(itemID)
	if !ok {
		return validationErrorf("item %d not found", itemID)
	}
	if _, ok := s.participantByID(participantID); !ok {
		return validationErrorf("participant %d not found", participantID)
	}

	for i, pid := range item.Participants {
		if pid == participantID {
			item.Participants = append(item.Participants[:i], item.Participants[i+1:]...)
			delete(item.CustomShares, participantID)
			break
		}
	}

	item.Participants = append(item.Participants, participantID)
	if share != 1.0 {
		if item.CustomShares == nil {
			item.CustomShares = make(map[int]float64)
		}
		item.CustomShares[participantID] = share
	}
	return nil
}

// SetTaxAndTip stores the tax rate and tip percentage, both on a 0-100 scale.
func (s *Splitter) SetTaxAndTip(taxRate, tipPercentage float64) {
	s.taxRate = taxRate
	s.tipPercentage = tipPercentage
}

// CalculateSplit computes the full split from current state. It is a pure
// function of that state: participants' computed fields are reset first, so
// calling it repeatedly yields identical results. All monetary outputs are
// rounded half-up to cents independently; the sum of participant totals may
// therefore differ from the grand total by a few cents.
func (s *Splitter) CalculateSplit() models.SplitResult {
	for _, p := range s.participants {
		p.Items = []models.ItemShare{}
		p.Subtotal = 0
		p.TaxShare = 0
		p.TipShare = 0
		p.Total = 0
	}

	totalSubtotal := 0.0
	for _, item := range s.items {
		if s.IncludeUnassigned || len(item.Participants) > 0 {
			totalSubtotal += item.Price
		}
		if len(item.Participants) == 0 {
			continue
		}

		if len(item.CustomShares) > 0 {
			for _, pid := range sortedKeys(item.CustomShares) {
				p, ok := s.participantByID(pid)
				if !ok {
					continue
				}
				share := item.CustomShares[pid]
				portion := item.Price * share
				p.Subtotal += portion
				p.Items = append(p.Items, models.ItemShare{
					ItemID: item.ID,
					Name:   item.Name,
					Price:  portion,
					Share:  share,
				})
			}
			continue
		}

		perPerson := item.Price / float64(len(item.Participants))
		for _, pid := range item.Participants {
			p, ok := s.participantByID(pid)
			if !ok {
				continue
			}
			p.Subtotal += perPerson
			p.Items = append(p.Items, models.ItemShare{
				ItemID: item.ID,
				Name:   item.Name,
				Price:  perPerson,
				Share:  1.0 / float64(len(item.Participants)),
			})
		}
	}

	totalTax := totalSubtotal * (s.taxRate / 100)
	totalTip := totalSubtotal * (s.tipPercentage / 100)
	grandTotal := totalSubtotal + totalTax + totalTip

	for _, p := range s.participants {
		proportion := 0.0
		if totalSubtotal > 0 {
			proportion = p.Subtotal / totalSubtotal
		}
		p.TaxShare = totalTax * proportion
		p.TipShare = totalTip * proportion
		p.Total = p.Subtotal + p.TaxShare + p.TipShare

		p.Subtotal = RoundCurrency(p.Subtotal)
		p.TaxShare = RoundCurrency(p.TaxShare)
		p.TipShare = RoundCurrency(p.TipShare)
		p.Total = RoundCurrency(p.Total)
	}

	return models.SplitResult{
		Summary: models.Summary{
			TotalSubtotal: RoundCurrency(totalSubtotal),
			TotalTax:      RoundCurrency(totalTax),
			TotalTip:      RoundCurrency(totalTip),
			GrandTotal:    RoundCurrency(grandTotal),
			TaxRate:       s.taxRate,
			TipPercentage: s.tipPercentage,
		},
		Participants: s.snapshotParticipants(),
		Items:        s.snapshotItems(),
	}
}

// SplitEvenly divides total equally among all participants, rounding each
// share to cents and absorbing any rounding remainder into the first
// registered participant so the shares sum exactly to the total. Returns an
// empty map when there are no participants.
func (s *Splitter) SplitEvenly(total float64) map[int]float64 {
	result := make(map[int]float64, len(s.participants))
	if len(s.participants) == 0 {
		return result
	}

	rounded := RoundCurrency(total / float64(len(s.participants)))
	allocated := 0.0
	for _, p := range s.participants {
		result[p.ID] = rounded
		allocated += rounded
	}

	difference := total - allocated
	if math.Abs(difference) > 0.01 {
		first := s.participants[0].ID
		result[first] = RoundCurrency(result[first] + difference)
	}
	return result
}

// RoundCurrency rounds a monetary amount half-up (away from zero) to two
// decimals. Rounding operates on the shortest decimal representation of the
// value, so 10.005 rounds to 10.01 even though its float form sits a hair
// below the half.
func RoundCurrency(amount float64) float64 {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0
	}
	s := strconv.FormatFloat(math.Abs(amount), 'f', -1, 64)
	intPart, fracPart, _ := strings.Cut(s, ".")
	fracPart += "000"
	cents, err := strconv.ParseInt(intPart+fracPart[:2], 10, 64)
	if err != nil {
		return 0
	}
	if fracPart[2] >= '5' {
		cents++
	}
	return math.Copysign(float64(cents), amount) / 100
}

func (s *Splitter) participantByID(id int) (*models.Participant, bool) {
	i, ok := s.participantIdx[id]
	if !ok {
		return nil, false
	}
	return s.participants[i], true
}

func (s *Splitter) itemByID(id int) (*models.Item, bool) {
	i, ok := s.itemIdx[id]
	if !ok {
		return nil, false
	}
	return s.items[i], true
}

func (s *Splitter) snapshotParticipants() []models.Participant {
	out := make([]models.Participant, len(s.participants))
	for i, p := range s.participants {
		cp := *p
		cp.Items = append([]models.ItemShare{}, p.Items...)
		out[i] = cp
	}
	return out
}

func (s *Splitter) snapshotItems() []models.Item {
	out := make([]models.Item, len(s.items))
	for i, item := range s.items {
		ci := *item
		ci.Participants = append([]int{}, item.Participants...)
		ci.CustomShares = copyShares(item.CustomShares)
		out[i] = ci
	}
	return out
}

func copyShares(shares map[int]float64) map[int]float64 {
	if shares == nil {
		return nil
	}
	out := make(map[int]float64, len(shares))
	for k, v := range shares {
		out[k] = v
	}
	return out
}

// sortedKeys makes custom-share iteration deterministic so repeated
// calculations are bit-identical.
func sortedKeys(shares map[int]float64) []int {
	keys := make([]int, 0, len(shares))
	for k := range shares {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
