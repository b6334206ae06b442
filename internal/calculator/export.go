package calculator

import "github.com/splitscan/splitscan/internal/models"

// Export serializes the splitter's state. The embedded calculation is
// recomputed on every call, never cached, so it always matches the inputs.
func (s *Splitter) Export() models.SplitterState {
	calc := s.CalculateSplit()
	return models.SplitterState{
		Participants:  calc.Participants,
		Items:         calc.Items,
		TaxRate:       s.taxRate,
		TipPercentage: s.tipPercentage,
		Calculation:   &calc,
	}
}

// Import replaces the splitter's participants, items, and tax/tip
// configuration wholesale. Missing collections default to empty; no further
// validation is performed, so round-tripping is exact only for data in the
// shape Export emits. Any embedded calculation is ignored.
func (s *Splitter) Import(state models.SplitterState) {
	s.participants = make([]*models.Participant, 0, len(state.Participants))
	s.participantIdx = make(map[int]int, len(state.Participants))
	for i := range state.Participants {
		p := state.Participants[i]
		if p.Items == nil {
			p.Items = []models.ItemShare{}
		}
		s.participantIdx[p.ID] = len(s.participants)
		s.participants = append(s.participants, &p)
	}

	s.items = make([]*models.Item, 0, len(state.Items))
	s.itemIdx = make(map[int]int, len(state.Items))
	for i := range state.Items {
		item := state.Items[i]
		if item.Participants == nil {
			item.Participants = []int{}
		}
		s.itemIdx[item.ID] = len(s.items)
		s.items = append(s.items, &item)
	}

	s.taxRate = state.TaxRate
	s.tipPercentage = state.TipPercentage
}
