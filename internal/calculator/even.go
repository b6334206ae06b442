package calculator

import "github.com/splitscan/splitscan/internal/models"

// CalculateEvenSplit divides a total by a head count without touching any
// splitter state. Unlike Splitter.SplitEvenly it does not reconcile the
// rounding remainder; the difference is surfaced in the result for the
// caller to handle.
func CalculateEvenSplit(totalAmount float64, numPeople int) (models.EvenSplit, error) {
	if numPeople <= 0 {
		return models.EvenSplit{}, validationErrorf("number of people must be positive")
	}

	perPerson := RoundCurrency(totalAmount / float64(numPeople))
	allocated := perPerson * float64(numPeople)

	return models.EvenSplit{
		PerPerson:          perPerson,
		Total:              totalAmount,
		NumPeople:          numPeople,
		AllocatedTotal:     allocated,
		RoundingDifference: totalAmount - allocated,
	}, nil
}
