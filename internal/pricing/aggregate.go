package pricing

// ExpenseLine is a single itemized expense attached to a print job.
type ExpenseLine struct {
	Description string
	Amount      float64
}

// Quote contains the roll-up values of a cost-plus-markup calculation.
type Quote struct {
	Subtotal float64
	Profit   float64
	Total    float64
}

// SumExpenses returns the plain sum of the line amounts. Used directly,
// without markup, by job types whose total is entered by hand.
func SumExpenses(lines []ExpenseLine) float64 {
	var sum float64
	for _, line := range lines {
		sum += line.Amount
	}
	return sum
}

// Aggregate applies the cost-plus-markup policy used by offset, duplo and
// sublimation jobs: base cost plus itemized expenses, marked up by the
// profit percentage. Inputs are already-parsed numbers and are not mutated;
// no rounding is applied, the caller formats for display.
func Aggregate(lines []ExpenseLine, baseCost, profitPercent float64) Quote {
	subtotal := baseCost + SumExpenses(lines)
	profit := subtotal * profitPercent / 100
	return Quote{
		Subtotal: subtotal,
		Profit:   profit,
		Total:    subtotal + profit,
	}
}

// SublimationBase returns the base cost of a sublimation job before
// expenses and markup.
func SublimationBase(quantity int, unitPrice float64) float64 {
	return float64(quantity) * unitPrice
}

// FillTotalIfEmpty implements the digital-print total policy: the material
// cost and expenses are informational, and the customer-facing total is a
// free-entry field. A suggestion of materialCost + expenses is made only
// while the field is still empty (zero); a total the user has already
// entered is never overwritten.
func FillTotalIfEmpty(total, materialCost float64, lines []ExpenseLine) float64 {
	if total != 0 {
		return total
	}
	suggested := materialCost + SumExpenses(lines)
	if suggested > 0 {
		return suggested
	}
	return total
}
