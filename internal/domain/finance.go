package domain

// ComputeTotal sums quantity * unit price over the line items. Inputs are
// validated non-negative upstream, so the result is never negative.
func ComputeTotal(items []LineItem) float64 {
	var total float64
	for _, li := range items {
		total += float64(li.Quantity) * li.UnitPrice
	}
	return total
}

// ComputeBalance floors at zero: an advance above the total is allowed and
// simply leaves nothing due.
func ComputeBalance(total, advance float64) float64 {
	balance := total - advance
	if balance < 0 {
		return 0
	}
	return balance
}
