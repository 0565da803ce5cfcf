package cgt

import "github.com/etnz/cgt/date"

// bedAndBreakfastCost prices a quantity against the lots reacquired in the
// 30-day window after the sale, earliest acquisition first. Each consumed
// chunk is converted at its own lot's acquisition date; a lot may be only
// partially consumed.
func (c *Calculator) bedAndBreakfastCost(symbol string, quantity Quantity, sellDate date.Date) (Money, error) {
	cost := M(0, c.reporting)
	if quantity.IsZero() {
		return cost, nil
	}

	window := date.Window(sellDate, BedAndBreakfastDays)
	remaining := quantity
	for _, lot := range c.ledger.LotsInWindow(symbol, window) {
		if remaining.IsZero() {
			break
		}
		chunk := lot.QuantityAvailable
		if remaining.LessThan(chunk) {
			chunk = remaining
		}
		chunkCost, ok := convert(lot.AcquisitionPrice.Mul(chunk), lot.DateAcquired, c.rates, c.reporting)
		if !ok {
			return Money{}, &MissingRateError{Date: lot.DateAcquired}
		}
		cost = cost.Add(chunkCost)
		remaining = remaining.Sub(chunk)
	}
	return cost, nil
}

// section104Cost prices a quantity at the weighted average cost of the pool of
// lots acquired strictly before the sell date. Each lot's cost is converted at
// its own acquisition date before averaging.
func (c *Calculator) section104Cost(symbol string, quantity Quantity, sellDate date.Date) (Money, error) {
	cost := M(0, c.reporting)
	if quantity.IsZero() {
		return cost, nil
	}

	var totalShares Quantity
	totalCost := M(0, c.reporting)
	for _, lot := range c.ledger.LotsBefore(symbol, sellDate) {
		lotCost, ok := convert(lot.AcquisitionPrice.Mul(lot.QuantityAvailable), lot.DateAcquired, c.rates, c.reporting)
		if !ok {
			return Money{}, &MissingRateError{Date: lot.DateAcquired}
		}
		totalCost = totalCost.Add(lotCost)
		totalShares = totalShares.Add(lot.QuantityAvailable)
	}
	if totalShares.IsZero() {
		// A zero denominator here means the sufficiency precondition was
		// bypassed or the ledger is inconsistent; never divide through it.
		return Money{}, &InconsistentPoolError{Symbol: symbol, Date: sellDate, Quantity: quantity}
	}
	// Multiply before dividing to keep the average exact as long as possible.
	return totalCost.Mul(quantity).Div(totalShares), nil
}
