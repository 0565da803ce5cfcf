package cgt

import "github.com/etnz/cgt/date"

// BedAndBreakfastDays is the lookahead of HMRC's reacquisition rule: a
// disposal is matched first against shares of the same security reacquired
// within 30 calendar days after the sale.
const BedAndBreakfastDays = 30

// PartitionKind identifies the matching rule a slice of a disposal falls under.
type PartitionKind int

const (
	// BedAndBreakfast matches shares reacquired in the 30 days after the sale.
	BedAndBreakfast PartitionKind = iota
	// Section104Pool matches the residual against the average-cost holding pool.
	Section104Pool
)

func (k PartitionKind) String() string {
	switch k {
	case BedAndBreakfast:
		return "bed and breakfast"
	case Section104Pool:
		return "section 104 pool"
	default:
		return "unknown"
	}
}

// Partition is the slice of a disposal matched under a single rule, with its
// cost converted to the reporting currency.
type Partition struct {
	Kind     PartitionKind
	Quantity Quantity
	Cost     Money
}

// Match partitions a disposal quantity between the bed and breakfast rule and
// the Section 104 pool.
//
// The bed and breakfast window is [sellDate, sellDate+30d], both bounds
// included: a lot acquired on the sell date itself counts as a reacquisition.
// When the window supplies more shares than the disposal, the whole disposal
// is bed and breakfast matched; only the shortfall draws on the pool.
// The two quantities always sum to the disposal quantity.
func (l *Ledger) Match(symbol string, quantity Quantity, sellDate date.Date) (bnb, pool Quantity) {
	window := date.Window(sellDate, BedAndBreakfastDays)

	var supply Quantity
	for _, lot := range l.LotsInWindow(symbol, window) {
		supply = supply.Add(lot.QuantityAvailable)
	}

	bnb = supply
	if quantity.LessThan(bnb) {
		bnb = quantity
	}
	return bnb, quantity.Sub(bnb)
}
