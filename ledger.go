package cgt

import (
	"sort"

	"github.com/etnz/cgt/date"
)

// AcquisitionLot is a single acquisition of shares: a vest or a purchase.
// Lots are immutable once loaded into a Ledger.
type AcquisitionLot struct {
	Symbol            string
	DateAcquired      date.Date
	AcquisitionPrice  Money // per share, in the acquisition currency
	QuantityAvailable Quantity
}

// Ledger holds the full set of acquisition lots. It is read-only for the
// duration of a calculation, so a single Ledger can serve concurrent
// calculations for different disposals.
type Ledger struct {
	lots []AcquisitionLot // ascending by DateAcquired
}

// NewLedger returns a Ledger over the given lots, sorted ascending by
// acquisition date. The input slice is not retained.
func NewLedger(lots ...AcquisitionLot) *Ledger {
	l := &Ledger{lots: append([]AcquisitionLot(nil), lots...)}
	// Stable keeps the source order of same-day lots.
	sort.SliceStable(l.lots, func(i, j int) bool {
		return l.lots[i].DateAcquired.Before(l.lots[j].DateAcquired)
	})
	return l
}

// LotsFor returns all lots for a symbol, ascending by acquisition date.
// An unknown symbol yields an empty result, not an error.
func (l *Ledger) LotsFor(symbol string) []AcquisitionLot {
	var lots []AcquisitionLot
	for _, lot := range l.lots {
		if lot.Symbol == symbol {
			lots = append(lots, lot)
		}
	}
	return lots
}

// QuantityAvailableOnOrBefore sums the available quantity over lots acquired
// on or before day. This is the holdings-sufficiency figure for a disposal.
func (l *Ledger) QuantityAvailableOnOrBefore(symbol string, day date.Date) Quantity {
	var total Quantity
	for _, lot := range l.lots {
		if lot.Symbol == symbol && !lot.DateAcquired.After(day) {
			total = total.Add(lot.QuantityAvailable)
		}
	}
	return total
}

// LotsInWindow returns the lots acquired within the range (both bounds
// included), ascending by acquisition date.
func (l *Ledger) LotsInWindow(symbol string, r date.Range) []AcquisitionLot {
	var lots []AcquisitionLot
	for _, lot := range l.lots {
		if lot.Symbol == symbol && r.Contains(lot.DateAcquired) {
			lots = append(lots, lot)
		}
	}
	return lots
}

// LotsBefore returns the lots acquired strictly before day. A lot acquired on
// the day itself is a candidate for bed and breakfast matching, not part of
// the pool basis, hence the asymmetry with QuantityAvailableOnOrBefore.
func (l *Ledger) LotsBefore(symbol string, day date.Date) []AcquisitionLot {
	var lots []AcquisitionLot
	for _, lot := range l.lots {
		if lot.Symbol == symbol && lot.DateAcquired.Before(day) {
			lots = append(lots, lot)
		}
	}
	return lots
}
