package cgt

import (
	"fmt"

	"github.com/etnz/cgt/date"
)

// Every error below is fatal: a tax figure computed from a substituted price
// or rate would be wrong, so the calculation aborts instead of degrading.

// InsufficientHoldingsError reports a disposal of more shares than the ledger
// holds as of the sell date.
type InsufficientHoldingsError struct {
	Symbol    string
	Requested Quantity
	Available Quantity
	Date      date.Date
}

func (e *InsufficientHoldingsError) Error() string {
	return fmt.Sprintf("insufficient holdings: cannot sell %s %s on %s, only %s available", e.Requested, e.Symbol, e.Date, e.Available)
}

// MissingPriceError reports that no market price exists on or before a date.
type MissingPriceError struct {
	Symbol string
	Date   date.Date
}

func (e *MissingPriceError) Error() string {
	return fmt.Sprintf("missing market price for %s on or before %s", e.Symbol, e.Date)
}

// MissingRateError reports that no exchange rate exists on or before a date.
type MissingRateError struct {
	Date date.Date
}

func (e *MissingRateError) Error() string {
	return fmt.Sprintf("missing exchange rate on or before %s", e.Date)
}

// InconsistentPoolError reports a Section 104 pool holding no shares while a
// positive quantity still needs costing. It means the sufficiency precondition
// was bypassed or the ledger is inconsistent.
type InconsistentPoolError struct {
	Symbol   string
	Date     date.Date
	Quantity Quantity
}

func (e *InconsistentPoolError) Error() string {
	return fmt.Sprintf("inconsistent section 104 pool for %s: no shares held before %s but %s left to cost", e.Symbol, e.Date, e.Quantity)
}
