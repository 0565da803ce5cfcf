package cgt

import "github.com/etnz/cgt/date"

// USD is a helper for test to create usd money from const
func USD(v float64) Money { return M(v, "USD") }

// GBP is a helper for test to create gbp money from const
func GBP(v float64) Money { return M(v, "GBP") }

// on is a helper for test to parse a date from const
func on(s string) date.Date { return date.MustParse(s) }

// vest is a helper for test to create an acquisition lot priced in USD.
func vest(symbol, day string, price, quantity float64) AcquisitionLot {
	return AcquisitionLot{
		Symbol:            symbol,
		DateAcquired:      on(day),
		AcquisitionPrice:  USD(price),
		QuantityAvailable: Q(quantity),
	}
}
