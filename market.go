package cgt

import (
	"github.com/etnz/cgt/date"
	"github.com/shopspring/decimal"
)

// PriceLookup provides historical market prices with exact-or-closest-prior
// date semantics.
type PriceLookup interface {
	// PriceOnOrBefore returns the price of one share of symbol on the given
	// day, or on the closest prior day with data. ok is false when no data
	// exists on or before that day, or the symbol is unknown.
	PriceOnOrBefore(symbol string, day date.Date) (price Money, ok bool)
}

// RateLookup provides historical conversion rates into the reporting currency
// with exact-or-closest-prior date semantics.
type RateLookup interface {
	RateOnOrBefore(day date.Date) (rate decimal.Decimal, ok bool)
}

// SecurityPrices is an in-memory PriceLookup over the daily closes of a
// single security.
type SecurityPrices struct {
	symbol   string
	currency string
	prices   date.History[decimal.Decimal]
}

// NewSecurityPrices returns an empty price series for a symbol quoted in the
// given currency.
func NewSecurityPrices(symbol, currency string) *SecurityPrices {
	return &SecurityPrices{symbol: symbol, currency: currency}
}

// Symbol returns the security this series quotes.
func (p *SecurityPrices) Symbol() string { return p.symbol }

// Append records the closing price for a day. A day appended twice keeps the
// last value.
func (p *SecurityPrices) Append(on date.Date, close float64) {
	p.prices.Append(on, decimal.NewFromFloat(close))
}

func (p *SecurityPrices) PriceOnOrBefore(symbol string, day date.Date) (Money, bool) {
	if symbol != p.symbol {
		return Money{}, false
	}
	v, ok := p.prices.ValueAsOf(day)
	if !ok {
		return Money{}, false
	}
	return M(v, p.currency), true
}

// ExchangeRates is an in-memory RateLookup over the daily rates of a currency
// pair into the reporting currency.
type ExchangeRates struct {
	reporting string
	rates     date.History[decimal.Decimal]
}

// NewExchangeRates returns an empty rate series into the reporting currency.
func NewExchangeRates(reporting string) *ExchangeRates {
	return &ExchangeRates{reporting: reporting}
}

// Reporting returns the currency the rates convert into.
func (r *ExchangeRates) Reporting() string { return r.reporting }

// Append records the conversion rate for a day.
func (r *ExchangeRates) Append(on date.Date, rate float64) {
	r.rates.Append(on, decimal.NewFromFloat(rate))
}

func (r *ExchangeRates) RateOnOrBefore(day date.Date) (decimal.Decimal, bool) {
	return r.rates.ValueAsOf(day)
}

// convert turns m into the reporting currency at the rate in effect on a given
// day. Money already in the reporting currency passes through untouched.
func convert(m Money, on date.Date, rates RateLookup, reporting string) (Money, bool) {
	if m.Currency() == reporting {
		return m, true
	}
	rate, ok := rates.RateOnOrBefore(on)
	if !ok {
		return Money{}, false
	}
	return M(m.value.Mul(rate), reporting), true
}
