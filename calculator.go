package cgt

import (
	"fmt"
	"strings"

	"github.com/etnz/cgt/date"
	"github.com/shopspring/decimal"
)

// Calculator computes the UK Capital Gains Tax due on a partial disposal of a
// holding, applying HMRC's share matching rules: the 30-day bed and breakfast
// rule first, then the Section 104 average-cost pool.
//
// A Calculator is a pure function of its immutable inputs: it never mutates
// the ledger or the lookups, so one Calculator can serve concurrent
// calculations for different disposals.
type Calculator struct {
	ledger    *Ledger
	prices    PriceLookup
	rates     RateLookup
	reporting string          // reporting currency, e.g. "GBP"
	exemption Money           // annual exemption, in the reporting currency
	rate      decimal.Decimal // CGT rate as a ratio, e.g. 0.1 for basic rate
}

// NewCalculator returns a Calculator over the given snapshots. exemption must
// be in the rates' reporting currency; rate is a ratio, not a percentage.
func NewCalculator(ledger *Ledger, prices PriceLookup, rates RateLookup, reporting string, exemption Money, rate decimal.Decimal) *Calculator {
	return &Calculator{
		ledger:    ledger,
		prices:    prices,
		rates:     rates,
		reporting: reporting,
		exemption: exemption,
		rate:      rate,
	}
}

// Result carries every intermediate figure of a disposal computation, not just
// the tax due, so the figure can be audited. All amounts are in the reporting
// currency; Rate is a ratio.
type Result struct {
	Proceeds            Money
	BedAndBreakfastCost Money
	Section104Cost      Money
	TaxableGain         Money // amount subject to CGT, after the annual exemption
	Rate                decimal.Decimal
	Due                 Money
}

// Cost returns the total cost basis across both partitions.
func (r *Result) Cost() Money { return r.BedAndBreakfastCost.Add(r.Section104Cost) }

func (r *Result) String() string {
	var b strings.Builder
	fmt.Fprintln(&b, "=============================")
	fmt.Fprintf(&b, "CGT due: %s\n", r.Due)
	fmt.Fprintln(&b, "=============================")
	fmt.Fprintln(&b, "Breakdown:")
	fmt.Fprintf(&b, "* Proceeds: %s\n", r.Proceeds)
	fmt.Fprintf(&b, "* Bed and breakfast cost: %s\n", r.BedAndBreakfastCost)
	fmt.Fprintf(&b, "* Section 104 cost: %s\n", r.Section104Cost)
	fmt.Fprintf(&b, "* Net proceeds: %s\n", r.Proceeds.Sub(r.Cost()))
	fmt.Fprintf(&b, "* Amount subject to CGT: %s\n", r.TaxableGain)
	fmt.Fprintf(&b, "* CGT rate: %s%%\n", r.Rate.Mul(decimal.NewFromInt(100)))
	fmt.Fprintf(&b, "* Net of tax: %s", r.Proceeds.Sub(r.Due))
	return b.String()
}

// Calculate computes the tax due on selling a quantity of symbol on sellDate.
//
// It fails with InsufficientHoldingsError before any conversion work when the
// ledger does not hold enough shares as of the sell date, and with
// MissingPriceError, MissingRateError or InconsistentPoolError when a data
// point the computation needs does not exist. There are no partial results.
func (c *Calculator) Calculate(symbol string, quantity Quantity, sellDate date.Date) (*Result, error) {
	if quantity.IsNegative() {
		return nil, fmt.Errorf("cannot sell a negative quantity (%s %s)", quantity, symbol)
	}
	available := c.ledger.QuantityAvailableOnOrBefore(symbol, sellDate)
	if quantity.GreaterThan(available) {
		return nil, &InsufficientHoldingsError{Symbol: symbol, Requested: quantity, Available: available, Date: sellDate}
	}

	price, ok := c.prices.PriceOnOrBefore(symbol, sellDate)
	if !ok {
		return nil, &MissingPriceError{Symbol: symbol, Date: sellDate}
	}
	proceeds, ok := convert(price.Mul(quantity), sellDate, c.rates, c.reporting)
	if !ok {
		return nil, &MissingRateError{Date: sellDate}
	}

	bnbQuantity, poolQuantity := c.ledger.Match(symbol, quantity, sellDate)

	bnbCost, err := c.bedAndBreakfastCost(symbol, bnbQuantity, sellDate)
	if err != nil {
		return nil, err
	}
	poolCost, err := c.section104Cost(symbol, poolQuantity, sellDate)
	if err != nil {
		return nil, err
	}

	taxable := proceeds.Sub(bnbCost).Sub(poolCost).Sub(c.exemption)
	if taxable.IsNegative() {
		taxable = M(0, c.reporting)
	}
	due := M(taxable.value.Mul(c.rate), c.reporting)

	return &Result{
		Proceeds:            proceeds,
		BedAndBreakfastCost: bnbCost,
		Section104Cost:      poolCost,
		TaxableGain:         taxable,
		Rate:                c.rate,
		Due:                 due,
	}, nil
}

// Partitions reports how a disposal would be matched, with the cost of each
// partition, without computing the tax. It shares Calculate's error cases
// except the market price, which it does not need.
func (c *Calculator) Partitions(symbol string, quantity Quantity, sellDate date.Date) ([]Partition, error) {
	available := c.ledger.QuantityAvailableOnOrBefore(symbol, sellDate)
	if quantity.GreaterThan(available) {
		return nil, &InsufficientHoldingsError{Symbol: symbol, Requested: quantity, Available: available, Date: sellDate}
	}

	bnbQuantity, poolQuantity := c.ledger.Match(symbol, quantity, sellDate)
	bnbCost, err := c.bedAndBreakfastCost(symbol, bnbQuantity, sellDate)
	if err != nil {
		return nil, err
	}
	poolCost, err := c.section104Cost(symbol, poolQuantity, sellDate)
	if err != nil {
		return nil, err
	}
	return []Partition{
		{Kind: BedAndBreakfast, Quantity: bnbQuantity, Cost: bnbCost},
		{Kind: Section104Pool, Quantity: poolQuantity, Cost: poolCost},
	}, nil
}
