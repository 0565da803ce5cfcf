package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/cgt"
	"github.com/etnz/cgt/date"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// calculateCmd holds the flags for the 'calculate' subcommand.
type calculateCmd struct {
	symbol    string
	sellDate  string
	quantity  string
	csvPath   string
	exemption string
	status    string
	currency  string
}

func (*calculateCmd) Name() string     { return "calculate" }
func (*calculateCmd) Synopsis() string { return "compute the CGT due on a disposal" }
func (*calculateCmd) Usage() string {
	return `cgtcalc calculate -symbol <symbol> -sell-date <date> -quantity <shares> -csv <path> -status <basic|higher> [-exemption <amount>] [-currency <code>]

  Computes the UK Capital Gains Tax due on selling a quantity of shares on a
  given date, matching the disposal against the lots of the Schwab equity
  awards export under HMRC's share matching rules.

Usage Examples:
# Basic rate taxpayer selling 50 GOOG shares.
$ cgtcalc calculate -symbol GOOG -sell-date 2022-11-01 -quantity 50 -csv EquityAwardsCenter_EquityDetails.csv -status basic

`
}

func (c *calculateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "symbol", "", "Stock symbol")
	f.StringVar(&c.sellDate, "sell-date", "", "Sell date (YYYY-MM-DD)")
	f.StringVar(&c.quantity, "quantity", "", "Number of shares to sell")
	f.StringVar(&c.csvPath, "csv", "", "Path to the EquityAwardsCenter_EquityDetails CSV export")
	f.StringVar(&c.exemption, "exemption", "12300", "Annual exemption amount (12,300 for 2022)")
	f.StringVar(&c.status, "status", "", "Taxpayer status (basic - 10% / higher - 20%)")
	f.StringVar(&c.currency, "currency", "GBP", "Reporting currency")
}

func (c *calculateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	sellDate, err := date.Parse(c.sellDate)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing sell date: %v\n", err)
		return subcommands.ExitUsageError
	}
	quantity, err := decimal.NewFromString(c.quantity)
	if err != nil || !quantity.IsPositive() {
		fmt.Fprintf(os.Stderr, "Error: -quantity must be a positive number, got %q\n", c.quantity)
		return subcommands.ExitUsageError
	}
	exemption, err := decimal.NewFromString(c.exemption)
	if err != nil || exemption.IsNegative() {
		fmt.Fprintf(os.Stderr, "Error: -exemption must be a non-negative amount, got %q\n", c.exemption)
		return subcommands.ExitUsageError
	}
	rate, err := parseTaxpayerStatus(c.status)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if c.symbol == "" || c.csvPath == "" {
		fmt.Fprintln(os.Stderr, "Error: -symbol and -csv are required")
		return subcommands.ExitUsageError
	}

	lots, err := cgt.LoadEquityAwards(c.csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading lots: %v\n", err)
		return subcommands.ExitFailure
	}
	prices, err := cgt.FetchSecurityPrices(c.symbol)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching prices: %v\n", err)
		return subcommands.ExitFailure
	}
	rates, err := cgt.FetchExchangeRates(c.currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching exchange rates: %v\n", err)
		return subcommands.ExitFailure
	}

	calculator := cgt.NewCalculator(cgt.NewLedger(lots...), prices, rates, c.currency, cgt.M(exemption, c.currency), rate)
	result, err := calculator.Calculate(c.symbol, cgt.Q(quantity), sellDate)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Println(result)
	return subcommands.ExitSuccess
}

// parseTaxpayerStatus maps the taxpayer status to the CGT rate for shares.
func parseTaxpayerStatus(s string) (decimal.Decimal, error) {
	switch s {
	case "basic":
		return decimal.NewFromFloat(0.1), nil
	case "higher":
		return decimal.NewFromFloat(0.2), nil
	default:
		return decimal.Decimal{}, fmt.Errorf("unknown taxpayer status %q, want basic or higher", s)
	}
}
