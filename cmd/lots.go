package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/etnz/cgt"
	"github.com/google/subcommands"
)

// lotsCmd holds the flags for the 'lots' subcommand.
type lotsCmd struct {
	csvPath string
}

func (*lotsCmd) Name() string     { return "lots" }
func (*lotsCmd) Synopsis() string { return "list the acquisition lots found in a Schwab export" }
func (*lotsCmd) Usage() string {
	return `cgtcalc lots -csv <path>

  Parses the Schwab equity awards export and lists the acquisition lots it
  contains. Useful to check what the calculator will work from before running
  'calculate'.

`
}

func (c *lotsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.csvPath, "csv", "", "Path to the EquityAwardsCenter_EquityDetails CSV export")
}

func (c *lotsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.csvPath == "" {
		fmt.Fprintln(os.Stderr, "Error: -csv is required")
		return subcommands.ExitUsageError
	}

	lots, err := cgt.LoadEquityAwards(c.csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading lots: %v\n", err)
		return subcommands.ExitFailure
	}

	sort.SliceStable(lots, func(i, j int) bool { return lots[i].DateAcquired.Before(lots[j].DateAcquired) })

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DATE ACQUIRED\tSYMBOL\tACQUISITION PRICE\tAVAILABLE TO SELL")
	var total cgt.Quantity
	for _, lot := range lots {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", lot.DateAcquired, lot.Symbol, lot.AcquisitionPrice, lot.QuantityAvailable)
		total = total.Add(lot.QuantityAvailable)
	}
	w.Flush()
	fmt.Printf("%d lots, %s shares in total\n", len(lots), total)

	return subcommands.ExitSuccess
}
