package cgt

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/etnz/cgt/date"
	"github.com/shopspring/decimal"
)

// This file parses the "Equity Award Center" CSV export from Schwab
// (https://client.schwab.com/app/accounts/equityawards/ > Export). The export
// is not a plain CSV: award lots sit in a section between a start marker and a
// "Totals" row, surrounded by other sections with different column sets.

const (
	awardsSectionStart = "*** EQUITY AWARD SHARES ***"
	awardsSectionEnd   = "Totals"
	awardsDateFormat   = "01-02-2006" // Schwab writes m-d-Y dates
	awardsCurrency     = "USD"
)

// awardsHeader is the exact column set of the award shares section. A change
// here means Schwab changed the export and the field indexes below are stale.
var awardsHeader = []string{
	"Award Date",
	"Symbol",
	"Award ID",
	"Share Type",
	"Market Value",
	"Date Holding Period Met",
	"Deposit Date",
	"Date Acquired",
	"Acquisition Price",
	"Shares",
	"Available to Sell",
}

// LoadEquityAwards reads the acquisition lots from a Schwab equity awards CSV
// file.
func LoadEquityAwards(path string) ([]AcquisitionLot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	lots, err := ParseEquityAwards(f)
	if err != nil {
		return nil, fmt.Errorf("cannot parse %q: %w", path, err)
	}
	return lots, nil
}

// ParseEquityAwards scans r for the award shares section and returns one
// AcquisitionLot per award row.
func ParseEquityAwards(r io.Reader) ([]AcquisitionLot, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // the export mixes section markers and records

	var lots []AcquisitionLot
	inSection := false
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(record) == 0 {
			continue
		}

		if record[0] == awardsSectionStart {
			inSection = true
			continue
		}
		if !inSection {
			continue
		}
		if record[0] == awardsSectionEnd {
			inSection = false
			continue
		}
		if record[0] == "Award Date" {
			if !slices.Equal(record, awardsHeader) {
				return nil, fmt.Errorf("unexpected award shares columns: %q", record)
			}
			continue
		}

		// Rows whose first field is not a m-d-Y date are blanks or sub-headers.
		if _, err := time.Parse(awardsDateFormat, record[0]); err != nil {
			continue
		}
		lot, err := parseAwardRecord(record)
		if err != nil {
			return nil, err
		}
		lots = append(lots, lot)
	}
	return lots, nil
}

// parseAwardRecord turns one award row into an AcquisitionLot.
func parseAwardRecord(record []string) (AcquisitionLot, error) {
	if len(record) < len(awardsHeader) {
		return AcquisitionLot{}, fmt.Errorf("award record has %d fields, want %d: %q", len(record), len(awardsHeader), record)
	}

	acquired, err := time.Parse(awardsDateFormat, record[7])
	if err != nil {
		return AcquisitionLot{}, fmt.Errorf("invalid date acquired %q: %w", record[7], err)
	}

	price, err := decimal.NewFromString(strings.TrimPrefix(record[8], "$"))
	if err != nil {
		return AcquisitionLot{}, fmt.Errorf("invalid acquisition price %q: %w", record[8], err)
	}
	if price.IsNegative() {
		return AcquisitionLot{}, fmt.Errorf("negative acquisition price %q", record[8])
	}

	quantity, err := decimal.NewFromString(record[10])
	if err != nil {
		return AcquisitionLot{}, fmt.Errorf("invalid available to sell %q: %w", record[10], err)
	}
	if quantity.IsNegative() {
		return AcquisitionLot{}, fmt.Errorf("negative available to sell %q", record[10])
	}

	return AcquisitionLot{
		Symbol:            record[1],
		DateAcquired:      date.New(acquired.Date()),
		AcquisitionPrice:  M(price, awardsCurrency),
		QuantityAvailable: Q(quantity),
	}, nil
}
