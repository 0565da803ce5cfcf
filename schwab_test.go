package cgt

import (
	"strings"
	"testing"
)

const sampleExport = `"Charles Schwab & Co., Inc.","Positions for account Equity Awards...",,,,,,,,,
,,,,,,,,,,
"*** CASH AND MONEY MARKET ***",,,,,,,,,,
"Description","Quantity","Price",,,,,,,,
"Cash",,,,,,,,,,
,,,,,,,,,,
"*** EQUITY AWARD SHARES ***",,,,,,,,,,
"Award Date","Symbol","Award ID","Share Type","Market Value","Date Holding Period Met","Deposit Date","Date Acquired","Acquisition Price","Shares","Available to Sell"
"11-26-2018","GOOG","C123456","RS","$4,420.00","11-26-2018","11-26-2018","11-26-2018","$51.194","42.42","42.42"
"09-25-2022","GOOG","C654321","RS","$1,030.00","09-25-2022","09-25-2022","09-25-2022","$99.17","10.351","10.351"
"Totals",,,,,,,,,"52.771","52.771"
,,,,,,,,,,
"Transactions are listed for informational purposes only.",,,,,,,,,,
`

func TestParseEquityAwards(t *testing.T) {
	lots, err := ParseEquityAwards(strings.NewReader(sampleExport))
	if err != nil {
		t.Fatalf("ParseEquityAwards() error = %v", err)
	}
	if len(lots) != 2 {
		t.Fatalf("ParseEquityAwards() returned %d lots, want 2", len(lots))
	}

	first := lots[0]
	if first.Symbol != "GOOG" {
		t.Errorf("lots[0].Symbol = %q want GOOG", first.Symbol)
	}
	if first.DateAcquired != on("2018-11-26") {
		t.Errorf("lots[0].DateAcquired = %v want 2018-11-26", first.DateAcquired)
	}
	if !first.AcquisitionPrice.Equal(USD(51.194)) {
		t.Errorf("lots[0].AcquisitionPrice = %v want $51.194", first.AcquisitionPrice)
	}
	if !first.QuantityAvailable.Equal(Q(42.42)) {
		t.Errorf("lots[0].QuantityAvailable = %v want 42.42", first.QuantityAvailable)
	}

	last := lots[1]
	if last.DateAcquired != on("2022-09-25") {
		t.Errorf("lots[1].DateAcquired = %v want 2022-09-25", last.DateAcquired)
	}
	if !last.QuantityAvailable.Equal(Q(10.351)) {
		t.Errorf("lots[1].QuantityAvailable = %v want 10.351", last.QuantityAvailable)
	}
}

func TestParseEquityAwards_IgnoresOtherSections(t *testing.T) {
	// A date-shaped row outside the award shares section must not be parsed.
	export := `"*** OTHER HOLDINGS ***",,,,,,,,,,
"11-26-2018","GOOG","X","RS","$1.00","11-26-2018","11-26-2018","11-26-2018","$1.00","1","1"
`
	lots, err := ParseEquityAwards(strings.NewReader(export))
	if err != nil {
		t.Fatalf("ParseEquityAwards() error = %v", err)
	}
	if len(lots) != 0 {
		t.Errorf("ParseEquityAwards() returned %d lots, want 0", len(lots))
	}
}

func TestParseEquityAwards_RejectsChangedColumns(t *testing.T) {
	export := `"*** EQUITY AWARD SHARES ***",,,,,,,,,,
"Award Date","Symbol","Grant ID","Share Type","Market Value","Date Holding Period Met","Deposit Date","Date Acquired","Acquisition Price","Shares","Available to Sell"
`
	if _, err := ParseEquityAwards(strings.NewReader(export)); err == nil {
		t.Errorf("ParseEquityAwards() expected an error on changed columns, got none")
	}
}

func TestParseEquityAwards_RejectsNegativeQuantity(t *testing.T) {
	export := `"*** EQUITY AWARD SHARES ***",,,,,,,,,,
"11-26-2018","GOOG","C1","RS","$1.00","11-26-2018","11-26-2018","11-26-2018","$10.00","5","-5"
`
	if _, err := ParseEquityAwards(strings.NewReader(export)); err == nil {
		t.Errorf("ParseEquityAwards() expected an error on a negative quantity, got none")
	}
}
