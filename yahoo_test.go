package cgt

import (
	"encoding/json"
	"strings"
	"testing"
)

// sampleChart is a trimmed-down chart API response: three trading days, the
// middle close is null as the API reports for non-trading days.
const sampleChart = `{
  "chart": {
    "result": [
      {
        "meta": {"currency": "USD", "symbol": "GOOG"},
        "timestamp": [1609718400, 1609804800, 1609891200],
        "indicators": {"quote": [{"close": [20.0, null, 22.0]}]}
      }
    ],
    "error": null
  }
}`

func decodeChart(t *testing.T) any {
	t.Helper()
	var jobj any
	if err := json.Unmarshal([]byte(sampleChart), &jobj); err != nil {
		t.Fatalf("cannot decode sample chart: %v", err)
	}
	return jobj
}

func TestChartString(t *testing.T) {
	jobj := decodeChart(t)

	currency, err := chartString(jobj, "$.chart.result[0].meta.currency")
	if err != nil {
		t.Fatalf("chartString() error = %v", err)
	}
	if currency != "USD" {
		t.Errorf("chartString(currency) = %q want USD", currency)
	}

	if _, err := chartString(jobj, "$.chart.result[0].meta.nothing"); err == nil {
		t.Errorf("chartString() on a missing path expected an error, got none")
	}
}

func TestChartSeries(t *testing.T) {
	jobj := decodeChart(t)

	prices := NewSecurityPrices("GOOG", "USD")
	if err := chartSeries(jobj, prices.Append); err != nil {
		t.Fatalf("chartSeries() error = %v", err)
	}

	// The null close is skipped: 2021-01-04 and 2021-01-06 remain.
	if p, ok := prices.PriceOnOrBefore("GOOG", on("2021-01-04")); !ok || !p.Equal(USD(20)) {
		t.Errorf("PriceOnOrBefore(2021-01-04) = %v, %v want $20.00, true", p, ok)
	}
	if p, ok := prices.PriceOnOrBefore("GOOG", on("2021-01-05")); !ok || !p.Equal(USD(20)) {
		t.Errorf("PriceOnOrBefore(2021-01-05) = %v, %v want $20.00, the null close is skipped", p, ok)
	}
	if p, ok := prices.PriceOnOrBefore("GOOG", on("2021-01-06")); !ok || !p.Equal(USD(22)) {
		t.Errorf("PriceOnOrBefore(2021-01-06) = %v, %v want $22.00, true", p, ok)
	}
}

func TestChartSeries_LengthMismatch(t *testing.T) {
	var jobj any
	doc := `{"chart":{"result":[{"timestamp":[1609718400],"indicators":{"quote":[{"close":[20.0, 21.0]}]}}]}}`
	if err := json.Unmarshal([]byte(doc), &jobj); err != nil {
		t.Fatal(err)
	}

	prices := NewSecurityPrices("GOOG", "USD")
	err := chartSeries(jobj, prices.Append)
	if err == nil || !strings.Contains(err.Error(), "timestamps") {
		t.Errorf("chartSeries() error = %v want a length mismatch error", err)
	}
}
