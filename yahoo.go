package cgt

import (
	"bufio"
	"bytes"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httputil"
	"net/url"
	"os"
	"path/filepath"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/cgt/date"
)

// This file fetches daily historical series from the Yahoo finance chart API.
// Responses go through a disk cache keyed by day, so a full history is
// downloaded at most once a day per symbol.

const yahooChartURL = "https://query1.finance.yahoo.com/v8/finance/chart/%s?period1=0&period2=9999999999&interval=1d"

// diskCache is an http.RoundTripper that caches whole responses on disk.
// The cache key includes today's date, so entries expire daily.
type diskCache struct {
	base http.RoundTripper
}

func (c *diskCache) RoundTrip(req *http.Request) (resp *http.Response, err error) {
	key := fmt.Sprintf("%s %s %s", date.Today(), req.Method, req.URL)
	key = fmt.Sprintf("%x", sha1.Sum([]byte(key)))

	cachedResp, err := c.get(key, req)
	if err == nil { // Cache hit
		return cachedResp, nil
	}

	resp, err = c.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	log.Printf("%v %v/%v %v", resp.Request.Method, resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	if resp.StatusCode >= 300 {
		return resp, nil
	}

	if err := c.put(key, resp); err != nil {
		log.Printf("cache write err (ignored): %v\n", err)
	}
	return resp, nil
}

// get retrieves a cached response from disk
func (c *diskCache) get(key string, req *http.Request) (*http.Response, error) {
	content, err := os.ReadFile(filepath.Join(os.TempDir(), key))
	if err != nil {
		return nil, err
	}
	return http.ReadResponse(bufio.NewReader(bytes.NewBuffer(content)), req)
}

// put stores a response to disk cache
func (c *diskCache) put(key string, resp *http.Response) error {
	content, err := httputil.DumpResponse(resp, true)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(os.TempDir(), key), content, 0644)
}

// daily returns a client whose responses are cached with a daily expiry.
func daily() *http.Client {
	client := new(http.Client)
	client.Transport = &diskCache{http.DefaultTransport}
	return client
}

// jwget performs an HTTP GET request and unmarshals the JSON response into the provided data structure.
func jwget(client *http.Client, addr string, data any) error {
	resp, err := client.Get(addr)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != 200 {
		return fmt.Errorf("cannot http GET %v/%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return err
	}
	return json.Unmarshal(buf.Bytes(), data)
}

// FetchSecurityPrices downloads the full daily closing price history for a
// symbol, in the currency the security is quoted in.
func FetchSecurityPrices(symbol string) (*SecurityPrices, error) {
	jobj, err := fetchChart(symbol)
	if err != nil {
		return nil, err
	}

	currency, err := chartString(jobj, "$.chart.result[0].meta.currency")
	if err != nil {
		return nil, fmt.Errorf("cannot read currency for %q: %w", symbol, err)
	}

	prices := NewSecurityPrices(symbol, currency)
	if err := chartSeries(jobj, prices.Append); err != nil {
		return nil, fmt.Errorf("cannot read price series for %q: %w", symbol, err)
	}
	return prices, nil
}

// FetchExchangeRates downloads the full daily history of the USD rate into
// the reporting currency, e.g. the "USDGBP=X" pair for GBP.
func FetchExchangeRates(reporting string) (*ExchangeRates, error) {
	pair := "USD" + reporting + "=X"
	jobj, err := fetchChart(pair)
	if err != nil {
		return nil, err
	}

	rates := NewExchangeRates(reporting)
	if err := chartSeries(jobj, rates.Append); err != nil {
		return nil, fmt.Errorf("cannot read rate series for %q: %w", pair, err)
	}
	return rates, nil
}

// fetchChart GETs the chart document for a symbol and returns it decoded.
func fetchChart(symbol string) (any, error) {
	addr := fmt.Sprintf(yahooChartURL, url.PathEscape(symbol))
	var jobj any
	if err := jwget(daily(), addr, &jobj); err != nil {
		return nil, fmt.Errorf("cannot fetch history for %q: %w", symbol, err)
	}
	return jobj, nil
}

// chartString extracts a single string value from a chart document.
func chartString(jobj any, path string) (string, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return "", fmt.Errorf("error parsing %q: %w", path, err)
	}
	// because jsonpath is never clear about whether it returns a list of 1 answer, or a single answer:
	// by this call I keep the first one if any
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	s, ok := jval.(string)
	if !ok {
		return "", fmt.Errorf("error parsing %q: not a string: %v", path, jval)
	}
	return s, nil
}

// chartSeries walks the timestamp and close arrays of a chart document in
// lockstep, calling add for every day with a close. Days without a close
// (the API reports null on non-trading days) are skipped.
func chartSeries(jobj any, add func(on date.Date, close float64)) error {
	jts, err := jsonpath.Get("$.chart.result[0].timestamp", jobj)
	if err != nil {
		return fmt.Errorf("error parsing timestamps: %w", err)
	}
	jcl, err := jsonpath.Get("$.chart.result[0].indicators.quote[0].close", jobj)
	if err != nil {
		return fmt.Errorf("error parsing closes: %w", err)
	}

	timestamps, ok := jts.([]any)
	if !ok {
		return fmt.Errorf("timestamps are not a list: %v", jts)
	}
	closes, ok := jcl.([]any)
	if !ok {
		return fmt.Errorf("closes are not a list: %v", jcl)
	}
	if len(timestamps) != len(closes) {
		return fmt.Errorf("got %d timestamps for %d closes", len(timestamps), len(closes))
	}

	for i := range timestamps {
		ts, ok := timestamps[i].(float64)
		if !ok {
			continue
		}
		close, ok := closes[i].(float64)
		if !ok {
			continue // null close on a non-trading day
		}
		add(date.FromUnix(int64(ts)), close)
	}
	return nil
}
