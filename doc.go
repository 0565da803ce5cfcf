// Package cgt computes the UK Capital Gains Tax due on a partial disposal of
// equity awards, applying HMRC's share matching rules.
//
// The core functionalities include:
//   - Lot Ledger: an immutable set of acquisition lots for a security, with
//     the date-threshold and date-window queries the matching rules need.
//   - Share Matching: partitioning a disposal between shares reacquired in the
//     30 days after the sale (the "bed and breakfast" rule) and the Section 104
//     holding pool.
//   - Cost Basis: FIFO costing of the bed and breakfast partition and weighted
//     average costing of the Section 104 pool, with every figure converted to
//     the reporting currency at date-accurate exchange rates.
//   - Market Data: exact-or-closest-prior lookups over daily price and
//     exchange rate series, fetched from Yahoo finance or supplied in memory.
//   - Lot Sources: parsing of the Schwab "Equity Award Center" CSV export.
//
// This package serves as the foundational logic for the `cgtcalc` command-line
// tool. The computation is a pure function of the ledger, lookup snapshots and
// the disposal request: nothing is mutated during a calculation, and any
// missing data point aborts it rather than degrade the tax figure.
package cgt
