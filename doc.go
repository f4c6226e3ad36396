// Package aggie extracts per-project financial summaries from the
// spreadsheet reports generated by AggieEnterprise, the UC Davis grant
// accounting system, and compares them across report runs.
//
// The core functionalities include:
//   - Report Ingestion: Reading the Summary and Detail sheets of one
//     report workbook into an immutable, timestamped Snapshot of
//     per-project figures (budget, expenses, balance, and expenses
//     broken down by category).
//   - Name Cleaning: Deterministically rewriting the raw project labels
//     (exact replacements, suffix truncation, substring removal) so that
//     the same underlying project is recognized across report runs that
//     label it differently.
//   - Reviews: Pairing two Snapshots and computing the per-project,
//     per-field differences between them, including projects that appear
//     in only one of the two runs.
//
// This package serves as the foundational logic for the `aggie-report`
// command-line tool; rendering and all I/O beyond workbook reading live
// in the renderer and cmd packages.
package aggie
