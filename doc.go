// Package stocks tracks ownership lots of financial instruments over time:
// quantities bought, partial or full sales, and the running positions that
// result, persisted as a flat CSV table.
//
// The core functionalities include:
//   - Lot Ledger: an ordered collection of purchase lots, each open until it
//     is fully matched against a sale. Sales consume the oldest open lots
//     first (FIFO) and split a lot when it is only partially consumed, so the
//     full buy history remains auditable.
//   - Visible Positions: a projection of the ledger for display that hides
//     closed lots bought before a cutoff date.
//   - Data Persistence: a full-overwrite CSV store with an explicit null
//     marker for lots that were never sold.
//   - Configuration: a small TOML config file pointing at the config and
//     stocks file locations.
//
// This package serves as the foundational logic for the `so` command-line
// tool. All operations take the ledger as a value and return the updated
// one; persistence is an explicit load-at-start, save-after-mutation pair.
package stocks
