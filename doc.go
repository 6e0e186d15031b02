// Package stockgame implements the ledger of a simulated stock trading game:
// player accounts holding virtual cash and shares, trades executed against
// live market prices, and reports valuing each portfolio.
//
// The core pieces are:
//   - Account Store: the durable collection of player accounts, persisted as
//     one JSONL record per account and replaced atomically on every mutation.
//   - Trading Engine: buy and sell orders applied as all-or-nothing state
//     transitions, with solvency and holdings invariants enforced before any
//     money moves.
//   - Valuation: point-in-time portfolio reports (value, invested cost, ROI)
//     and a leaderboard ranking all players by net worth.
//   - Market Data: a Quoter abstraction over the price source, so the engine
//     is indifferent to where quotes come from.
//
// This package is the foundational logic for the `stg` command-line tool.
package stockgame
