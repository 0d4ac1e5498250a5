// Package papertrade implements a simulated stock-trading ledger.
//
// A Ledger owns one user's cash, holdings and trade history, validates buy
// and sell orders, and persists its full state to a per-identity JSON file
// after every successful trade. The surrounding packages provide the demo
// around it: marketdata fetches live quotes, strategy derives a P/E ceiling
// from an uploaded strategy document and issues buy/sell verdicts, and cmd
// exposes the whole thing as a CLI.
package papertrade
