// Package journal provides the model behind a personal trading journal: a
// set of named journals, each recording transactions (trades, income and
// expenses) in a table whose schema the user can shape.
//
// The core functionalities include:
//   - Column Addressing: every journal has nine fixed core columns (date,
//     base, base amount, quote, quote amount, price, fees and notes) and any
//     number of user-defined extra columns. Columns are addressed uniformly
//     by a Role, whether they are core or extra.
//   - Precision Resolution: the number of decimal places used for an amount
//     or a price is resolved per asset or per asset pair, falling back to the
//     asset's own defaults.
//   - Ledger: transactions are kept in chronological order, and transactions
//     recorded on the same date keep their recording order.
//   - Asset Registry: an Account owns the assets and the accounting currency
//     that tickers are resolved against.
//
// The model is in-memory and synchronous. It has no internal locking; callers
// mutating an Account from several goroutines must serialize access.
package journal
