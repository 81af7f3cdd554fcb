// Package totalreturn computes the interval total return of exchange-listed
// A-share equities between two dates, using unadjusted closing prices,
// accumulated cash dividends, and the value of bonus/transfer/rights-issue
// share additions.
//
// The core functionalities include:
//   - Trading window resolution: snapping a requested date range onto actual
//     trading days derived from the security's own price history, with a
//     reference-symbol calendar fallback for securities without data.
//   - Event normalization: converting heterogeneous upstream corporate-action
//     rows (structured numeric fields or free-text plan descriptions) into a
//     canonical strictly per-one-share event list.
//   - Interval aggregation: summing events whose ex-date falls in the
//     open-closed interval (start_trade_date, end_trade_date].
//   - Return calculation: total and annualized return over the window,
//     valuing share additions at the terminal close price.
//
// The engine is stateless: every query re-fetches and recomputes from
// scratch, so concurrent runs for the same symbol are independent and
// idempotent. This package serves as the foundational logic for the `trq`
// command-line tool and the bundled web API.
package totalreturn
