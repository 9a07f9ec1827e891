// Package finance computes realized income, potential income, currency
// adjusted asset totals and the global position.
//
// Every function is pure. Amounts keep full decimal precision; rounding to
// cents happens only where values are presented.
package finance
