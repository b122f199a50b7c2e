// Package rate computes risk-adjusted interest rates from amount and
// duration tiers. All outputs are integer basis points, so identical
// inputs always price identically.
package rate

import "github.com/shopspring/decimal"

// BaseRateBps is the floor every loan pays before tier adjustments.
const BaseRateBps int64 = 520

const secondsPerDay = 24 * 60 * 60

var (
	amt1   = decimal.NewFromInt(1)
	amt10  = decimal.NewFromInt(10)
	amt50  = decimal.NewFromInt(50)
	amt100 = decimal.NewFromInt(100)
	amt500 = decimal.NewFromInt(500)
)

// Calculate returns the rate in basis points for a loan of the given
// principal and duration. Bounds checking is the ledger's job; this
// function only prices.
func Calculate(amount decimal.Decimal, durationSeconds int64) int64 {
	return BaseRateBps + amountAdjustment(amount) + durationAdjustment(durationSeconds)
}

// amountAdjustment: half-open tiers over the principal in base units.
func amountAdjustment(amount decimal.Decimal) int64 {
	switch {
	case amount.LessThan(amt1):
		return 0
	case amount.LessThan(amt10):
		return 100
	case amount.LessThan(amt50):
		return 200
	case amount.LessThan(amt100):
		return 300
	case amount.LessThan(amt500):
		return 500
	default:
		return 700
	}
}

// durationAdjustment: tiers over whole days.
func durationAdjustment(durationSeconds int64) int64 {
	days := durationSeconds / secondsPerDay
	switch {
	case days <= 30:
		return 0
	case days <= 90:
		return 100
	case days <= 180:
		return 200
	default:
		return 300
	}
}
