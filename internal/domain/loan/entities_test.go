package loan

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestRepaymentDue(t *testing.T) {
	cases := []struct {
		name      string
		principal string
		bps       int64
		want      string
	}{
		{"whole principal", "1", 620, "1.062"},
		{"fractional principal", "0.5", 520, "0.526"},
		{"zero rate", "2", 0, "2"},
		{"max amount max rate", "1000", 1520, "1152"},
		// a full 18-decimal principal must not lose its last digits:
		// 0.010000000000000001 × 1.0620 carries through exactly
		{"18-dp principal", "0.010000000000000001", 620, "0.010620000000000001062"},
		{"18-dp principal high rate", "999.999999999999999999", 1520, "1151.999999999999999998848"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l := &Loan{
				Principal:       decimal.RequireFromString(tc.principal),
				InterestRateBps: tc.bps,
			}
			want := decimal.RequireFromString(tc.want)
			if got := l.RepaymentDue(); !got.Equal(want) {
				t.Fatalf("RepaymentDue(%s @ %d bps) = %s, want %s", tc.principal, tc.bps, got, want)
			}
		})
	}
}
