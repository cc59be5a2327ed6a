package journal

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestTransaction_Kind(t *testing.T) {
	testCases := []struct {
		name string
		tx   Transaction
		want TransactionKind
	}{
		{"buy", trade("2025-01-01", 1, "BTC", -40000, "USD"), KindBuy},
		{"sell", trade("2025-01-01", -1, "BTC", 40000, "USD"), KindSell},
		{"income without quote", trade("2025-01-01", 100, "USD", 0, ""), KindIncome},
		{"income with positive quote", trade("2025-01-01", 1, "BTC", 10, "USD"), KindIncome},
		{"expense without quote", trade("2025-01-01", -100, "USD", 0, ""), KindExpense},
		{"expense with negative quote", trade("2025-01-01", -1, "BTC", -10, "USD"), KindExpense},
		{"nothing", trade("2025-01-01", 0, "BTC", 10, "USD"), KindUnknown},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.tx.Kind(); got != tc.want {
				t.Errorf("Kind() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestTransaction_Price(t *testing.T) {
	price, ok := trade("2025-01-01", 0.5, "BTC", -20000, "USD").Price()
	if !ok || !price.Equal(decimal.NewFromInt(40000)) {
		t.Errorf("Price() = %s, %v, want 40000, true", price, ok)
	}
	if _, ok := trade("2025-01-01", 0, "BTC", 10, "USD").Price(); ok {
		t.Errorf("Price() of a zero base amount is defined")
	}
}

func TestTransaction_Equal(t *testing.T) {
	a := trade("2025-01-01", 1, "BTC", -40000, "USD")
	a.Extra = map[string]any{"Tax": D("1.50"), "Tag": "x"}
	b := a.Clone()
	b.Extra["Tax"] = D("1.5")
	b.BaseAmount = D("1.000")

	if !a.Equal(b) {
		t.Errorf("Equal() = false for numerically equal transactions")
	}
	b.Extra["Tag"] = "y"
	if a.Equal(b) {
		t.Errorf("Equal() = true for different extra values")
	}
	if a.Extra["Tag"] != "x" {
		t.Errorf("Clone() shares the Extra map")
	}
}
