package utils

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestRound2(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{19.994, "19.99"},
		{19.996, "20"},
		{-5.755, "-5.76"},
		{1234.5, "1234.5"},
		{0, "0"},
	}

	for _, tt := range tests {
		got := Round2(tt.in)
		if !got.Equal(decimal.RequireFromString(tt.want)) {
			t.Errorf("Round2(%v) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestRoundTo(t *testing.T) {
	got := RoundTo(0.98765, 3)
	if got.String() != "0.988" {
		t.Errorf("RoundTo(0.98765, 3) = %s, want 0.988", got)
	}
	got = RoundTo(45678.4, 0)
	if got.String() != "45678" {
		t.Errorf("RoundTo(45678.4, 0) = %s, want 45678", got)
	}
}

func TestRandomAmount(t *testing.T) {
	rng := NewRandom(42)
	lo := decimal.NewFromInt(50)
	hi := decimal.NewFromInt(50000)

	for i := 0; i < 1000; i++ {
		a := RandomAmount(rng, 50, 50000)
		if a.LessThan(lo) || a.GreaterThan(hi) {
			t.Fatalf("RandomAmount(50, 50000) returned %s", a)
		}
		if a.Exponent() < -2 {
			t.Fatalf("RandomAmount returned more than 2 decimal places: %s", a)
		}
	}
}

func TestCurrencyConversion(t *testing.T) {
	t.Run("fixed rates", func(t *testing.T) {
		rates := map[string]string{"CZK": "1", "EUR": "24.5", "USD": "22.8"}
		for code, want := range rates {
			c := GetCurrency(code)
			if !c.RateCZK.Equal(decimal.RequireFromString(want)) {
				t.Errorf("%s rate = %s, want %s", code, c.RateCZK, want)
			}
		}
	})

	t.Run("ToCZK", func(t *testing.T) {
		got := GetCurrency("EUR").ToCZK(decimal.RequireFromString("100.10"))
		if got.String() != "2452.45" {
			t.Errorf("EUR 100.10 -> %s CZK, want 2452.45", got)
		}
	})

	t.Run("unknown code falls back to CZK", func(t *testing.T) {
		if c := GetCurrency("XXX"); c.Code != "CZK" {
			t.Errorf("GetCurrency(XXX) = %s, want CZK", c.Code)
		}
	})
}
