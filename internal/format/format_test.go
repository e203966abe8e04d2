package format

import "testing"

func TestCurrency_USD(t *testing.T) {
	if got := Currency(1234.5, "USD"); got != "$1,234.50" {
		t.Errorf("Currency = %q, want %q", got, "$1,234.50")
	}
}

func TestCurrency_NoFractionDigitsForYen(t *testing.T) {
	if got := Currency(1200, "JPY"); got != "¥1,200" {
		t.Errorf("Currency = %q, want %q", got, "¥1,200")
	}
}

func TestCurrency_UnknownCodeFallsBackToUSD(t *testing.T) {
	if got := Currency(10, "XXX"); got != "$10.00" {
		t.Errorf("Currency = %q, want %q", got, "$10.00")
	}
}

func TestCurrency_Zero(t *testing.T) {
	if got := Currency(0, "EUR"); got != "€0.00" {
		t.Errorf("Currency = %q, want %q", got, "€0.00")
	}
}

func TestCurrency_Negative(t *testing.T) {
	if got := Currency(-42.5, "GBP"); got != "-£42.50" {
		t.Errorf("Currency = %q, want %q", got, "-£42.50")
	}
}

func TestCurrency_NegativeRoundingToZeroDropsSign(t *testing.T) {
	if got := Currency(-0.004, "USD"); got != "$0.00" {
		t.Errorf("Currency = %q, want %q", got, "$0.00")
	}
	if got := Currency(-0.4, "JPY"); got != "¥0" {
		t.Errorf("Currency = %q, want %q", got, "¥0")
	}
}

func TestCurrency_LargeAmountGrouping(t *testing.T) {
	if got := Currency(1234567.89, "INR"); got != "₹1,234,567.89" {
		t.Errorf("Currency = %q, want %q", got, "₹1,234,567.89")
	}
}

func TestDate_LongForm(t *testing.T) {
	if got := Date("2026-08-31"); got != "August 31, 2026" {
		t.Errorf("Date = %q, want %q", got, "August 31, 2026")
	}
}

func TestDate_Empty(t *testing.T) {
	if got := Date(""); got != "" {
		t.Errorf("Date(\"\") = %q, want empty", got)
	}
}

func TestDate_Unparsable(t *testing.T) {
	if got := Date("31/08/2026"); got != "" {
		t.Errorf("Date = %q, want empty for unparsable input", got)
	}
}
