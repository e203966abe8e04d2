package tui

import "testing"

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"19.99", 19.99},
		{"0", 0},
		{"", 0},
		{"abc", 0},
		{"-5.5", -5.5},
		{"NaN", 0},
		{"nan", 0},
		{"Inf", 0},
		{"+Inf", 0},
		{"-inf", 0},
	}
	for _, tt := range tests {
		if got := parseAmount(tt.in); got != tt.want {
			t.Errorf("parseAmount(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseQuantity(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"3", 3},
		{"", 0},
		{"2.5", 0},
		{"ten", 0},
	}
	for _, tt := range tests {
		if got := parseQuantity(tt.in); got != tt.want {
			t.Errorf("parseQuantity(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestTruncateStr(t *testing.T) {
	if got := truncateStr("short", 10); got != "short" {
		t.Errorf("truncateStr = %q, want unchanged", got)
	}
	if got := truncateStr("a very long description", 10); got != "a very ..." {
		t.Errorf("truncateStr = %q, want %q", got, "a very ...")
	}
}
