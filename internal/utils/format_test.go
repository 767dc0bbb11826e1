package utils

import "testing"

func TestFormatNaira(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "₦0"},
		{500, "₦500"},
		{1000, "₦1,000"},
		{45000000, "₦45,000,000"},
		{1234567.89, "₦1,234,567"},
	}

	for _, tt := range tests {
		if got := FormatNaira(tt.amount); got != tt.want {
			t.Errorf("FormatNaira(%v) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("hello", 10); got != "hello" {
		t.Errorf("short strings must pass through, got %q", got)
	}
	if got := Truncate("hello world", 5); got != "hello..." {
		t.Errorf("expected truncation with ellipsis, got %q", got)
	}
	if got := Truncate("₦₦₦₦₦₦", 3); got != "₦₦₦..." {
		t.Errorf("truncation must be rune safe, got %q", got)
	}
}
