package components

import (
	"strings"
	"testing"
)

func TestFormatRupeeLabel(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0.5, "₹0.50"},
		{45, "₹45"},
		{1000, "₹1k"},
		{4500, "₹4.5k"},
		{100000, "₹1L"},
		{250000, "₹2.5L"},
		{10000000, "₹1Cr"},
		{12500000, "₹1.2Cr"},
	}
	for _, tt := range tests {
		if got := formatRupeeLabel(tt.in); got != tt.want {
			t.Errorf("formatRupeeLabel(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPadLabel(t *testing.T) {
	if got := padLabel("₹1k", 5); got != "  ₹1k" {
		t.Errorf("padLabel = %q, want two leading spaces (rupee sign is one column)", got)
	}
	if got := padLabel("₹1.5Cr", 3); got != "₹1.5Cr" {
		t.Errorf("padLabel should not truncate, got %q", got)
	}
}

func TestBarChartAxisUsesRupees(t *testing.T) {
	out := BarChart([]float64{100, 450, 200}, []string{"Mon", "Tue", "Wed"}, "", 40, 6)
	if !strings.Contains(out, "₹0") {
		t.Errorf("chart origin label should be ₹0, output:\n%s", out)
	}
	if !strings.Contains(out, "₹") {
		t.Error("axis ticks should be rupee-denominated")
	}
}
