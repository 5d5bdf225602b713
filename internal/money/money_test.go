package money

import (
	"math"
	"testing"
)

func TestFormatBRL(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "R$ 0,00"},
		{15000, "R$ 15.000,00"},
		{1234.56, "R$ 1.234,56"},
		{1234567.89, "R$ 1.234.567,89"},
		{999.999, "R$ 1.000,00"},
		{-500, "-R$ 500,00"},
	}

	for _, c := range cases {
		if got := FormatBRL(c.in); got != c.want {
			t.Fatalf("FormatBRL(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatBRLIfValid(t *testing.T) {
	if got := FormatBRLIfValid(0); got != "" {
		t.Fatalf("zero must render empty, got %q", got)
	}
	if got := FormatBRLIfValid(math.NaN()); got != "" {
		t.Fatalf("NaN must render empty, got %q", got)
	}
	if got := FormatBRLIfValid(2500); got != "R$ 2.500,00" {
		t.Fatalf("FormatBRLIfValid(2500) = %q", got)
	}
}

func TestParseBRL(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"R$ 15.000,00", 15000},
		{"15000", 15000},
		{"1.234,56", 1234.56},
		{"  R$2.000 ", 2000},
		{"-300", 0},
		{"abc", 0},
		{"", 0},
	}

	for _, c := range cases {
		if got := ParseBRL(c.in); got != c.want {
			t.Fatalf("ParseBRL(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestParsePercent(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"10", 0.10},
		{"10,5", 0.105},
		{"0", 0},
		{"100", 1},
		{"101", 0},
		{"-5", 0},
		{"junk", 0},
	}

	for _, c := range cases {
		if got := ParsePercent(c.in); math.Abs(got-c.want) > 1e-12 {
			t.Fatalf("ParsePercent(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestDisplayable(t *testing.T) {
	if Displayable(0) || Displayable(-1) || Displayable(math.NaN()) || Displayable(math.Inf(1)) {
		t.Fatal("zero, negative, NaN and Inf must not be displayable")
	}
	if !Displayable(0.01) {
		t.Fatal("positive finite amounts must be displayable")
	}
}

func TestSafe(t *testing.T) {
	if got := Safe(math.NaN(), 2000); got != 2000 {
		t.Fatalf("Safe(NaN) = %v, want minimum", got)
	}
	if got := Safe(1500, 2000); got != 2000 {
		t.Fatalf("Safe below minimum = %v, want 2000", got)
	}
	if got := Safe(3000, 2000); got != 3000 {
		t.Fatalf("Safe above minimum = %v, want 3000", got)
	}
}
