package secrand

import (
	"errors"
	"strings"
	"testing"
)

func TestIntBounds(t *testing.T) {
	tests := []struct {
		name string
		min  int
		max  int
	}{
		{"single digit", 0, 9},
		{"single value", 7, 7},
		{"negative range", -5, 5},
		{"offset range", 100, 355},
		{"exact byte space", 0, 255},
		{"two byte range", 0, 256},
		{"alphabet index", 0, 35},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < 1000; i++ {
				got, err := Int(tt.min, tt.max)
				if err != nil {
					t.Fatalf("Int(%d, %d) error: %v", tt.min, tt.max, err)
				}
				if got < tt.min || got > tt.max {
					t.Fatalf("Int(%d, %d) = %d, out of range", tt.min, tt.max, got)
				}
			}
		})
	}
}

func TestIntInvalidRange(t *testing.T) {
	_, err := Int(5, 4)
	if err == nil {
		t.Fatal("Int(5, 4) returned no error")
	}
	if !errors.Is(err, ErrInvalidRange) {
		t.Errorf("error = %v, want ErrInvalidRange", err)
	}
}

// TestIntUniform is a chi-square goodness-of-fit check on 100k draws over
// [0, 9]. With 9 degrees of freedom the statistic exceeds 33.72 with
// probability 1e-4 for a truly uniform source, so a failure here points at a
// biased reduction, not bad luck.
func TestIntUniform(t *testing.T) {
	const draws = 100000
	const buckets = 10
	const expected = float64(draws) / buckets
	const critical = 33.72

	var counts [buckets]int
	for i := 0; i < draws; i++ {
		v, err := Int(0, buckets-1)
		if err != nil {
			t.Fatalf("Int error on draw %d: %v", i, err)
		}
		counts[v]++
	}

	chi2 := 0.0
	for _, c := range counts {
		d := float64(c) - expected
		chi2 += d * d / expected
	}
	if chi2 > critical {
		t.Errorf("chi-square = %.2f exceeds %.2f, counts: %v", chi2, critical, counts)
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		name     string
		n        int
		alphabet string
		wantLen  int
	}{
		{"digits", 10, Digits, 10},
		{"letters", 26, Letters, 26},
		{"alnum", 100, Alnum, 100},
		{"zero length", 0, Digits, 0},
		{"negative length", -3, Digits, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := String(tt.n, tt.alphabet)
			if err != nil {
				t.Fatalf("String(%d, ...) error: %v", tt.n, err)
			}
			if len(got) != tt.wantLen {
				t.Fatalf("len = %d, want %d", len(got), tt.wantLen)
			}
			for i := 0; i < len(got); i++ {
				if !strings.ContainsRune(tt.alphabet, rune(got[i])) {
					t.Fatalf("character %q not in alphabet %q", got[i], tt.alphabet)
				}
			}
		})
	}
}

func TestStringEmptyAlphabet(t *testing.T) {
	if _, err := String(5, ""); err == nil {
		t.Error("String with empty alphabet returned no error")
	}
}

// TestStringLetterPurity: a letters-only alphabet must never leak a digit
// into the output, even across many draws.
func TestStringLetterPurity(t *testing.T) {
	for i := 0; i < 100; i++ {
		s, err := String(20, Letters)
		if err != nil {
			t.Fatal(err)
		}
		for j := 0; j < len(s); j++ {
			if s[j] < 'A' || s[j] > 'Z' {
				t.Fatalf("letter field contains %q in %q", s[j], s)
			}
		}
	}
}
