package ibangen

import (
	"strings"
	"testing"
)

// matchesFormat reports whether s is exactly described by the field runs.
func matchesFormat(s string, fields []Field) bool {
	for _, f := range fields {
		if len(s) < f.Count {
			return false
		}
		run, rest := s[:f.Count], s[f.Count:]
		for i := 0; i < len(run); i++ {
			b := run[i]
			switch f.Kind {
			case Digits:
				if b < '0' || b > '9' {
					return false
				}
			case Letters:
				if b < 'A' || b > 'Z' {
					return false
				}
			case Alnum:
				if (b < '0' || b > '9') && (b < 'A' || b > 'Z') {
					return false
				}
			}
		}
		s = rest
	}
	return s == ""
}

// TestRegistryInvariants checks the structural promises of every builtin
// profile: field widths add up to the IBAN length, format runs add up to the
// field widths, and every sample bank code fits the bank format.
func TestRegistryInvariants(t *testing.T) {
	for _, p := range countries {
		t.Run(p.Code, func(t *testing.T) {
			if len(p.Code) != 2 {
				t.Errorf("code %q is not two letters", p.Code)
			}
			if got := 4 + p.BankCodeLength + p.AccountLength; got != p.Length {
				t.Errorf("4 + %d + %d = %d, want total length %d",
					p.BankCodeLength, p.AccountLength, got, p.Length)
			}

			sum := 0
			for _, f := range p.BankFormat {
				sum += f.Count
			}
			if sum != p.BankCodeLength {
				t.Errorf("bank format runs sum to %d, want %d", sum, p.BankCodeLength)
			}

			sum = 0
			for _, f := range p.AccountFormat {
				sum += f.Count
			}
			if sum != p.AccountLength {
				t.Errorf("account format runs sum to %d, want %d", sum, p.AccountLength)
			}

			for _, sample := range p.SampleBankCodes {
				if !matchesFormat(sample, p.BankFormat) {
					t.Errorf("sample bank code %q does not match the bank format", sample)
				}
			}
		})
	}
}

func TestLookupNormalization(t *testing.T) {
	r := DefaultRegistry()

	for _, code := range []string{"NL", "nl", " nl ", "Nl", "\tNL\n"} {
		p, err := r.Lookup(code)
		if err != nil {
			t.Errorf("Lookup(%q) error: %v", code, err)
			continue
		}
		if p.Code != "NL" {
			t.Errorf("Lookup(%q) = %q, want NL", code, p.Code)
		}
	}
}

func TestLookupUnknown(t *testing.T) {
	r := DefaultRegistry()

	_, err := r.Lookup("ZZ")
	if err == nil {
		t.Fatal("Lookup(ZZ) returned no error")
	}
	if KindOf(err) != UnsupportedCountry {
		t.Errorf("error kind = %v, want UnsupportedCountry", KindOf(err))
	}
	// The message must enumerate the supported codes so a caller can
	// re-prompt with the valid list.
	for _, code := range r.Codes() {
		if !strings.Contains(err.Error(), code) {
			t.Errorf("error message missing supported code %s: %s", code, err)
		}
	}
}

func TestCodesStableOrder(t *testing.T) {
	r := DefaultRegistry()

	first := r.Codes()
	if len(first) != len(countries) {
		t.Fatalf("Codes() returned %d codes, want %d", len(first), len(countries))
	}
	for i, p := range countries {
		if first[i] != p.Code {
			t.Errorf("Codes()[%d] = %s, want %s (table order)", i, first[i], p.Code)
		}
	}

	// Mutating the returned slice must not leak into the registry.
	first[0] = "XX"
	if again := r.Codes(); again[0] == "XX" {
		t.Error("Codes() returns a slice aliasing registry state")
	}
}
