// Package ibangen generates syntactically and checksum-valid IBANs for a
// fixed set of countries. Generated values pass standard mod-97 validators
// but are test fixtures, not real account numbers: no bank registry is
// consulted and uniqueness is not guaranteed.
package ibangen

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/mkregel/ibangen/internal/secrand"
)

// Generator produces IBANs from an immutable country registry. It holds no
// mutable state, so a single Generator is safe for concurrent use.
type Generator struct {
	registry *Registry
	logger   *slog.Logger
}

// New returns a Generator backed by the builtin country table.
func New() *Generator {
	return NewWithRegistry(DefaultRegistry())
}

// NewWithRegistry returns a Generator backed by the given registry.
func NewWithRegistry(r *Registry) *Generator {
	return &Generator{
		registry: r,
		logger:   slog.Default().With("component", "ibangen"),
	}
}

// Generate returns a new IBAN for the given two-letter country code. The
// code is trimmed and upper-cased before lookup. Unknown codes fail with an
// UnsupportedCountry error whose message lists the supported codes.
func (g *Generator) Generate(countryCode string) (string, error) {
	profile, err := g.registry.Lookup(countryCode)
	if err != nil {
		return "", err
	}

	bank, err := bankCode(profile)
	if err != nil {
		return "", wrap(err, profile.Code)
	}
	account, err := accountNumber(profile)
	if err != nil {
		return "", wrap(err, profile.Code)
	}
	check, err := checkDigits(bank, account, profile.Code)
	if err != nil {
		return "", wrap(err, profile.Code)
	}

	iban := profile.Code + check + bank + account
	if err := selfCheck(iban, profile); err != nil {
		return "", err
	}

	g.logger.Debug("generated iban", "country", profile.Code, "length", len(iban))
	return iban, nil
}

// Codes returns the supported country codes in registry order.
func (g *Generator) Codes() []string {
	return g.registry.Codes()
}

// Profile returns the country metadata for code.
func (g *Generator) Profile(code string) (CountryProfile, error) {
	return g.registry.Lookup(code)
}

// Validate reports whether iban carries correct mod-97 check digits. Spaces
// are ignored so formatted output validates too. When the country is in the
// registry the declared length is enforced as well.
func (g *Generator) Validate(iban string) bool {
	s := strings.ToUpper(strings.ReplaceAll(iban, " ", ""))
	if len(s) < 5 {
		return false
	}
	if !isUpper(s[0]) || !isUpper(s[1]) || !isDigit(s[2]) || !isDigit(s[3]) {
		return false
	}
	if p, err := g.registry.Lookup(s[:2]); err == nil && len(s) != p.Length {
		return false
	}
	want, err := checkDigits(s[4:], "", s[:2])
	if err != nil {
		return false
	}
	return s[2:4] == want
}

// bankCode picks a realistic sample when the profile has a pool, otherwise
// synthesizes a code from the format descriptor. The pool is the sole switch
// between the two paths; there are no per-country branches.
func bankCode(p CountryProfile) (string, error) {
	if len(p.SampleBankCodes) > 0 {
		i, err := secrand.Int(0, len(p.SampleBankCodes)-1)
		if err != nil {
			return "", err
		}
		return p.SampleBankCodes[i], nil
	}
	return synthesize(p.BankFormat)
}

// accountNumber synthesizes the account field from the format descriptor.
// The runs sum to AccountLength, so no padding or truncation happens here.
func accountNumber(p CountryProfile) (string, error) {
	return synthesize(p.AccountFormat)
}

// synthesize concatenates one random run per field, each drawn from the
// alphabet matching the field kind.
func synthesize(fields []Field) (string, error) {
	var b strings.Builder
	for _, f := range fields {
		s, err := secrand.String(f.Count, f.Kind.alphabet())
		if err != nil {
			return "", err
		}
		b.WriteString(s)
	}
	return b.String(), nil
}

func (k FieldKind) alphabet() string {
	switch k {
	case Letters:
		return secrand.Letters
	case Alnum:
		return secrand.Alnum
	default:
		return secrand.Digits
	}
}

// selfCheck re-verifies the structural invariants of an assembled IBAN. A
// failure here is a defect in the component generators, never bad input.
func selfCheck(iban string, p CountryProfile) error {
	switch {
	case len(iban) != p.Length:
		return newError(InternalFault, p.Code, "assembled %d characters, want %d", len(iban), p.Length)
	case iban[:2] != p.Code:
		return newError(InternalFault, p.Code, "assembled prefix %q", iban[:2])
	case !isDigit(iban[2]) || !isDigit(iban[3]):
		return newError(InternalFault, p.Code, "check field %q is not two digits", iban[2:4])
	}
	return nil
}

// wrap converts lower-level errors into the domain error type. This is the
// only place foreign errors cross into the public contract.
func wrap(err error, country string) error {
	var e *Error
	if errors.As(err, &e) {
		if e.Country == "" {
			e.Country = country
		}
		return e
	}
	kind := InternalFault
	if errors.Is(err, secrand.ErrInvalidRange) {
		kind = InvalidRange
	}
	return newError(kind, country, "%s", err)
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
func isUpper(b byte) bool { return b >= 'A' && b <= 'Z' }
