package ibangen

import (
	"strings"
)

// FieldKind is the character class of one run in a format descriptor.
type FieldKind uint8

const (
	Digits FieldKind = iota
	Letters
	Alnum
)

// Field is one run of a format descriptor: Count characters of Kind.
type Field struct {
	Count int
	Kind  FieldKind
}

// CountryProfile holds the structural metadata for one supported country.
// Profiles are built once at startup and never mutated.
type CountryProfile struct {
	// Code is the two-letter country code, the registry key.
	Code string

	// Name is the human-readable country name.
	Name string

	// Length is the exact character count of a valid IBAN for this country.
	Length int

	// BankCodeLength and AccountLength are the widths of the two BBAN
	// fields. 2 (code) + 2 (check digits) + BankCodeLength + AccountLength
	// always equals Length.
	BankCodeLength int
	AccountLength  int

	// BankFormat and AccountFormat describe the internal shape of the two
	// fields as runs of digits, letters or alphanumerics.
	BankFormat    []Field
	AccountFormat []Field

	// SampleBankCodes seeds bank code generation with realistic values.
	// When empty the bank code is synthesized from BankFormat instead.
	SampleBankCodes []string
}

// countries is the builtin table. Order here is the order Codes returns.
var countries = []CountryProfile{
	{
		Code: "AT", Name: "Austria", Length: 20,
		BankCodeLength: 5, AccountLength: 11,
		BankFormat:      []Field{{5, Digits}},
		AccountFormat:   []Field{{11, Digits}},
		SampleBankCodes: []string{"20111", "12000", "14000", "32000", "20320"},
	},
	{
		Code: "BE", Name: "Belgium", Length: 16,
		BankCodeLength: 3, AccountLength: 9,
		BankFormat:      []Field{{3, Digits}},
		AccountFormat:   []Field{{9, Digits}},
		SampleBankCodes: []string{"539", "001", "310", "068", "734"},
	},
	{
		Code: "CH", Name: "Switzerland", Length: 21,
		BankCodeLength: 5, AccountLength: 12,
		BankFormat:    []Field{{5, Digits}},
		AccountFormat: []Field{{12, Alnum}},
	},
	{
		Code: "DE", Name: "Germany", Length: 22,
		BankCodeLength: 8, AccountLength: 10,
		BankFormat:      []Field{{8, Digits}},
		AccountFormat:   []Field{{10, Digits}},
		SampleBankCodes: []string{"37040044", "10070000", "50010517", "37010050", "70150000"},
	},
	{
		Code: "DK", Name: "Denmark", Length: 18,
		BankCodeLength: 4, AccountLength: 10,
		BankFormat:      []Field{{4, Digits}},
		AccountFormat:   []Field{{10, Digits}},
		SampleBankCodes: []string{"0040", "3000", "5290", "9570"},
	},
	{
		Code: "ES", Name: "Spain", Length: 24,
		BankCodeLength: 8, AccountLength: 12,
		BankFormat:      []Field{{4, Digits}, {4, Digits}},
		AccountFormat:   []Field{{2, Digits}, {10, Digits}},
		SampleBankCodes: []string{"21000418", "00492352", "01820200", "00810161"},
	},
	{
		Code: "FI", Name: "Finland", Length: 18,
		BankCodeLength: 6, AccountLength: 8,
		BankFormat:      []Field{{6, Digits}},
		AccountFormat:   []Field{{8, Digits}},
		SampleBankCodes: []string{"123456", "405501", "478310"},
	},
	{
		Code: "FR", Name: "France", Length: 27,
		BankCodeLength: 10, AccountLength: 13,
		BankFormat:      []Field{{5, Digits}, {5, Digits}},
		AccountFormat:   []Field{{11, Alnum}, {2, Digits}},
		SampleBankCodes: []string{"3000600001", "2004101005", "3000400281"},
	},
	{
		Code: "GB", Name: "United Kingdom", Length: 22,
		BankCodeLength: 4, AccountLength: 14,
		BankFormat:      []Field{{4, Letters}},
		AccountFormat:   []Field{{6, Digits}, {8, Digits}},
		SampleBankCodes: []string{"BUKB", "BARC", "HBUK", "LOYD", "NWBK", "WEST"},
	},
	{
		Code: "IE", Name: "Ireland", Length: 22,
		BankCodeLength: 4, AccountLength: 14,
		BankFormat:      []Field{{4, Letters}},
		AccountFormat:   []Field{{6, Digits}, {8, Digits}},
		SampleBankCodes: []string{"AIBK", "BOFI", "ULSB"},
	},
	{
		Code: "IT", Name: "Italy", Length: 27,
		BankCodeLength: 11, AccountLength: 12,
		BankFormat:    []Field{{1, Letters}, {5, Digits}, {5, Digits}},
		AccountFormat: []Field{{12, Alnum}},
	},
	{
		Code: "LU", Name: "Luxembourg", Length: 20,
		BankCodeLength: 3, AccountLength: 13,
		BankFormat:    []Field{{3, Digits}},
		AccountFormat: []Field{{13, Alnum}},
	},
	{
		Code: "NL", Name: "Netherlands", Length: 18,
		BankCodeLength: 4, AccountLength: 10,
		BankFormat:      []Field{{4, Letters}},
		AccountFormat:   []Field{{10, Digits}},
		SampleBankCodes: []string{"ABNA", "INGB", "RABO", "TRIO", "BUNQ", "KNAB"},
	},
	{
		Code: "NO", Name: "Norway", Length: 15,
		BankCodeLength: 4, AccountLength: 7,
		BankFormat:      []Field{{4, Digits}},
		AccountFormat:   []Field{{7, Digits}},
		SampleBankCodes: []string{"8601", "1503", "9001"},
	},
	{
		Code: "PL", Name: "Poland", Length: 28,
		BankCodeLength: 8, AccountLength: 16,
		BankFormat:      []Field{{8, Digits}},
		AccountFormat:   []Field{{16, Digits}},
		SampleBankCodes: []string{"10901014", "11602202", "24901057"},
	},
	{
		Code: "PT", Name: "Portugal", Length: 25,
		BankCodeLength: 8, AccountLength: 13,
		BankFormat:      []Field{{4, Digits}, {4, Digits}},
		AccountFormat:   []Field{{11, Digits}, {2, Digits}},
		SampleBankCodes: []string{"00020123", "00350683", "00100000"},
	},
	{
		Code: "SE", Name: "Sweden", Length: 24,
		BankCodeLength: 3, AccountLength: 17,
		BankFormat:    []Field{{3, Digits}},
		AccountFormat: []Field{{17, Digits}},
	},
}

// Registry is the immutable lookup table of country profiles. Construct it
// once and share it freely; it is safe for concurrent use.
type Registry struct {
	codes    []string
	profiles map[string]CountryProfile
}

// NewRegistry builds a registry from the given profiles, keeping their order.
func NewRegistry(profiles []CountryProfile) *Registry {
	r := &Registry{
		codes:    make([]string, 0, len(profiles)),
		profiles: make(map[string]CountryProfile, len(profiles)),
	}
	for _, p := range profiles {
		r.codes = append(r.codes, p.Code)
		r.profiles[p.Code] = p
	}
	return r
}

// DefaultRegistry returns a registry with the builtin country table.
func DefaultRegistry() *Registry {
	return NewRegistry(countries)
}

// Lookup returns the profile for code. The code is trimmed and upper-cased
// first, so " nl " resolves the same as "NL".
func (r *Registry) Lookup(code string) (CountryProfile, error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	p, ok := r.profiles[normalized]
	if !ok {
		return CountryProfile{}, newError(UnsupportedCountry, normalized,
			"%q is not supported, pick one of: %s", code, strings.Join(r.codes, ", "))
	}
	return p, nil
}

// Codes returns the supported country codes in table order.
func (r *Registry) Codes() []string {
	out := make([]string, len(r.codes))
	copy(out, r.codes)
	return out
}
