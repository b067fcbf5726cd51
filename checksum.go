package ibangen

import (
	"fmt"
)

// checkDigits computes the ISO 7064 mod-97-10 check digits for an IBAN made
// of bankCode, account and the two-letter country code. The probe moves the
// country code and a "00" placeholder to the end, per the standard.
func checkDigits(bankCode, account, country string) (string, error) {
	rem, err := mod97(bankCode + account + country + "00")
	if err != nil {
		return "", err
	}
	// rem is in [0, 96] so 98-rem is in [02, 98]; the pad never hides a
	// three-digit result and "00" cannot occur.
	return fmt.Sprintf("%02d", 98-rem), nil
}

// mod97 transliterates s (A=10 .. Z=35, digits as-is) and folds the resulting
// decimal numeral into a running remainder one digit at a time. The numeral
// for the longer countries exceeds 64 bits, so it must never materialize as a
// machine integer.
func mod97(s string) (int, error) {
	acc := 0
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			acc = (acc*10 + int(r-'0')) % 97
		case r >= 'A' && r <= 'Z':
			// Letters expand to two decimal digits.
			acc = (acc*100 + int(r-'A') + 10) % 97
		default:
			return 0, newError(InvalidCharacter, "", "character %q in checksum input", r)
		}
	}
	return acc, nil
}
