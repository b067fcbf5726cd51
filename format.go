package ibangen

import "strings"

// Format groups an IBAN into blocks of four characters separated by spaces,
// the way IBANs are printed on paper. Purely cosmetic, nothing is validated.
func Format(iban string) string {
	var b strings.Builder
	b.Grow(len(iban) + len(iban)/4)
	for i := 0; i < len(iban); i++ {
		if i > 0 && i%4 == 0 {
			b.WriteByte(' ')
		}
		b.WriteByte(iban[i])
	}
	return b.String()
}
