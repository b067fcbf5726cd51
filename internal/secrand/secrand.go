// Package secrand draws uniform random integers and strings from crypto/rand.
// Sampling is rejection based: raw draws that would bias the reduction to the
// requested range are discarded and redrawn, so a plain modulo never skews
// the distribution.
package secrand

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math"
	"strings"
)

// Alphabets used by the IBAN component generators.
const (
	Digits  = "0123456789"
	Letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Alnum   = Letters + Digits
)

// ErrInvalidRange is returned when min exceeds max.
var ErrInvalidRange = errors.New("min greater than max")

// Int returns a uniformly distributed integer in [min, max] inclusive.
func Int(min, max int) (int, error) {
	if min > max {
		return 0, fmt.Errorf("%w: [%d, %d]", ErrInvalidRange, min, max)
	}
	span := uint64(max-min) + 1
	if span == 1 {
		return min, nil
	}

	// Smallest number of random bytes that covers the span.
	bytesNeeded := 0
	for v := span - 1; v > 0; v >>= 8 {
		bytesNeeded++
	}

	// maxValid is the top of the last full multiple of span that fits in
	// bytesNeeded bytes. Draws above it must be rejected or the reduction
	// below would favor the low end of the range.
	var maxValid uint64
	if bytesNeeded >= 8 {
		maxValid = math.MaxUint64 - (math.MaxUint64%span+1)%span
	} else {
		space := uint64(1) << (8 * bytesNeeded)
		maxValid = space - space%span - 1
	}

	buf := make([]byte, bytesNeeded)
	for {
		if _, err := rand.Read(buf); err != nil {
			return 0, fmt.Errorf("reading entropy: %w", err)
		}
		var draw uint64
		for _, b := range buf {
			draw = draw<<8 | uint64(b)
		}
		if draw > maxValid {
			continue
		}
		return min + int(draw%span), nil
	}
}

// String returns n independent uniform samples over alphabet. n <= 0 yields
// the empty string.
func String(n int, alphabet string) (string, error) {
	if n <= 0 {
		return "", nil
	}
	if alphabet == "" {
		return "", errors.New("empty alphabet")
	}
	var b strings.Builder
	b.Grow(n)
	for i := 0; i < n; i++ {
		idx, err := Int(0, len(alphabet)-1)
		if err != nil {
			return "", err
		}
		b.WriteByte(alphabet[idx])
	}
	return b.String(), nil
}
