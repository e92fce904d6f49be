// Package hexutil converts hexadecimal text to raw bytes.
//
// Unlike encoding/hex, Decode tolerates whitespace between digit pairs and
// an odd leading digit, which makes it convenient for hand-written byte
// fixtures like "FE 05 4A".
package hexutil

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrLength indicates a hex byte literal that is not 1 or 2 characters.
	ErrLength = errors.New("hex byte literal must be 1 or 2 characters")

	// ErrMalformed indicates a character outside [0-9A-Fa-f].
	ErrMalformed = errors.New("malformed hex")
)

// whitespace strips the characters Decode ignores.
var whitespace = strings.NewReplacer(" ", "", "\t", "", "\r", "", "\n", "")

// ParseByte converts a hexadecimal string of length 1 or 2 to a byte.
// A single-character input is treated as if left-padded with '0', so
// ParseByte("A") and ParseByte("0A") both return 0x0A. Digits are
// case-insensitive.
func ParseByte(s string) (byte, error) {
	switch len(s) {
	case 1:
		return nibble(s[0])
	case 2:
		hi, err := nibble(s[0])
		if err != nil {
			return 0, err
		}
		lo, err := nibble(s[1])
		if err != nil {
			return 0, err
		}
		return hi<<4 | lo, nil
	default:
		return 0, fmt.Errorf("%w, got %d", ErrLength, len(s))
	}
}

// Decode converts hexadecimal text to a byte slice.
//
// Space, tab, carriage return and newline characters are removed first. If
// the cleaned text has an odd number of characters it is left-padded with a
// single '0'. Every remaining character pair then decodes to one byte, most
// significant nibble first, so the result holds exactly half the cleaned
// (padded) length. Leading zero pairs are preserved, never stripped. Empty
// or all-whitespace input decodes to an empty slice.
func Decode(s string) ([]byte, error) {
	cleaned := whitespace.Replace(s)
	if len(cleaned)%2 == 1 {
		cleaned = "0" + cleaned
	}
	out := make([]byte, len(cleaned)/2)
	for i := range out {
		b, err := ParseByte(cleaned[i*2 : i*2+2])
		if err != nil {
			return nil, fmt.Errorf("byte %d: %w", i, err)
		}
		out[i] = b
	}
	return out, nil
}

// nibble decodes a single hex digit to its 4-bit value.
func nibble(c byte) (byte, error) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', nil
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, nil
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, nil
	}
	return 0, fmt.Errorf("%w: invalid character %q", ErrMalformed, c)
}
