// Package bytekit provides small byte-array manipulation primitives:
// hexadecimal decoding, equality and substring search, concatenation with
// an optional separator, and separator-based splitting.
//
// It targets callers who need these operations without adopting a large
// general-purpose utility dependency. Every function is pure: inputs are
// never mutated and no state is shared between calls.
//
// # Basic Usage
//
// Decode hand-written hex fixtures and work with the resulting bytes:
//
//	frame, err := bytekit.Decode("FE 05 4A")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if pos, ok := bytekit.IndexByte(frame, 0x05); ok {
//	    fmt.Printf("marker at %d\n", pos)
//	}
//
// # Joining and Splitting
//
// Records delimited by a separator round-trip through Join and Split as
// long as no piece contains the separator:
//
//	sep := []byte{0xFE, 0xEF}
//	packed := bytekit.Join(sep, first, second, third)
//	pieces := bytekit.Split(sep, packed)
//
// Searches report absence through a comma-ok result; "not found" is a
// normal outcome, never an error. The subpackages pkg/hexutil and
// pkg/byteseq hold the implementations; this package re-exports the whole
// surface so callers can import just "github.com/praetorian-inc/bytekit".
package bytekit

import (
	"github.com/praetorian-inc/bytekit/pkg/byteseq"
	"github.com/praetorian-inc/bytekit/pkg/hexutil"
)

// Re-export hexutil sentinel errors for errors.Is checks.
var (
	// ErrLength indicates a hex byte literal that is not 1 or 2 characters.
	ErrLength = hexutil.ErrLength

	// ErrMalformed indicates a character outside [0-9A-Fa-f].
	ErrMalformed = hexutil.ErrMalformed
)

// ParseByte converts a hexadecimal string of length 1 or 2 to a byte.
// Single-character input is treated as if left-padded with '0'.
func ParseByte(s string) (byte, error) {
	return hexutil.ParseByte(s)
}

// Decode converts hexadecimal text to bytes, ignoring spaces, tabs and
// newlines and left-padding an odd digit count with '0'.
func Decode(s string) ([]byte, error) {
	return hexutil.Decode(s)
}

// Equal reports whether a and b hold the same bytes.
func Equal(a, b []byte) bool {
	return byteseq.Equal(a, b)
}

// RegionEqual reports whether hay at hayOff contains needle[needleOff:].
func RegionEqual(hay []byte, hayOff int, needle []byte, needleOff int) bool {
	return byteseq.RegionEqual(hay, hayOff, needle, needleOff)
}

// IndexByte returns the position of the first occurrence of b in hay.
func IndexByte(hay []byte, b byte) (int, bool) {
	return byteseq.IndexByte(hay, b)
}

// IndexByteFrom scans forward for b starting at the from offset.
func IndexByteFrom(hay []byte, b byte, from int) (int, bool) {
	return byteseq.IndexByteFrom(hay, b, from)
}

// LastIndexByte returns the position of the last occurrence of b in hay.
func LastIndexByte(hay []byte, b byte) (int, bool) {
	return byteseq.LastIndexByte(hay, b)
}

// LastIndexByteFrom scans backward for b starting at the from offset.
func LastIndexByteFrom(hay []byte, b byte, from int) (int, bool) {
	return byteseq.LastIndexByteFrom(hay, b, from)
}

// Index returns the position of the first occurrence of needle in hay.
func Index(hay, needle []byte) (int, bool) {
	return byteseq.Index(hay, needle)
}

// IndexFrom scans forward for needle starting at the from offset.
func IndexFrom(hay, needle []byte, from int) (int, bool) {
	return byteseq.IndexFrom(hay, needle, from)
}

// LastIndex returns the position of the last occurrence of needle in hay.
func LastIndex(hay, needle []byte) (int, bool) {
	return byteseq.LastIndex(hay, needle)
}

// LastIndexFrom scans backward for needle starting at the from offset.
func LastIndexFrom(hay, needle []byte, from int) (int, bool) {
	return byteseq.LastIndexFrom(hay, needle, from)
}

// Concat joins the arrays in order into one slice.
func Concat(arrays ...[]byte) []byte {
	return byteseq.Concat(arrays...)
}

// JoinByte concatenates the arrays with a single separator byte between
// each adjacent pair.
func JoinByte(sep byte, arrays ...[]byte) []byte {
	return byteseq.JoinByte(sep, arrays...)
}

// Join concatenates the arrays with the separator sequence between each
// adjacent pair.
func Join(sep []byte, arrays ...[]byte) []byte {
	return byteseq.Join(sep, arrays...)
}

// SplitByte partitions array on the separator byte.
func SplitByte(sep byte, array []byte) [][]byte {
	return byteseq.SplitByte(sep, array)
}

// Split partitions array on a multi-byte separator.
func Split(sep []byte, array []byte) [][]byte {
	return byteseq.Split(sep, array)
}
