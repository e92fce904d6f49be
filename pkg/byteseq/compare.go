// Package byteseq provides comparison, search, concatenation and splitting
// primitives over byte slices.
//
// All functions are pure: they never mutate their arguments and never retain
// references to caller data, so concurrent use on disjoint inputs is safe.
// Searches report absence through a comma-ok result instead of a -1
// sentinel. Offsets outside a slice's bounds are a programming error and
// panic through Go's normal bounds checking.
package byteseq

// Equal reports whether a and b hold the same bytes. Slices of different
// lengths are never equal; this is a result, not an error.
func Equal(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	return RegionEqual(a, 0, b, 0)
}

// RegionEqual reports whether hay, starting at hayOff, contains the bytes
// of needle from needleOff through the needle's end. It stops at the first
// mismatching pair. Callers must keep both offsets in bounds for the region
// compared; violations panic.
func RegionEqual(hay []byte, hayOff int, needle []byte, needleOff int) bool {
	for i := needleOff; i < len(needle); i++ {
		if hay[hayOff+i-needleOff] != needle[i] {
			return false
		}
	}
	return true
}
