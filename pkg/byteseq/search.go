package byteseq

// IndexByte returns the position of the first occurrence of b in hay.
func IndexByte(hay []byte, b byte) (int, bool) {
	return IndexByteFrom(hay, b, 0)
}

// IndexByteFrom scans forward from the from offset (inclusive) and returns
// the first position holding b, or false if the scan exhausts hay.
func IndexByteFrom(hay []byte, b byte, from int) (int, bool) {
	for i := from; i < len(hay); i++ {
		if hay[i] == b {
			return i, true
		}
	}
	return 0, false
}

// LastIndexByte returns the position of the last occurrence of b in hay.
func LastIndexByte(hay []byte, b byte) (int, bool) {
	return LastIndexByteFrom(hay, b, len(hay)-1)
}

// LastIndexByteFrom scans backward from the from offset (inclusive) down to
// 0 and returns the highest position holding b. A negative from yields a
// not-found result without error.
func LastIndexByteFrom(hay []byte, b byte, from int) (int, bool) {
	for i := from; i >= 0; i-- {
		if hay[i] == b {
			return i, true
		}
	}
	return 0, false
}

// Index returns the position of the first occurrence of needle in hay.
func Index(hay, needle []byte) (int, bool) {
	return IndexFrom(hay, needle, 0)
}

// IndexFrom scans positions from through len(hay)-len(needle) inclusive and
// returns the first position where needle matches. A needle longer than the
// remaining haystack leaves an empty scan range and reports not found. The
// scan is a naive position-by-position region test; inputs are expected to
// be small utility buffers, not bulk search workloads.
func IndexFrom(hay, needle []byte, from int) (int, bool) {
	for i := from; i <= len(hay)-len(needle); i++ {
		if RegionEqual(hay, i, needle, 0) {
			return i, true
		}
	}
	return 0, false
}

// LastIndex returns the position of the last occurrence of needle in hay.
func LastIndex(hay, needle []byte) (int, bool) {
	return LastIndexFrom(hay, needle, len(hay)-1)
}

// LastIndexFrom scans backward from the from offset down to 0 using the
// same region test as IndexFrom. The starting position is clamped to
// len(hay)-len(needle): a match cannot begin where the needle would run
// past the end of hay. A negative from yields a not-found result.
func LastIndexFrom(hay, needle []byte, from int) (int, bool) {
	if limit := len(hay) - len(needle); from > limit {
		from = limit
	}
	for i := from; i >= 0; i-- {
		if RegionEqual(hay, i, needle, 0) {
			return i, true
		}
	}
	return 0, false
}
