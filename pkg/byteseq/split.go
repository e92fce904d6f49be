package byteseq

// SplitByte partitions array on the separator byte, like strings.Split over
// raw bytes. Pieces between adjacent separators may be empty, and the
// result always holds one more piece than there are separator occurrences:
// an empty array splits to a single empty piece, and an array ending with
// the separator gains an explicit trailing empty piece. Pieces are copies
// and never alias the input.
func SplitByte(sep byte, array []byte) [][]byte {
	var result [][]byte
	start := 0
	for {
		idx, ok := IndexByteFrom(array, sep, start)
		if !ok {
			return append(result, pieceOf(array, start, len(array)))
		}
		result = append(result, pieceOf(array, start, idx))
		start = idx + 1
		// separator was the last byte: emit the trailing empty piece
		if start == len(array) {
			return append(result, []byte{})
		}
	}
}

// Split partitions array on a multi-byte separator, advancing past the full
// separator after each match. Semantics otherwise match SplitByte. An empty
// separator never advances the cursor, so it is treated as absent and the
// whole array comes back as a single piece.
func Split(sep []byte, array []byte) [][]byte {
	if len(sep) == 0 {
		return [][]byte{pieceOf(array, 0, len(array))}
	}
	var result [][]byte
	start := 0
	for {
		idx, ok := IndexFrom(array, sep, start)
		if !ok {
			return append(result, pieceOf(array, start, len(array)))
		}
		result = append(result, pieceOf(array, start, idx))
		start = idx + len(sep)
		// separator match ended the array: emit the trailing empty piece
		if start == len(array) {
			return append(result, []byte{})
		}
	}
}

// pieceOf copies array[start:end] so split results own their bytes.
func pieceOf(array []byte, start, end int) []byte {
	out := make([]byte, end-start)
	copy(out, array[start:end])
	return out
}
