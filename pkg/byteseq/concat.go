package byteseq

// Concat joins the given arrays in order into one slice. No arguments yield
// an empty slice; a single argument is returned as-is without copying.
func Concat(arrays ...[]byte) []byte {
	if len(arrays) == 0 {
		return []byte{}
	}
	if len(arrays) == 1 {
		return arrays[0]
	}
	out := make([]byte, 0, totalLen(arrays))
	for _, a := range arrays {
		out = append(out, a...)
	}
	return out
}

// JoinByte concatenates the arrays with a single separator byte between
// each adjacent pair, never at the start or end. Array contents are not
// inspected for existing separator occurrences. The zero and one argument
// shortcuts match Concat.
func JoinByte(sep byte, arrays ...[]byte) []byte {
	if len(arrays) == 0 {
		return []byte{}
	}
	if len(arrays) == 1 {
		return arrays[0]
	}
	out := make([]byte, 0, totalLen(arrays)+len(arrays)-1)
	for i, a := range arrays {
		if i > 0 {
			out = append(out, sep)
		}
		out = append(out, a...)
	}
	return out
}

// Join concatenates the arrays with a full copy of sep between each
// adjacent pair. Placement rules match JoinByte; the result length is the
// sum of the array lengths plus (N-1) times the separator length.
func Join(sep []byte, arrays ...[]byte) []byte {
	if len(arrays) == 0 {
		return []byte{}
	}
	if len(arrays) == 1 {
		return arrays[0]
	}
	out := make([]byte, 0, totalLen(arrays)+(len(arrays)-1)*len(sep))
	for i, a := range arrays {
		if i > 0 {
			out = append(out, sep...)
		}
		out = append(out, a...)
	}
	return out
}

func totalLen(arrays [][]byte) int {
	total := 0
	for _, a := range arrays {
		total += len(a)
	}
	return total
}
