//go:build wasm

package main

import (
	"fmt"
	"strings"
	"syscall/js"

	"github.com/praetorian-inc/bytekit"
)

// decode converts hex text to a space-separated pair string.
// JS: BytekitDecode(hexText) -> {bytes: "fe 05 4a"} or {error: ...}
func decode(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return map[string]interface{}{"error": "hexText argument required"}
	}

	decoded, err := bytekit.Decode(args[0].String())
	if err != nil {
		return map[string]interface{}{"error": "decode failed: " + err.Error()}
	}

	return map[string]interface{}{"bytes": hexPairs(decoded)}
}

// join concatenates hex pieces with a hex separator.
// JS: BytekitJoin(sepHex, piecesArray) -> {bytes: ...} or {error: ...}
func join(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return map[string]interface{}{"error": "separator and pieces arguments required"}
	}

	sep, err := bytekit.Decode(args[0].String())
	if err != nil {
		return map[string]interface{}{"error": "decode separator failed: " + err.Error()}
	}

	items := args[1]
	pieces := make([][]byte, items.Length())
	for i := range pieces {
		piece, err := bytekit.Decode(items.Index(i).String())
		if err != nil {
			return map[string]interface{}{"error": fmt.Sprintf("decode piece %d failed: %s", i, err)}
		}
		pieces[i] = piece
	}

	var joined []byte
	switch len(sep) {
	case 0:
		joined = bytekit.Concat(pieces...)
	case 1:
		joined = bytekit.JoinByte(sep[0], pieces...)
	default:
		joined = bytekit.Join(sep, pieces...)
	}

	return map[string]interface{}{"bytes": hexPairs(joined)}
}

// split partitions hex input on a hex separator.
// JS: BytekitSplit(sepHex, hexText) -> {pieces: [...]} or {error: ...}
func split(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return map[string]interface{}{"error": "separator and content arguments required"}
	}

	sep, err := bytekit.Decode(args[0].String())
	if err != nil {
		return map[string]interface{}{"error": "decode separator failed: " + err.Error()}
	}
	if len(sep) == 0 {
		return map[string]interface{}{"error": "separator must not be empty"}
	}

	data, err := bytekit.Decode(args[1].String())
	if err != nil {
		return map[string]interface{}{"error": "decode content failed: " + err.Error()}
	}

	var pieces [][]byte
	if len(sep) == 1 {
		pieces = bytekit.SplitByte(sep[0], data)
	} else {
		pieces = bytekit.Split(sep, data)
	}

	rendered := make([]interface{}, len(pieces))
	for i, piece := range pieces {
		rendered[i] = hexPairs(piece)
	}

	return map[string]interface{}{"pieces": rendered}
}

// indexOf searches the haystack for the needle.
// JS: BytekitIndexOf(hayHex, needleHex, last) -> {found: bool, index: int} or {error: ...}
func indexOf(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return map[string]interface{}{"error": "haystack and needle arguments required"}
	}

	hay, err := bytekit.Decode(args[0].String())
	if err != nil {
		return map[string]interface{}{"error": "decode haystack failed: " + err.Error()}
	}

	needle, err := bytekit.Decode(args[1].String())
	if err != nil {
		return map[string]interface{}{"error": "decode needle failed: " + err.Error()}
	}
	if len(needle) == 0 {
		return map[string]interface{}{"error": "needle must not be empty"}
	}

	last := len(args) > 2 && args[2].Truthy()

	var pos int
	var ok bool
	if last {
		pos, ok = bytekit.LastIndex(hay, needle)
	} else {
		pos, ok = bytekit.Index(hay, needle)
	}

	if !ok {
		return map[string]interface{}{"found": false}
	}
	return map[string]interface{}{"found": true, "index": pos}
}

// hexPairs renders bytes as lowercase space-separated pairs.
func hexPairs(data []byte) string {
	var sb strings.Builder
	for i, b := range data {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%02x", b)
	}
	return sb.String()
}
