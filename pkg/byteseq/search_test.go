package byteseq

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndexByte(t *testing.T) {
	hay := hexBytes(t, "FF 37 01 87 52 01 37 01 A9 37 44 53")

	pos, ok := IndexByte(hay, 0xFF)
	assert.True(t, ok)
	assert.Equal(t, 0, pos)

	_, ok = IndexByte(hay, 0xF2)
	assert.False(t, ok)

	pos, ok = IndexByte(hay, 0x37)
	assert.True(t, ok)
	assert.Equal(t, 1, pos)
}

func TestIndexByteFrom(t *testing.T) {
	hay := hexBytes(t, "FF 37 01 87 52 01 37 01 A9 37 44 53")

	tests := []struct {
		name     string
		b        byte
		from     int
		expected int
		found    bool
	}{
		{name: "from zero", b: 0x37, from: 0, expected: 1, found: true},
		{name: "skips first occurrence", b: 0x37, from: 2, expected: 6, found: true},
		{name: "from matching position", b: 0x37, from: 6, expected: 6, found: true},
		{name: "past middle occurrence", b: 0x37, from: 7, expected: 9, found: true},
		{name: "past last occurrence", b: 0x37, from: 10, found: false},
		{name: "last byte", b: 0x53, from: 0, expected: 11, found: true},
		{name: "from end of array", b: 0x53, from: 12, found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, ok := IndexByteFrom(hay, tt.b, tt.from)
			assert.Equal(t, tt.found, ok)
			if tt.found {
				assert.Equal(t, tt.expected, pos)
			}
		})
	}
}

func TestLastIndexByte(t *testing.T) {
	hay := hexBytes(t, "FF 37 01 87 44 01 37 01 A9 37 44 53")

	pos, ok := LastIndexByte(hay, 0x53)
	assert.True(t, ok)
	assert.Equal(t, 11, pos)

	_, ok = LastIndexByte(hay, 0x54)
	assert.False(t, ok)

	pos, ok = LastIndexByte(hay, 0x37)
	assert.True(t, ok)
	assert.Equal(t, 9, pos)

	pos, ok = LastIndexByte(hay, 0xFF)
	assert.True(t, ok)
	assert.Equal(t, 0, pos)

	_, ok = LastIndexByte(nil, 0xFF)
	assert.False(t, ok)
}

func TestLastIndexByteFrom(t *testing.T) {
	hay := hexBytes(t, "FF 37 01 87 44 01 37 01 A9 37 44 53")

	tests := []struct {
		name     string
		b        byte
		from     int
		expected int
		found    bool
	}{
		{name: "before last occurrence", b: 0x37, from: 8, expected: 6, found: true},
		{name: "before middle occurrence", b: 0x37, from: 5, expected: 1, found: true},
		{name: "from zero misses", b: 0x37, from: 0, found: false},
		{name: "negative offset", b: 0xFF, from: -1, found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, ok := LastIndexByteFrom(hay, tt.b, tt.from)
			assert.Equal(t, tt.found, ok)
			if tt.found {
				assert.Equal(t, tt.expected, pos)
			}
		})
	}
}

func TestIndexFrom(t *testing.T) {
	hay := hexBytes(t, "FF 37 01 87 53 01 37 01 A9 37 44 53")

	tests := []struct {
		name     string
		needle   string
		from     int
		expected int
		found    bool
	}{
		{name: "single at start", needle: "FF", from: 0, expected: 0, found: true},
		{name: "single absent", needle: "F2", from: 0, found: false},
		{name: "single from zero", needle: "37", from: 0, expected: 1, found: true},
		{name: "single skips first", needle: "37", from: 2, expected: 6, found: true},
		{name: "single from match", needle: "37", from: 6, expected: 6, found: true},
		{name: "single past middle", needle: "37", from: 7, expected: 9, found: true},
		{name: "single past last", needle: "37", from: 10, found: false},
		{name: "pair absent", needle: "37 02", from: 0, found: false},
		{name: "pair absent near end", needle: "37 02", from: 10, found: false},
		{name: "pair from zero", needle: "37 01", from: 0, expected: 1, found: true},
		{name: "pair skips first", needle: "37 01", from: 2, expected: 6, found: true},
		{name: "pair past last", needle: "37 01", from: 7, found: false},
		{name: "pair at tail", needle: "44 53", from: 10, expected: 10, found: true},
		{name: "prefix matches but tail differs", needle: "53 02", from: 0, found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, ok := IndexFrom(hay, hexBytes(t, tt.needle), tt.from)
			assert.Equal(t, tt.found, ok)
			if tt.found {
				assert.Equal(t, tt.expected, pos)
			}
		})
	}
}

func TestIndex_NeedleLongerThanHaystack(t *testing.T) {
	hay := hexBytes(t, "FF 37")

	_, ok := Index(hay, hexBytes(t, "FF 37 01"))
	assert.False(t, ok)

	_, ok = Index(nil, hexBytes(t, "FF"))
	assert.False(t, ok)
}

func TestLastIndexFrom(t *testing.T) {
	hay := hexBytes(t, "37 01 87 53 01 37 01 A9 37 44 53 FF")

	tests := []struct {
		name     string
		needle   string
		from     int
		expected int
		found    bool
	}{
		{name: "single last", needle: "53", from: 11, expected: 10, found: true},
		{name: "single absent", needle: "54", from: 11, found: false},
		{name: "single 37 last", needle: "37", from: 11, expected: 8, found: true},
		{name: "single 37 before 8", needle: "37", from: 7, expected: 5, found: true},
		{name: "single 37 before 5", needle: "37", from: 4, expected: 0, found: true},
		{name: "single 37 at zero", needle: "37", from: 0, expected: 0, found: true},
		{name: "pair absent", needle: "37 02", from: 11, found: false},
		{name: "pair last", needle: "37 01", from: 11, expected: 5, found: true},
		{name: "pair before 5", needle: "37 01", from: 4, expected: 0, found: true},
		{name: "pair at zero", needle: "37 01", from: 0, expected: 0, found: true},
		{name: "pair ending at array end", needle: "53 FF", from: 11, expected: 10, found: true},
		{name: "pair start clamped to fit", needle: "53 FF", from: 11, expected: 10, found: true},
		{name: "pair out of range after clamp", needle: "53 FF", from: 9, found: false},
		{name: "negative offset", needle: "37", from: -1, found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, ok := LastIndexFrom(hay, hexBytes(t, tt.needle), tt.from)
			assert.Equal(t, tt.found, ok)
			if tt.found {
				assert.Equal(t, tt.expected, pos)
			}
		})
	}
}

func TestLastIndex(t *testing.T) {
	hay := hexBytes(t, "37 01 87 53 01 37 01 A9 37 44 53 FF")

	pos, ok := LastIndex(hay, hexBytes(t, "53 FF"))
	assert.True(t, ok)
	assert.Equal(t, 10, pos)

	pos, ok = LastIndex(hay, hexBytes(t, "37"))
	assert.True(t, ok)
	assert.Equal(t, 8, pos)

	_, ok = LastIndex(hay, hexBytes(t, "FF 37"))
	assert.False(t, ok)
}
