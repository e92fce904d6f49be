//go:build wasm

package main

import (
	"syscall/js"
)

func main() {
	// Export functions to JavaScript
	js.Global().Set("BytekitDecode", js.FuncOf(decode))
	js.Global().Set("BytekitJoin", js.FuncOf(join))
	js.Global().Set("BytekitSplit", js.FuncOf(split))
	js.Global().Set("BytekitIndexOf", js.FuncOf(indexOf))

	// Keep WASM running
	<-make(chan struct{})
}
