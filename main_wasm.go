//go:build js && wasm

package main

import (
	"syscall/js"

	"minilang/internal/compiler"
)

func main() {
	js.Global().Set("minilangCompile", js.FuncOf(compile))
	js.Global().Set("minilangWasmVersion", "0.1.0")
	println("minilang WASM compiler ready")
	<-make(chan struct{})
}

// compile(code: string, debug: bool, dump?: string) where dump is one of
// "tokens", "ast", "symbols" or "ir".
func compile(this js.Value, args []js.Value) any {
	if len(args) < 2 {
		return map[string]any{
			"success": false,
			"output":  "Invalid arguments: expected (code: string, debug: bool, dump?: string)",
		}
	}

	opts := &compiler.Options{
		Code:      args[0].String(),
		Debug:     args[1].Bool(),
		LogFormat: compiler.HTML,
	}
	if len(args) > 2 {
		switch args[2].String() {
		case "tokens":
			opts.DumpTokens = true
		case "ast":
			opts.DumpAST = true
		case "symbols":
			opts.DumpSymbols = true
		default:
			opts.DumpIR = true
		}
	}

	result := compiler.Compile(opts)

	return map[string]any{
		"success":  result.Success,
		"output":   result.Output,
		"warnings": result.Warnings,
	}
}
