//go:build js && wasm

// Command bindexpr-wasm-js is the WebAssembly entrypoint for browser
// and Node.js.
//
// It exposes a global `bindexpr` object with the following API:
//
//	bindexpr.version()     → string
//	bindexpr.parse(raw)    → resultJSON
//
// parse never throws: the result envelope carries the outcome, matching
// the wire contract of the wasi entrypoint:
//
//	{ "success": true,  "path": [ ...segments... ] }
//	{ "success": false, "error": "<message>", "position": <offset> }
//
// Build:
//
//	GOOS=js GOARCH=wasm go build -o bindexpr.wasm ./cmd/wasm/js/
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"syscall/js"

	"github.com/sandrolain/bindexpr"
	"github.com/sandrolain/bindexpr/pkg/types"
)

// result is the JSON envelope returned to the JavaScript caller.
type result struct {
	Success  bool                     `json:"success"`
	Path     *types.BindingExpression `json:"path,omitempty"`
	Error    string                   `json:"error,omitempty"`
	Position *int                     `json:"position,omitempty"`
}

// jsThrow panics with a JS Error so the caller receives a thrown exception.
func jsThrow(msg string) {
	js.Global().Get("Error").New(msg)
	panic(msg)
}

// jsParse implements bindexpr.parse(raw) → resultJSON.
func jsParse(_ js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		jsThrow("bindexpr.parse requires 1 argument: the binding expression (string)")
	}
	raw := args[0].String()

	var res result
	expr, err := bindexpr.Parse(raw)
	if err != nil {
		res = result{Success: false, Error: err.Error()}
		var perr *types.Error
		if errors.As(err, &perr) {
			res.Position = &perr.Position
		}
	} else {
		res = result{Success: true, Path: expr}
	}

	out, err := json.Marshal(res)
	if err != nil {
		jsThrow(fmt.Sprintf("bindexpr.parse: marshal result: %v", err))
	}
	return string(out)
}

func main() {
	api := map[string]interface{}{
		"parse": js.FuncOf(jsParse),
		"version": js.FuncOf(func(_ js.Value, _ []js.Value) interface{} {
			return bindexpr.Version()
		}),
	}
	js.Global().Set("bindexpr", js.ValueOf(api))

	// Block forever — the JS event loop owns execution from here.
	select {}
}
