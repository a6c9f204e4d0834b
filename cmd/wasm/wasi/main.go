//go:build wasip1

// Command bindexpr-wasm-wasi is the WASI (wasip1) entrypoint for use
// from any language that supports the WebAssembly System Interface.
//
// Protocol: single JSON object on stdin → single JSON object on stdout.
//
//	stdin:  { "binding": "<expression>" }
//	stdout: { "success": true,  "path": [ ...segments... ] }
//	        { "success": false, "error": "<message>", "position": <offset> }   (exit code 1)
//
// Build:
//
//	GOOS=wasip1 GOARCH=wasm go build -o bindexpr.wasm ./cmd/wasm/wasi/
//
// Usage with wasmtime CLI:
//
//	echo '{"binding":"foo.bar[0]"}' | wasmtime bindexpr.wasm
package main

import (
	"encoding/json"
	"errors"
	"os"

	"github.com/sandrolain/bindexpr"
	"github.com/sandrolain/bindexpr/pkg/types"
)

type request struct {
	Binding string `json:"binding"`
}

type response struct {
	Success  bool                     `json:"success"`
	Path     *types.BindingExpression `json:"path,omitempty"`
	Error    string                   `json:"error,omitempty"`
	Position *int                     `json:"position,omitempty"`
}

func writeResponse(r response, exitCode int) {
	_ = json.NewEncoder(os.Stdout).Encode(r)
	os.Exit(exitCode)
}

func main() {
	var req request
	if err := json.NewDecoder(os.Stdin).Decode(&req); err != nil {
		writeResponse(response{Success: false, Error: "invalid request JSON: " + err.Error()}, 1)
	}

	expr, err := bindexpr.Parse(req.Binding)
	if err != nil {
		resp := response{Success: false, Error: err.Error()}
		var perr *types.Error
		if errors.As(err, &perr) {
			resp.Position = &perr.Position
		}
		writeResponse(resp, 1)
	}

	writeResponse(response{Success: true, Path: expr}, 0)
}
