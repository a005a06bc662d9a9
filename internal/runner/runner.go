// Package runner is the host recovery boundary: it invokes a generator and
// converts any failure, error or panic, into a (no result, diagnostics)
// pair so the hosting environment never crashes.
package runner

import (
	"fmt"
	"runtime/debug"
)

// Run invokes fn and returns its result with nil diagnostics on success. On
// error or panic it returns the zero value plus a short diagnostic message;
// with debug set, the full stack trace is appended. Run never re-panics.
func Run[T any](fn func() (T, error), debugMode bool) (result T, diagnostics []string) {
	defer func() {
		if r := recover(); r != nil {
			var zero T
			result = zero
			diagnostics = []string{fmt.Sprintf("panic: %v", r)}
			if debugMode {
				diagnostics = append(diagnostics, string(debug.Stack()))
			}
		}
	}()

	value, err := fn()
	if err != nil {
		var zero T
		diagnostics = []string{err.Error()}
		if debugMode {
			diagnostics = append(diagnostics, string(debug.Stack()))
		}
		return zero, diagnostics
	}
	return value, nil
}
