//go:build debug

package kine

import "fmt"

// assertf panics with a formatted message when cond is false. Only
// compiled in with -tags debug, per spec §7.4: implementations are
// "encouraged to assert in debug builds but must not diverge in release
// builds beyond the semantics above".
func assertf(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf("kine: assertion failed: "+format, args...))
	}
}
