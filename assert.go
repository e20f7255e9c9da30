//go:build !debug

package kine

// assertf is a no-op in release builds. Programmer errors are spec §7.4
// "undefined behaviour" in release builds — the engine must not diverge
// beyond the stated silent-but-safe semantics, so this build simply
// proceeds. Compile with -tags debug (assert_debug.go) to turn the
// asserted ones (non-positive epsilon in NewWorld, non-positive Weight in
// a kinematic pair) into panics. Structural mutation of the World from a
// trigger callback is not asserted in either build.
func assertf(cond bool, format string, args ...any) {}
