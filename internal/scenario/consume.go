package scenario

import "runtime"

// Consume marks v as used so the compiler cannot discard the call that
// produced it. It is deliberately not inlined and keeps v reachable until
// it returns; the measured loops pass every matcher result through it.
//
//go:noinline
func Consume[T any](v T) {
	runtime.KeepAlive(v)
}
