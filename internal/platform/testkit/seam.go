// Package testkit holds helpers for tests that replace package level hooks
package testkit

import (
	"sync"
	"testing"
)

var serial sync.Mutex

// Swap sets *target to v until the test ends
func Swap[T any](t testing.TB, target *T, v T) {
	t.Helper()
	orig := *target
	*target = v
	t.Cleanup(func() { *target = orig })
}

// Serial holds a process wide lock until the test ends
// tests that Swap shared hooks take it first
func Serial(t testing.TB) {
	t.Helper()
	serial.Lock()
	t.Cleanup(serial.Unlock)
}
