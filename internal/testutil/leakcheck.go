// Package testutil provides testing utilities for the help-about shell.
package testutil

import (
	"testing"

	"go.uber.org/goleak"
)

// VerifyNoLeaks should be deferred at the start of tests that spawn goroutines.
// It verifies that no goroutines were leaked during the test.
func VerifyNoLeaks(t *testing.T, opts ...goleak.Option) {
	t.Helper()
	goleak.VerifyNone(t, opts...)
}

// VerifyNoNewLeaks snapshots the running goroutines and returns a check that
// fails t if goroutines started after the snapshot are still running.
// Use it in packages where Fyne test apps leave their own goroutines behind:
//
//	defer testutil.VerifyNoNewLeaks(t)()
func VerifyNoNewLeaks(t *testing.T, opts ...goleak.Option) func() {
	t.Helper()
	opts = append(opts, goleak.IgnoreCurrent())
	return func() {
		t.Helper()
		VerifyNoLeaks(t, opts...)
	}
}
