// Package iotest provides IO helpers for tests.
package iotest

import (
	"bytes"
	"io"
	"testing"
)

// Writer builds an io.Writer that logs each line written to it
// to the given testing.TB.
func Writer(t testing.TB) io.Writer {
	return &writer{t}
}

type writer struct{ t testing.TB }

func (w *writer) Write(b []byte) (int, error) {
	for _, line := range bytes.Split(bytes.TrimSuffix(b, []byte("\n")), []byte("\n")) {
		w.t.Logf("%s", line)
	}
	return len(b), nil
}
