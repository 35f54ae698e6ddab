// Package testutil holds shared helpers for package tests.
package testutil

import (
	"bytes"
	"log/slog"
)

// NewBufferLogger returns a JSON logger writing into the returned buffer, so
// tests can assert on emitted log fields.
func NewBufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), &buf
}
