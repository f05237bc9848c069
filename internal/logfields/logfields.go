package logfields

import (
	"log/slog"
	"time"
)

// Canonical log field name constants to avoid drift across packages.
const (
	KeySource     = "source"
	KeyDest       = "dest"
	KeyPath       = "path"
	KeyKind       = "kind"
	KeyPosts      = "posts"
	KeyCount      = "count"
	KeyTemplate   = "template"
	KeyStage      = "stage"
	KeyDurationMS = "duration_ms"
	KeyOutcome    = "outcome"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Source(p string) slog.Attr   { return slog.String(KeySource, p) }
func Dest(p string) slog.Attr     { return slog.String(KeyDest, p) }
func Path(p string) slog.Attr     { return slog.String(KeyPath, p) }
func Kind(k string) slog.Attr     { return slog.String(KeyKind, k) }
func Posts(in bool) slog.Attr     { return slog.Bool(KeyPosts, in) }
func Count(n int) slog.Attr       { return slog.Int(KeyCount, n) }
func Template(n string) slog.Attr { return slog.String(KeyTemplate, n) }
func Stage(name string) slog.Attr { return slog.String(KeyStage, name) }
func Outcome(o string) slog.Attr  { return slog.String(KeyOutcome, o) }
func Duration(d time.Duration) slog.Attr {
	return slog.Float64(KeyDurationMS, float64(d.Microseconds())/1000)
}
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
