package logfields

import (
	"log/slog"
	"time"
)

// Canonical log field name constants to avoid drift across packages.
const (
	KeyCommand    = "command"
	KeyDefinition = "definition"
	KeyRunID      = "run_id"
	KeyPhase      = "phase"
	KeyRepetition = "repetition"
	KeyRemaining  = "remaining"
	KeyPath       = "path"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Command(name string) slog.Attr       { return slog.String(KeyCommand, name) }
func Definition(d string) slog.Attr       { return slog.String(KeyDefinition, d) }
func RunID(id string) slog.Attr           { return slog.String(KeyRunID, id) }
func Phase(p string) slog.Attr            { return slog.String(KeyPhase, p) }
func Repetition(i int) slog.Attr          { return slog.Int(KeyRepetition, i) }
func Remaining(d time.Duration) slog.Attr { return slog.String(KeyRemaining, d.String()) }
func Path(p string) slog.Attr             { return slog.String(KeyPath, p) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
