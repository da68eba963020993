package logging

import (
	"context"
	"crypto/rand"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
)

// RunIDKey is the log field that carries the generation run identifier.
const RunIDKey = "run_id"

type runIDContextKey struct{}

// NewRunID returns a lexically sortable identifier for one generation run.
func NewRunID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), rand.Reader).String()
}

// ContextWithRunID stores the run identifier in ctx.
func ContextWithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, runIDContextKey{}, runID)
}

// RunIDFromContext returns the run identifier stored in ctx, or "".
func RunIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(runIDContextKey{}).(string); ok {
		return id
	}
	return ""
}

// GetOrGenerateRunID returns the run identifier in ctx, generating one if absent.
func GetOrGenerateRunID(ctx context.Context) string {
	if id := RunIDFromContext(ctx); id != "" {
		return id
	}
	return NewRunID()
}

// RunIDHook stamps the run identifier from the event context onto every log line.
type RunIDHook struct{}

// Run implements zerolog.Hook.
func (RunIDHook) Run(e *zerolog.Event, _ zerolog.Level, _ string) {
	if id := RunIDFromContext(e.GetCtx()); id != "" {
		e.Str(RunIDKey, id)
	}
}
