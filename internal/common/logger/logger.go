package logger

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
)

type Logger struct{ service string }

func New(service string) *Logger { return &Logger{service: service} }

// NewRequestID returns a fresh id used to correlate all log lines of one
// request.
func NewRequestID() string { return uuid.NewString() }

type ctxKey struct{}

// WithRequestID attaches a request id to ctx.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// RequestIDFrom returns the request id attached to ctx, or "".
func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

func (l *Logger) log(level, action, requestID string, fields map[string]any, err error) {
	entry := map[string]any{
		"timestamp":  time.Now().UTC().Format(time.RFC3339Nano),
		"level":      level,
		"service":    l.service,
		"action":     action,
		"hostname":   hostname(),
		"request_id": requestID,
	}
	for k, v := range fields {
		entry[k] = v
	}
	if err != nil {
		entry["error"] = map[string]any{"msg": err.Error(), "type": fmt.Sprintf("%T", err)}
	}
	_ = json.NewEncoder(os.Stdout).Encode(entry)
}

func (l *Logger) Info(action, requestID string, fields map[string]any) {
	l.log("INFO", action, requestID, fields, nil)
}

func (l *Logger) Debug(action, requestID string, fields map[string]any) {
	l.log("DEBUG", action, requestID, fields, nil)
}

func (l *Logger) Error(action, requestID string, err error, fields map[string]any) {
	l.log("ERROR", action, requestID, fields, err)
}

func hostname() string { h, _ := os.Hostname(); return h }
