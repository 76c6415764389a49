package core

import (
	"context"
	"time"
)

// Context keys for execution options
type contextKey string

const (
	suppressHeaderKey contextKey = "suppressHeader"
	pushTimeKey       contextKey = "pushTime"
)

// WithSuppressHeader marks the context so that status lines are not printed.
func WithSuppressHeader(ctx context.Context) context.Context {
	return context.WithValue(ctx, suppressHeaderKey, true)
}

// shouldSuppressHeader returns whether status lines should be suppressed
func shouldSuppressHeader(ctx context.Context) bool {
	val := ctx.Value(suppressHeaderKey)
	if val == nil {
		return false // default: show status lines
	}
	suppress, ok := val.(bool)
	return ok && suppress
}

// WithPushTime fixes the timestamp recorded by an archive push.
func WithPushTime(ctx context.Context, t time.Time) context.Context {
	return context.WithValue(ctx, pushTimeKey, t)
}

// getPushTime returns the push timestamp from context, or the current time
func getPushTime(ctx context.Context) time.Time {
	if t, ok := ctx.Value(pushTimeKey).(time.Time); ok {
		return t
	}
	return time.Now()
}
