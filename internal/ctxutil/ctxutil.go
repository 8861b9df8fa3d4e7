package ctxutil

import (
	"context"
	"time"
)

type key int

const (
	keyRequestID key = iota
	keyOpName
)

// WithRequestID / RequestID carry the X-Request-ID of the current request.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, keyRequestID, id)
}

func RequestID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(keyRequestID).(string)
	return id, ok && id != ""
}

// WithOp / Op name the operation for logs and error reports.
func WithOp(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, keyOpName, name)
}

func Op(ctx context.Context) (string, bool) {
	s, ok := ctx.Value(keyOpName).(string)
	return s, ok
}

var DefaultDBTimeout = 5 * time.Second

// WithDBTimeout bounds a DB call by DefaultDBTimeout, or by the parent's
// deadline if that comes sooner.
func WithDBTimeout(parent context.Context) (context.Context, context.CancelFunc) {
	if dl, ok := parent.Deadline(); ok {
		remain := time.Until(dl)
		if remain < DefaultDBTimeout {
			return context.WithTimeout(parent, remain)
		}
	}
	return context.WithTimeout(parent, DefaultDBTimeout)
}
