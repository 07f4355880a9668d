package obs

import (
	"context"
	"time"

	"go.uber.org/zap"
)

type ctxKey string

const requestIDKey ctxKey = "req_id"

// WithRequestID tags a request context so downstream operation logs can be
// correlated with the access log line.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// Time logs the duration of an operation when the returned func runs.
// Use with defer and a named error return:
//
//	defer obs.Time(ctx, "amadeus.SearchLocations")(&err)
func Time(ctx context.Context, name string) func(errp *error) {
	start := time.Now()
	reqID := RequestID(ctx)

	return func(errp *error) {
		fields := []zap.Field{
			zap.String("req_id", reqID),
			zap.String("op", name),
			zap.Int64("dur_ms", time.Since(start).Milliseconds()),
		}

		if errp != nil && *errp != nil {
			zap.L().Warn("operation failed", append(fields, zap.Error(*errp))...)
			return
		}
		zap.L().Info("operation done", fields...)
	}
}
