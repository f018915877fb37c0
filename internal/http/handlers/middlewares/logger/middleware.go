package logger

import (
	"context"
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"librarycatalog/internal/http/handlers/middlewares/recorder"
	"librarycatalog/internal/http/httputils"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type ctxKey int

const requestIDKey ctxKey = iota

const slowRequestThreshold = 100 * time.Millisecond

// RequestIDFromContext возвращает id запроса, выданный MiddlewareLogging
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

func MiddlewareLogging(log *zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := recorder.NewResponseRecorder(w)

			requestID := r.Header.Get(httputils.HeaderRequestID)
			if _, err := uuid.Parse(requestID); err != nil {
				requestID = uuid.NewString()
			}
			rec.Header().Set(httputils.HeaderRequestID, requestID)

			reqLog := log.With().Str("request_id", requestID).Logger()
			ctx := context.WithValue(r.Context(), requestIDKey, requestID)
			ctx = reqLog.WithContext(ctx)

			// Логируем начало запроса только в debug режиме
			if log.GetLevel() <= zerolog.DebugLevel {
				reqLog.Debug().
					Str("method", r.Method).
					Str("path", r.URL.Path).
					Str("ip", r.RemoteAddr).
					Msg("request started")
			}

			defer func() {
				if p := recover(); p != nil {
					reqLog.Error().
						Str("panic", fmt.Sprintf("%v", p)).
						Str("stack", string(debug.Stack())).
						Msg("request panic")
					if rec.StatusCode == 0 {
						httputils.WriteJSONError(rec, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
					}
				}

				duration := time.Since(start)
				status := rec.Status()

				var event *zerolog.Event
				var msg string
				switch {
				case status >= 500:
					event, msg = reqLog.Error(), "server error"
				case status >= 400:
					event, msg = reqLog.Warn(), "client error"
				default:
					event, msg = reqLog.Info(), "request completed"
				}

				event = event.
					Str("method", r.Method).
					Str("path", r.URL.Path).
					Int("status", status).
					Dur("duration_ms", duration).
					Int("bytes", rec.Size).
					Str("ip", r.RemoteAddr)

				if duration > slowRequestThreshold {
					event = event.Bool("slow", true)
				}

				event.Msg(msg)
			}()

			next.ServeHTTP(rec, r.WithContext(ctx))
		})
	}
}
