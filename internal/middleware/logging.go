package middleware

import (
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// Logger пишет в zap метод, путь, статус и длительность запроса
func Logger(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			defer func() {
				fields := []zap.Field{
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.Int("status", ww.Status()),
					zap.Int("bytes", ww.BytesWritten()),
					zap.Duration("duration", time.Since(start)),
					zap.String("request_id", chimw.GetReqID(r.Context())),
				}
				if userID, ok := UserIDFromContext(r.Context()); ok {
					fields = append(fields, zap.Int("user_id", userID))
				}

				switch {
				case ww.Status() >= http.StatusInternalServerError:
					log.Error("http request", fields...)
				default:
					log.Info("http request", fields...)
				}
			}()

			next.ServeHTTP(ww, r)
		})
	}
}
