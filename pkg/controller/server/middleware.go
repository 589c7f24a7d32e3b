package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/sujeethshingade/docster/pkg/utils/logging"
)

const requestIDHeader = "X-Request-ID"

// preProcess attaches a request ID and a logger carrying it to the request
// context, and writes one access log line per request.
func preProcess(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID, ctx := logging.CtxRequestID(r.Context())
		logger := logging.Default().With(slog.String("request_id", string(reqID)))
		ctx = logging.With(ctx, logger)

		w.Header().Set(requestIDHeader, string(reqID))
		lw := &statusCodeLogger{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		requestedAt := time.Now()
		next.ServeHTTP(lw, r.WithContext(ctx))

		logger.Info("http access",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("remote_addr", r.RemoteAddr),
			slog.Int("status_code", lw.statusCode),
			slog.Int("response_bytes", lw.written),
			slog.String("user_agent", r.UserAgent()),
			slog.Duration("elapsed", time.Since(requestedAt)),
		)
	})
}

type statusCodeLogger struct {
	http.ResponseWriter
	statusCode int
	written    int
}

func (x *statusCodeLogger) WriteHeader(code int) {
	x.statusCode = code
	x.ResponseWriter.WriteHeader(code)
}

func (x *statusCodeLogger) Write(b []byte) (int, error) {
	n, err := x.ResponseWriter.Write(b)
	x.written += n
	return n, err
}
