package httpserver

import (
	"net/http"
	"time"

	"cryptostats-service/internal/infrastructure/logx"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func NewRouter(s *Server) http.Handler {
	r := chi.NewRouter()

	r.Use(correlationIDs())
	r.Use(recoverer())
	r.Use(accessLog())

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if s.ping != nil {
			if err := s.ping(r.Context()); err != nil {
				logx.WithFields(r.Context()).Warn("readyz.storage_down", zap.Error(err))
				writeError(w, http.StatusServiceUnavailable, "storage not ready")
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("READY"))
	})

	HandlerWithOptions(s, ChiServerOptions{
		BaseRouter: r,
		ErrorHandlerFunc: func(w http.ResponseWriter, r *http.Request, err error) {
			logx.WithFields(r.Context()).Info("http.bind_failed", zap.Error(err))
			writeError(w, http.StatusBadRequest, msgInvalidCoin)
		},
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, http.StatusText(http.StatusNotFound))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, http.StatusText(http.StatusMethodNotAllowed))
	})
	return r
}

const (
	headerRequestID = "X-Request-ID"
	headerTraceID   = "X-Trace-Id"
)

// correlationIDs propagates caller supplied request and trace ids, minting
// uuids for missing ones, and echoes both back on the response.
func correlationIDs() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rid := headerOrUUID(r, headerRequestID)
			tid := headerOrUUID(r, headerTraceID)
			w.Header().Set(headerRequestID, rid)
			w.Header().Set(headerTraceID, tid)
			ctx := logx.WithTraceID(logx.WithRequestID(r.Context(), rid), tid)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func headerOrUUID(r *http.Request, name string) string {
	if v := r.Header.Get(name); v != "" {
		return v
	}
	return uuid.NewString()
}

func recoverer() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logx.WithFields(r.Context()).Error("panic recovered", zap.Any("error", rec))
					writeError(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.status = code
	sr.ResponseWriter.WriteHeader(code)
}

func (sr *statusRecorder) Write(b []byte) (int, error) {
	if sr.status == 0 {
		sr.status = http.StatusOK
	}
	n, err := sr.ResponseWriter.Write(b)
	sr.bytes += n
	return n, err
}

func accessLog() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sr := &statusRecorder{ResponseWriter: w}
			next.ServeHTTP(sr, r)
			logx.WithFields(r.Context()).Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.String("query", r.URL.RawQuery),
				zap.Int("status", sr.status),
				zap.Int("bytes", sr.bytes),
				zap.Duration("duration", time.Since(start)),
			)
		})
	}
}
