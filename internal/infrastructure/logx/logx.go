package logx

import (
	"context"
	"strings"
	"sync"

	"cryptostats-service/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	once   sync.Once
	logger *zap.Logger
)

type ctxKey int

const (
	requestIDKey ctxKey = iota
	traceIDKey
)

// New builds a JSON production logger for cfg.
func New(cfg config.Config) (*zap.Logger, error) {
	zapCfg := zap.NewProductionConfig()
	zapCfg.Sampling = nil
	zapCfg.DisableStacktrace = true
	zapCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	// Unknown levels keep the info default.
	if cfg.LogLevel != "" {
		_ = zapCfg.Level.UnmarshalText([]byte(strings.ToLower(cfg.LogLevel)))
	}
	return zapCfg.Build(zap.AddCaller(), zap.Fields(zap.String("env", cfg.Env)))
}

// L returns the package-level logger, building it from the environment on
// first use so that variables loaded from .env by main are honoured.
func L() *zap.Logger {
	once.Do(func() {
		l, err := New(config.Load())
		if err != nil {
			panic(err)
		}
		logger = l
	})
	return logger
}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

func WithTraceID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, traceIDKey, id)
}

func RequestID(ctx context.Context) string {
	v, _ := ctx.Value(requestIDKey).(string)
	return v
}

func TraceID(ctx context.Context) string {
	v, _ := ctx.Value(traceIDKey).(string)
	return v
}

// WithFields enriches the base logger with request and trace IDs from ctx.
func WithFields(ctx context.Context) *zap.Logger {
	l := L()
	if rid := RequestID(ctx); rid != "" {
		l = l.With(zap.String("request_id", rid))
	}
	if tid := TraceID(ctx); tid != "" {
		l = l.With(zap.String("trace_id", tid))
	}
	return l
}
