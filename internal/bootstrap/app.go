package bootstrap

import (
	"context"
	"errors"
	"net/http"
	"time"

	"cryptostats-service/internal/application"
	infraconfig "cryptostats-service/internal/infrastructure/config"

	"go.uber.org/zap"
)

// API is the HTTP process. Scheduler is nil when SCHEDULER_ENABLED=false.
type API struct {
	Addr      string
	Handler   http.Handler
	Scheduler application.Worker
	Log       *zap.Logger
}

// Run serves HTTP and drives the scheduler until ctx is cancelled, then
// shuts the server down gracefully.
func (a *API) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:              a.Addr,
		Handler:           a.Handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	done := make(chan struct{})
	if a.Scheduler != nil {
		go func() {
			defer close(done)
			a.Scheduler.Start(ctx)
		}()
	} else {
		close(done)
	}

	errCh := make(chan error, 1)
	go func() {
		a.Log.Info("server started", zap.String("addr", a.Addr), zap.Bool("scheduler", a.Scheduler != nil))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	var runErr error
	select {
	case <-ctx.Done():
	case runErr = <-errCh:
	}
	cancel()

	shutdownCtx, shCancel := context.WithTimeout(context.Background(), infraconfig.DefaultShutdownTimeout)
	defer shCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		a.Log.Warn("server shutdown", zap.Error(err))
	}
	<-done
	a.Log.Info("server stopped")
	return runErr
}
