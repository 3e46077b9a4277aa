package shutdown

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// WithSignals returns a context cancelled on SIGINT or SIGTERM, or when the
// returned cancel func is called.
func WithSignals(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	return ctx, stop
}

// Drain runs stop with a fresh deadline of timeout. If stop does not finish
// in time, force is called (when non-nil).
func Drain(log *slog.Logger, name string, timeout time.Duration, stop func(context.Context) error, force func() error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- stop(ctx) }()

	select {
	case err := <-done:
		if err != nil {
			log.Error("graceful stop failed", slog.String("component", name), slog.Any("err", err))
		}
	case <-ctx.Done():
		log.Warn("graceful stop timeout, forcing stop", slog.String("component", name))
		if force != nil {
			if err := force(); err != nil {
				log.Error("forced stop failed", slog.String("component", name), slog.Any("err", err))
			}
		}
	}
}
