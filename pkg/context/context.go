package context

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/KornaPhp/random/pkg/log"
)

var (
	ctx    context.Context
	cancel context.CancelFunc
	once   sync.Once

	exit = os.Exit
)

// WithInterrupt returns a child of parent that is cancelled on the first SIGINT or SIGTERM.
// A second signal exits the process immediately.
func WithInterrupt(parent context.Context) (context.Context, context.CancelFunc) {
	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	ctx, cancel := context.WithCancel(parent)
	go watch(ctx, cancel, c)
	return ctx, func() {
		signal.Stop(c)
		cancel()
	}
}

func watch(ctx context.Context, cancel context.CancelFunc, c <-chan os.Signal) {
	select {
	case <-c:
	case <-ctx.Done():
		return
	}
	log.Info().Msg("received interrupt signal, stopping")
	cancel()

	<-c
	log.Info().Msg("received multiple interrupt signals, exiting")
	exit(1)
}

// Context returns the process wide interruptible context. It is safe to call from multiple goroutines
// and always returns the same context
func Context() context.Context {
	once.Do(func() {
		ctx, cancel = WithInterrupt(context.Background())
	})
	return ctx
}

// Cancel cancels the process wide context
func Cancel() {
	Context()
	cancel()
}
