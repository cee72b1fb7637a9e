package graceful

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// Context returns a context that is canceled when an OS interrupt signal is
// received, so a run can stop cleanly when the scheduler kills it.
func Context(ctx context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
}
