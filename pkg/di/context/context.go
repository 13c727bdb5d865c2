package shortcontext

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// New returns the process run context, cancelled on SIGINT/SIGTERM so every provider
// hooked to it can shut down.
func New() (context.Context, func()) {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	return ctx, cancel
}
