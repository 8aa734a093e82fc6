package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// shutdownSignals returns a context cancelled on an interrupt or terminate signal.
func shutdownSignals() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}
