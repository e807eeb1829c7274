package main

import (
	"context"
	"os/signal"
)

// notifyContext derives a context that ends on the first shutdown signal.
func notifyContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, shutdownSignals...)
}
