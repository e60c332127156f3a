package config

import (
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
)

var isShuttingDown atomic.Bool

// StartListeningForShutdownSignal flips the shutdown flag on SIGINT/SIGTERM
// so long-running workers can drain instead of being cut mid-iteration.
func StartListeningForShutdownSignal() {
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		isShuttingDown.Store(true)
	}()
}

func IsShouldShutdown() bool {
	return isShuttingDown.Load()
}
