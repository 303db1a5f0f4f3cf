// Package main is the main entrypoint of the program.
package main

import (
	"context"
	"crawlfilter/internal/cfg"
	"crawlfilter/internal/domain/keys"
	"crawlfilter/internal/logging"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/spf13/viper"
)

// Main program string constants.
const (
	timeFormat     = "2006-01-02 15:04:05.00 MST"
	startLogFormat = "Crawlfilter started at: %s"
	endLogFormat   = "Crawlfilter finished at: %s"
	elapsedFormat  = "Time elapsed: %.2f seconds"
)

// main is the program entrypoint.
func main() {
	os.Exit(run())
}

// run executes the program and returns its exit status.
func run() (status int) {
	startTime := time.Now()

	// Panic recovery with proper cleanup.
	defer func() {
		if r := recover(); r != nil {
			logging.E("Panic recovered: %v", r)
			logging.E("Stack trace:\n\n%s", debug.Stack())
			status = 1
		}
	}()
	defer func() {
		if err := logging.CloseLogFile(); err != nil {
			logging.E("Failed to close log file: %v", err)
		}
	}()

	// Setup context for cancellation.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGHUP, syscall.SIGQUIT)
	defer cancel()

	// Parse configuration and run the selected filter.
	if err := cfg.Execute(ctx); err != nil {
		logging.E("%v", err)
		return 1
	}

	// Early exit if nothing was executed (help, completion...).
	if !viper.GetBool(keys.Execute) {
		return 0
	}

	// End program run.
	endTime := time.Now()
	logging.D(1, startLogFormat, startTime.Format(timeFormat))
	logging.D(1, endLogFormat, endTime.Format(timeFormat))
	logging.D(1, elapsedFormat, endTime.Sub(startTime).Seconds())
	return 0
}
