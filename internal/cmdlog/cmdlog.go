package cmdlog

import (
	"time"

	"mentiongraph/internal/logging"
	"mentiongraph/internal/metrics"
)

// Run executes a CLI subcommand body. Every run is counted and timed, and
// the outcome is logged as <cmd>_ok or <cmd>_error with elapsed_ms.
func Run(cmd string, f func() error) error {
	metrics.IncCommandRun(cmd)
	start := time.Now()
	err := f()
	elapsed := time.Since(start)
	metrics.ObserveCommandDuration(cmd, elapsed)
	fields := map[string]any{"command": cmd, "elapsed_ms": elapsed.Milliseconds()}
	if err != nil {
		metrics.IncCommandError(cmd)
		fields["error"] = err.Error()
		logging.Error(cmd+"_error", fields)
		return err
	}
	logging.Info(cmd+"_ok", fields)
	return nil
}
