// Package logger holds the process-wide zap logger. It starts as a
// no-op so library code can log unconditionally; the CLI turns real
// output on with Initialize.
package logger

import (
	"go.uber.org/zap"

	"umlc/internal/errors"
)

// L is the global logger, a no-op until Initialize selects a mode.
var L *zap.SugaredLogger

func init() {
	L = zap.NewNop().Sugar()
}

// Initialize configures the global logger. Mode "json" writes
// structured records to stderr; "off" or empty keeps the no-op.
func Initialize(mode string) error {
	switch mode {
	case "", "off":
		L = zap.NewNop().Sugar()
		return nil
	case "json":
		cfg := zap.NewProductionConfig()
		cfg.OutputPaths = []string{"stderr"}
		cfg.ErrorOutputPaths = []string{"stderr"}
		log, err := cfg.Build()
		if err != nil {
			return errors.Wrap(err, "build logger")
		}
		L = log.Sugar()
		return nil
	}
	return errors.Newf("unknown log mode %q", mode)
}

// Sync flushes buffered records. The no-op logger ignores it.
func Sync() {
	_ = L.Sync()
}
