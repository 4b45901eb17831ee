// Package logger holds the process-wide structured logger. It starts as
// a no-op so library code can log before Initialize runs, and switches
// to a real zap backend once the CLI decides between human and JSON
// output.
package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Logger is the global instance; safe to use before Initialize.
	Logger *zap.SugaredLogger
	// JSONOutput reports whether Initialize chose machine output.
	JSONOutput bool
)

func init() {
	Logger = zap.NewNop().Sugar()
}

// Initialize sets up the global logger. jsonOutput selects the zap
// production JSON encoder; otherwise a console encoder writes
// human-readable lines to stderr, keeping stdout clean for results.
func Initialize(jsonOutput bool) error {
	JSONOutput = jsonOutput

	if jsonOutput {
		config := zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
		config.OutputPaths = []string{"stderr"}
		zapLogger, err := config.Build()
		if err != nil {
			return err
		}
		Logger = zapLogger.Sugar()
		return nil
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = "" // command-line runs are short, timestamps are noise
	zapLogger := zap.New(
		zapcore.NewCore(
			zapcore.NewConsoleEncoder(encCfg),
			zapcore.AddSync(os.Stderr),
			zap.InfoLevel,
		),
	)
	Logger = zapLogger.Sugar()
	return nil
}

// Cleanup flushes buffered entries; call on process exit.
func Cleanup() {
	if Logger != nil {
		_ = Logger.Sync()
	}
}
