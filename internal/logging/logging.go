package logging

import (
	"fmt"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New opens a session logger appending JSON lines to path. The TUI owns
// the terminal, so logs go to a file instead of stderr. The returned
// flush function syncs and closes the file.
func New(path string) (logr.Logger, func(), error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return logr.Discard(), nil, fmt.Errorf("opening log file: %w", err)
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.Lock(f),
		zap.NewAtomicLevelAt(zapcore.InfoLevel),
	)
	zl := zap.New(core)

	flush := func() {
		_ = zl.Sync()
		_ = f.Close()
	}
	return zapr.NewLogger(zl), flush, nil
}

// Noop returns a logger that drops everything, used when --log-file is
// not set.
func Noop() logr.Logger {
	return logr.Discard()
}
