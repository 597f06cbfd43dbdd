// Package logging builds the logr.Logger used across ospurge, backed by zap.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Options controls logger construction.
type Options struct {
	// Verbose enables V(1) debug output.
	Verbose bool
	// Format is FormatText or FormatJSON.
	Format string
	// Output defaults to stderr.
	Output io.Writer
}

// New builds a logger and returns it with a flush function to call on exit.
func New(opts Options) (logr.Logger, func(), error) {
	level := zapcore.InfoLevel
	if opts.Verbose {
		// zapr maps V(n) to zap level -n.
		level = zapcore.Level(-1)
	}

	var encoder zapcore.Encoder
	switch opts.Format {
	case "", FormatText:
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		if opts.Output != nil && opts.Output != os.Stderr {
			cfg.EncodeLevel = zapcore.CapitalLevelEncoder
		}
		encoder = zapcore.NewConsoleEncoder(cfg)
	case FormatJSON:
		encoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	default:
		return logr.Discard(), func() {}, fmt.Errorf("invalid log format %q (must be %s or %s)", opts.Format, FormatText, FormatJSON)
	}

	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(out), zap.NewAtomicLevelAt(level))
	zl := zap.New(core)
	return zapr.NewLogger(zl), func() { _ = zl.Sync() }, nil
}
