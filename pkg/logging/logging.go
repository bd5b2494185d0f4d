// Package logging builds the dual-sink logger used by every command: a
// console sink that honors --debug and a file sink that always records
// debug detail.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options configures New.
type Options struct {
	// Debug lowers the console level from info to debug.
	Debug bool
	// Console receives human-oriented log lines. Defaults to os.Stderr.
	Console io.Writer
	// FilePath, when set, receives every entry at debug level.
	FilePath string
}

// Logger wraps a zap logger together with the file it writes to.
type Logger struct {
	*zap.Logger
	file *os.File
}

// New builds a Logger. The caller must Close it.
func New(opts Options) (*Logger, error) {
	console := opts.Console
	if console == nil {
		console = os.Stderr
	}

	consoleLevel := zapcore.InfoLevel
	if opts.Debug {
		consoleLevel = zapcore.DebugLevel
	}

	consoleEnc := zap.NewDevelopmentEncoderConfig()
	consoleEnc.TimeKey = ""
	consoleEnc.CallerKey = ""
	consoleEnc.EncodeLevel = zapcore.CapitalLevelEncoder

	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(consoleEnc), zapcore.AddSync(console), consoleLevel),
	}

	l := &Logger{}
	if opts.FilePath != "" {
		if err := os.MkdirAll(filepath.Dir(opts.FilePath), 0o755); err != nil {
			return nil, fmt.Errorf("logging: creating log directory: %w", err)
		}
		f, err := os.OpenFile(opts.FilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("logging: opening %s: %w", opts.FilePath, err)
		}
		l.file = f

		fileEnc := zap.NewProductionEncoderConfig()
		fileEnc.EncodeTime = zapcore.ISO8601TimeEncoder
		fileEnc.EncodeLevel = zapcore.CapitalLevelEncoder
		cores = append(cores, zapcore.NewCore(zapcore.NewConsoleEncoder(fileEnc), zapcore.AddSync(f), zapcore.DebugLevel))
	}

	l.Logger = zap.New(zapcore.NewTee(cores...))
	return l, nil
}

// Nop returns a Logger that discards everything.
func Nop() *Logger {
	return &Logger{Logger: zap.NewNop()}
}

// Close flushes buffered entries and closes the log file.
func (l *Logger) Close() error {
	_ = l.Logger.Sync() // stderr sync fails on some platforms
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}
