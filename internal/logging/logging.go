// Package logging builds the zap loggers used by the spgraph command.
//
// Library packages (core, dijkstra, builder) never log; only the command
// layer holds a logger and forwards algorithm hooks to it.
package logging

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	zaplogfmt "github.com/sykesm/zap-logfmt"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Supported values for Config.Format.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
	FormatLogfmt  = "logfmt"
)

// DefaultLevel is used when Config.Level is empty.
const DefaultLevel = zapcore.InfoLevel

var (
	// ErrUnknownFormat is returned for a Config.Format outside console, json, logfmt.
	ErrUnknownFormat = errors.New("logging: unknown log format")

	// ErrUnknownLevel is returned when Config.Level cannot be parsed.
	ErrUnknownLevel = errors.New("logging: unknown log level")
)

// Config selects the level, encoding and sink of a logger.
type Config struct {
	// Level is a zap level name (debug, info, warn, error, ...).
	// Empty means DefaultLevel.
	Level string

	// Format is one of FormatConsole, FormatJSON or FormatLogfmt.
	// Empty means FormatConsole.
	Format string

	// Writer receives encoded records. Nil means os.Stderr.
	Writer io.Writer
}

// ParseLevel converts a level name into a zapcore.Level. Matching is
// case-insensitive; the empty string yields DefaultLevel.
func ParseLevel(s string) (zapcore.Level, error) {
	if s == "" {
		return DefaultLevel, nil
	}
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(strings.ToLower(s))); err != nil {
		return DefaultLevel, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
	}

	return lvl, nil
}

// New creates a logger named "spgraph" from c.
func New(c Config) (*zap.Logger, error) {
	lvl, err := ParseLevel(c.Level)
	if err != nil {
		return nil, err
	}
	enc, err := newEncoder(c.Format)
	if err != nil {
		return nil, err
	}

	core := zapcore.NewCore(enc, writeSyncer(c.Writer), zap.NewAtomicLevelAt(lvl))

	return zap.New(core).Named("spgraph"), nil
}

// Nop returns a logger that discards everything.
func Nop() *zap.Logger { return zap.NewNop() }

func encoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.NameKey = "name"
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder

	return cfg
}

func newEncoder(format string) (zapcore.Encoder, error) {
	cfg := encoderConfig()
	switch strings.ToLower(format) {
	case "", FormatConsole:
		cfg.EncodeLevel = zapcore.CapitalLevelEncoder
		return zapcore.NewConsoleEncoder(cfg), nil
	case FormatJSON:
		return zapcore.NewJSONEncoder(cfg), nil
	case FormatLogfmt:
		return zaplogfmt.NewEncoder(cfg), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// writeSyncer adapts w the same way for every encoder: files are locked,
// WriteSyncers pass through, anything else gets a no-op Sync.
func writeSyncer(w io.Writer) zapcore.WriteSyncer {
	if w == nil {
		w = os.Stderr
	}
	switch t := w.(type) {
	case *os.File:
		return zapcore.Lock(t)
	case zapcore.WriteSyncer:
		return t
	default:
		return zapcore.AddSync(w)
	}
}
