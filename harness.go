package advent

import (
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Harness runs both parts of a puzzle over a single input.
type Harness struct {
	in  io.Reader
	out io.Writer
	log *zap.Logger
}

// New creates a Harness reading from os.Stdin and writing to os.Stdout.
func New(options ...Option) (*Harness, error) {
	h := &Harness{
		in:  os.Stdin,
		out: os.Stdout,
		log: zap.NewNop(),
	}
	for _, option := range options {
		if err := option(h); err != nil {
			return nil, err
		}
	}
	return h, nil
}

// Run reads the entire input then runs part one followed by part two.
//
// The first failure aborts the run: if part one fails, part two is never run.
func (h *Harness) Run(one, two Part) error {
	if one.Number() != 1 {
		return fmt.Errorf("first part must be part 1, not part %d", one.Number())
	}
	if two.Number() != 2 {
		return fmt.Errorf("second part must be part 2, not part %d", two.Number())
	}
	data, err := io.ReadAll(h.in)
	if err != nil {
		return wrap(0, KindIO, err)
	}
	h.log.Debug("Read input", zap.Int("bytes", len(data)))
	input := string(data)
	for _, part := range []Part{one, two} {
		start := time.Now()
		if err := part.Run(input, h.out); err != nil {
			h.log.Debug("Part failed", zap.Int("part", part.Number()), zap.Error(err))
			return err
		}
		h.log.Debug("Part solved", zap.Int("part", part.Number()), zap.Duration("elapsed", time.Since(start)))
	}
	return nil
}

// Main is the entry point of a puzzle program.
//
// It runs both parts over os.Stdin and exits with a non-zero status if either fails, after
// reporting the failure on os.Stderr.
func Main(one, two Part, options ...Option) {
	logger := newConsoleLogger()
	defer logger.Sync() // nolint: errcheck
	h, err := New(append([]Option{Logger(logger)}, options...)...)
	if err == nil {
		err = h.Run(one, two)
	}
	if err != nil {
		logger.Error("Run failed", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}

// newConsoleLogger logs warnings and errors to stderr without timestamps or stack traces.
func newConsoleLogger() *zap.Logger {
	config := zap.NewDevelopmentConfig()
	config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	config.DisableStacktrace = true
	config.DisableCaller = true
	config.EncoderConfig.TimeKey = ""
	logger, err := config.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
