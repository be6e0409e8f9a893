// Command advent creates and checks puzzle programs.
package main

import (
	"io"
	"os"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/advent-go/advent/internal/config"
)

var (
	version string = "dev"
	cli     struct {
		Version kong.VersionFlag
		Verbose bool `help:"Log progress to stderr."`

		New   newCmd   `cmd:"" help:"Create a new puzzle program."`
		Check checkCmd `cmd:"" help:"Check grammar and part declarations of puzzle programs."`
	}
)

func main() {
	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}
	cfg, cfgErr := config.Find(wd)
	if cfgErr != nil {
		cfg = config.Empty()
	}
	kctx := kong.Parse(&cli,
		kong.Description(`Create and check daily puzzle programs.`),
		kong.Vars{"version": version},
		kong.Resolvers(cfg.Resolver()),
	)
	logger := newLogger(cli.Verbose)
	defer logger.Sync() // nolint: errcheck
	if cfgErr != nil {
		logger.Warn("Ignoring configuration", zap.Error(cfgErr))
	} else if cfg.Path != "" {
		logger.Debug("Loaded configuration", zap.String("path", cfg.Path))
	}
	kctx.BindTo(kctx.Stdout, (*io.Writer)(nil))
	err = kctx.Run(logger)
	kctx.FatalIfErrorf(err)
}

func newLogger(verbose bool) *zap.Logger {
	zc := zap.NewDevelopmentConfig()
	zc.DisableStacktrace = true
	zc.DisableCaller = true
	zc.EncoderConfig.TimeKey = ""
	if !verbose {
		zc.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	}
	logger, err := zc.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
