package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.yt-quicksave"
	AppName = "yt-quicksave"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newApp().RunContext(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// newApp builds the command line. Without a subcommand it opens the window.
func newApp() *cli.App {
	var undo func()

	return &cli.App{
		Name:    AppName,
		Usage:   "save a single online video to your device",
		Version: version,
		Flags:   globalFlags(),
		Before: func(c *cli.Context) error {
			logger, err := newLogger(c.String(flagLogLevel))
			if err != nil {
				return cli.Exit(err.Error(), 2)
			}
			undo = zap.ReplaceGlobals(logger)
			zap.RedirectStdLog(logger)
			return nil
		},
		After: func(c *cli.Context) error {
			_ = zap.L().Sync()
			if undo != nil {
				undo()
			}
			return nil
		},
		Action: runGUI,
		Commands: []*cli.Command{
			fetchCommand(),
		},
		HideHelpCommand: true,
	}
}

// newLogger returns a development logger at the given level
func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = lvl
	return cfg.Build()
}
