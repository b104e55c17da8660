package main

import (
	"context"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/ytget/yt-quicksave/internal/config"
	"github.com/ytget/yt-quicksave/internal/download"
	"github.com/ytget/yt-quicksave/internal/model"
	"github.com/ytget/yt-quicksave/internal/ui"
)

// runGUI opens the main window and blocks until it is closed
func runGUI(c *cli.Context) error {
	log := zap.S().Named("main")
	log.Infow("Starting", "version", version)

	base := baseOptions(c)
	if err := base.Validate(); err != nil {
		return cli.Exit(err.Error(), 2)
	}

	myApp := app.NewWithID(AppID)
	settings := config.NewSettings(myApp)

	// Explicit flags win over stored preferences and are remembered
	if c.IsSet(flagEngine) {
		settings.SetEngine(c.String(flagEngine))
	}
	if c.IsSet(flagFormat) {
		settings.SetFormat(c.String(flagFormat))
	}
	if c.IsSet(flagMergeFormat) {
		settings.SetMergeFormat(c.String(flagMergeFormat))
	}

	opts := resolveOptions(settings, base)

	newExtractor := extractorFactory(c)
	extractor, err := newExtractor(opts.Engine)
	if err != nil {
		return cli.Exit(err.Error(), 2)
	}
	downloadSvc := download.NewService(extractor, opts)

	ctx, cancel := context.WithCancel(c.Context)
	defer cancel()

	myWindow := myApp.NewWindow(fmt.Sprintf("%s %s", AppName, version))
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))
	myWindow.SetOnClosed(cancel)

	ui.NewRootUI(ctx, myWindow, myApp, downloadSvc, ui.Options{
		BaseOptions:  base,
		NewExtractor: newExtractor,
	})

	myWindow.ShowAndRun()
	log.Info("Window closed")
	return nil
}

// resolveOptions layers stored preferences over base. If the result does
// not validate, base is used unchanged.
func resolveOptions(settings *config.Settings, base model.DownloadOptions) model.DownloadOptions {
	opts := settings.GetDownloadOptions(base)
	if err := opts.Validate(); err != nil {
		zap.S().Named("main").Warnw("Ignoring invalid stored settings", "error", err)
		return base
	}
	return opts
}
