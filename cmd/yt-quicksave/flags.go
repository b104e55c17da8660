package main

import (
	"github.com/urfave/cli/v2"

	"github.com/ytget/yt-quicksave/internal/download"
	"github.com/ytget/yt-quicksave/internal/model"
)

const (
	flagLogLevel         = "log-level"
	flagEngine           = "engine"
	flagFormat           = "format"
	flagMergeFormat      = "merge-format"
	flagProgressInterval = "progress-interval"
	flagInstallYTDLP     = "install-ytdlp"
	flagOutput           = "output"

	envPrefix = "YT_QUICKSAVE_"
)

func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    flagLogLevel,
			Value:   "info",
			Usage:   "log `LEVEL` (debug, info, warn, error)",
			EnvVars: []string{envPrefix + "LOG_LEVEL"},
		},
		&cli.StringFlag{
			Name:    flagEngine,
			Value:   model.DefaultEngine,
			Usage:   "extraction `ENGINE` (yt-dlp or native)",
			EnvVars: []string{envPrefix + "ENGINE"},
		},
		&cli.StringFlag{
			Name:    flagFormat,
			Value:   model.DefaultFormat,
			Usage:   "yt-dlp format `SELECTOR`",
			EnvVars: []string{envPrefix + "FORMAT"},
		},
		&cli.StringFlag{
			Name:    flagMergeFormat,
			Value:   model.DefaultMergeFormat,
			Usage:   "`CONTAINER` used when merging video and audio",
			EnvVars: []string{envPrefix + "MERGE_FORMAT"},
		},
		&cli.DurationFlag{
			Name:    flagProgressInterval,
			Value:   model.DefaultProgressInterval,
			Usage:   "minimum `INTERVAL` between progress updates",
			EnvVars: []string{envPrefix + "PROGRESS_INTERVAL"},
		},
		&cli.BoolFlag{
			Name:    flagInstallYTDLP,
			Value:   true,
			Usage:   "download yt-dlp if it is not installed",
			EnvVars: []string{envPrefix + "INSTALL_YTDLP"},
		},
	}
}

// baseOptions returns the download options given on the command line
func baseOptions(c *cli.Context) model.DownloadOptions {
	opts := model.DefaultDownloadOptions()
	opts.Engine = c.String(flagEngine)
	opts.Format = c.String(flagFormat)
	opts.MergeFormat = c.String(flagMergeFormat)
	opts.ProgressInterval = c.Duration(flagProgressInterval)
	return opts
}

// extractorFactory builds extractors honouring --install-ytdlp
func extractorFactory(c *cli.Context) func(engine string) (download.Extractor, error) {
	autoInstall := c.Bool(flagInstallYTDLP)
	return func(engine string) (download.Extractor, error) {
		return download.NewExtractor(download.ExtractorConfig{Engine: engine, AutoInstall: autoInstall})
	}
}
