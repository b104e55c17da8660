package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/hashicorp/go-multierror"
	"github.com/schollz/progressbar/v3"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/ytget/yt-quicksave/internal/download"
	"github.com/ytget/yt-quicksave/internal/platform"
	"github.com/ytget/yt-quicksave/internal/progress"
)

// progressScale is the bar resolution; the relay reports fractions
const progressScale = 1000

func fetchCommand() *cli.Command {
	return &cli.Command{
		Name:      "fetch",
		Usage:     "download videos without opening a window",
		ArgsUsage: "URL...",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    flagOutput,
				Aliases: []string{"o"},
				Value:   ".",
				Usage:   "save downloaded videos to `DIR`",
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return cli.Exit("at least one URL is required", 2)
			}

			opts := baseOptions(c)
			if err := opts.Validate(); err != nil {
				return cli.Exit(err.Error(), 2)
			}
			extractor, err := extractorFactory(c)(opts.Engine)
			if err != nil {
				return cli.Exit(err.Error(), 2)
			}

			svc := download.NewService(extractor, opts)
			return fetch(c.Context, svc, c.Args().Slice(), c.String(flagOutput), c.App.ErrWriter)
		},
	}
}

// fetch downloads every url into dir, carrying on past failures. The
// returned error lists every failed url.
func fetch(ctx context.Context, svc download.Downloader, urls []string, dir string, out io.Writer) error {
	log := zap.S().Named("fetch")

	if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
		return err
	}

	var errs *multierror.Error
	for _, url := range urls {
		path, err := fetchOne(ctx, svc, url, dir, out)
		if err != nil {
			log.Errorw("Fetch failed", "url", url, "error", err)
			errs = multierror.Append(errs, fmt.Errorf("%s: %w", url, err))
			continue
		}
		log.Infow("Saved", "url", url, "path", path)
	}
	return errs.ErrorOrNil()
}

func fetchOne(ctx context.Context, svc download.Downloader, url, dir string, out io.Writer) (string, error) {
	view := newTerminalView(out)
	relay := progress.NewRelay(view)
	defer view.Close()

	result, err := svc.Download(ctx, url, relay.Handle)
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, platform.SanitizeFileName(result.Name))
	if err := os.WriteFile(path, result.Data, 0o644); err != nil {
		return "", &download.Error{Err: fmt.Errorf("failed to write %s: %w", path, err)}
	}
	fmt.Fprintf(out, "%s (%s)\n", path, humanize.Bytes(uint64(result.Size())))
	return path, nil
}

// terminalView renders relay updates as a progress bar
type terminalView struct {
	bar *progressbar.ProgressBar
	out io.Writer
}

func newTerminalView(out io.Writer) *terminalView {
	bar := progressbar.NewOptions(progressScale,
		progressbar.OptionSetWriter(out),
		progressbar.OptionSetDescription("downloading"),
		progressbar.OptionSetPredictTime(false),
		progressbar.OptionSetWidth(30),
	)
	return &terminalView{bar: bar, out: out}
}

func (v *terminalView) SetProgress(fraction float64) {
	_ = v.bar.Set(int(fraction * progressScale))
}

func (v *terminalView) SetText(text string) {
	v.bar.Describe(plainText(text))
}

// Close ends the bar line
func (v *terminalView) Close() {
	fmt.Fprintln(v.out)
}

// plainText drops the markdown emphasis used by the window
func plainText(text string) string {
	return strings.ReplaceAll(text, "**", "")
}
