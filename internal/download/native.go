package download

import (
	"context"
	"net/http"
	"time"

	"github.com/ytget/ytdlp/v2"
	"github.com/ytget/ytdlp/v2/client"
	"go.uber.org/zap"

	"github.com/ytget/yt-quicksave/internal/model"
)

// Native engine defaults
const (
	NativeTimeout   = 30 * time.Second
	NativeRetries   = 3
	NativeUserAgent = "yt-quicksave/1.0"
)

// NativeExtractor downloads YouTube videos without external binaries. It
// fetches a single progressive stream, so the yt-dlp format selector and
// merge container do not apply; the library picks the stream and names the
// file after the title with the stream's own extension.
type NativeExtractor struct {
	httpClient *http.Client
	log        *zap.SugaredLogger
}

// DefaultNativeClientConfig returns the HTTP client settings for the native engine
func DefaultNativeClientConfig() client.Config {
	return client.Config{Timeout: NativeTimeout, Retries: NativeRetries, UserAgent: NativeUserAgent}
}

// NewNativeExtractor creates a native extractor using an HTTP client built from cfg
func NewNativeExtractor(cfg client.Config) *NativeExtractor {
	c := client.NewWith(cfg)
	return &NativeExtractor{
		httpClient: c.HTTPClient,
		log:        zap.S().Named("native"),
	}
}

// Extract downloads req.URL into req.Dir
func (e *NativeExtractor) Extract(ctx context.Context, req Request) error {
	if req.Options.Format != "" && req.Options.Format != model.DefaultFormat {
		e.log.Debugw("Format selector not supported by native engine", "format", req.Options.Format)
	}

	d := ytdlp.New().
		WithHTTPClient(e.httpClient).
		WithOutputPath(req.Dir)

	if req.OnProgress != nil {
		d = d.WithProgress(func(p ytdlp.Progress) {
			req.OnProgress(model.ProgressEvent{
				Status:          model.ProgressStatusDownloading,
				DownloadedBytes: int64(p.DownloadedSize),
				TotalBytes:      int64(p.TotalSize),
				Filename:        req.URL,
			})
		})
	}

	info, err := d.Download(ctx, req.URL)
	if err != nil {
		return err
	}

	if req.OnProgress != nil {
		req.OnProgress(model.ProgressEvent{Status: model.ProgressStatusFinished, Filename: req.URL})
	}
	if info != nil {
		e.log.Debugw("Native download finished", "title", info.Title)
	}
	return nil
}
