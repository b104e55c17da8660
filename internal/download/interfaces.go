package download

import (
	"context"

	"github.com/ytget/yt-quicksave/internal/model"
)

// ProgressFunc receives progress events while an extraction runs
type ProgressFunc func(model.ProgressEvent)

// Request is one call into an extraction library
type Request struct {
	URL        string
	Dir        string // directory the library must write into
	Options    model.DownloadOptions
	OnProgress ProgressFunc
}

// Extractor is the external extraction library. It is trusted to write zero
// or more files into Request.Dir and to call OnProgress from the calling
// goroutine or a single callback goroutine.
type Extractor interface {
	Extract(ctx context.Context, req Request) error
}

// Downloader defines the interface for the download orchestrator.
type Downloader interface {
	// Download fetches url and returns the produced file
	Download(ctx context.Context, url string, onProgress ProgressFunc) (*model.Result, error)

	// Configure replaces the extractor and options used by later downloads
	Configure(extractor Extractor, options model.DownloadOptions)
}
