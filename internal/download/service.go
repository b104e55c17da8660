package download

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ytget/yt-quicksave/internal/model"
	"github.com/ytget/yt-quicksave/internal/platform"
)

// WorkspacePrefix names the per-attempt temporary directories
const WorkspacePrefix = "yt-quicksave"

// Service handles download operations
type Service struct {
	mu        sync.RWMutex
	extractor Extractor
	options   model.DownloadOptions
	log       *zap.SugaredLogger
}

// NewService creates a new download service
func NewService(extractor Extractor, options model.DownloadOptions) *Service {
	return &Service{
		extractor: extractor,
		options:   options,
		log:       zap.S().Named("download"),
	}
}

// Configure replaces the extractor and options used by later downloads
func (s *Service) Configure(extractor Extractor, options model.DownloadOptions) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.extractor = extractor
	s.options = options
}

// Options returns the current download options
func (s *Service) Options() model.DownloadOptions {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.options
}

// Download runs the extractor for url inside a fresh temporary directory and
// returns the newest file it produced. The directory is removed before
// Download returns. Every error is an *Error.
func (s *Service) Download(ctx context.Context, url string, onProgress ProgressFunc) (*model.Result, error) {
	if url == "" {
		return nil, &Error{Err: ErrEmptyURL}
	}

	s.mu.RLock()
	extractor, options := s.extractor, s.options
	s.mu.RUnlock()

	log := s.log.With("attempt_id", uuid.NewString(), "url", url)

	ws, err := platform.NewWorkspace(WorkspacePrefix)
	if err != nil {
		return nil, &Error{Err: err}
	}
	defer func() {
		if err := ws.Close(); err != nil {
			log.Warnw("Failed to clean up workspace", "error", err)
		}
	}()

	log.Infow("Starting download", "dir", ws.Dir(), "engine", options.Engine, "format", options.Format)

	req := Request{
		URL:        url,
		Dir:        ws.Dir(),
		Options:    options,
		OnProgress: onProgress,
	}
	if err := extractor.Extract(ctx, req); err != nil {
		log.Errorw("Extraction failed", "error", err)
		return nil, &Error{Err: err}
	}

	path, err := platform.NewestFile(ws.Dir())
	if err != nil {
		if errors.Is(err, platform.ErrNoFiles) {
			log.Warn("Extractor produced no file")
			return nil, &Error{Err: ErrNoFileDownloaded}
		}
		return nil, &Error{Err: err}
	}

	if files, err := platform.ListOutputFiles(ws.Dir()); err == nil && len(files) > 1 {
		log.Warnw("Several output files, using newest", "files", len(files), "file", filepath.Base(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &Error{Err: fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)}
	}

	result := &model.Result{
		Name:     filepath.Base(path),
		Data:     data,
		MIMEType: platform.DetectMIMEType(path),
	}
	log.Infow("Download completed", "file", result.Name, "size", result.Size(), "mime", result.MIMEType)

	return result, nil
}
