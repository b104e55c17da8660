package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/ytget/yt-quicksave/internal/download"
	"github.com/ytget/yt-quicksave/internal/model"
)

type stubDownloader struct {
	results map[string]*model.Result
}

func (s *stubDownloader) Download(ctx context.Context, url string, onProgress download.ProgressFunc) (*model.Result, error) {
	result, ok := s.results[url]
	if !ok {
		return nil, &download.Error{Err: download.ErrNoFileDownloaded}
	}
	onProgress(model.ProgressEvent{Status: model.ProgressStatusDownloading, DownloadedBytes: 1, TotalBytes: 2, Filename: result.Name})
	onProgress(model.ProgressEvent{Status: model.ProgressStatusFinished, Filename: result.Name})
	return result, nil
}

func (s *stubDownloader) Configure(download.Extractor, model.DownloadOptions) {}

func TestFetch_WritesResults(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	svc := &stubDownloader{results: map[string]*model.Result{
		"https://example.com/a": {Name: "A.mp4", Data: []byte("aaaa")},
		"https://example.com/b": {Name: "B.webm", Data: []byte("bb")},
	}}
	var out bytes.Buffer

	err := fetch(context.Background(), svc, []string{"https://example.com/a", "https://example.com/b"}, dir, &out)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "A.mp4"))
	require.NoError(t, err)
	assert.Equal(t, []byte("aaaa"), data)

	data, err = os.ReadFile(filepath.Join(dir, "B.webm"))
	require.NoError(t, err)
	assert.Equal(t, []byte("bb"), data)

	assert.Contains(t, out.String(), "Download Progress: 50.00%")
	assert.NotContains(t, out.String(), "**")
}

func TestFetch_ContinuesPastFailures(t *testing.T) {
	dir := t.TempDir()
	svc := &stubDownloader{results: map[string]*model.Result{
		"https://example.com/ok": {Name: "ok.mp4", Data: []byte("ok")},
	}}
	var out bytes.Buffer

	err := fetch(context.Background(), svc, []string{"https://example.com/missing", "https://example.com/ok"}, dir, &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "https://example.com/missing")
	assert.Contains(t, err.Error(), download.ErrorMarker+"No file downloaded")
	assert.True(t, errors.Is(err, download.ErrNoFileDownloaded))

	_, statErr := os.Stat(filepath.Join(dir, "ok.mp4"))
	assert.NoError(t, statErr)
}

func TestPlainText(t *testing.T) {
	assert.Equal(t, "📦 Download Progress: 12.50%", plainText("📦 **Download Progress: 12.50%**"))
	assert.Equal(t, "", plainText(""))
}

func TestNewLogger(t *testing.T) {
	logger, err := newLogger("debug")
	require.NoError(t, err)
	assert.NotNil(t, logger)

	_, err = newLogger("loud")
	assert.Error(t, err)
}

func TestApp_FetchRequiresURL(t *testing.T) {
	app := newApp()
	var stderr bytes.Buffer
	app.ErrWriter = &stderr
	app.ExitErrHandler = func(*cli.Context, error) {}

	err := app.Run([]string{AppName, "fetch"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one URL is required")
}

func TestApp_FetchRejectsInvalidOptions(t *testing.T) {
	app := newApp()
	app.ErrWriter = &bytes.Buffer{}
	app.ExitErrHandler = func(*cli.Context, error) {}

	err := app.Run([]string{AppName, "--merge-format", "gif", "fetch", "https://example.com/v"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported merge format: gif")
}
