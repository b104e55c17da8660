package download

import (
	"testing"

	"github.com/lrstanley/go-ytdlp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/yt-quicksave/internal/model"
)

func TestNewExtractor(t *testing.T) {
	ext, err := NewExtractor(ExtractorConfig{Engine: model.EngineYTDLP})
	require.NoError(t, err)
	assert.IsType(t, &YTDLPExtractor{}, ext)

	ext, err = NewExtractor(ExtractorConfig{})
	require.NoError(t, err)
	assert.IsType(t, &YTDLPExtractor{}, ext)

	ext, err = NewExtractor(ExtractorConfig{Engine: model.EngineNative})
	require.NoError(t, err)
	assert.IsType(t, &NativeExtractor{}, ext)

	_, err = NewExtractor(ExtractorConfig{Engine: "wget"})
	assert.EqualError(t, err, "unknown engine: wget")
}

func TestConvertProgress(t *testing.T) {
	ev := convertProgress(ytdlp.ProgressUpdate{
		Status:          ytdlp.ProgressStatusDownloading,
		TotalBytes:      2000,
		DownloadedBytes: 500,
		Filename:        "/tmp/x/video.f137.mp4",
	})

	assert.Equal(t, model.ProgressStatusDownloading, ev.Status)
	assert.EqualValues(t, 500, ev.DownloadedBytes)
	assert.EqualValues(t, 2000, ev.TotalBytes)
	assert.Equal(t, "/tmp/x/video.f137.mp4", ev.Filename)

	fin := convertProgress(ytdlp.ProgressUpdate{Status: ytdlp.ProgressStatusFinished})
	assert.Equal(t, model.ProgressStatusFinished, fin.Status)
}
