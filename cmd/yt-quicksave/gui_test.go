package main

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ytget/yt-quicksave/internal/config"
	"github.com/ytget/yt-quicksave/internal/model"
)

func TestResolveOptions_UsesStoredPreferences(t *testing.T) {
	settings := config.NewSettings(test.NewApp())
	settings.SetMergeFormat("mkv")
	settings.SetEngine(model.EngineNative)

	opts := resolveOptions(settings, model.DefaultDownloadOptions())

	assert.Equal(t, "mkv", opts.MergeFormat)
	assert.Equal(t, model.EngineNative, opts.Engine)
}

func TestResolveOptions_InvalidStoredValueFallsBack(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	undo := zap.ReplaceGlobals(zap.New(core))
	defer undo()

	settings := config.NewSettings(test.NewApp())
	settings.SetMergeFormat("gif")
	base := model.DefaultDownloadOptions()

	opts := resolveOptions(settings, base)

	assert.Equal(t, base, opts)
	assert.Equal(t, 1, logs.FilterMessage("Ignoring invalid stored settings").Len())
}
