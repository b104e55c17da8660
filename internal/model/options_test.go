package model

import (
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultDownloadOptions(t *testing.T) {
	opts := DefaultDownloadOptions()

	assert.Equal(t, "bv*+ba/best", opts.Format)
	assert.Equal(t, "%(title)s.%(ext)s", opts.OutputTemplate)
	assert.Equal(t, "mp4", opts.MergeFormat)
	assert.True(t, opts.Quiet)
	assert.Equal(t, EngineYTDLP, opts.Engine)
	assert.NoError(t, opts.Validate())
}

func TestDownloadOptions_ValidateCollectsAllErrors(t *testing.T) {
	opts := DownloadOptions{
		Format:           " ",
		OutputTemplate:   "sub/%(title)s",
		MergeFormat:      "gif",
		Engine:           "curl",
		ProgressInterval: -1,
	}

	err := opts.Validate()
	require.Error(t, err)

	var merr *multierror.Error
	require.ErrorAs(t, err, &merr)
	assert.Len(t, merr.Errors, 6)
	assert.Contains(t, err.Error(), "unknown engine: curl")
	assert.Contains(t, err.Error(), "unsupported merge format: gif")
}

func TestDownloadOptions_EmptyMergeFormatAllowed(t *testing.T) {
	opts := DefaultDownloadOptions()
	opts.MergeFormat = ""
	opts.Engine = EngineNative

	assert.NoError(t, opts.Validate())
}
