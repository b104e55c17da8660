package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/hashicorp/go-multierror"
)

// Extraction engines
const (
	EngineYTDLP  = "yt-dlp"
	EngineNative = "native"
)

// Default values
const (
	DefaultFormat           = "bv*+ba/best"
	DefaultOutputTemplate   = "%(title)s.%(ext)s"
	DefaultMergeFormat      = "mp4"
	DefaultEngine           = EngineYTDLP
	DefaultProgressInterval = 250 * time.Millisecond
)

// Merge containers accepted by yt-dlp --merge-output-format
var MergeFormats = []string{"avi", "flv", "mkv", "mov", "mp4", "webm"}

// DownloadOptions is the configuration handed to the extraction library.
// The library treats it opaquely; only the engine choice is interpreted here.
type DownloadOptions struct {
	Format           string
	OutputTemplate   string
	MergeFormat      string
	Quiet            bool
	Engine           string
	ProgressInterval time.Duration
}

// DefaultDownloadOptions returns best video+audio merged into mp4
func DefaultDownloadOptions() DownloadOptions {
	return DownloadOptions{
		Format:           DefaultFormat,
		OutputTemplate:   DefaultOutputTemplate,
		MergeFormat:      DefaultMergeFormat,
		Quiet:            true,
		Engine:           DefaultEngine,
		ProgressInterval: DefaultProgressInterval,
	}
}

// Validate reports every invalid field at once
func (o DownloadOptions) Validate() error {
	var result *multierror.Error

	if strings.TrimSpace(o.Format) == "" {
		result = multierror.Append(result, fmt.Errorf("format selector is empty"))
	}
	if !strings.Contains(o.OutputTemplate, "%(ext)s") {
		result = multierror.Append(result, fmt.Errorf("output template %q must contain %%(ext)s", o.OutputTemplate))
	}
	if strings.ContainsAny(o.OutputTemplate, `/\`) {
		result = multierror.Append(result, fmt.Errorf("output template %q must not contain path separators", o.OutputTemplate))
	}
	if o.MergeFormat != "" && !isMergeFormat(o.MergeFormat) {
		result = multierror.Append(result, fmt.Errorf("unsupported merge format: %s", o.MergeFormat))
	}
	if o.Engine != EngineYTDLP && o.Engine != EngineNative {
		result = multierror.Append(result, fmt.Errorf("unknown engine: %s", o.Engine))
	}
	if o.ProgressInterval < 0 {
		result = multierror.Append(result, fmt.Errorf("progress interval must not be negative"))
	}

	return result.ErrorOrNil()
}

func isMergeFormat(format string) bool {
	for _, f := range MergeFormats {
		if f == format {
			return true
		}
	}
	return false
}
