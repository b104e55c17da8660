package download

import (
	"context"
	"fmt"

	"github.com/ytget/yt-quicksave/internal/model"
)

// ExtractorConfig selects and tunes an extraction engine
type ExtractorConfig struct {
	Engine      string
	AutoInstall bool // yt-dlp only
}

// NewExtractor returns the extractor for cfg.Engine
func NewExtractor(cfg ExtractorConfig) (Extractor, error) {
	switch cfg.Engine {
	case model.EngineYTDLP, "":
		return NewYTDLPExtractor(cfg.AutoInstall), nil
	case model.EngineNative:
		return NewNativeExtractor(DefaultNativeClientConfig()), nil
	default:
		return nil, fmt.Errorf("unknown engine: %s", cfg.Engine)
	}
}

// ExtractorFunc adapts a function to the Extractor interface
type ExtractorFunc func(ctx context.Context, req Request) error

// Extract calls f
func (f ExtractorFunc) Extract(ctx context.Context, req Request) error {
	return f(ctx, req)
}
