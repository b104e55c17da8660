package config

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/yt-quicksave/internal/model"
	"github.com/ytget/yt-quicksave/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyFormat          = "format_selector"
	KeyMergeFormat     = "merge_output_format"
	KeyEngine          = "extraction_engine"
	KeyLanguage        = "app_language"
	KeyRevealAfterSave = "reveal_after_save"
	KeyLastSaveDir     = "last_save_directory"
)

// Default values
const (
	DefaultLanguage        = "system"
	DefaultRevealAfterSave = false
)

// Settings manages persisted user preferences
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetFormat returns the yt-dlp format selector
func (s *Settings) GetFormat() string {
	return s.app.Preferences().StringWithFallback(KeyFormat, model.DefaultFormat)
}

// SetFormat sets the format selector; empty restores the default
func (s *Settings) SetFormat(format string) {
	if format == "" {
		format = model.DefaultFormat
	}
	s.app.Preferences().SetString(KeyFormat, format)
}

// GetMergeFormat returns the container used when merging streams
func (s *Settings) GetMergeFormat() string {
	return s.app.Preferences().StringWithFallback(KeyMergeFormat, model.DefaultMergeFormat)
}

// SetMergeFormat sets the merge container
func (s *Settings) SetMergeFormat(format string) {
	s.app.Preferences().SetString(KeyMergeFormat, format)
}

// GetEngine returns the extraction engine name
func (s *Settings) GetEngine() string {
	engine := s.app.Preferences().String(KeyEngine)
	if engine != model.EngineYTDLP && engine != model.EngineNative {
		return model.DefaultEngine
	}
	return engine
}

// SetEngine sets the extraction engine
func (s *Settings) SetEngine(engine string) {
	s.app.Preferences().SetString(KeyEngine, engine)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	return s.app.Preferences().StringWithFallback(KeyLanguage, DefaultLanguage)
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetRevealAfterSave returns whether to reveal saved files in the file manager
func (s *Settings) GetRevealAfterSave() bool {
	return s.app.Preferences().BoolWithFallback(KeyRevealAfterSave, DefaultRevealAfterSave)
}

// SetRevealAfterSave sets whether to reveal saved files in the file manager
func (s *Settings) SetRevealAfterSave(reveal bool) {
	s.app.Preferences().SetBool(KeyRevealAfterSave, reveal)
}

// GetLastSaveDirectory returns where the save dialog opens. Defaults to the
// user's Downloads directory.
func (s *Settings) GetLastSaveDirectory() string {
	dir := s.app.Preferences().String(KeyLastSaveDir)
	if dir != "" {
		return dir
	}
	defaultDir, err := platform.GetHomeDownloadsDir()
	if err != nil {
		return ""
	}
	return defaultDir
}

// SetLastSaveDirectory remembers the directory of the last saved file
func (s *Settings) SetLastSaveDirectory(dir string) {
	s.app.Preferences().SetString(KeyLastSaveDir, dir)
}

// GetDownloadOptions returns the extraction options built from preferences
// on top of base, which carries the process-level defaults
func (s *Settings) GetDownloadOptions(base model.DownloadOptions) model.DownloadOptions {
	opts := base
	opts.Format = s.GetFormat()
	opts.MergeFormat = s.GetMergeFormat()
	opts.Engine = s.GetEngine()
	return opts
}

// GetEngineOptions returns available extraction engines
func (s *Settings) GetEngineOptions() []string {
	return []string{model.EngineYTDLP, model.EngineNative}
}

// GetMergeFormatOptions returns available merge containers
func (s *Settings) GetMergeFormatOptions() []string {
	return append([]string(nil), model.MergeFormats...)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
