package ui

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
	"github.com/dustin/go-humanize"
	"github.com/hashicorp/go-multierror"
	"go.uber.org/zap"

	"github.com/ytget/yt-quicksave/internal/config"
	"github.com/ytget/yt-quicksave/internal/download"
	"github.com/ytget/yt-quicksave/internal/model"
	"github.com/ytget/yt-quicksave/internal/platform"
	"github.com/ytget/yt-quicksave/internal/progress"
)

// ExtractorFactory builds the extractor for an engine name
type ExtractorFactory func(engine string) (download.Extractor, error)

// Options configures the root UI
type Options struct {
	// BaseOptions carries process-level download defaults; user preferences
	// are layered on top
	BaseOptions model.DownloadOptions

	// NewExtractor rebuilds the extractor when the engine setting changes.
	// Nil keeps the downloader's current extractor.
	NewExtractor ExtractorFactory
}

// RootUI represents the main UI structure
type RootUI struct {
	ctx          context.Context
	window       fyne.Window
	downloadSvc  download.Downloader
	settings     *config.Settings
	localization *Localization
	session      *model.Session
	options      Options
	log          *zap.SugaredLogger

	titleLabel   *widget.Label
	introLabel   *widget.Label
	urlEntry     *widget.Entry
	downloadBtn  *widget.Button
	progressView *ProgressView
	relay        *progress.Relay
	messageLabel *widget.Label
	saveBtn      *widget.Button
}

// NewRootUI creates and initializes the main UI. ctx bounds every download
// started from this window.
func NewRootUI(ctx context.Context, window fyne.Window, app fyne.App, downloadSvc download.Downloader, options Options) *RootUI {
	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		ctx:          ctx,
		window:       window,
		downloadSvc:  downloadSvc,
		settings:     settings,
		localization: localization,
		session:      model.NewSession(),
		options:      options,
		log:          zap.S().Named("ui"),
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.titleLabel = widget.NewLabel(ui.localization.GetText(KeyAppTitle))
	ui.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	ui.introLabel = widget.NewLabel(ui.localization.GetText(KeyIntro))

	ui.urlEntry = widget.NewEntry()
	ui.urlEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterURL))
	ui.urlEntry.Validator = validateURL
	ui.urlEntry.OnChanged = ui.onURLChanged
	ui.urlEntry.OnSubmitted = func(string) {
		ui.onDownloadClick()
	}

	// Shown only once a URL has been entered
	ui.downloadBtn = widget.NewButton(ui.localization.GetText(KeyStartDownload), ui.onDownloadClick)
	ui.downloadBtn.Importance = widget.HighImportance
	ui.downloadBtn.Hide()

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	ui.progressView = NewProgressView()
	ui.relay = progress.NewRelay(ui.progressView)

	ui.messageLabel = widget.NewLabel("")
	ui.messageLabel.Wrapping = fyne.TextWrapWord

	ui.saveBtn = widget.NewButton(ui.localization.GetText(KeySaveVideo), ui.onSaveClick)
	ui.saveBtn.Hide()

	header := container.NewBorder(nil, nil, nil, settingsBtn, ui.titleLabel)

	content := container.NewVBox(
		header,
		ui.introLabel,
		ui.urlEntry,
		ui.downloadBtn,
		ui.progressView.Container(),
		ui.messageLabel,
		ui.saveBtn,
	)

	ui.window.SetContent(container.NewPadded(content))
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	))
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.titleLabel.SetText(ui.localization.GetText(KeyAppTitle))
	ui.introLabel.SetText(ui.localization.GetText(KeyIntro))
	ui.urlEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterURL))
	ui.downloadBtn.SetText(ui.localization.GetText(KeyStartDownload))
	ui.saveBtn.SetText(ui.localization.GetText(KeySaveVideo))
}

// validateURL validates the entered URL
func validateURL(input string) error {
	if strings.TrimSpace(input) == "" {
		return nil // Empty is allowed
	}

	parsedURL, err := url.Parse(strings.TrimSpace(input))
	if err != nil {
		return err
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return fmt.Errorf("URL must start with http:// or https://")
	}

	return nil
}

// onURLChanged shows the start button only while the entry is non-empty
func (ui *RootUI) onURLChanged(text string) {
	if strings.TrimSpace(text) == "" {
		ui.downloadBtn.Hide()
		return
	}
	ui.downloadBtn.Show()
}

// onDownloadClick handles the start button. The download runs on its own
// goroutine; the button stays disabled until it returns.
func (ui *RootUI) onDownloadClick() {
	urlText := strings.TrimSpace(ui.urlEntry.Text)
	if urlText == "" {
		return
	}

	if err := validateURL(urlText); err != nil {
		ui.setMessage(IconError+" "+ui.localization.GetText(KeyInvalidURL)+": "+err.Error(), widget.DangerImportance)
		return
	}

	if !ui.session.Begin(urlText) {
		ui.log.Debugw("Ignoring start while busy", "url", urlText)
		ui.setMessage(ui.localization.GetText(KeyAlreadyDownloading), widget.WarningImportance)
		return
	}

	ui.downloadBtn.Disable()
	ui.saveBtn.Hide()
	ui.setMessage("", widget.MediumImportance)
	ui.relay.Reset()

	go ui.runDownload(urlText)
}

// runDownload performs one attempt and posts the outcome back to the UI
func (ui *RootUI) runDownload(urlText string) {
	result, err := ui.downloadSvc.Download(ui.ctx, urlText, ui.relay.Handle)
	fyne.Do(func() {
		ui.finishDownload(result, err)
	})
}

// finishDownload records the outcome and re-enables the start button
func (ui *RootUI) finishDownload(result *model.Result, err error) {
	defer ui.downloadBtn.Enable()

	if err != nil {
		msg := IconError + " " + download.Message(err)
		ui.session.Fail(err, msg)
		ui.setMessage(msg, widget.DangerImportance)
		return
	}

	msg := fmt.Sprintf("%s (%s, %s)",
		ui.localization.GetText(KeyDownloadSucceeded), result.Name, humanize.Bytes(uint64(result.Size())))
	ui.session.Complete(result, msg)
	ui.setMessage(msg, widget.SuccessImportance)
	ui.saveBtn.Show()
}

// setMessage shows the success/error line under the progress display
func (ui *RootUI) setMessage(text string, importance widget.Importance) {
	ui.messageLabel.Importance = importance
	ui.messageLabel.SetText(text)
}

// onSaveClick opens a save dialog for the current result
func (ui *RootUI) onSaveClick() {
	result := ui.session.Result()
	if result == nil {
		return
	}

	saveDialog := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, ui.window)
			return
		}
		if writer == nil {
			return // cancelled
		}
		ui.saveResult(writer, result)
	}, ui.window)

	saveDialog.SetFileName(result.Name)
	if result.MIMEType != "" {
		saveDialog.SetFilter(storage.NewMimeTypeFileFilter([]string{result.MIMEType}))
	}
	if dir := ui.settings.GetLastSaveDirectory(); dir != "" {
		if lister, err := storage.ListerForURI(storage.NewFileURI(dir)); err == nil {
			saveDialog.SetLocation(lister)
		}
	}
	saveDialog.Show()
}

// saveResult writes the payload to the chosen location
func (ui *RootUI) saveResult(writer fyne.URIWriteCloser, result *model.Result) {
	path := writer.URI().Path()

	if err := writeResult(writer, result); err != nil {
		ui.log.Errorw("Failed to save file", "path", path, "error", err)
		ui.setMessage(IconError+" "+ui.localization.GetText(KeyErrorSavingFile)+": "+err.Error(), widget.DangerImportance)
		return
	}

	ui.log.Infow("Saved file", "path", path, "size", result.Size(), "mime", result.MIMEType)
	ui.settings.SetLastSaveDirectory(filepath.Dir(path))
	ui.setMessage(IconSuccess+" "+fmt.Sprintf(ui.localization.GetText(KeySavedTo), path), widget.SuccessImportance)

	if ui.settings.GetRevealAfterSave() {
		go func() {
			if err := platform.OpenFileInManager(path); err != nil {
				ui.log.Warnw("Failed to reveal file", "path", path, "error", err)
			}
		}()
	}
}

// writeResult writes the exact payload and closes w
func writeResult(w io.WriteCloser, result *model.Result) error {
	var errs *multierror.Error
	if _, err := w.Write(result.Data); err != nil {
		errs = multierror.Append(errs, fmt.Errorf("write failed: %w", err))
	}
	if err := w.Close(); err != nil {
		errs = multierror.Append(errs, fmt.Errorf("close failed: %w", err))
	}
	return errs.ErrorOrNil()
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, ui.onSettingsSaved)
}

// onSettingsSaved applies new preferences to the downloader and texts
func (ui *RootUI) onSettingsSaved() {
	ui.applySettings()
	ui.localization.SetLanguage(ui.settings.GetLanguage())
	ui.refreshUITexts()
	ui.createMenu()
}

// applySettings pushes current preferences into the downloader
func (ui *RootUI) applySettings() {
	opts := ui.settings.GetDownloadOptions(ui.options.BaseOptions)
	if err := opts.Validate(); err != nil {
		ui.log.Warnw("Ignoring invalid settings", "error", err)
		ui.setMessage(IconError+" "+err.Error(), widget.DangerImportance)
		return
	}

	if ui.options.NewExtractor == nil {
		return
	}
	extractor, err := ui.options.NewExtractor(opts.Engine)
	if err != nil {
		ui.setMessage(IconError+" "+err.Error(), widget.DangerImportance)
		return
	}
	ui.downloadSvc.Configure(extractor, opts)
	ui.log.Infow("Applied settings", "engine", opts.Engine, "format", opts.Format, "merge_format", opts.MergeFormat)
}

// Session returns the session state backing this window
func (ui *RootUI) Session() *model.Session {
	return ui.session
}
