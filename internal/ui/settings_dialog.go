package ui

import (
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/yt-quicksave/internal/config"
	"github.com/ytget/yt-quicksave/internal/model"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	formatEntry    *widget.Entry
	mergeSelect    *widget.Select
	engineSelect   *widget.Select
	languageSelect *widget.Select
	revealCheck    *widget.Check

	// language display name -> code
	languageCodes map[string]string
}

// ShowSettingsDialog builds and shows the settings dialog. onSaved runs
// after the new values have been stored.
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) *SettingsDialog {
	sd := NewSettingsDialog(settings, localization, window, onSaved)
	sd.Show()
	return sd
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	text := sd.localization.GetText

	sd.formatEntry = widget.NewEntry()
	sd.formatEntry.SetPlaceHolder(model.DefaultFormat)

	sd.mergeSelect = widget.NewSelect(sd.settings.GetMergeFormatOptions(), nil)
	sd.engineSelect = widget.NewSelect(sd.settings.GetEngineOptions(), nil)

	sd.languageCodes = make(map[string]string)
	var languageNames []string
	for code, name := range sd.settings.GetLanguageOptions() {
		sd.languageCodes[name] = code
		languageNames = append(languageNames, name)
	}
	sort.Strings(languageNames)
	sd.languageSelect = widget.NewSelect(languageNames, nil)

	sd.revealCheck = widget.NewCheck(text(KeyRevealAfterSave), nil)

	form := widget.NewForm(
		widget.NewFormItem(text(KeyFormat), sd.formatEntry),
		widget.NewFormItem(text(KeyMergeFormat), sd.mergeSelect),
		widget.NewFormItem(text(KeyEngine), sd.engineSelect),
		widget.NewFormItem(text(KeyLanguage), sd.languageSelect),
	)

	sd.dialog = dialog.NewCustomConfirm(
		text(KeySettings),
		text(KeySave),
		text(KeyCancel),
		container.NewVBox(form, sd.revealCheck),
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.formatEntry.SetText(sd.settings.GetFormat())
	sd.mergeSelect.SetSelected(sd.settings.GetMergeFormat())
	sd.engineSelect.SetSelected(sd.settings.GetEngine())
	sd.languageSelect.SetSelected(sd.settings.GetLanguageOptions()[sd.settings.GetLanguage()])
	sd.revealCheck.SetChecked(sd.settings.GetRevealAfterSave())
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	sd.settings.SetFormat(sd.formatEntry.Text)
	if sd.mergeSelect.Selected != "" {
		sd.settings.SetMergeFormat(sd.mergeSelect.Selected)
	}
	if sd.engineSelect.Selected != "" {
		sd.settings.SetEngine(sd.engineSelect.Selected)
	}
	if code, ok := sd.languageCodes[sd.languageSelect.Selected]; ok {
		sd.settings.SetLanguage(code)
	}
	sd.settings.SetRevealAfterSave(sd.revealCheck.Checked)

	if sd.onSaved != nil {
		sd.onSaved()
	}

	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)
}
