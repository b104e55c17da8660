// Package ui contains the Fyne-based user interface: a URL entry, a start
// button gated by the session busy flag, the progress display, and the save
// action for the downloaded file. All UI strings are localized via
// Localization.
package ui
