package ui

import (
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// ProgressView renders relay updates as a progress bar and a markdown line
type ProgressView struct {
	bar  *widget.ProgressBar
	text *widget.RichText

	mu        sync.Mutex
	lastValue float64
	lastText  string
}

// NewProgressView creates an empty progress view
func NewProgressView() *ProgressView {
	return &ProgressView{
		bar:  widget.NewProgressBar(),
		text: widget.NewRichTextFromMarkdown(""),
	}
}

// SetProgress moves the bar; safe to call from any goroutine
func (v *ProgressView) SetProgress(fraction float64) {
	v.mu.Lock()
	v.lastValue = fraction
	v.mu.Unlock()

	fyne.Do(func() {
		v.bar.SetValue(fraction)
	})
}

// SetText replaces the progress text; safe to call from any goroutine
func (v *ProgressView) SetText(text string) {
	v.mu.Lock()
	v.lastText = text
	v.mu.Unlock()

	fyne.Do(func() {
		v.text.ParseMarkdown(text)
	})
}

// Value returns the last bar value
func (v *ProgressView) Value() float64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.lastValue
}

// Text returns the last progress text
func (v *ProgressView) Text() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.lastText
}

// Container returns the widgets laid out vertically
func (v *ProgressView) Container() fyne.CanvasObject {
	return container.NewVBox(v.bar, v.text)
}
