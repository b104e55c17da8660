// Package progress relays extractor progress events to a display.
package progress

import (
	"fmt"
	"sync"

	"github.com/ytget/yt-quicksave/internal/model"
)

// Display texts
const (
	PercentTextFormat = "📦 **Download Progress: %.2f%%**"
	FinishedText      = "✅ **Download complete. Preparing download...**"
)

// View is whatever renders the progress: widgets in the UI, a bar in the
// terminal.
type View interface {
	// SetProgress sets the bar position in [0, 1]
	SetProgress(fraction float64)
	// SetText sets the text shown next to the bar (markdown)
	SetText(text string)
}

// Relay converts progress events into View updates. The shown percentage is
// clamped to 100% and never goes backwards for the same file.
type Relay struct {
	view View

	mu       sync.Mutex
	filename string
	last     float64
}

// NewRelay creates a relay writing to view
func NewRelay(view View) *Relay {
	return &Relay{view: view}
}

// Handle processes one progress event. Events with an unknown total size
// are skipped.
func (r *Relay) Handle(ev model.ProgressEvent) {
	switch ev.Status {
	case model.ProgressStatusDownloading:
		fraction, known := ev.Fraction()
		if !known {
			return
		}

		r.mu.Lock()
		if ev.Filename != r.filename {
			r.filename = ev.Filename
			r.last = 0
		}
		if fraction < r.last {
			fraction = r.last
		}
		r.last = fraction
		r.mu.Unlock()

		r.view.SetProgress(fraction)
		r.view.SetText(PercentText(fraction))
	case model.ProgressStatusFinished:
		r.view.SetText(FinishedText)
	}
}

// Reset clears per-attempt state and empties the view
func (r *Relay) Reset() {
	r.mu.Lock()
	r.filename = ""
	r.last = 0
	r.mu.Unlock()

	r.view.SetProgress(0)
	r.view.SetText("")
}

// PercentText formats a fraction as the progress text
func PercentText(fraction float64) string {
	return fmt.Sprintf(PercentTextFormat, fraction*100)
}
