package model

// ProgressStatus is the status tag carried by a progress event
type ProgressStatus string

const (
	ProgressStatusStarting       ProgressStatus = "starting"
	ProgressStatusDownloading    ProgressStatus = "downloading"
	ProgressStatusPostProcessing ProgressStatus = "post_processing"
	ProgressStatusFinished       ProgressStatus = "finished"
	ProgressStatusError          ProgressStatus = "error"
)

// ProgressEvent is a single progress callback from the extraction library.
// Events are consumed for display only and never retained.
type ProgressEvent struct {
	Status             ProgressStatus
	DownloadedBytes    int64
	TotalBytes         int64 // exact size, 0 if unknown
	TotalBytesEstimate int64 // estimated size, 0 if unknown
	Filename           string
}

// Total returns the exact total size, falling back to the estimate
func (e ProgressEvent) Total() int64 {
	if e.TotalBytes > 0 {
		return e.TotalBytes
	}
	return e.TotalBytesEstimate
}

// Fraction returns downloaded/total clamped to [0, 1]. The second value is
// false when no total size is known.
func (e ProgressEvent) Fraction() (float64, bool) {
	total := e.Total()
	if total <= 0 {
		return 0, false
	}

	fraction := float64(e.DownloadedBytes) / float64(total)
	if fraction < 0 {
		return 0, true
	}
	if fraction > 1 {
		return 1, true
	}
	return fraction, true
}
