package download

import (
	"errors"
	"strings"
)

// ErrorMarker prefixes every download error message
const ErrorMarker = "ERROR::"

var (
	ErrNoFileDownloaded = errors.New("No file downloaded")
	ErrEmptyURL         = errors.New("URL is empty")
)

// Error is returned by Service.Download for every failure. Its message is
// the cause prefixed with ErrorMarker; the cause stays reachable through
// errors.Is and errors.As.
type Error struct {
	Err error
}

func (e *Error) Error() string {
	return ErrorMarker + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Message returns the error text without the marker
func Message(err error) string {
	if err == nil {
		return ""
	}
	return strings.TrimPrefix(err.Error(), ErrorMarker)
}
