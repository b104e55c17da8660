package model

import "fmt"

// Result is a downloaded file held in memory until the user saves it
type Result struct {
	Name     string // base file name
	Data     []byte
	MIMEType string
}

// Size returns the payload size in bytes
func (r *Result) Size() int64 {
	if r == nil {
		return 0
	}
	return int64(len(r.Data))
}

// String returns a short description used in logs
func (r *Result) String() string {
	if r == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s (%s, %d bytes)", r.Name, r.MIMEType, len(r.Data))
}
