package model

// SessionStatus represents the state of the current download attempt
type SessionStatus string

const (
	// SessionStatusIdle means no attempt has been made yet
	SessionStatusIdle SessionStatus = "Idle"

	// SessionStatusDownloading means an attempt is in flight
	SessionStatusDownloading SessionStatus = "Downloading"

	// SessionStatusCompleted means the last attempt produced a result
	SessionStatusCompleted SessionStatus = "Completed"

	// SessionStatusError means the last attempt failed
	SessionStatusError SessionStatus = "Error"
)

// String returns the string representation of SessionStatus
func (s SessionStatus) String() string {
	return string(s)
}

// IsActive returns true while an attempt is running
func (s SessionStatus) IsActive() bool {
	return s == SessionStatusDownloading
}

// IsFinished returns true if the last attempt ended (completed or error)
func (s SessionStatus) IsFinished() bool {
	return s == SessionStatusCompleted || s == SessionStatusError
}
