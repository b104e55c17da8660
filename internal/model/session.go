package model

import "sync"

// Session holds the state of one UI session: a busy flag gating the start
// action and the outcome of the last attempt. All outcome fields are cleared
// when a new attempt begins.
type Session struct {
	mu      sync.RWMutex
	status  SessionStatus
	url     string
	result  *Result
	message string
	err     error
}

// NewSession creates an idle session
func NewSession() *Session {
	return &Session{status: SessionStatusIdle}
}

// Begin marks an attempt for url as in flight and clears the previous
// outcome. It returns false without changing anything if an attempt is
// already running.
func (s *Session) Begin(url string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status.IsActive() {
		return false
	}

	s.status = SessionStatusDownloading
	s.url = url
	s.result = nil
	s.message = ""
	s.err = nil
	return true
}

// Complete stores the result of the running attempt and clears the busy flag
func (s *Session) Complete(result *Result, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.status = SessionStatusCompleted
	s.result = result
	s.message = message
	s.err = nil
}

// Fail stores the error of the running attempt and clears the busy flag
func (s *Session) Fail(err error, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.status = SessionStatusError
	s.result = nil
	s.message = message
	s.err = err
}

// Busy reports whether an attempt is in flight
func (s *Session) Busy() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status.IsActive()
}

// Status returns the session status
func (s *Session) Status() SessionStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

// URL returns the URL of the current or last attempt
func (s *Session) URL() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.url
}

// Result returns the last successful result, or nil
func (s *Session) Result() *Result {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.result
}

// Message returns the user-facing message of the last attempt
func (s *Session) Message() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.message
}

// Err returns the error of the last attempt, or nil
func (s *Session) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}
