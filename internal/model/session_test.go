package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSession_BeginGatesConcurrentAttempts(t *testing.T) {
	s := NewSession()
	assert.Equal(t, SessionStatusIdle, s.Status())
	assert.False(t, s.Busy())

	assert.True(t, s.Begin("https://example.com/a"))
	assert.True(t, s.Busy())
	assert.False(t, s.Begin("https://example.com/b"), "second attempt must be refused while busy")
	assert.Equal(t, "https://example.com/a", s.URL())
}

func TestSession_CompleteAndFailClearBusy(t *testing.T) {
	s := NewSession()

	s.Begin("https://example.com/a")
	result := &Result{Name: "a.mp4", Data: []byte("abc")}
	s.Complete(result, "done")
	assert.False(t, s.Busy())
	assert.Equal(t, SessionStatusCompleted, s.Status())
	assert.Same(t, result, s.Result())
	assert.Equal(t, "done", s.Message())

	s.Begin("https://example.com/b")
	assert.Nil(t, s.Result(), "previous result must be cleared on a new attempt")
	assert.Empty(t, s.Message())

	boom := errors.New("boom")
	s.Fail(boom, "failed")
	assert.False(t, s.Busy())
	assert.Equal(t, SessionStatusError, s.Status())
	assert.Nil(t, s.Result())
	assert.ErrorIs(t, s.Err(), boom)
}

func TestResult_Helpers(t *testing.T) {
	var nilResult *Result
	assert.Zero(t, nilResult.Size())
	assert.Equal(t, "<nil>", nilResult.String())

	r := &Result{Name: "My Video.webm", Data: make([]byte, 42), MIMEType: "video/webm"}
	assert.EqualValues(t, 42, r.Size())
	assert.Equal(t, "My Video.webm (video/webm, 42 bytes)", r.String())
}
