package model

import "testing"

func TestSessionStatus_IsActive(t *testing.T) {
	tests := []struct {
		status   SessionStatus
		expected bool
	}{
		{SessionStatusIdle, false},
		{SessionStatusDownloading, true},
		{SessionStatusCompleted, false},
		{SessionStatusError, false},
	}

	for _, test := range tests {
		result := test.status.IsActive()
		if result != test.expected {
			t.Errorf("SessionStatus(%s).IsActive() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestSessionStatus_IsFinished(t *testing.T) {
	tests := []struct {
		status   SessionStatus
		expected bool
	}{
		{SessionStatusIdle, false},
		{SessionStatusDownloading, false},
		{SessionStatusCompleted, true},
		{SessionStatusError, true},
	}

	for _, test := range tests {
		result := test.status.IsFinished()
		if result != test.expected {
			t.Errorf("SessionStatus(%s).IsFinished() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestSessionStatus_String(t *testing.T) {
	status := SessionStatusDownloading
	expected := "Downloading"
	result := status.String()

	if result != expected {
		t.Errorf("SessionStatus.String() = %s, expected %s", result, expected)
	}
}
