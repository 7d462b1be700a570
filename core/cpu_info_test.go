package core

import "testing"

// LogCPUFeatures must never panic, regardless of what the host CPU supports.
func TestLogCPUFeaturesDoesNotPanic(t *testing.T) {
	LogCPUFeatures()
}
