package logging

import "testing"

func TestSetVerbose(t *testing.T) {
	t.Cleanup(func() { SetLevel(LevelInfo) })

	SetVerbose(true)
	if level != LevelDebug {
		t.Errorf("level after SetVerbose(true) = %v, want %v", level, LevelDebug)
	}

	SetVerbose(false)
	if level != LevelInfo {
		t.Errorf("level after SetVerbose(false) = %v, want %v", level, LevelInfo)
	}
}

func TestSetLevel(t *testing.T) {
	t.Cleanup(func() { SetLevel(LevelInfo) })

	SetLevel(LevelError)
	if level != LevelError {
		t.Errorf("level = %v, want %v", level, LevelError)
	}
}
