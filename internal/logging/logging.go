package logging

import (
	"log"
	"os"
)

// Level represents the logging level
type Level int

const (
	LevelError Level = iota
	LevelWarn
	LevelInfo
	LevelDebug
)

var (
	level  = LevelInfo
	logger = log.New(os.Stderr, "", log.LstdFlags)
)

// SetLevel sets the global log level
func SetLevel(l Level) {
	level = l
}

// SetVerbose enables verbose (debug) logging
func SetVerbose(verbose bool) {
	if verbose {
		SetLevel(LevelDebug)
	} else {
		SetLevel(LevelInfo)
	}
}

// Errorf logs an error message
func Errorf(format string, args ...interface{}) {
	if level >= LevelError {
		logger.Printf("[ERROR] "+format, args...)
	}
}

// Warnf logs a warning message
func Warnf(format string, args ...interface{}) {
	if level >= LevelWarn {
		logger.Printf("[WARN] "+format, args...)
	}
}

// Infof logs an info message
func Infof(format string, args ...interface{}) {
	if level >= LevelInfo {
		logger.Printf("[INFO] "+format, args...)
	}
}

// Debugf logs a debug message
func Debugf(format string, args ...interface{}) {
	if level >= LevelDebug {
		logger.Printf("[DEBUG] "+format, args...)
	}
}
