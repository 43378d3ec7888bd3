package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
)

const (
	logDir      = "logs"
	logFileName = "pinball-term.log"
)

// logger carries lifecycle messages; the screen owns stdout
var logger = log.New(io.Discard, "", log.LstdFlags)

// setupLogging sends log output to logs/pinball-term.log when debug is set
// and discards it otherwise. The returned file is nil when logging is off.
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		logger.SetOutput(io.Discard)
		return nil
	}
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		log.SetOutput(io.Discard)
		logger.SetOutput(io.Discard)
		return nil
	}
	f, err := os.OpenFile(filepath.Join(logDir, logFileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.SetOutput(io.Discard)
		logger.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(f)
	logger.SetOutput(f)
	return f
}
