package main

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	logFileName = "ring-tower.log"
	maxLogSize  = 10 * 1024 * 1024 // 10MB
)

// setupLogging routes slog and the standard logger into a size-rotated file under dir
// Terminal UI owns stdout and stderr, so without debug every log is discarded
// The returned file is nil when logging is disabled or the file cannot be opened
func setupLogging(dir string, debug bool) (*slog.Logger, *os.File) {
	discard := slog.New(slog.DiscardHandler)
	// slog.SetDefault redirects the standard logger, so its output is set afterwards
	slog.SetDefault(discard)
	log.SetOutput(io.Discard)
	if !debug {
		return discard, nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return discard, nil
	}

	logPath := filepath.Join(dir, logFileName)
	rotateLog(logPath)

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return discard, nil
	}

	logger := slog.New(slog.NewTextHandler(file, &slog.HandlerOptions{Level: slog.LevelDebug}))
	slog.SetDefault(logger)
	log.SetOutput(file)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	logger.Info("logging started", "pid", os.Getpid())
	return logger, file
}

// rotateLog renames an oversized log to a timestamped sibling
func rotateLog(logPath string) {
	info, err := os.Stat(logPath)
	if err != nil || info.Size() <= maxLogSize {
		return
	}
	base := strings.TrimSuffix(logPath, filepath.Ext(logPath))
	rotated := fmt.Sprintf("%s-%s.log", base, time.Now().Format("20060102-150405"))
	_ = os.Rename(logPath, rotated)
}
