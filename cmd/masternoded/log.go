// Copyright (c) 2025 Shell Reserve developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"

	"github.com/btcsuite/btclog"
	"github.com/jrick/logrotate/rotator"
	"github.com/shellreserve/node/masternode"
)

// logRotator writes logs to stdout and a rotating file under LogDir,
// matching the split-writer pattern the chain daemons in this codebase
// use for their own subsystem loggers.
var logRotator *rotator.Rotator

// logWriter implements io.Writer so logs can fan out to both stdout and
// the rotator in a single backend.
type logWriter struct{}

func (logWriter) Write(p []byte) (int, error) {
	os.Stdout.Write(p)
	logRotator.Write(p)
	return len(p), nil
}

// initLogRotator initializes the rotating file logger under logDir.
func initLogRotator(logDir string) error {
	if err := os.MkdirAll(logDir, 0700); err != nil {
		return err
	}
	logFile := filepath.Join(logDir, defaultLogFilename)
	r, err := rotator.New(logFile, defaultMaxLogSize*1024, false, 3)
	if err != nil {
		return err
	}
	logRotator = r
	return nil
}

var backendLog = btclog.NewBackend(logWriter{})

var log = backendLog.Logger("MNCL")

// useLogLevels wires the btclog backend into every subsystem that exposes
// a UseLogger hook, at the requested level.
func useLogLevels(levelStr string) {
	level, ok := btclog.LevelFromString(levelStr)
	if !ok {
		level = btclog.LevelInfo
	}
	log.SetLevel(level)

	mnLog := backendLog.Logger("MNOD")
	mnLog.SetLevel(level)
	masternode.UseLogger(mnLog)
}
