// Package logging provides the process-wide structured logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

const defaultLogFile = "dungeonsight.log"

// Log is the process logger. It discards output until Init is called so that
// library code and tests stay quiet.
var Log = newDiscard()

// Init configures Log from the environment.
//
//   - LOG_LEVEL: logrus level name, "info" by default
//   - LOG_FORMAT: "json" for JSON lines, anything else for text
//   - LOG_FILE: path to append to, "dungeonsight.log" by default; "-" for stderr
//
// The returned closer releases the log file, if one was opened.
func Init() (io.Closer, error) {
	logger := logrus.New()

	level, err := logrus.ParseLevel(getenvDefault("LOG_LEVEL", "info"))
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	var closer io.Closer = nopCloser{}
	if path := getenvDefault("LOG_FILE", defaultLogFile); path == "-" {
		logger.SetOutput(os.Stderr)
	} else {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		logger.SetOutput(f)
		closer = f
	}

	Log = logger
	return closer, nil
}

// For returns an entry tagged with the given component name.
func For(component string) *logrus.Entry {
	return Log.WithField("component", component)
}

func newDiscard() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func getenvDefault(key, def string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return def
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
