// Package logging holds the process-wide logger.
package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// LogFile is where logs go while a full-screen terminal UI owns stdout/stderr
const LogFile = "minesweeper.log"

// Log is the shared logger. It writes to stderr at info level until Setup is called.
var Log = logrus.New()

// Setup sets the level and destination of Log.
// An unknown level leaves the logger at info and returns the parse error.
func Setup(level string, out io.Writer) error {
	Log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	if out != nil {
		Log.SetOutput(out)
	}

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		Log.SetLevel(logrus.InfoLevel)
		return err
	}
	Log.SetLevel(lvl)
	return nil
}

// ToFile redirects Log to path, returning the file so the caller can close it.
func ToFile(path string) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	Log.SetOutput(f)
	return f, nil
}
