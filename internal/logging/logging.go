// Package logging configures the process-wide logrus logger and hands out
// entries tagged with the calling package and function.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

// Options controls where and how much is logged.
type Options struct {
	Level string // logrus level name; empty means "warn"
	File  string // optional log file, rotated by size
	JSON  bool
}

// Setup applies opts to the standard logrus logger. It returns a closer for
// the log file, if any.
func Setup(opts Options) (io.Closer, error) {
	level := logrus.WarnLevel
	if opts.Level != "" {
		l, err := logrus.ParseLevel(opts.Level)
		if err != nil {
			return nil, fmt.Errorf("log level: %w", err)
		}
		level = l
	}
	logrus.SetLevel(level)

	if opts.JSON {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: opts.File == ""})
	}

	if opts.File == "" {
		logrus.SetOutput(os.Stderr)
		return io.NopCloser(nil), nil
	}
	lj := &lumberjack.Logger{
		Filename:   opts.File,
		MaxSize:    5, // megabytes
		MaxBackups: 3,
		LocalTime:  true,
	}
	logrus.SetOutput(lj)
	return lj, nil
}

// For returns an entry carrying the package and function fields.
func For(pkg, function string) *logrus.Entry {
	return logrus.WithFields(logrus.Fields{
		"package":  pkg,
		"function": function,
	})
}
