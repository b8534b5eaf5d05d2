// Package logging builds the shared structured logger.
package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options controls logger construction. Zero values give an info-level
// text logger on stderr.
type Options struct {
	// Level is a logrus level name. Empty falls back to the LOG_LEVEL
	// environment variable, then to "info".
	Level string

	// JSON switches the formatter to JSON for machine consumption.
	JSON bool

	// File, when set, sends output to a size-rotated file instead of
	// stderr.
	File string
}

// New constructs a logger from the options. An unparsable level name is
// not fatal; the logger starts at info and reports the bad value.
func New(opts Options) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(output(opts))

	if opts.JSON {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	name := opts.Level
	if name == "" {
		name = os.Getenv("LOG_LEVEL")
	}
	if name == "" {
		name = "info"
	}

	level, err := logrus.ParseLevel(name)
	if err != nil {
		log.SetLevel(logrus.InfoLevel)
		log.WithField("level", name).Warn("unknown log level, using info")
		return log
	}
	log.SetLevel(level)
	return log
}

func output(opts Options) io.Writer {
	if opts.File == "" {
		return os.Stderr
	}
	return &lumberjack.Logger{
		Filename:   opts.File,
		MaxSize:    50, // megabytes
		MaxBackups: 3,
		MaxAge:     14, // days
		Compress:   true,
	}
}
