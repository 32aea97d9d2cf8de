// ABOUTME: logrus-backed implementation of the core Logger interface
// ABOUTME: Writes JSON or text to stdout, optionally tee'd into a lumberjack-rotated file

package structured

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures a Logger.
type Options struct {
	Level  string // debug, info, warn, error
	Format string // json or text
	File   string // rotated log file; empty logs to stdout only

	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// Logger implements interfaces.Logger on a logrus.Logger.
type Logger struct {
	entry  *logrus.Logger
	rotate *lumberjack.Logger
}

// New builds a Logger from opts.
func New(opts Options) *Logger {
	log := logrus.New()
	log.SetLevel(parseLevel(opts.Level))

	if strings.EqualFold(opts.Format, "text") {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		log.SetFormatter(&logrus.JSONFormatter{})
	}

	l := &Logger{entry: log}
	if opts.File != "" {
		l.rotate = &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    orDefault(opts.MaxSizeMB, 100),
			MaxBackups: orDefault(opts.MaxBackups, 3),
			MaxAge:     orDefault(opts.MaxAgeDays, 28),
			Compress:   true,
		}
		log.SetOutput(io.MultiWriter(os.Stdout, l.rotate))
	} else {
		log.SetOutput(os.Stdout)
	}
	return l
}

// NewWithWriter logs JSON to w. Used by tests.
func NewWithWriter(w io.Writer, level string) *Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetLevel(parseLevel(level))
	log.SetFormatter(&logrus.JSONFormatter{})
	return &Logger{entry: log}
}

func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.entry.WithFields(logrus.Fields(fields)).Debug(msg)
}

func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.entry.WithFields(logrus.Fields(fields)).Info(msg)
}

func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	l.entry.WithFields(logrus.Fields(fields)).Warn(msg)
}

func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.entry.WithFields(logrus.Fields(fields)).Error(msg)
}

// Close flushes and closes the rotated log file, if any.
func (l *Logger) Close() error {
	if l.rotate == nil {
		return nil
	}
	return l.rotate.Close()
}

func parseLevel(level string) logrus.Level {
	parsed, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return logrus.InfoLevel
	}
	return parsed
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
