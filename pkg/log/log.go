// Package log provides the Logger used throughout the emulator core. Loggers
// are always passed in explicitly; there is no package level instance.
package log

import (
	"io"

	"github.com/sirupsen/logrus"
)

// CategoryKey is the field under which a logger's category is recorded.
const CategoryKey = "category"

// Logger is implemented by anything the core can report to.
type Logger interface {
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})

	// WithCategory returns a Logger that tags every entry with the
	// given category, e.g. "cpu" or "mmu".
	WithCategory(category string) Logger
}

// Options configures a logrus backed Logger.
type Options struct {
	Output io.Writer
	Level  logrus.Level
	Colors bool
}

type logger struct {
	entry *logrus.Entry
}

// New returns a Logger backed by logrus.
func New(opts Options) Logger {
	l := logrus.New()
	if opts.Output != nil {
		l.SetOutput(opts.Output)
	}
	if opts.Level == 0 {
		opts.Level = logrus.InfoLevel
	}
	l.SetLevel(opts.Level)
	l.Formatter = &logrus.TextFormatter{
		DisableColors:    !opts.Colors,
		ForceColors:      opts.Colors,
		DisableTimestamp: true,
		DisableSorting:   true,
		DisableQuote:     true,
	}

	return FromLogrus(l)
}

// FromLogrus wraps an existing logrus logger.
func FromLogrus(l *logrus.Logger) Logger {
	return &logger{entry: logrus.NewEntry(l)}
}

func (l *logger) Infof(format string, args ...interface{}) {
	l.entry.Infof(format, args...)
}

func (l *logger) Errorf(format string, args ...interface{}) {
	l.entry.Errorf(format, args...)
}

func (l *logger) Debugf(format string, args ...interface{}) {
	l.entry.Debugf(format, args...)
}

func (l *logger) WithCategory(category string) Logger {
	return &logger{entry: l.entry.WithField(CategoryKey, category)}
}
