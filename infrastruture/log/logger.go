// Package logger provides colored, prefixed leveled loggers built on logrus.
package logger

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/beka-birhanu/dfs-maze/config"
	"github.com/sirupsen/logrus"
)

const timeFormat = "2006/01/02 15:04:05"

var (
	ErrEmptyPrefix = errors.New("logger prefix is empty")
	ErrNilWriter   = errors.New("logger writer is nil")
)

// Logger writes messages as "<time> [PREFIX] [LEVEL] message", with the
// prefix painted in the logger's color.
type Logger struct {
	entry *logrus.Entry
}

// prefixFormatter renders logrus entries in the application's line format.
type prefixFormatter struct {
	prefix string
	color  string
}

// New creates a Logger that tags every line with prefix in the given color.
func New(prefix, color string, w io.Writer) (*Logger, error) {
	if prefix == "" {
		return nil, ErrEmptyPrefix
	}
	if w == nil {
		return nil, ErrNilWriter
	}

	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(logrus.InfoLevel)
	l.SetFormatter(&prefixFormatter{prefix: prefix, color: color})

	return &Logger{entry: logrus.NewEntry(l)}, nil
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.entry.Info(msg)
}

// Warning logs a recoverable problem.
func (l *Logger) Warning(msg string) {
	l.entry.Warn(msg)
}

// Error logs a failure.
func (l *Logger) Error(msg string) {
	l.entry.Error(msg)
}

// Format implements logrus.Formatter.
func (f *prefixFormatter) Format(e *logrus.Entry) ([]byte, error) {
	var b bytes.Buffer
	fmt.Fprintf(&b, "%s %s[%s]%s [%s] %s",
		e.Time.Format(timeFormat),
		f.color, f.prefix, config.ColorReset,
		strings.ToUpper(e.Level.String()),
		e.Message,
	)
	b.WriteByte('\n')
	return b.Bytes(), nil
}
