// Package log routes diagnostics to a dated file under where.Logs. Output is discarded unless logs.write is set.
package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/mediabar/mediabar/filesystem"
	"github.com/mediabar/mediabar/key"
	"github.com/mediabar/mediabar/where"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

var (
	logger = newDiscardLogger()
	file   io.Closer
)

func newDiscardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.PanicLevel)
	return l
}

// Setup replaces the discarding logger with one appending to today's file.
func Setup() error {
	_ = Close()

	if !viper.GetBool(key.LogsWrite) {
		return nil
	}

	path := filepath.Join(where.Logs(), Filename(time.Now()))
	f, err := filesystem.API().OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file %s: %w", path, err)
	}

	l := logrus.New()
	l.SetOutput(f)
	l.SetLevel(level(viper.GetString(key.LogsLevel)))
	if viper.GetBool(key.LogsJson) {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	}

	logger, file = l, f
	return nil
}

// Close releases the log file. Later messages are discarded.
func Close() error {
	if file == nil {
		return nil
	}

	err := file.Close()
	logger, file = newDiscardLogger(), nil
	return err
}

func level(name string) logrus.Level {
	parsed, err := logrus.ParseLevel(name)
	if err != nil {
		return logrus.InfoLevel
	}
	return parsed
}

// Filename is the name of the log file for the given day.
func Filename(day time.Time) string {
	return day.Format("2006-01-02") + ".log"
}

// Enabled reports whether log output is being written.
func Enabled() bool {
	return file != nil
}

func Error(args ...any)                 { logger.Error(args...) }
func Errorf(format string, args ...any) { logger.Errorf(format, args...) }
func Warn(args ...any)                  { logger.Warn(args...) }
func Warnf(format string, args ...any)  { logger.Warnf(format, args...) }
func Info(args ...any)                  { logger.Info(args...) }
func Infof(format string, args ...any)  { logger.Infof(format, args...) }
func Debug(args ...any)                 { logger.Debug(args...) }
func Debugf(format string, args ...any) { logger.Debugf(format, args...) }
func Trace(args ...any)                 { logger.Trace(args...) }
func Tracef(format string, args ...any) { logger.Tracef(format, args...) }
