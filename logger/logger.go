// Package logger provides leveled logging for the course-admin service.
package logger

import (
	"os"

	"github.com/op/go-logging"
)

const timeFormat = "2006/01/02 15:04:05"

var logger *logging.Logger

// InitLogger initializes the process logger with the given level.
func InitLogger(level logging.Level) {
	newLogger := logging.MustGetLogger("course-admin")

	backend := logging.NewLogBackend(os.Stderr, "", 0)
	format := logging.MustStringFormatter(`%{time:` + timeFormat + `} %{level} - %{message}`)
	backendFormatter := logging.NewBackendFormatter(backend, format)
	leveledBackend := logging.AddModuleLevel(backendFormatter)
	leveledBackend.SetLevel(level, "course-admin")

	newLogger.SetBackend(leveledBackend)
	logger = newLogger
}

func Debug(args ...any) {
	logger.Debug(args...)
}

func Debugf(format string, args ...any) {
	logger.Debugf(format, args...)
}

func Info(args ...any) {
	logger.Info(args...)
}

func Infof(format string, args ...any) {
	logger.Infof(format, args...)
}

func Notice(args ...any) {
	logger.Notice(args...)
}

func Noticef(format string, args ...any) {
	logger.Noticef(format, args...)
}

func Warning(args ...any) {
	logger.Warning(args...)
}

func Warningf(format string, args ...any) {
	logger.Warningf(format, args...)
}

func Error(args ...any) {
	logger.Error(args...)
}

func Errorf(format string, args ...any) {
	logger.Errorf(format, args...)
}
