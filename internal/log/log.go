// Package log provides structured logging for look-to-point.
// It wraps logrus with sensible defaults so the application and the ROS
// transport write through one formatter.
package log

import (
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	logger *logrus.Logger
	once   sync.Once
)

// Init initializes the global logger with the specified level.
// Valid levels: "debug", "info", "warn", "error"
func Init(level string) {
	once.Do(func() {
		logger = logrus.New()
		logger.SetOutput(os.Stdout)

		switch level {
		case "debug":
			logger.SetLevel(logrus.DebugLevel)
		case "warn":
			logger.SetLevel(logrus.WarnLevel)
		case "error":
			logger.SetLevel(logrus.ErrorLevel)
		default:
			logger.SetLevel(logrus.InfoLevel)
		}

		// Use JSON in production, text in development
		if os.Getenv("GO_ENV") == "production" {
			logger.SetFormatter(&logrus.JSONFormatter{})
		}
	})
}

// L returns the global logger instance.
func L() *logrus.Logger {
	if logger == nil {
		Init("info")
	}
	return logger
}

// Debug logs at debug level.
func Debug(args ...interface{}) {
	L().Debug(args...)
}

// Info logs at info level.
func Info(args ...interface{}) {
	L().Info(args...)
}

// Warn logs at warn level.
func Warn(args ...interface{}) {
	L().Warn(args...)
}

// Error logs at error level.
func Error(args ...interface{}) {
	L().Error(args...)
}

// With returns an entry with the given fields attached.
func With(fields logrus.Fields) *logrus.Entry {
	return L().WithFields(fields)
}

// Component returns an entry tagged with a component name.
func Component(name string) *logrus.Entry {
	return L().WithField("component", name)
}
