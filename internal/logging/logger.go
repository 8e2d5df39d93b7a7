package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// New creates an application logger. The level comes from AT_LOG_LEVEL
// (logrus level names); it defaults to warn so normal CLI output stays clean.
// Setting AT_DEBUG forces debug level.
func New() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	level := logrus.WarnLevel
	if raw := os.Getenv("AT_LOG_LEVEL"); raw != "" {
		if parsed, err := logrus.ParseLevel(raw); err == nil {
			level = parsed
		}
	}
	if DebugEnabled() {
		level = logrus.DebugLevel
	}
	logger.SetLevel(level)

	return logger
}

// DebugEnabled returns true if debug mode is enabled via the AT_DEBUG
// environment variable.
func DebugEnabled() bool {
	return os.Getenv("AT_DEBUG") != ""
}
