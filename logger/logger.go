package logger

import (
	"github.com/sirupsen/logrus"
)

// New builds the app logger. Unknown levels fall back to info rather than
// failing startup.
func New(logLevel string) *logrus.Logger {
	log := logrus.New()
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
		log.Warn("unknown log level, using info")
	}
	log.SetLevel(level)
	log.SetFormatter(&logrus.JSONFormatter{})

	return log
}
