package logging

import (
	"github.com/sirupsen/logrus"

	"github.com/qiansheng/tianji-ai-go/internal/config"
)

// New builds the application logger. Development gets a human-readable text
// format with full timestamps; every other environment logs JSON. An
// unparseable level falls back to warn.
func New(cfg *config.Config) *logrus.Logger {
	logger := logrus.New()

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.WarnLevel
	}
	logger.SetLevel(level)

	if cfg.IsDevelopment() {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	return logger
}
