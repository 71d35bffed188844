// internal/pkg/logger/logger.go
package logger

import (
	"time"

	"github.com/goldenbarrel/storefront-backend/internal/config"
	"github.com/sirupsen/logrus"
)

// New builds the application logger from logging config
func New(cfg config.LoggingConfig) *logrus.Logger {
	log := logrus.New()

	if cfg.Format == "json" {
		log.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: time.RFC3339,
		})
	} else {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.RFC3339,
		})
	}

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	return log
}
