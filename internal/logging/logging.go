// Package logging builds the process logger from configuration.
package logging

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

// New builds a logrus logger writing to stderr at the given level.
// format is "json" or "text".
func New(level, format string) (*logrus.Logger, error) {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}
	logger.SetLevel(lvl)

	if format == "text" {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	return logger, nil
}
