package commands

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// LogLevel is the diagnostic log level, set by the root --log-level flag.
var LogLevel = "warn"

// newLogger returns a logrus logger writing to w at LogLevel.
func newLogger(w io.Writer) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", LogLevel, err)
	}

	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetLevel(level)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	return logger, nil
}
