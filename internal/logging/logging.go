package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"queue-handlers/internal/config"
)

// New builds the logger shared by the functions and the local server.
// Record bodies are logged at info level; warn or any level above info
// would drop them, so callers building functions should reject it, see
// RequireInfoLevel.
func New(cfg config.LogConfig) (*logrus.Logger, error) {
	return NewWithOutput(cfg, os.Stdout)
}

// RequireInfoLevel returns an error if logger would drop info entries
func RequireInfoLevel(logger *logrus.Logger) error {
	if !logger.IsLevelEnabled(logrus.InfoLevel) {
		return fmt.Errorf("log level %q hides message body lines, use info or more verbose", logger.GetLevel())
	}
	return nil
}

// NewWithOutput builds a logger that writes to out.
func NewWithOutput(cfg config.LogConfig, out io.Writer) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetLevel(level)

	switch strings.ToLower(cfg.Format) {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	case "", "text":
		logger.SetFormatter(&logrus.TextFormatter{
			DisableColors: true,
			FullTimestamp: true,
		})
	default:
		return nil, fmt.Errorf("unsupported log format %q", cfg.Format)
	}

	return logger, nil
}
