// Package logging configures the process-wide logrus logger.
package logging

import (
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/pageza/rezeptblog/backend/config"
)

// Setup configures the standard logger: JSON lines in production, text otherwise.
func Setup(env config.Environment, level string) error {
	return configure(log.StandardLogger(), os.Stdout, env, level)
}

func configure(logger *log.Logger, out io.Writer, env config.Environment, level string) error {
	logger.SetOutput(out)
	if env == config.Production {
		logger.SetFormatter(&log.JSONFormatter{})
	} else {
		logger.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}

	if level == "" {
		level = "info"
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	logger.SetLevel(lvl)
	return nil
}
