package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	log "github.com/sirupsen/logrus"
)

// configureLogging sets the log level, and only colours output going to a terminal
func configureLogging(level string, out io.Writer) error {
	parsed, err := log.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	log.SetLevel(parsed)
	log.SetOutput(out)
	log.SetFormatter(&log.TextFormatter{
		DisableColors:    !isTerminal(out),
		DisableTimestamp: true,
	})
	return nil
}

func isTerminal(out io.Writer) bool {
	file, ok := out.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
}
