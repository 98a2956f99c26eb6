// Package logging builds the zerolog logger handed to every component.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

const FileName = "snake.log"

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Setup returns a disabled logger unless debug is set. In debug mode records are
// appended to FileName under dir; the returned closer releases the file.
func Setup(debug bool, dir string) (zerolog.Logger, io.Closer, error) {
	if !debug {
		return zerolog.Nop(), nopCloser{}, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return zerolog.Nop(), nopCloser{}, fmt.Errorf("create log dir: %w", err)
	}

	f, err := os.OpenFile(filepath.Join(dir, FileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return zerolog.Nop(), nopCloser{}, fmt.Errorf("open log file: %w", err)
	}

	zerolog.TimeFieldFormat = time.RFC3339Nano
	log := zerolog.New(f).Level(zerolog.DebugLevel).With().Timestamp().Logger()
	return log, f, nil
}
