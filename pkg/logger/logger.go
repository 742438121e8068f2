package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init configures the global zerolog logger. In development output goes to a
// console writer; otherwise JSON to stderr. When errorLog is set, warn and
// above are also appended to that file. The returned closer releases it.
func Init(development bool, level, errorLog string) (io.Closer, error) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	var out io.Writer = os.Stderr
	if development {
		out = zerolog.ConsoleWriter{Out: os.Stderr}
	}

	if development || errorLog == "" {
		log.Logger = zerolog.New(out).With().Timestamp().Logger()
		return nopCloser{}, nil
	}

	f, err := os.OpenFile(errorLog, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		log.Logger = zerolog.New(out).With().Timestamp().Logger()
		return nopCloser{}, fmt.Errorf("open error log: %w", err)
	}

	fileWriter := &zerolog.FilteredLevelWriter{
		Writer: zerolog.LevelWriterAdapter{Writer: f},
		Level:  zerolog.WarnLevel,
	}
	log.Logger = zerolog.New(zerolog.MultiLevelWriter(out, fileWriter)).
		With().Timestamp().Caller().Logger()
	return f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
