// Package logging builds the process logger: logrus text output to the
// console and, optionally, to a lumberjack-rotated file.
package logging

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// ErrInvalidConfig indicates an unusable logging configuration.
var ErrInvalidConfig = errors.New("logging: invalid config")

// TimestampFormat is the layout of every log line's time field.
const TimestampFormat = "2006-01-02 15:04:05"

// Config is the [log] section of the configuration file.
type Config struct {
	Level      string `toml:"level"`       // logrus level name
	Dir        string `toml:"dir"`         // "" disables the file sink
	File       string `toml:"file"`        // file name inside Dir
	MaxSize    int    `toml:"max_size"`    // MB per file
	MaxBackups int    `toml:"max_backups"` // rotated files kept
	MaxAge     int    `toml:"max_age"`     // days
	Compress   bool   `toml:"compress"`
	Quiet      bool   `toml:"quiet"` // no console output
}

// DefaultConfig logs at info level to ./logs/qosbench.log and the console.
func DefaultConfig() Config {
	return Config{
		Level:      "info",
		Dir:        "./logs",
		File:       "qosbench.log",
		MaxSize:    100,
		MaxBackups: 7,
		MaxAge:     30,
		Compress:   true,
	}
}

// Validate checks the level and the rotation limits.
func (c Config) Validate() error {
	if _, err := logrus.ParseLevel(c.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.MaxSize < 0 || c.MaxBackups < 0 || c.MaxAge < 0 {
		return fmt.Errorf("%w: negative rotation limit", ErrInvalidConfig)
	}
	if c.Dir != "" && c.File == "" {
		return fmt.Errorf("%w: dir %q without file name", ErrInvalidConfig, c.Dir)
	}

	return nil
}

// Path is the active log file, "" when the file sink is disabled.
func (c Config) Path() string {
	if c.Dir == "" {
		return ""
	}

	return filepath.Join(c.Dir, c.File)
}

// New returns a logger writing to console (unless Quiet) and to the rotated
// file (unless Dir is empty). The returned closer releases the file; it is
// never nil.
func New(c Config, console io.Writer) (*logrus.Logger, io.Closer, error) {
	if err := c.Validate(); err != nil {
		return nil, nil, err
	}
	level, _ := logrus.ParseLevel(c.Level)

	var (
		sinks  []io.Writer
		closer io.Closer = nopCloser{}
	)
	if !c.Quiet && console != nil {
		sinks = append(sinks, console)
	}
	if c.Dir != "" {
		if err := os.MkdirAll(c.Dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("logging: %w", err)
		}
		file := &lumberjack.Logger{
			Filename:   c.Path(),
			MaxSize:    c.MaxSize,
			MaxBackups: c.MaxBackups,
			MaxAge:     c.MaxAge,
			Compress:   c.Compress,
		}
		sinks = append(sinks, file)
		closer = file
	}

	log := logrus.New()
	switch len(sinks) {
	case 0:
		log.SetOutput(io.Discard)
	case 1:
		log.SetOutput(sinks[0])
	default:
		log.SetOutput(io.MultiWriter(sinks...))
	}
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: TimestampFormat})
	log.SetLevel(level)

	return log, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
