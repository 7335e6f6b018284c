package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
)

// New returns a logger at the given level. The terminal is owned by the UI
// while a game runs, so nothing is written to stdout or stderr: records go
// to a rotated file at path, or nowhere when path is empty.
func New(path string, level logrus.Level) (*logrus.Logger, error) {
	log := logrus.New()
	log.SetLevel(level)
	log.SetOutput(io.Discard)
	log.SetFormatter(&logrus.TextFormatter{
		DisableColors: true,
		FullTimestamp: true,
	})

	if path == "" {
		return log, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   path,
		MaxSize:    5, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
		Level:      level,
		Formatter: &logrus.TextFormatter{
			DisableColors: true,
			FullTimestamp: true,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("open log file %s: %w", path, err)
	}
	log.AddHook(hook)

	return log, nil
}
