package app

import (
	"io"
	"os"

	"kmacrypt/internal/logging"
)

// App is the configured application: its config, services and log sink.
type App struct {
	Config Config
	*Wire

	logCloser io.Closer
}

// New sets up logging from cfg and wires the services.
func New(cfg Config, rand io.Reader) (*App, error) {
	closer, err := logging.Setup(logging.Options{Level: cfg.LogLevel, File: cfg.LogFile})
	if err != nil {
		return nil, err
	}
	if cfg.Dir != "" {
		if err := os.MkdirAll(cfg.Dir, 0o700); err != nil {
			_ = closer.Close()
			return nil, err
		}
	}
	w, err := NewWire(cfg, rand)
	if err != nil {
		_ = closer.Close()
		return nil, err
	}
	logging.For("app", "New").WithField("dir", cfg.Dir).Debug("application wired")
	return &App{Config: cfg, Wire: w, logCloser: closer}, nil
}

// Close releases the log file, if any.
func (a *App) Close() error {
	if a == nil || a.logCloser == nil {
		return nil
	}
	return a.logCloser.Close()
}
