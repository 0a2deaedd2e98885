package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexamibco/tudu/internal/tasklist"
	"github.com/gofrs/flock"
)

// App holds the application state and dependencies
type App struct {
	Tasks    *tasklist.List
	DataDir  string
	lockFile *flock.Flock
}

// Config holds application configuration
type Config struct {
	DataDir string
}

// DefaultDataDir returns the default data directory path
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".tudu"
	}
	return filepath.Join(home, ".local", "share", "tudu")
}

// DefaultConfig returns the default application configuration
func DefaultConfig() *Config {
	return &Config{
		DataDir: DefaultDataDir(),
	}
}

// New creates a new application instance
func New(cfg *Config) (*App, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	// Ensure data directory exists
	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	app := &App{
		Tasks:   tasklist.New(),
		DataDir: cfg.DataDir,
	}

	// Acquire lock to ensure single instance
	if err := app.acquireLock(); err != nil {
		return nil, err
	}

	return app, nil
}

// acquireLock acquires an exclusive file lock to prevent multiple instances
func (a *App) acquireLock() error {
	lockPath := filepath.Join(a.DataDir, "tudu.lock")
	a.lockFile = flock.New(lockPath)

	locked, err := a.lockFile.TryLock()
	if err != nil {
		return fmt.Errorf("failed to acquire lock: %w", err)
	}

	if !locked {
		return fmt.Errorf("another instance of tudu is already running")
	}

	return nil
}

// releaseLock releases the file lock
func (a *App) releaseLock() {
	if a.lockFile != nil {
		a.lockFile.Unlock()
	}
}

// Close cleans up application resources
func (a *App) Close() error {
	a.releaseLock()
	return nil
}
