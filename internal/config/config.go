package config

import (
	"os"
	"path/filepath"
)

const (
	AppName    = "Portal"
	AppVersion = "1.0.0"
)

// Defaults shared by the create and update arms of the weekly upsert.
const (
	DefaultTaskStatus = "Submitted"
	DateLayout        = "2006-01-02"
)

type Config struct {
	Addr     string
	DBPath   string
	DataDir  string
	LogLevel string
}

func Load() Config {
	addr := os.Getenv("PORTAL_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	dataDir := os.Getenv("PORTAL_DATA_DIR")
	if dataDir == "" {
		dataDir = "./data"
	}
	path := os.Getenv("PORTAL_DB_PATH")
	if path == "" {
		path = filepath.Join(dataDir, "portal.db")
	}
	logLevel := os.Getenv("PORTAL_LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	return Config{
		Addr:     addr,
		DBPath:   filepath.Clean(path),
		DataDir:  filepath.Clean(dataDir),
		LogLevel: logLevel,
	}
}
