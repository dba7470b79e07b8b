package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the root configuration for hours, stored in ~/.hours/config.json.
// The file supports single-line // comments for documentation purposes.
// Every field can be overridden from the environment.
type Config struct {
	// DataDir holds the entry store. Empty = ~/.hours.
	DataDir string `json:"data_dir" env:"HOURS_DATA_DIR"`
	// Backend selects the persistence backend: "file" or "sqlite".
	Backend string `json:"backend" env:"HOURS_BACKEND"`
	// PageSize is the number of dates per history page.
	PageSize int `json:"page_size" env:"HOURS_PAGE_SIZE"`
	// ExportDir is where export writes spreadsheets.
	ExportDir string `json:"export_dir" env:"HOURS_EXPORT_DIR"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `json:"log_level" env:"HOURS_LOG_LEVEL"`
	// LogFormat is "text" or "json".
	LogFormat string `json:"log_format" env:"HOURS_LOG_FORMAT"`
}

const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"

	DefaultPageSize  = 5
	DefaultExportDir = "."
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"
)

// ConfigPathEnv overrides the config file location.
const ConfigPathEnv = "HOURS_CONFIG"

// defaultConfig returns a Config pre-filled with sensible defaults.
func defaultConfig() Config {
	return Config{
		Backend:   BackendFile,
		PageSize:  DefaultPageSize,
		ExportDir: DefaultExportDir,
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
	}
}

// configTemplate is the annotated config written on first run.
// Lines whose trimmed content starts with // are stripped before JSON parsing,
// allowing human-readable documentation inside the file.
const configTemplate = `// hours configuration – ~/.hours/config.json
//
// All settings are optional; the built-in defaults shown below work out of
// the box. Every setting can also be set through an environment variable
// (shown in brackets), which wins over this file.
{
  // Directory holding your entries. Empty means ~/.hours.  [HOURS_DATA_DIR]
  "data_dir": "",

  // Where entries are kept:
  // • "file"   – a JSON file, timeEntries.json, in data_dir (default)
  // • "sqlite" – a SQLite database, hours.db, in data_dir
  // [HOURS_BACKEND]
  "backend": "file",

  // Dates per page in "hours history".  [HOURS_PAGE_SIZE]
  "page_size": 5,

  // Directory "hours export" writes spreadsheets to.  [HOURS_EXPORT_DIR]
  "export_dir": ".",

  // Diagnostics on stderr: level debug|info|warn|error, format text|json.
  // [HOURS_LOG_LEVEL] [HOURS_LOG_FORMAT]
  "log_level": "warn",
  "log_format": "text"
}
`

// FilePath returns the config file path: $HOURS_CONFIG or ~/.hours/config.json.
func FilePath() (string, error) {
	if p := os.Getenv(ConfigPathEnv); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".hours", "config.json"), nil
}

// stripLineComments removes lines whose leading non-whitespace content starts
// with //. Only full-line comments are handled; inline comments are not stripped.
func stripLineComments(data []byte) []byte {
	var out []byte
	for _, line := range bytes.Split(data, []byte("\n")) {
		if bytes.HasPrefix(bytes.TrimLeft(line, " \t"), []byte("//")) {
			continue
		}
		out = append(out, line...)
		out = append(out, '\n')
	}
	return out
}

// Load reads the config at FilePath(), creating it with annotated defaults
// on first run, then applies environment overrides.
func Load() (Config, error) {
	path, err := FilePath()
	if err != nil {
		return defaultConfig(), err
	}
	return LoadFile(path)
}

// LoadFile reads the config at path. A missing file is created with the
// annotated template. Environment variables override file values.
func LoadFile(path string) (Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// First run: write the annotated template so users can discover options.
		if writeErr := writeDefault(path); writeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not create config file %s: %v\n", path, writeErr)
		}
	case err != nil:
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	default:
		if err := json.Unmarshal(stripLineComments(data), &cfg); err != nil {
			return defaultConfig(), fmt.Errorf("parsing config file %s: %w\nTip: delete the file to regenerate defaults", path, err)
		}
	}

	if err := cleanenv.UpdateEnv(&cfg); err != nil {
		return cfg, fmt.Errorf("reading environment overrides: %w", err)
	}

	cfg.fillDefaults()
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}

// fillDefaults replaces zero-value fields with built-in defaults so callers
// always get a usable Config even if the user only partially fills in the file.
func (c *Config) fillDefaults() {
	def := defaultConfig()
	if c.Backend == "" {
		c.Backend = def.Backend
	}
	if c.PageSize == 0 {
		c.PageSize = def.PageSize
	}
	if c.ExportDir == "" {
		c.ExportDir = def.ExportDir
	}
	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}
	if c.LogFormat == "" {
		c.LogFormat = def.LogFormat
	}
}

// Validate checks values that cannot be defaulted.
func (c Config) Validate() error {
	switch c.Backend {
	case BackendFile, BackendSQLite:
	default:
		return fmt.Errorf("backend must be %q or %q, got %q", BackendFile, BackendSQLite, c.Backend)
	}
	if c.PageSize < 1 {
		return fmt.Errorf("page_size must be at least 1, got %d", c.PageSize)
	}
	return nil
}

// ResolveDataDir returns DataDir, or ~/.hours when unset.
func (c Config) ResolveDataDir() (string, error) {
	if c.DataDir != "" {
		return c.DataDir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".hours"), nil
}

// writeDefault creates the config directory and writes the annotated default
// config template.
func writeDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(configTemplate), 0o600); err != nil {
		return fmt.Errorf("writing default config: %w", err)
	}
	return nil
}
