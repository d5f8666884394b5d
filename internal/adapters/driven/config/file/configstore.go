package file

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// ConfigFileName is the config file name inside the config directory.
const ConfigFileName = "config.toml"

// Config holds the application configuration.
type Config struct {
	// CatalogURL is the catalog API base URL.
	CatalogURL string `toml:"catalog_url"`

	// AssetURL is the cover asset host base URL.
	AssetURL string `toml:"asset_url"`

	// PageSize is the default discovery page length.
	PageSize int `toml:"page_size"`

	// DebounceMS is the text-input quiet period in milliseconds.
	DebounceMS int `toml:"debounce_ms"`

	// UserID is the signed-in user id used for rating writes.
	// Empty means no session.
	UserID string `toml:"user_id"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		CatalogURL: "https://catalog.marquee.dev",
		AssetURL:   "https://assets.marquee.dev",
		PageSize:   20,
		DebounceMS: 300,
	}
}

// Quiet returns the debounce quiet period as a duration.
func (c Config) Quiet() time.Duration {
	return time.Duration(c.DebounceMS) * time.Millisecond
}

// Store is a file-based configuration store using TOML.
type Store struct {
	mu   sync.RWMutex
	dir  string
	path string
	cfg  Config
}

// NewStore creates a config store rooted at configDir. If configDir is
// empty, defaults to ~/.marquee. Missing files yield the defaults; missing
// fields keep their default values.
func NewStore(configDir string) (*Store, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		configDir = filepath.Join(home, ".marquee")
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, fmt.Errorf("creating config directory: %w", err)
	}

	s := &Store{
		dir:  configDir,
		path: filepath.Join(configDir, ConfigFileName),
		cfg:  Default(),
	}

	if err := s.Load(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	return s, nil
}

// Load re-reads the config file from disk. Defaults fill in anything the
// file does not set.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return err
	}

	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("parsing %s: %w", s.path, err)
	}
	s.cfg = cfg
	return nil
}

// Save writes the current configuration to disk.
func (s *Store) Save() error {
	s.mu.RLock()
	cfg := s.cfg
	s.mu.RUnlock()

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("writing %s: %w", s.path, err)
	}
	return nil
}

// Config returns a copy of the current configuration.
func (s *Store) Config() Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}

// Update applies fn to the configuration under the store's lock.
// Call Save to persist.
func (s *Store) Update(fn func(*Config)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.cfg)
}

// Dir returns the config directory.
func (s *Store) Dir() string {
	return s.dir
}

// Path returns the config file path.
func (s *Store) Path() string {
	return s.path
}
