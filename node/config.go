package node

import (
	"log/slog"
	"path/filepath"

	"github.com/jonboulle/clockwork"
)

// Config collects the settings needed to open a custody node.
type Config struct {
	// DataDir is the directory holding the state database and the genesis
	// marker.
	DataDir string `toml:",omitempty"`

	// DatabaseCache is the leveldb cache allowance in megabytes.
	DatabaseCache int `toml:",omitempty"`

	// DatabaseHandles is the leveldb file handle allowance.
	DatabaseHandles int `toml:",omitempty"`

	// ReadOnly opens the state database without write access. Applying
	// operations against a read-only node fails at commit.
	ReadOnly bool `toml:",omitempty"`

	// Clock drives operation timestamps. Nil selects the real clock.
	Clock clockwork.Clock `toml:"-"`

	// Logger receives processor and node output. Nil discards.
	Logger *slog.Logger `toml:"-"`
}

// DefaultConfig is the base configuration of a custody node.
var DefaultConfig = Config{
	DataDir:         "gsnrg-data",
	DatabaseCache:   128,
	DatabaseHandles: 1024,
}

// statePath returns the location of the leveldb store inside the data
// directory.
func (c *Config) statePath() string {
	return filepath.Join(c.DataDir, "state")
}

// withDefaults fills unset fields from DefaultConfig.
func (c *Config) withDefaults() *Config {
	out := *c
	if out.DataDir == "" {
		out.DataDir = DefaultConfig.DataDir
	}
	if out.DatabaseCache <= 0 {
		out.DatabaseCache = DefaultConfig.DatabaseCache
	}
	if out.DatabaseHandles <= 0 {
		out.DatabaseHandles = DefaultConfig.DatabaseHandles
	}
	return &out
}
