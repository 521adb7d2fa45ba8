// Package config holds the settings of the primehash command line tool.
package config

import (
	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"

	"github.com/homier/primehash"
)

const (
	TableOpen  = "open"
	TableChain = "chain"

	HashMaphash  = "maphash"
	HashXXHash   = "xxhash"
	HashSum      = "sum"
	HashWeighted = "weighted"
)

type Config struct {
	// Collision resolution strategy, "open" or "chain".
	Table string `toml:"table"`
	// Requested initial capacity, rounded up to a prime by the table.
	Capacity int `toml:"capacity"`
	// Hash function applied to words.
	Hash     string `toml:"hash"`
	LogLevel string `toml:"log_level"`
}

func Default() Config {
	return Config{
		Table:    TableOpen,
		Capacity: 11,
		Hash:     HashMaphash,
		LogLevel: "info",
	}
}

// Load reads a TOML file on top of the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, errors.Wrapf(err, "decode config %s", path)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, errors.Newf("config %s: unknown key %q", path, undecoded[0].String())
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, errors.Wrapf(err, "config %s", path)
	}

	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Table {
	case TableOpen, TableChain:
	default:
		return errors.Newf("unknown table %q", c.Table)
	}

	switch c.Hash {
	case HashMaphash, HashXXHash, HashSum, HashWeighted:
	default:
		return errors.Newf("unknown hash %q", c.Hash)
	}

	if c.Capacity < 1 {
		return errors.Newf("capacity must be positive, got %d", c.Capacity)
	}

	return nil
}

// HashFunc returns the configured hash function. Validate must pass first.
func (c Config) HashFunc() primehash.HashFunc[string] {
	switch c.Hash {
	case HashXXHash:
		return primehash.XXHash
	case HashSum:
		return primehash.CharSumHash
	case HashWeighted:
		return primehash.WeightedCharSumHash
	default:
		return primehash.MakeDefaultHashFunc[string]()
	}
}
