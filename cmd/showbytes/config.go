package main

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds showbytes defaults loaded from a TOML file.
type Config struct {
	Quote  string `toml:"quote"`  // default quote style: none, single, double
	Format string `toml:"format"` // default output format; empty means the plain printer
}

// loadConfig reads path, or the default location when path is empty.
// A missing file is only an error when its path was given explicitly.
func loadConfig(path string) (Config, error) {
	cfg := Config{Quote: "double"}

	explicit := path != ""
	if !explicit {
		dir, err := os.UserConfigDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(dir, "showbytes.toml")
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if !explicit && os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	return cfg, nil
}
