package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// config holds the settings which may come from a config file. Flags set on
// the command line override them.
type config struct {
	// Format is a fmt verb for results. Empty means calc.Format.
	Format string       `toml:"format"`
	Echo   bool         `toml:"echo"`
	Keypad keypadConfig `toml:"keypad"`
}

type keypadConfig struct {
	MaxInput int `toml:"max_input"`
}

// loadConfig reads a config file. An empty name gives the defaults.
func loadConfig(name string) (*config, error) {
	var cfg config
	if name == "" {
		return &cfg, nil
	}
	md, err := toml.DecodeFile(name, &cfg)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		return nil, fmt.Errorf("loading config %s: unknown key %s", name, undec[0])
	}
	return &cfg, nil
}
