package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"strings"

	"golang.org/x/xerrors"
	"gopkg.in/yaml.v3"

	scicalc "github.com/talhatariq2141/othercalculators-sub001"
)

// config is the contents of a configuration file, e.g.:
//
//	mode: rad
//	digits: 12
//	prec: 128
//	aliases:
//	  c: AC
//	  p: π
type config struct {
	// Mode is the initial angle mode, deg or rad.
	Mode string `yaml:"mode"`
	// Digits is the number of significant digits in results.
	Digits int `yaml:"digits"`
	// Prec is the working precision in bits.
	Prec uint `yaml:"prec"`
	// Aliases maps extra key labels to the labels the calculator knows.
	Aliases map[string]string `yaml:"aliases"`
}

func loadConfig(name string) (*config, error) {
	b, err := os.ReadFile(name)
	if err != nil {
		return nil, xerrors.Errorf("reading config: %w", err)
	}
	return parseConfig(b)
}

func parseConfig(b []byte) (*config, error) {
	var cfg config
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	// An empty file is an empty config.
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, xerrors.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// keymap resolves key labels, checking configured aliases first.
type keymap map[string]scicalc.Key

func (cfg *config) keymap() (keymap, error) {
	m := make(keymap, len(cfg.Aliases))
	for from, to := range cfg.Aliases {
		k, err := scicalc.ParseKey(to)
		if err != nil {
			return nil, xerrors.Errorf("alias %q: %w", from, err)
		}
		m[from] = k
	}
	return m, nil
}

// keys parses a line of whitespace-separated key labels.
func (m keymap) keys(line string) ([]scicalc.Key, error) {
	var r []scicalc.Key
	for _, f := range strings.Fields(line) {
		if k, ok := m[f]; ok {
			r = append(r, k)
			continue
		}
		ks, err := scicalc.ParseKeys(f)
		if err != nil {
			return nil, err
		}
		r = append(r, ks...)
	}
	return r, nil
}
