package main

import (
	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"os"
	"path"
)

// config holds defaults read from a TOML file. Command line arguments take precedence.
//
//	tolerance = 10
//	valid_codes = ["codiesp_codes/codiesp-D_codes.tsv", "codiesp_codes/codiesp-P_codes.tsv"]
//	format = "text"
//	summary = true
//	map = false
type config struct {
	Tolerance  *int     `toml:"tolerance"`
	ValidCodes []string `toml:"valid_codes"`
	Format     string   `toml:"format"`
	Summary    bool     `toml:"summary"`
	MAP        bool     `toml:"map"`
}

// loadConfig reads the config file at p. When p is empty, ~/.codiesp_eval is read if it exists.
func loadConfig(p string) (config, error) {
	var c config
	if len(p) == 0 {
		dir, err := os.UserHomeDir()
		if err != nil {
			return c, nil
		}
		p = path.Join(dir, ".codiesp_eval")
		if _, err := os.Stat(p); err != nil {
			return c, nil
		}
	}
	if _, err := toml.DecodeFile(p, &c); err != nil {
		return c, errors.Wrapf(err, "could not read config file %s", p)
	}
	return c, nil
}

// merge fills the arguments that were not given on the command line from the config.
func (a *args) merge(c config) {
	if a.Tolerance < 0 && c.Tolerance != nil {
		a.Tolerance = *c.Tolerance
	}
	if len(a.ValidCodes) == 0 {
		a.ValidCodes = c.ValidCodes
	}
	if len(a.Format) == 0 {
		a.Format = c.Format
	}
	a.Summary = a.Summary || c.Summary
	a.MAP = a.MAP || c.MAP
}
