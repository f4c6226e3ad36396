// Package config reads the optional .aggie.toml settings file that
// keeps per-directory defaults for the aggie-report command.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/BurntSushi/toml"
)

// FileName is the settings file looked up in the working directory.
const FileName = ".aggie.toml"

// Config holds the settings a user keeps stable between runs so they
// do not have to be retyped as flags. Flags always win over the file.
type Config struct {
	Clean  Clean  `toml:"clean"`
	Output Output `toml:"output"`
}

// Clean configures where project-name cleaning rules come from.
type Clean struct {
	// Substrings are deleted from every project label wherever they
	// occur; Suffixes truncate a label at the first one found.
	Substrings []string `toml:"substrings"`
	Suffixes   []string `toml:"suffixes"`

	// SubstringsFile and SuffixesFile name files holding more rules of
	// the same two kinds, whitespace-delimited. File rules apply after
	// the inline ones.
	SubstringsFile string `toml:"substrings-file"`
	SuffixesFile   string `toml:"suffixes-file"`

	// NamesFile points at the exact-replacement JSON map; empty means
	// names_to_clean.json next to the reports.
	NamesFile string `toml:"names-file"`
}

// Output configures table rendering defaults.
type Output struct {
	Cents     bool     `toml:"cents"`
	Ascending bool     `toml:"ascending"`
	Columns   []string `toml:"columns"`

	// Symbol, Decimal and Thousand override the US-dollar currency
	// style; empty values keep the defaults ("$", ".", ",").
	Symbol   string `toml:"symbol"`
	Decimal  string `toml:"decimal"`
	Thousand string `toml:"thousand"`
}

// Load reads the settings at path. A missing file is not an error and
// yields the zero Config: settings are entirely optional.
func Load(path string) (Config, error) {
	var c Config
	if _, err := toml.DecodeFile(path, &c); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("could not read settings %q: %w", path, err)
	}
	return c, nil
}
