package aggie

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// NamesFile is the exact-replacement map the report command picks up
// from the working directory when the user has not pointed it anywhere
// else.
const NamesFile = "names_to_clean.json"

// ReadNames reads an exact-replacement name map from a JSON file. The
// file must hold a single JSON object whose values are all strings:
//
//	{
//	  "Long ugly project name like NSF CAREER K20304932": "CAREER",
//	  "Another long ugly project name like NSF Small K302777": "Small"
//	}
//
// A missing file is not an error and yields a nil map, so callers can
// probe the default location unconditionally.
func ReadNames(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not read names file %q: %w", path, err)
	}

	// Decode into raw messages first so a non-string value can be
	// reported with its key rather than as a bare type error.
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("names file %q is not a JSON object: %w", path, err)
	}
	names := make(map[string]string, len(raw))
	for key, value := range raw {
		var s string
		if err := json.Unmarshal(value, &s); err != nil {
			return nil, fmt.Errorf("names file %q: value for %q is not a string", path, key)
		}
		names[key] = s
	}
	return names, nil
}

// ReadWords reads a whitespace/newline-delimited list of cleaning rule
// fragments from a file.
func ReadWords(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read rules file %q: %w", path, err)
	}
	return strings.Fields(string(data)), nil
}

// CombineWords appends the entries of an optional rules file to an
// inline list; either part may be absent. Inline entries keep their
// position ahead of file entries, which matters for suffix rules where
// the first match wins.
func CombineWords(inline []string, path string) ([]string, error) {
	words := make([]string, 0, len(inline))
	words = append(words, inline...)
	if path == "" {
		return words, nil
	}
	fromFile, err := ReadWords(path)
	if err != nil {
		return nil, err
	}
	return append(words, fromFile...), nil
}
