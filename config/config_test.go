package config

import (
	"os"
	"path/filepath"
	"reflect"
	"slices"
	"testing"
)

func TestLoadMissing(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), FileName))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !reflect.DeepEqual(c, Config{}) {
		t.Errorf("Load() = %+v, want the zero Config", c)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	settings := `
[clean]
substrings = ["NSF ", "CS "]
suffixes = ["K20", "K3"]
substrings-file = "substrings.txt"
suffixes-file = "suffixes.txt"
names-file = "names.json"

[output]
cents = true
ascending = true
columns = ["Expenses", "Salary", "Balance"]
symbol = "€"
decimal = ","
thousand = "."
`
	if err := os.WriteFile(path, []byte(settings), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if want := []string{"NSF ", "CS "}; !slices.Equal(c.Clean.Substrings, want) {
		t.Errorf("Substrings = %v, want %v", c.Clean.Substrings, want)
	}
	if want := []string{"K20", "K3"}; !slices.Equal(c.Clean.Suffixes, want) {
		t.Errorf("Suffixes = %v, want %v", c.Clean.Suffixes, want)
	}
	if got, want := c.Clean.SubstringsFile, "substrings.txt"; got != want {
		t.Errorf("SubstringsFile = %q, want %q", got, want)
	}
	if got, want := c.Clean.SuffixesFile, "suffixes.txt"; got != want {
		t.Errorf("SuffixesFile = %q, want %q", got, want)
	}
	if got, want := c.Clean.NamesFile, "names.json"; got != want {
		t.Errorf("NamesFile = %q, want %q", got, want)
	}
	if !c.Output.Cents {
		t.Error("Cents = false, want true")
	}
	if !c.Output.Ascending {
		t.Error("Ascending = false, want true")
	}
	if want := []string{"Expenses", "Salary", "Balance"}; !slices.Equal(c.Output.Columns, want) {
		t.Errorf("Columns = %v, want %v", c.Output.Columns, want)
	}
	if got, want := c.Output.Symbol, "€"; got != want {
		t.Errorf("Symbol = %q, want %q", got, want)
	}
	if got, want := c.Output.Decimal, ","; got != want {
		t.Errorf("Decimal = %q, want %q", got, want)
	}
	if got, want := c.Output.Thousand, "."; got != want {
		t.Errorf("Thousand = %q, want %q", got, want)
	}
}

func TestLoadInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte("[clean\nsubstrings ="), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() accepted malformed TOML, want an error")
	}
}
