package cmd

import (
	"os"
	"strings"
	"testing"

	"github.com/dave-doty/aggie-unterprise/docs"
)

// The README and the built-in readme topic introduce every subcommand;
// a command absent from either is a documentation bug.
func TestCommandsAreDocumented(t *testing.T) {
	readme, err := os.ReadFile("../README.md")
	if err != nil {
		t.Fatalf("failed to read README.md: %v", err)
	}
	topic, err := docs.GetTopic("readme")
	if err != nil {
		t.Fatalf("failed to get the readme topic: %v", err)
	}

	for _, cmd := range Commands {
		name := cmd.Name()
		if !strings.Contains(string(readme), name) {
			t.Errorf("README.md does not mention the %q command", name)
		}
		if !strings.Contains(topic, name) {
			t.Errorf("the readme topic does not mention the %q command", name)
		}
	}
}
