package aggie

import (
	"errors"
	"testing"
)

// clean is a helper for the common case of cleaning a sponsored row.
func clean(t *testing.T, rules CleaningRules, raw string) string {
	t.Helper()
	name, err := rules.Clean(raw, Sponsored, "")
	if err != nil {
		t.Fatalf("Clean(%q) error = %v", raw, err)
	}
	return name
}

func TestCleanNoRules(t *testing.T) {
	var rules CleaningRules
	if !rules.Empty() {
		t.Error("zero-value rules should report Empty")
	}
	if got, want := clean(t, rules, "NSF CAREER K20304932"), "NSF CAREER K20304932"; got != want {
		t.Errorf("Clean() = %q, want %q", got, want)
	}
	// Whitespace is tidied even with no rules configured.
	if got, want := clean(t, rules, "  MURI    127PD8235 "), "MURI 127PD8235"; got != want {
		t.Errorf("Clean() = %q, want %q", got, want)
	}
}

func TestCleanSuffixRules(t *testing.T) {
	rules := CleaningRules{Suffixes: []string{"K20", "K3"}}

	t.Run("First match truncates", func(t *testing.T) {
		if got, want := clean(t, rules, "NSF CAREER K20304932"), "NSF CAREER"; got != want {
			t.Errorf("Clean() = %q, want %q", got, want)
		}
	})

	t.Run("Later rule applies when earlier ones miss", func(t *testing.T) {
		// "K302777" contains "K3" but not "K20".
		if got, want := clean(t, rules, "NSF Small K302777"), "NSF Small"; got != want {
			t.Errorf("Clean() = %q, want %q", got, want)
		}
	})

	t.Run("Rules are mutually exclusive", func(t *testing.T) {
		// "K20" truncates first; the "K3" left of it is never tried on
		// the remainder.
		if got, want := clean(t, rules, "Alpha K3 beta K20 gamma"), "Alpha K3 beta"; got != want {
			t.Errorf("Clean() = %q, want %q", got, want)
		}
	})

	t.Run("No match leaves the name alone", func(t *testing.T) {
		if got, want := clean(t, rules, "MURI 127PD8235"), "MURI 127PD8235"; got != want {
			t.Errorf("Clean() = %q, want %q", got, want)
		}
	})
}

func TestCleanSubstringRules(t *testing.T) {
	t.Run("Every occurrence is deleted", func(t *testing.T) {
		rules := CleaningRules{Substrings: []string{"NSF "}}
		if got, want := clean(t, rules, "NSF CAREER NSF 2021"), "CAREER 2021"; got != want {
			t.Errorf("Clean() = %q, want %q", got, want)
		}
	})

	t.Run("Longer rules run before their fragments", func(t *testing.T) {
		// Deleting "a" first would turn "abc" into "bc" and the longer
		// rule would miss it; the sort guarantees "abc" goes first.
		rules := CleaningRules{Substrings: []string{"a", "abc"}}
		if got, want := clean(t, rules, "xabcy"), "xy"; got != want {
			t.Errorf("Clean() = %q, want %q", got, want)
		}
	})

	t.Run("Standalone fragment and its containing rule", func(t *testing.T) {
		rules := CleaningRules{Substrings: []string{"a", "abc"}}
		// "abc" must go first: left-to-right application would delete
		// the lone "a"s everywhere, leaving "bc" where "abc" stood.
		if got, want := clean(t, rules, "a abc My Project"), "My Project"; got != want {
			t.Errorf("Clean() = %q, want %q", got, want)
		}
	})

	t.Run("Deletions do not leave double spaces", func(t *testing.T) {
		rules := CleaningRules{Substrings: []string{"Grant"}}
		if got, want := clean(t, rules, "MURI Grant 2021"), "MURI 2021"; got != want {
			t.Errorf("Clean() = %q, want %q", got, want)
		}
	})
}

func TestCleanSuffixThenSubstrings(t *testing.T) {
	rules := CleaningRules{
		Suffixes:   []string{"K20", "K3"},
		Substrings: []string{"NSF "},
	}
	for _, c := range []struct{ raw, want string }{
		{"NSF CAREER K20304932", "CAREER"},
		{"NSF Small K302777", "Small"},
	} {
		if got := clean(t, rules, c.raw); got != c.want {
			t.Errorf("Clean(%q) = %q, want %q", c.raw, got, c.want)
		}
	}
}

func TestCleanExactNames(t *testing.T) {
	rules := CleaningRules{
		Names:      map[string]string{"NSF CAREER K20304932": "NSF Career"},
		Suffixes:   []string{"K20"},
		Substrings: []string{"NSF "},
	}

	t.Run("Mapped label bypasses the other rules", func(t *testing.T) {
		// Both the suffix and the substring rule would mangle the
		// replacement if they ran.
		if got, want := clean(t, rules, "NSF CAREER K20304932"), "NSF Career"; got != want {
			t.Errorf("Clean() = %q, want %q", got, want)
		}
	})

	t.Run("Unmapped labels fall through", func(t *testing.T) {
		if got, want := clean(t, rules, "NSF Medium K20111111"), "Medium"; got != want {
			t.Errorf("Clean() = %q, want %q", got, want)
		}
	})

	t.Run("Replacement whitespace is still tidied", func(t *testing.T) {
		rules := CleaningRules{Names: map[string]string{"X": "  Career   award "}}
		if got, want := clean(t, rules, "X"), "Career award"; got != want {
			t.Errorf("Clean() = %q, want %q", got, want)
		}
	})
}

func TestCleanInternalProjects(t *testing.T) {
	const shared = "Jane Doe ENGR COMPUTER SCIENCE PPM Only"

	t.Run("Task label substitutes for the shared label", func(t *testing.T) {
		rules := CleaningRules{Substrings: []string{"CS "}}
		got, err := rules.Clean(shared, Internal, "CS INDIRECT COST RETURN PROJECT 13U00")
		if err != nil {
			t.Fatalf("Clean() error = %v", err)
		}
		if want := "INDIRECT COST RETURN PROJECT 13U00"; got != want {
			t.Errorf("Clean() = %q, want %q", got, want)
		}
	})

	t.Run("Sponsored rows ignore the task label", func(t *testing.T) {
		var rules CleaningRules
		got, err := rules.Clean(shared, Sponsored, "TASK01")
		if err != nil {
			t.Fatalf("Clean() error = %v", err)
		}
		if got != shared {
			t.Errorf("Clean() = %q, want %q", got, shared)
		}
	})

	t.Run("Exact names apply to the substituted task", func(t *testing.T) {
		rules := CleaningRules{Names: map[string]string{"CS GIFT ACCOUNT 13U00": "Gifts"}}
		got, err := rules.Clean(shared, Internal, "CS GIFT ACCOUNT 13U00")
		if err != nil {
			t.Fatalf("Clean() error = %v", err)
		}
		if want := "Gifts"; got != want {
			t.Errorf("Clean() = %q, want %q", got, want)
		}
	})
}

func TestCleanIdempotent(t *testing.T) {
	// A name that already went through the rules comes back unchanged,
	// so re-cleaning snapshot data can never drift.
	rules := CleaningRules{
		Names:      map[string]string{"NSF CAREER K20304932": "Career"},
		Suffixes:   []string{"K20", "K3"},
		Substrings: []string{"NSF ", "CS "},
	}
	for _, raw := range []string{
		"NSF CAREER K20304932",
		"NSF Small K302777",
		"MURI 127PD8235",
	} {
		once := clean(t, rules, raw)
		if twice := clean(t, rules, once); twice != once {
			t.Errorf("Clean(Clean(%q)) = %q, want %q unchanged", raw, twice, once)
		}
	}
}

func TestCleanEmptyResult(t *testing.T) {
	rules := CleaningRules{Substrings: []string{"MURI"}}
	_, err := rules.Clean(" MURI ", Sponsored, "")
	var empty *EmptyNameError
	if !errors.As(err, &empty) {
		t.Fatalf("Clean() error = %v, want an EmptyNameError", err)
	}
	if got, want := empty.RawName, " MURI "; got != want {
		t.Errorf("RawName = %q, want %q", got, want)
	}
}
