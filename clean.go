package aggie

import (
	"sort"
	"strings"

	"github.com/charmbracelet/log"
)

// internalMarker is the phrase AggieEnterprise puts in the shared label
// of department-funded projects ("<PI name> ENGR COMPUTER SCIENCE PPM
// Only" and the like). Internal rows without it still get their task
// label substituted, but the mismatch is worth a warning.
const internalMarker = "PPM Only"

// CleaningRules configures how raw project labels are rewritten into
// canonical project names. The zero value applies no cleaning.
//
// Names maps a verbatim label to its replacement; a label found there
// is replaced and no other rule touches it. Suffixes is an ordered list
// of substrings: the first one found in a label truncates the label at
// that point, and the rest are not tried. Substrings lists fragments to
// delete wherever they occur; before any deletion they are reordered so
// that a fragment containing another is applied first, otherwise the
// shorter fragment could split an occurrence of the longer one and
// leave half of it behind.
type CleaningRules struct {
	Names      map[string]string
	Suffixes   []string
	Substrings []string
}

// Empty reports whether no cleaning of any kind was configured.
func (r CleaningRules) Empty() bool {
	return len(r.Names) == 0 && len(r.Suffixes) == 0 && len(r.Substrings) == 0
}

// Clean rewrites one Summary-row label into its canonical project name.
//
// For Internal projects the task label replaces the project label
// before anything else: internally funded projects all share one
// generic label, and only the task tells them apart. The exact-name map
// is consulted next and short-circuits the suffix and substring rules.
// Whatever path was taken, runs of whitespace collapse to single spaces
// and the ends are trimmed last, so rule authors never have to care
// about the spacing their deletions leave behind.
//
// A name that comes out empty is an EmptyNameError: the rules, not the
// report, made it empty.
func (r CleaningRules) Clean(raw string, kind Kind, task string) (string, error) {
	name := raw
	if kind == Internal {
		if !strings.Contains(raw, internalMarker) {
			log.Warn("internal project without the usual label marker",
				"project", raw, "marker", internalMarker)
		}
		name = task
	}

	if replacement, ok := r.Names[name]; ok {
		name = replacement
	} else {
		name = truncateAtSuffix(name, r.Suffixes)
		name = deleteSubstrings(name, r.Substrings)
	}

	name = collapseWhitespace(name)
	if name == "" {
		return "", &EmptyNameError{RawName: raw}
	}
	return name, nil
}

// truncateAtSuffix cuts the name at the first occurrence of the first
// rule that matches. Suffix rules are mutually exclusive per name: once
// one has truncated, the rest are not tried.
func truncateAtSuffix(name string, suffixes []string) string {
	for _, suffix := range suffixes {
		if idx := strings.Index(name, suffix); idx >= 0 {
			return strings.TrimSpace(name[:idx])
		}
	}
	return name
}

// deleteSubstrings removes every occurrence of each rule, longest rule
// first. The order matters: with rules "a" and "abc", deleting "a"
// first would turn an "abc" occurrence into "bc" and the longer rule
// would no longer find it.
func deleteSubstrings(name string, substrings []string) string {
	for _, substring := range sortForDeletion(substrings) {
		name = strings.ReplaceAll(name, substring, "")
	}
	return name
}

// sortForDeletion orders substring rules so that any rule containing
// another comes first. Descending length guarantees that (a proper
// substring is always shorter); equal-length rules tie-break
// lexicographically to keep the order deterministic. The input slice is
// left alone.
func sortForDeletion(substrings []string) []string {
	sorted := make([]string, len(substrings))
	copy(sorted, substrings)
	sort.SliceStable(sorted, func(i, j int) bool {
		if len(sorted[i]) != len(sorted[j]) {
			return len(sorted[i]) > len(sorted[j])
		}
		return sorted[i] < sorted[j]
	})
	return sorted
}

// collapseWhitespace reduces every run of whitespace to a single space
// and trims both ends.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// normalizeToken lowercases and trims a cell value for keyword
// comparison.
func normalizeToken(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
