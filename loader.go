package aggie

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"
)

// FindReportFiles lists the .xlsx files sitting directly in dir, the
// way report runs are usually dropped into a folder. Subdirectories
// are not searched; Excel's "~$" lock files are skipped. An empty
// result is an error, because a run over zero reports is always a
// wrong-directory mistake.
func FindReportFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("could not list directory %q: %w", dir, err)
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasPrefix(name, "~$") {
			continue
		}
		if strings.EqualFold(filepath.Ext(name), ".xlsx") {
			paths = append(paths, filepath.Join(dir, name))
		}
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no .xlsx files found in directory %q", dir)
	}
	sort.Strings(paths)
	return paths, nil
}

// LoadAll reads one snapshot per report file. Files are independent, so
// they load concurrently; the first failure cancels the run and is
// returned. Results keep the order of paths regardless of which file
// finished first.
func LoadAll(paths []string, rules CleaningRules) ([]*Snapshot, error) {
	snapshots := make([]*Snapshot, len(paths))
	var g errgroup.Group
	for i, path := range paths {
		g.Go(func() error {
			s, err := FromFile(path, rules)
			if err != nil {
				return err
			}
			snapshots[i] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return snapshots, nil
}
