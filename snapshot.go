package aggie

import (
	"iter"
	"sort"
	"time"
)

// Snapshot is the set of projects extracted from one report run,
// stamped with the time AggieEnterprise generated the report. It is
// immutable once built: many snapshots are typically held together and
// compared pairwise, and a built snapshot is safe for concurrent
// read-only use.
//
// Projects keep the order they had on the Summary sheet. That order is
// only cosmetic (tables read better when they match the report) and
// carries no meaning; identity is by canonical project name, which is
// unique within a snapshot.
type Snapshot struct {
	generatedAt time.Time
	source      string // report file this snapshot came from, "" if built in memory
	projects    []Project
	byName      map[string]int
}

// NewSnapshot builds a snapshot from already-cleaned project records.
// Two records sharing a canonical name make the snapshot ambiguous and
// return a DuplicateProjectError naming both raw labels.
func NewSnapshot(generatedAt time.Time, projects ...Project) (*Snapshot, error) {
	s := &Snapshot{
		generatedAt: generatedAt,
		projects:    make([]Project, 0, len(projects)),
		byName:      make(map[string]int, len(projects)),
	}
	for _, p := range projects {
		if prev, ok := s.byName[p.Name]; ok {
			return nil, &DuplicateProjectError{
				Name:      p.Name,
				FirstRaw:  s.projects[prev].RawName,
				SecondRaw: p.RawName,
			}
		}
		s.byName[p.Name] = len(s.projects)
		s.projects = append(s.projects, p)
	}
	return s, nil
}

// GeneratedAt returns the report generation time.
func (s *Snapshot) GeneratedAt() time.Time { return s.generatedAt }

// Date returns the report generation day as YYYY-MM-DD, the form used
// in table titles.
func (s *Snapshot) Date() string { return s.generatedAt.Format("2006-01-02") }

// Source returns the path of the report file this snapshot was read
// from, or "" for snapshots assembled in memory.
func (s *Snapshot) Source() string { return s.source }

// Len returns the number of projects in the snapshot.
func (s *Snapshot) Len() int { return len(s.projects) }

// Projects iterates the snapshot's projects in Summary-sheet order.
func (s *Snapshot) Projects() iter.Seq[*Project] {
	return func(yield func(*Project) bool) {
		for i := range s.projects {
			if !yield(&s.projects[i]) {
				return
			}
		}
	}
}

// Project looks a project up by its canonical name.
func (s *Snapshot) Project(name string) (*Project, bool) {
	i, ok := s.byName[name]
	if !ok {
		return nil, false
	}
	return &s.projects[i], true
}

// SortSnapshots orders snapshots by their generation time, oldest first
// when ascending is true and newest first otherwise. The sort is stable
// so reports generated at the same instant keep their load order.
func SortSnapshots(snapshots []*Snapshot, ascending bool) {
	sort.SliceStable(snapshots, func(i, j int) bool {
		if ascending {
			return snapshots[i].generatedAt.Before(snapshots[j].generatedAt)
		}
		return snapshots[i].generatedAt.After(snapshots[j].generatedAt)
	})
}
