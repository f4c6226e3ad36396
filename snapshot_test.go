package aggie

import (
	"errors"
	"slices"
	"testing"
	"time"
)

func TestSnapshot(t *testing.T) {
	s := mustSnapshot(t, run(2024, 8, 5),
		Project{Name: "CAREER", RawName: "NSF CAREER K20304932", Kind: Sponsored, Budget: USD(500000)},
		Project{Name: "MURI", RawName: "MURI 127PD8235", Kind: Sponsored, Budget: USD(1000000)},
	)

	t.Run("Metadata", func(t *testing.T) {
		if got, want := s.Date(), "2024-08-05"; got != want {
			t.Errorf("Date() = %q, want %q", got, want)
		}
		if got, want := s.Len(), 2; got != want {
			t.Errorf("Len() = %d, want %d", got, want)
		}
		if got := s.Source(); got != "" {
			t.Errorf("Source() = %q, want empty for an in-memory snapshot", got)
		}
	})

	t.Run("Lookup by canonical name", func(t *testing.T) {
		p, ok := s.Project("MURI")
		if !ok {
			t.Fatal(`Project("MURI") not found`)
		}
		if got, want := p.Budget, USD(1000000); !got.Equal(want) {
			t.Errorf("Budget = %v, want %v", got, want)
		}
		// Only cleaned names identify projects; raw sheet labels do not.
		if _, ok := s.Project("MURI 127PD8235"); ok {
			t.Error("Project() resolved a raw label, want canonical names only")
		}
	})

	t.Run("Iteration keeps sheet order", func(t *testing.T) {
		var names []string
		for p := range s.Projects() {
			names = append(names, p.Name)
		}
		if want := []string{"CAREER", "MURI"}; !slices.Equal(names, want) {
			t.Errorf("Projects() order = %v, want %v", names, want)
		}
	})
}

func TestSnapshotDuplicateName(t *testing.T) {
	_, err := NewSnapshot(run(2024, 8, 5),
		Project{Name: "CAREER", RawName: "NSF CAREER K20304932"},
		Project{Name: "CAREER", RawName: "NSF CAREER K20999999"},
	)
	var dup *DuplicateProjectError
	if !errors.As(err, &dup) {
		t.Fatalf("NewSnapshot() error = %v, want a DuplicateProjectError", err)
	}
	if got, want := dup.Name, "CAREER"; got != want {
		t.Errorf("Name = %q, want %q", got, want)
	}
	if got, want := dup.FirstRaw, "NSF CAREER K20304932"; got != want {
		t.Errorf("FirstRaw = %q, want %q", got, want)
	}
	if got, want := dup.SecondRaw, "NSF CAREER K20999999"; got != want {
		t.Errorf("SecondRaw = %q, want %q", got, want)
	}
}

func TestSortSnapshots(t *testing.T) {
	august := mustSnapshot(t, run(2024, 8, 5))
	june := mustSnapshot(t, run(2024, 6, 3))
	july := mustSnapshot(t, run(2024, 7, 1))

	dates := func(snapshots []*Snapshot) []string {
		var out []string
		for _, s := range snapshots {
			out = append(out, s.Date())
		}
		return out
	}

	t.Run("Newest first", func(t *testing.T) {
		snapshots := []*Snapshot{august, june, july}
		SortSnapshots(snapshots, false)
		want := []string{"2024-08-05", "2024-07-01", "2024-06-03"}
		if got := dates(snapshots); !slices.Equal(got, want) {
			t.Errorf("SortSnapshots(false) = %v, want %v", got, want)
		}
	})

	t.Run("Oldest first", func(t *testing.T) {
		snapshots := []*Snapshot{august, june, july}
		SortSnapshots(snapshots, true)
		want := []string{"2024-06-03", "2024-07-01", "2024-08-05"}
		if got := dates(snapshots); !slices.Equal(got, want) {
			t.Errorf("SortSnapshots(true) = %v, want %v", got, want)
		}
	})

	t.Run("Equal times keep load order", func(t *testing.T) {
		first := mustSnapshot(t, run(2024, 8, 5), Project{Name: "A"})
		second := mustSnapshot(t, run(2024, 8, 5), Project{Name: "B"})
		snapshots := []*Snapshot{first, second}
		SortSnapshots(snapshots, false)
		if snapshots[0] != first || snapshots[1] != second {
			t.Error("SortSnapshots() reordered snapshots with equal generation times")
		}
	})
}

func TestSnapshotGeneratedAt(t *testing.T) {
	when := time.Date(2024, 8, 5, 14, 30, 0, 0, time.UTC)
	s := mustSnapshot(t, when)
	if !s.GeneratedAt().Equal(when) {
		t.Errorf("GeneratedAt() = %v, want %v", s.GeneratedAt(), when)
	}
}
