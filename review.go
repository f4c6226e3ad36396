package aggie

import "fmt"

// Diff is the change in one project's figures between two snapshots,
// always computed later minus earlier. A positive Expenses means money
// was spent during the interval; a positive Balance means the balance
// grew (for most projects it shrinks as expenses post).
//
// Budget is carried but always zero: a budget is a standing allocation,
// not a flow, and showing its raw difference next to spending deltas
// invites misreading. Renderers drop the column entirely.
type Diff struct {
	Name string

	Budget     Money
	Expenses   Money
	Balance    Money
	Salary     Money
	Travel     Money
	Supplies   Money
	Fringe     Money
	Fellowship Money
	Indirect   Money
}

// Get returns the diff's value for a field.
func (d *Diff) Get(f Field) Money {
	switch f {
	case Budget:
		return d.Budget
	case Expenses:
		return d.Expenses
	case Balance:
		return d.Balance
	case FieldSalary:
		return d.Salary
	case FieldTravel:
		return d.Travel
	case FieldSupplies:
		return d.Supplies
	case FieldFringe:
		return d.Fringe
	case FieldFellowship:
		return d.Fellowship
	case FieldIndirect:
		return d.Indirect
	}
	return Money{}
}

// Review compares two snapshots of the same grant portfolio taken at
// different times. The earlier snapshot is the baseline; every figure
// reported by the review is the later value minus the earlier one.
type Review struct {
	earlier *Snapshot
	later   *Snapshot
}

// NewReview creates a review of the change from earlier to later.
func NewReview(earlier, later *Snapshot) *Review {
	return &Review{earlier: earlier, later: later}
}

// Earlier returns the baseline snapshot.
func (r *Review) Earlier() *Snapshot { return r.earlier }

// Later returns the more recent snapshot.
func (r *Review) Later() *Snapshot { return r.later }

// Diffs computes per-project changes across the union of both
// snapshots' projects. A project present on only one side is compared
// against an all-zero record, so new projects show their full figures
// and closed projects show theirs negated.
//
// Order follows the later snapshot, with projects that only appear in
// the earlier snapshot appended in their own order.
func (r *Review) Diffs() ([]Diff, error) {
	names := make([]string, 0, r.later.Len()+r.earlier.Len())
	for p := range r.later.Projects() {
		names = append(names, p.Name)
	}
	for p := range r.earlier.Projects() {
		if _, ok := r.later.Project(p.Name); !ok {
			names = append(names, p.Name)
		}
	}

	diffs := make([]Diff, 0, len(names))
	for _, name := range names {
		var l, e Project
		lp, lok := r.later.Project(name)
		ep, eok := r.earlier.Project(name)
		if !lok && !eok {
			return nil, fmt.Errorf("project %q vanished from both snapshots while diffing; this is a bug", name)
		}
		if lok {
			l = *lp
		}
		if eok {
			e = *ep
		}
		diffs = append(diffs, Diff{
			Name:       name,
			Expenses:   l.Expenses.Sub(e.Expenses),
			Balance:    l.Balance.Sub(e.Balance),
			Salary:     l.Salary.Sub(e.Salary),
			Travel:     l.Travel.Sub(e.Travel),
			Supplies:   l.Supplies.Sub(e.Supplies),
			Fringe:     l.Fringe.Sub(e.Fringe),
			Fellowship: l.Fellowship.Sub(e.Fellowship),
			Indirect:   l.Indirect.Sub(e.Indirect),
		})
	}
	return diffs, nil
}
