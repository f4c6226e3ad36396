package aggie

// Project holds one project's financial figures within a single report
// run. Records are built once by the snapshot builder and not modified
// afterwards.
//
// Name is the cleaned, canonical project name; RawName is the label as
// it appeared on the Summary sheet, kept for error messages and for
// matching the Detail sheet, which always uses the raw label.
type Project struct {
	Name    string
	RawName string
	Kind    Kind
	Task    string

	Budget   Money
	Expenses Money
	Balance  Money

	// Per-category expenses, accumulated from the Detail sheet. A
	// category that never appears for the project stays at zero.
	Salary     Money
	Travel     Money
	Supplies   Money
	Fringe     Money
	Fellowship Money
	Indirect   Money
}

// Get returns the figure selected by f.
func (p *Project) Get(f Field) Money {
	switch f {
	case Balance:
		return p.Balance
	case Expenses:
		return p.Expenses
	case FieldSalary:
		return p.Salary
	case FieldTravel:
		return p.Travel
	case FieldSupplies:
		return p.Supplies
	case FieldFringe:
		return p.Fringe
	case FieldFellowship:
		return p.Fellowship
	case FieldIndirect:
		return p.Indirect
	case Budget:
		return p.Budget
	default:
		return Money{}
	}
}

// addCategory accumulates an expense amount into the bucket c. Detail
// sheets can carry several rows for the same project and category
// (e.g. academic and staff salaries), so amounts add up rather than
// overwrite.
func (p *Project) addCategory(c Category, amount Money) {
	switch c {
	case Salary:
		p.Salary = p.Salary.Add(amount)
	case Travel:
		p.Travel = p.Travel.Add(amount)
	case Supplies:
		p.Supplies = p.Supplies.Add(amount)
	case Fringe:
		p.Fringe = p.Fringe.Add(amount)
	case Fellowship:
		p.Fellowship = p.Fellowship.Add(amount)
	case Indirect:
		p.Indirect = p.Indirect.Add(amount)
	}
}
