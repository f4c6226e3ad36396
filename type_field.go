package aggie

import (
	"fmt"
	"strings"
)

// Field names one of the financial figures carried by a Project, as
// used to choose and order the columns of a rendered table.
type Field int

const (
	Balance Field = iota
	Expenses
	FieldSalary
	FieldTravel
	FieldSupplies
	FieldFringe
	FieldFellowship
	FieldIndirect
	Budget
)

func (f Field) String() string {
	switch f {
	case Balance:
		return "Balance"
	case Expenses:
		return "Expenses"
	case FieldSalary:
		return "Salary"
	case FieldTravel:
		return "Travel"
	case FieldSupplies:
		return "Supplies"
	case FieldFringe:
		return "Fringe"
	case FieldFellowship:
		return "Fellowship"
	case FieldIndirect:
		return "Indirect"
	case Budget:
		return "Budget"
	default:
		return "unknown"
	}
}

// SummaryFields is the column set and order of a rendered snapshot
// table, matching the layout of the reports this tool replaces.
var SummaryFields = []Field{Balance, Expenses, FieldSalary, FieldTravel, FieldSupplies, FieldFringe, FieldFellowship, FieldIndirect, Budget}

// DiffFields is the column set and order of a rendered diff table.
// Budget is absent: it is expected constant between report runs and a
// budget delta would only ever show reporting noise.
var DiffFields = []Field{Expenses, FieldSalary, FieldTravel, FieldSupplies, FieldFringe, FieldFellowship, FieldIndirect, Balance}

// ParseField parses a single column name, ignoring case.
func ParseField(s string) (Field, error) {
	for _, f := range SummaryFields {
		if strings.EqualFold(s, f.String()) {
			return f, nil
		}
	}
	return 0, fmt.Errorf("unknown column: %q", s)
}

// ParseFields parses a comma-separated column list, e.g.
// "expenses,salary,balance", preserving the given order.
func ParseFields(s string) ([]Field, error) {
	var fields []Field
	for _, name := range strings.Split(s, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		f, err := ParseField(name)
		if err != nil {
			return nil, err
		}
		fields = append(fields, f)
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("empty column list: %q", s)
	}
	return fields, nil
}
