package aggie

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/dave-doty/aggie-unterprise/workbook"
)

// Sheet and column titles as AggieEnterprise writes them. Columns are
// found by title, never by position; only the titles below are part of
// the contract and the rest of each sheet is ignored.
const (
	SummarySheet = "Summary"
	DetailSheet  = "Detail"

	// Both sheets put a report preamble of varying height above the
	// column titles. The header row is the one whose first cell reads
	// headerMarker, somewhere within the first headerScanRows rows.
	headerMarker   = "Award Number"
	headerScanRows = 32

	colProject  = "Project Name"
	colTask     = "Task/Subtask Name"
	colType     = "Project Type"
	colBudget   = "Budget"
	colExpenses = "Expenses"
	colBalance  = "Budget Balance (Budget – (Comm & Exp))"
	colCategory = "Expenditure Category Name"
)

// The report generation time sits in cell A3 of the Summary sheet, as
// "Report Run Date: 2024-08-05 09:15:00 AM". The prefix is optional so
// that exports which drop the label still read.
const (
	timestampRow    = 2
	timestampCol    = 0
	timestampPrefix = "Report Run Date:"
	timestampLayout = "2006-01-02 03:04:05 PM"
)

// FromFile reads one AggieEnterprise report and returns its snapshot.
//
// The Summary sheet provides one row per project with its totals; the
// Detail sheet provides the per-category breakdown, matched back to
// Summary rows by the raw project label. Labels are cleaned through
// rules after the Internal-project task substitution; two rows cleaning
// to the same canonical name abort with a DuplicateProjectError.
func FromFile(path string, rules CleaningRules) (*Snapshot, error) {
	wb, err := workbook.Open(path)
	if err != nil {
		return nil, err
	}
	defer wb.Close()
	return fromWorkbook(wb, rules)
}

func fromWorkbook(wb *workbook.Workbook, rules CleaningRules) (*Snapshot, error) {
	path := wb.Path()

	summary, err := summaryTable(wb)
	if err != nil {
		return nil, err
	}
	generatedAt, err := runTimestamp(summary.sheet, path)
	if err != nil {
		return nil, err
	}

	var (
		projects []Project
		byName   = make(map[string]int)
		byRaw    = make(map[string][]int)
	)
	for rec := range summary.table.Rows() {
		raw := rec.Get(colProject)
		// Summary sheets interleave real rows with blank separators
		// and subtotal furniture; a row missing any of the three core
		// cells is not a project.
		if isBlank(raw) || isBlank(rec.Get(colBudget)) || isBlank(rec.Get(colExpenses)) {
			continue
		}

		kindCell := rec.Get(colType)
		kind, ok := ParseKind(kindCell)
		if !ok {
			return nil, &SchemaError{
				Path: path, Sheet: SummarySheet, Cell: rec.Ref(colType),
				Msg: fmt.Sprintf("project type %q is neither Sponsored nor Internal", kindCell),
			}
		}

		budget, err := moneyCell(path, SummarySheet, rec, colBudget)
		if err != nil {
			return nil, err
		}
		expenses, err := moneyCell(path, SummarySheet, rec, colExpenses)
		if err != nil {
			return nil, err
		}
		// An empty balance cell reads as zero; fully spent projects
		// sometimes have it blanked instead of holding 0.
		var balance Money
		if !isBlank(rec.Get(colBalance)) {
			if balance, err = moneyCell(path, SummarySheet, rec, colBalance); err != nil {
				return nil, err
			}
		}

		task := rec.Get(colTask)
		name, err := rules.Clean(raw, kind, task)
		if err != nil {
			return nil, fmt.Errorf("report %s: %w", path, err)
		}
		if prev, ok := byName[name]; ok {
			return nil, fmt.Errorf("report %s: %w", path, &DuplicateProjectError{
				Name:      name,
				FirstRaw:  projects[prev].RawName,
				SecondRaw: raw,
				HasRules:  !rules.Empty(),
			})
		}

		byName[name] = len(projects)
		byRaw[raw] = append(byRaw[raw], len(projects))
		projects = append(projects, Project{
			Name:     name,
			RawName:  raw,
			Kind:     kind,
			Task:     task,
			Budget:   budget,
			Expenses: expenses,
			Balance:  balance,
		})
	}

	if err := fillCategories(wb, path, projects, byRaw); err != nil {
		return nil, err
	}

	return &Snapshot{
		generatedAt: generatedAt,
		source:      path,
		projects:    projects,
		byName:      byName,
	}, nil
}

// fillCategories walks the Detail sheet once and accumulates each row's
// expense amount into every Summary project sharing its raw label.
// Internal projects all carry the same label, so one Detail row can
// feed several projects, exactly as if each had scanned the sheet for
// itself.
func fillCategories(wb *workbook.Workbook, path string, projects []Project, byRaw map[string][]int) error {
	detail, err := detailTable(wb)
	if err != nil {
		return err
	}

	matched := make(map[string]bool, len(byRaw))
	for rec := range detail.table.Rows() {
		raw := rec.Get(colProject)
		indices, ok := byRaw[raw]
		if !ok {
			continue
		}
		matched[raw] = true

		label := rec.Get(colCategory)
		category, ok := ClassifyCategory(label)
		if !ok {
			log.Warn("unknown expense category; amount not bucketed",
				"category", label, "project", raw, "cell", rec.Ref(colCategory))
			continue
		}
		if isBlank(rec.Get(colExpenses)) {
			continue
		}
		amount, err := moneyCell(path, DetailSheet, rec, colExpenses)
		if err != nil {
			return err
		}
		for _, i := range indices {
			projects[i].addCategory(category, amount)
		}
	}

	// Every Summary project must appear on the Detail sheet at least
	// once; the two sheets describe the same report run.
	for i := range projects {
		if !matched[projects[i].RawName] {
			return fmt.Errorf("report %s: %w", path, &ProjectNotFoundError{RawName: projects[i].RawName})
		}
	}
	return nil
}

// sheetTable bundles a loaded sheet with its located header table.
type sheetTable struct {
	sheet *workbook.Sheet
	table *workbook.Table
}

func summaryTable(wb *workbook.Workbook) (sheetTable, error) {
	return locateTable(wb, SummarySheet,
		colProject, colTask, colType, colBudget, colExpenses, colBalance)
}

func detailTable(wb *workbook.Workbook) (sheetTable, error) {
	return locateTable(wb, DetailSheet, colProject, colCategory, colExpenses)
}

func locateTable(wb *workbook.Workbook, sheetName string, columns ...string) (sheetTable, error) {
	sheet, err := wb.Sheet(sheetName)
	if err != nil {
		return sheetTable{}, &SchemaError{Path: wb.Path(), Msg: "unexpected report layout", Err: err}
	}
	header, err := sheet.Locate(0, headerMarker, headerScanRows)
	if err != nil {
		return sheetTable{}, &SchemaError{Path: wb.Path(), Sheet: sheetName, Msg: "unexpected report layout", Err: err}
	}
	table, err := sheet.TableAt(header, columns...)
	if err != nil {
		return sheetTable{}, &SchemaError{Path: wb.Path(), Sheet: sheetName, Msg: "unexpected report layout", Err: err}
	}
	return sheetTable{sheet: sheet, table: table}, nil
}

// runTimestamp reads the report generation time from the Summary
// preamble.
func runTimestamp(sheet *workbook.Sheet, path string) (time.Time, error) {
	raw := sheet.Value(timestampRow, timestampCol)
	value := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(raw), timestampPrefix))
	t, err := time.Parse(timestampLayout, value)
	if err != nil {
		return time.Time{}, &SchemaError{
			Path: path, Sheet: SummarySheet, Cell: workbook.Ref(timestampRow, timestampCol),
			Msg: fmt.Sprintf("cannot parse run timestamp %q", raw), Err: err,
		}
	}
	return t, nil
}

// moneyCell parses a dollar cell, attaching the cell's position to any
// parse failure.
func moneyCell(path, sheetName string, rec workbook.Record, column string) (Money, error) {
	value := rec.Get(column)
	m, err := parseAmount(value)
	if err != nil {
		return Money{}, &SchemaError{
			Path: path, Sheet: sheetName, Cell: rec.Ref(column),
			Msg: fmt.Sprintf("not a dollar amount: %q", value), Err: err,
		}
	}
	return m, nil
}

// parseAmount reads a dollar amount as spreadsheets format them. Cells
// normally hold bare numbers, but a currency display format leaks its
// symbol and thousands separators into the value, and accounting
// formats parenthesize negatives.
func parseAmount(s string) (Money, error) {
	t := strings.TrimSpace(s)
	neg := false
	if strings.HasPrefix(t, "(") && strings.HasSuffix(t, ")") && len(t) > 2 {
		neg = true
		t = t[1 : len(t)-1]
	}
	t = strings.NewReplacer("$", "", ",", "", " ", "").Replace(t)
	m, err := ParseMoney(t)
	if err != nil {
		return Money{}, err
	}
	if neg {
		m = m.Neg()
	}
	return m, nil
}

func isBlank(s string) bool { return strings.TrimSpace(s) == "" }
