// Package renderer turns snapshots and reviews into markdown tables.
// Output is plain GitHub-flavored markdown; the cmd package decides
// whether to pretty-print it to a terminal or write it to a file.
package renderer

import (
	"strings"

	"github.com/Rhymond/go-money"

	aggie "github.com/dave-doty/aggie-unterprise"
)

// Style is the currency formatting configuration injected into the
// tables: which symbol to show and how to punctuate the number. The
// zero value renders US dollars ("$1,234.56"). Nothing here reads the
// process locale, so the same inputs render the same bytes on any
// machine.
type Style struct {
	Symbol   string // currency symbol, default "$"
	Decimal  string // decimal separator, default "."
	Thousand string // thousands separator, default ","
}

// Options configures table rendering.
type Options struct {
	// Fields selects the amount columns and their order. Empty means
	// the default set for the table being rendered.
	Fields []aggie.Field
	// Cents shows amounts to the cent; the default rounds to whole
	// dollars, which is what the reports are usually eyeballed in.
	Cents bool
	// Style sets the currency formatting; the zero value is US
	// dollars.
	Style Style
}

func (o Options) fields(def []aggie.Field) []aggie.Field {
	if len(o.Fields) == 0 {
		return def
	}
	return o.Fields
}

// formatter builds the amount formatter for o, filling unset Style
// fields with the US-dollar defaults. Negative amounts come out with
// the minus sign ahead of the symbol: "-$500".
func (o Options) formatter() *money.Formatter {
	usd := money.GetCurrency(money.USD)
	style := o.Style
	if style.Symbol == "" {
		style.Symbol = usd.Grapheme
	}
	if style.Decimal == "" {
		style.Decimal = usd.Decimal
	}
	if style.Thousand == "" {
		style.Thousand = usd.Thousand
	}
	fraction := usd.Fraction
	if !o.Cents {
		fraction = 0
	}
	return money.NewFormatter(fraction, style.Decimal, style.Thousand, style.Symbol, usd.Template)
}

// cell formats one amount for a table cell. The dollar sign is escaped
// because markdown viewers read paired $...$ as TeX math and would eat
// everything between two amounts on the same row.
func cell(f *money.Formatter, m aggie.Money, cents bool) string {
	var minor int64
	if cents {
		minor = m.Cents()
	} else {
		minor = m.Decimal().Round(0).IntPart()
	}
	return strings.ReplaceAll(f.Format(minor), "$", `\$`)
}
