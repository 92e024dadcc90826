// Package statement builds parameterized INSERT and UPDATE statements
// from attribute mappings and translates backend-agnostic placeholder
// markers into each dialect's native syntax.
//
// Statements are built with the agnostic "?" marker and an ordered bind
// slice; Translate adapts them to the target dialect before execution.
// Table and column names are taken only from caller-supplied identifiers
// (the same trust boundary as raw SQL text in the calling application);
// values are always passed as binds, never interpolated.
package statement

import (
	"fmt"
	"sort"
	"strings"

	"github.com/campbsb/sqlhelper/driver"
)

// Attr is one column/value pair.
type Attr struct {
	Column string
	Value  any
}

// Attrs is an ordered column-to-value mapping. Order matters: generated
// column lists and bind sequences follow slice order, so Go's unordered
// maps are not used directly.
type Attrs []Attr

// Columns returns the column names in order.
func (a Attrs) Columns() []string {
	cols := make([]string, len(a))
	for i, attr := range a {
		cols[i] = attr.Column
	}
	return cols
}

// Values returns the values in order.
func (a Attrs) Values() []any {
	vals := make([]any, len(a))
	for i, attr := range a {
		vals[i] = attr.Value
	}
	return vals
}

// AttrsFromMap converts a plain map into Attrs with columns in sorted
// order, giving deterministic statement text.
func AttrsFromMap(m map[string]any) Attrs {
	cols := make([]string, 0, len(m))
	for col := range m {
		cols = append(cols, col)
	}
	sort.Strings(cols)

	attrs := make(Attrs, len(cols))
	for i, col := range cols {
		attrs[i] = Attr{Column: col, Value: m[col]}
	}
	return attrs
}

// BuildInsert produces an INSERT statement for one row. Columns appear
// in the mapping's order with one marker per column; the bind sequence
// is the mapping's values in the same order.
func BuildInsert(d driver.Dialect, table string, attrs Attrs) (string, []any, error) {
	if len(attrs) == 0 {
		return "", nil, fmt.Errorf("insert into %s: %w", table, ErrEmptyAttributes)
	}

	var sb strings.Builder
	sb.WriteString("INSERT INTO ")
	sb.WriteString(d.Quote(table))
	sb.WriteString(" (")
	for i, attr := range attrs {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(d.Quote(attr.Column))
	}
	sb.WriteString(") VALUES (")
	for i := range attrs {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("?")
	}
	sb.WriteString(")")

	return sb.String(), attrs.Values(), nil
}

// BuildUpdate produces an UPDATE statement. The bind sequence is the
// attribute values followed by the filter values, each in mapping order.
// Filters combine with AND using equality semantics.
//
// An empty filter mapping produces an unconditional UPDATE with no WHERE
// clause. Callers wanting a guard against that should use
// sqlhelper.Update, which rejects empty filters unless the unconditional
// form is explicitly requested.
func BuildUpdate(d driver.Dialect, table string, attrs, filters Attrs) (string, []any, error) {
	if len(attrs) == 0 {
		return "", nil, fmt.Errorf("update %s: %w", table, ErrEmptyAttributes)
	}

	var sb strings.Builder
	sb.WriteString("UPDATE ")
	sb.WriteString(d.Quote(table))
	sb.WriteString(" SET ")
	for i, attr := range attrs {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(d.Quote(attr.Column))
		sb.WriteString(" = ?")
	}

	binds := attrs.Values()
	if len(filters) > 0 {
		sb.WriteString(" WHERE ")
		for i, f := range filters {
			if i > 0 {
				sb.WriteString(" AND ")
			}
			sb.WriteString(d.Quote(f.Column))
			sb.WriteString(" = ?")
		}
		binds = append(binds, filters.Values()...)
	}

	return sb.String(), binds, nil
}
