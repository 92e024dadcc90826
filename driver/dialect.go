package driver

import "strconv"

// PlaceholderStyle identifies how an engine marks bind positions.
type PlaceholderStyle int

const (
	// Positional engines use "?" for every bind position (MySQL, SQLite).
	Positional PlaceholderStyle = iota
	// Numbered engines use "$1", "$2", ... (PostgreSQL).
	Numbered
	// Named engines use ":name" markers paired with named arguments.
	Named
)

// Dialect describes the placeholder and quoting rules of one engine.
type Dialect interface {
	// Style reports the engine's placeholder style.
	Style() PlaceholderStyle

	// Marker returns the native marker for the n-th bind position (1-based).
	Marker(n int) string

	// Quote quotes an identifier such as a table or column name.
	Quote(name string) string
}

// Ready-made dialects for the supported engines.
var (
	MySQL    Dialect = dialect{style: Positional, quote: "`"}
	SQLite   Dialect = dialect{style: Positional, quote: "`"}
	Postgres Dialect = dialect{style: Numbered, quote: `"`}
)

type dialect struct {
	style PlaceholderStyle
	quote string
}

func (d dialect) Style() PlaceholderStyle { return d.style }

func (d dialect) Marker(n int) string {
	switch d.style {
	case Numbered:
		return "$" + strconv.Itoa(n)
	case Named:
		return ":p" + strconv.Itoa(n)
	default:
		return "?"
	}
}

func (d dialect) Quote(name string) string {
	return d.quote + name + d.quote
}
