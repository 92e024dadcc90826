package statement

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"github.com/campbsb/sqlhelper/driver"
)

// Translate rewrites the backend-agnostic "?" marker into the dialect's
// native placeholder syntax and returns the statement text plus the bind
// values to pass to the driver.
//
// The scan is quote-aware: a "?" inside a single-quoted or double-quoted
// string literal, or a backtick-quoted identifier, is never treated as a
// placeholder. Doubled quotes inside a literal ('It''s') are handled by
// the open/close toggle.
//
// For Positional dialects the text is unchanged. For Numbered dialects
// each marker becomes $1, $2, ... in left-to-right order. For Named
// dialects each marker is rewritten to a distinct synthetic name and the
// binds are paired with those names via sql.Named.
//
// Returns ErrBindCountMismatch when the marker count does not equal
// len(binds).
func Translate(d driver.Dialect, query string, binds []any) (string, []any, error) {
	var sb strings.Builder
	sb.Grow(len(query))

	var quote rune
	n := 0
	for _, r := range query {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			}
			sb.WriteRune(r)
		case r == '\'' || r == '"' || r == '`':
			quote = r
			sb.WriteRune(r)
		case r == '?':
			n++
			sb.WriteString(d.Marker(n))
		default:
			sb.WriteRune(r)
		}
	}

	if n != len(binds) {
		return "", nil, fmt.Errorf("%w: %d markers, %d bind values",
			ErrBindCountMismatch, n, len(binds))
	}

	if d.Style() == driver.Named {
		// Named markers pair binds with the synthetic names generated
		// above rather than with positions.
		named := make([]any, len(binds))
		for i, v := range binds {
			named[i] = sql.Named("p"+strconv.Itoa(i+1), v)
		}
		return sb.String(), named, nil
	}

	return sb.String(), binds, nil
}
