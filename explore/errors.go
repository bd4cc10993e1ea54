package explore

import (
	"fmt"
	"strings"
)

// SchemaError indicates an opened database doesn't carry the expected
// word_bounds and glyph_bounds tables: typically the path names a foreign
// or empty SQLite file rather than extraction output.
type SchemaError struct {
	// Missing are the expected table names absent from the database.
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("database is missing expected tables (%s)",
		strings.Join(e.Missing, ", "))
}
