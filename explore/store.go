// Package explore provides read-only access to a produced bounds database:
// a fixed menu of counts, samples, and region, layout, and lookup queries
// used to inspect and sanity-check extraction output. A Store never mutates
// the database it opens.
package explore

import (
	"database/sql"
	"net/url"
	"os"

	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"

	"github.com/blueheron786/quran-word-position-data/bounds"
)

// Store is a read-only handle of a produced bounds database.
type Store struct {
	// Path of the opened SQLite database.
	Path string

	db *sql.DB
}

// Open opens the SQLite database at |path| read-only, verifying the file
// exists and carries the expected tables. A missing file surfaces as a
// wrapped os.ErrNotExist; a file lacking the tables as a *SchemaError.
func Open(path string) (*Store, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, errors.WithMessage(err, "locating database")
	}
	var uri = "file:" + path + "?" + url.Values{"mode": {"ro"}}.Encode()

	var db, err = sql.Open("sqlite3", uri)
	if err != nil {
		return nil, errors.WithMessage(err, "opening database")
	}
	var s = &Store{Path: path, db: db}

	if err = s.verifySchema(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// Close releases the Store's database handle.
func (s *Store) Close() error { return s.db.Close() }

func (s *Store) verifySchema() error {
	var missing []string
	for _, table := range []string{"word_bounds", "glyph_bounds"} {
		var n int
		if err := s.db.QueryRow(
			`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?;`,
			table).Scan(&n); err != nil {
			return errors.WithMessage(err, "verifying schema")
		} else if n == 0 {
			missing = append(missing, table)
		}
	}
	if len(missing) != 0 {
		return &SchemaError{Missing: missing}
	}
	return nil
}

// Count returns the row count of |table|, which must be word_bounds or
// glyph_bounds.
func (s *Store) Count(table string) (int64, error) {
	if err := validTable(table); err != nil {
		return 0, err
	}
	var n int64
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM ` + table + `;`).Scan(&n); err != nil {
		return 0, errors.WithMessagef(err, "counting %s", table)
	}
	return n, nil
}

// Sample returns the first |n| rows of |table| in storage order. Storage
// order reflects extraction insert order but is not a contract of the data;
// Sample is for display only. Rows of word_bounds are returned with the
// ayah-text line type, which all words carry.
func (s *Store) Sample(table string, n int) ([]bounds.GlyphBound, error) {
	if err := validTable(table); err != nil {
		return nil, err
	}
	var stmt = `SELECT ` + bounds.WordColumns + ` FROM word_bounds LIMIT ?;`
	if table == "glyph_bounds" {
		stmt = `SELECT ` + bounds.GlyphColumns + ` FROM glyph_bounds LIMIT ?;`
	}
	var rows, err = s.db.Query(stmt, n)
	if err != nil {
		return nil, errors.WithMessagef(err, "sampling %s", table)
	}
	defer rows.Close()

	var out []bounds.GlyphBound
	for rows.Next() {
		var g = bounds.GlyphBound{LineType: bounds.AyahText}

		if table == "glyph_bounds" {
			err = scanGlyph(rows, &g)
		} else {
			err = scanWord(rows, &g.WordBound)
		}
		if err != nil {
			return nil, errors.WithMessage(err, "scanning sample")
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

// Summary aggregates whole-database statistics.
type Summary struct {
	// Words and Glyphs are the row counts of the two tables.
	Words, Glyphs int64
	// Pages is the count of distinct pages holding words, and
	// MinPage/MaxPage their range.
	Pages            int64
	MinPage, MaxPage int
	// Suras is the count of distinct suras holding words, and
	// MinSura/MaxSura their range.
	Suras            int64
	MinSura, MaxSura int
}

// Summary returns whole-database totals: row counts of both tables, and the
// distinct page and sura counts and ranges of word_bounds.
func (s *Store) Summary() (Summary, error) {
	var out Summary
	var err error

	if out.Words, err = s.Count("word_bounds"); err != nil {
		return out, err
	} else if out.Glyphs, err = s.Count("glyph_bounds"); err != nil {
		return out, err
	} else if out.Words == 0 {
		return out, nil
	}

	if err = s.db.QueryRow(`
		SELECT COUNT(DISTINCT page_number), MIN(page_number), MAX(page_number),
		       COUNT(DISTINCT sura_number), MIN(sura_number), MAX(sura_number)
		FROM word_bounds;`).Scan(
		&out.Pages, &out.MinPage, &out.MaxPage,
		&out.Suras, &out.MinSura, &out.MaxSura); err != nil {
		return out, errors.WithMessage(err, "aggregating word_bounds")
	}
	return out, nil
}

// PageStats aggregates one page of the mushaf.
type PageStats struct {
	Page   int
	Words  int64 // Word count of the page.
	Glyphs int64 // Glyph count of the page.
	Lines  int64 // Distinct rendered lines.
	Suras  int64 // Distinct suras appearing on the page.
}

// PageStats returns aggregate counts of one page.
func (s *Store) PageStats(page int) (PageStats, error) {
	var out = PageStats{Page: page}

	if err := s.db.QueryRow(
		`SELECT COUNT(*) FROM word_bounds WHERE page_number = ?;`, page).
		Scan(&out.Words); err != nil {
		return out, errors.WithMessage(err, "counting page words")
	}
	if err := s.db.QueryRow(`
		SELECT COUNT(*), COUNT(DISTINCT line_number), COUNT(DISTINCT sura_number)
		FROM glyph_bounds WHERE page_number = ?;`, page).
		Scan(&out.Glyphs, &out.Lines, &out.Suras); err != nil {
		return out, errors.WithMessage(err, "aggregating page glyphs")
	}
	return out, nil
}

// Tables lists the user tables of the database.
func (s *Store) Tables() ([]string, error) {
	var rows, err = s.db.Query(
		`SELECT name FROM sqlite_master WHERE type = 'table' ORDER BY name;`)
	if err != nil {
		return nil, errors.WithMessage(err, "listing tables")
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var name string
		if err = rows.Scan(&name); err != nil {
			return nil, errors.WithMessage(err, "scanning table name")
		}
		out = append(out, name)
	}
	return out, rows.Err()
}

// Column describes one column of a table.
type Column struct {
	Name string
	Type string
}

// Columns lists the columns of |table| in schema order.
func (s *Store) Columns(table string) ([]Column, error) {
	if err := validTable(table); err != nil {
		return nil, err
	}
	var rows, err = s.db.Query(`SELECT name, type FROM pragma_table_info(?);`, table)
	if err != nil {
		return nil, errors.WithMessagef(err, "describing %s", table)
	}
	defer rows.Close()

	var out []Column
	for rows.Next() {
		var c Column
		if err = rows.Scan(&c.Name, &c.Type); err != nil {
			return nil, errors.WithMessage(err, "scanning column")
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func validTable(table string) error {
	switch table {
	case "word_bounds", "glyph_bounds":
		return nil
	default:
		return errors.Errorf("unknown table (%s; expected word_bounds or glyph_bounds)", table)
	}
}

// rowScanner is implemented by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanWord(r rowScanner, b *bounds.WordBound) error {
	return r.Scan(
		&b.PageNumber, &b.SuraNumber, &b.AyahNumber, &b.WordPosition,
		&b.ArabicWord, &b.GlyphCode, &b.ImgWidth,
		&b.MinX, &b.MaxX, &b.MinY, &b.MaxY,
		&b.LineNumber, &b.LinePosition)
}

func scanGlyph(r rowScanner, g *bounds.GlyphBound) error {
	return r.Scan(
		&g.PageNumber, &g.SuraNumber, &g.AyahNumber, &g.WordPosition,
		&g.ArabicWord, &g.GlyphCode, &g.ImgWidth,
		&g.MinX, &g.MaxX, &g.MinY, &g.MaxY,
		&g.LineNumber, &g.LinePosition, &g.LineType)
}

func scanWords(rows *sql.Rows) ([]bounds.WordBound, error) {
	defer rows.Close()

	var out []bounds.WordBound
	for rows.Next() {
		var b bounds.WordBound
		if err := scanWord(rows, &b); err != nil {
			return nil, errors.WithMessage(err, "scanning word")
		}
		out = append(out, b)
	}
	return out, rows.Err()
}
