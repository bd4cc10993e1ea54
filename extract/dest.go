package extract

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"

	"github.com/blueheron786/quran-word-position-data/bounds"
)

// OpenDest opens the destination SQLite database at |path|, creating the
// file if it doesn't yet exist. An unwritable path fails here.
func OpenDest(path string) (*sql.DB, error) {
	var db, err = sql.Open("sqlite3", path)
	if err != nil {
		return nil, errors.WithMessage(err, "opening destination")
	}
	if err = db.Ping(); err != nil {
		_ = db.Close()
		return nil, errors.WithMessagef(err, "creating destination %s", path)
	}
	return db, nil
}

// CreateSchema drops and re-creates the destination tables and their
// indexes. Re-running an extraction replaces prior content wholesale rather
// than appending to it.
func CreateSchema(dest *sql.DB) error {
	for _, stmt := range bounds.SchemaStmts {
		if _, err := dest.Exec(stmt); err != nil {
			return errors.WithMessage(err, "creating schema")
		}
	}
	return nil
}

// wordSource is the subset of WordReader required by LoadWords.
type wordSource interface {
	Next() bool
	Bound() bounds.WordBound
	Err() error
}

// glyphSource is the subset of GlyphReader required by LoadGlyphs.
type glyphSource interface {
	Next() bool
	Bound() bounds.GlyphBound
	Err() error
}

// LoadWords drains |r| into word_bounds within a single transaction,
// returning the number of rows inserted. A mid-load failure rolls back,
// leaving the table empty rather than partially loaded.
func LoadWords(dest *sql.DB, r wordSource) (n int64, err error) {
	var txn *sql.Tx
	if txn, err = dest.Begin(); err != nil {
		return 0, errors.WithMessage(err, "beginning transaction")
	}
	defer func() {
		if err != nil {
			_ = txn.Rollback()
		}
	}()

	var insert *sql.Stmt
	if insert, err = txn.Prepare(bounds.InsertWordBoundStmt); err != nil {
		return 0, errors.WithMessage(err, "preparing word insert")
	}

	for r.Next() {
		var b = r.Bound()
		if _, err = insert.Exec(
			b.PageNumber, b.SuraNumber, b.AyahNumber, b.WordPosition,
			b.ArabicWord, b.GlyphCode, b.ImgWidth,
			b.MinX, b.MaxX, b.MinY, b.MaxY,
			b.LineNumber, b.LinePosition,
		); err != nil {
			return n, errors.WithMessage(err, "inserting word")
		}
		n++
	}
	if err = r.Err(); err != nil {
		return n, errors.WithMessage(err, "reading source words")
	}
	if err = txn.Commit(); err != nil {
		return n, errors.WithMessage(err, "committing word_bounds")
	}
	return n, nil
}

// LoadGlyphs drains |r| into glyph_bounds within a single transaction,
// returning the number of rows inserted. A mid-load failure rolls back,
// leaving the table empty rather than partially loaded.
func LoadGlyphs(dest *sql.DB, r glyphSource) (n int64, err error) {
	var txn *sql.Tx
	if txn, err = dest.Begin(); err != nil {
		return 0, errors.WithMessage(err, "beginning transaction")
	}
	defer func() {
		if err != nil {
			_ = txn.Rollback()
		}
	}()

	var insert *sql.Stmt
	if insert, err = txn.Prepare(bounds.InsertGlyphBoundStmt); err != nil {
		return 0, errors.WithMessage(err, "preparing glyph insert")
	}

	for r.Next() {
		var g = r.Bound()
		if _, err = insert.Exec(
			g.PageNumber, g.SuraNumber, g.AyahNumber, g.WordPosition,
			g.ArabicWord, g.GlyphCode, g.ImgWidth,
			g.MinX, g.MaxX, g.MinY, g.MaxY,
			g.LineNumber, g.LinePosition,
			string(g.LineType),
		); err != nil {
			return n, errors.WithMessage(err, "inserting glyph")
		}
		n++
	}
	if err = r.Err(); err != nil {
		return n, errors.WithMessage(err, "reading source glyphs")
	}
	if err = txn.Commit(); err != nil {
		return n, errors.WithMessage(err, "committing glyph_bounds")
	}
	return n, nil
}
