package extract

import (
	"database/sql"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/blueheron786/quran-word-position-data/bounds"
)

// OpenSource opens and verifies a connection to the upstream relational
// store holding the Perl pipeline's glyph table. It fails fast on an
// unreachable source, before any destination file is created or modified.
// |driver| is "mysql" for the upstream store itself, or "postgres" for a
// mirrored copy; tests exercise the same path with the sqlite3 driver.
func OpenSource(driver, dsn string) (*sql.DB, error) {
	var db, err = sql.Open(driver, dsn)
	if err != nil {
		return nil, errors.WithMessage(err, "opening source")
	}
	if err = db.Ping(); err != nil {
		_ = db.Close()
		return nil, errors.WithMessage(err, "connecting to source")
	}
	return db, nil
}

// sourceRow is one row of the upstream glyph table, scanned through nullable
// fields so that a malformed row is skipped rather than failing the batch.
type sourceRow struct {
	glyphID  sql.NullInt64
	page     sql.NullInt64
	line     sql.NullInt64
	lineKind sql.NullString
	linePos  sql.NullInt64
	sura     sql.NullInt64
	ayah     sql.NullInt64
	word     sql.NullInt64
	text     sql.NullString
	imgW     sql.NullInt64
	x1, x2   sql.NullInt64
	y1, y2   sql.NullInt64
}

func (r *sourceRow) scan(rows *sql.Rows) error {
	return rows.Scan(&r.glyphID, &r.page, &r.line, &r.lineKind, &r.linePos,
		&r.sura, &r.ayah, &r.word, &r.text, &r.imgW,
		&r.x1, &r.x2, &r.y1, &r.y2)
}

// bound maps a scanned source row into a validated GlyphBound, renaming the
// pipeline's column values into destination terms.
func (r *sourceRow) bound() (bounds.GlyphBound, error) {
	var nulls = []struct {
		name  string
		valid bool
	}{
		{"glyph_id", r.glyphID.Valid},
		{"page", r.page.Valid},
		{"line", r.line.Valid},
		{"line_kind", r.lineKind.Valid},
		{"line_pos", r.linePos.Valid},
		{"sura", r.sura.Valid},
		{"ayah", r.ayah.Valid},
		{"word", r.word.Valid},
		{"text", r.text.Valid},
		{"img_w", r.imgW.Valid},
		{"x1", r.x1.Valid},
		{"x2", r.x2.Valid},
		{"y1", r.y1.Valid},
		{"y2", r.y2.Valid},
	}
	for _, n := range nulls {
		if !n.valid {
			return bounds.GlyphBound{}, errors.Errorf("null %s", n.name)
		}
	}
	var lineType, err = bounds.ParseLineKind(r.lineKind.String)
	if err != nil {
		return bounds.GlyphBound{}, err
	}
	var g = bounds.GlyphBound{
		WordBound: bounds.WordBound{
			PageNumber:   int(r.page.Int64),
			SuraNumber:   int(r.sura.Int64),
			AyahNumber:   int(r.ayah.Int64),
			WordPosition: int(r.word.Int64),
			ArabicWord:   r.text.String,
			GlyphCode:    r.glyphID.Int64,
			ImgWidth:     int(r.imgW.Int64),
			MinX:         int(r.x1.Int64),
			MaxX:         int(r.x2.Int64),
			MinY:         int(r.y1.Int64),
			MaxY:         int(r.y2.Int64),
			LineNumber:   int(r.line.Int64),
			LinePosition: int(r.linePos.Int64),
		},
		LineType: lineType,
	}
	if err = g.Validate(); err != nil {
		return bounds.GlyphBound{}, err
	}
	return g, nil
}

// cursor carries the sql.Rows plumbing shared by WordReader and GlyphReader.
type cursor struct {
	rows    *sql.Rows
	kind    string
	skipped int64
	err     error
}

func (c *cursor) skip(err error) {
	c.skipped++
	log.WithFields(log.Fields{"err": err, "kind": c.kind}).
		Warn("skipping malformed source row")
}

// Skipped returns the number of malformed source rows passed over so far.
func (c *cursor) Skipped() int64 { return c.skipped }

// Err returns the terminal error of the cursor, if any.
func (c *cursor) Err() error { return c.err }

// Close releases the underlying source cursor.
func (c *cursor) Close() error { return c.rows.Close() }

// A WordReader is a lazy, finite, single-pass cursor over the well-formed
// word rows of the source: the glyphs of ayah-text lines, in (page, line,
// line_pos) order. Malformed rows are logged, counted, and skipped; they
// never surface as read errors.
type WordReader struct {
	cursor
	cur bounds.WordBound
}

// ReadWords begins the word query against the source.
func ReadWords(src *sql.DB) (*WordReader, error) {
	var rows, err = src.Query(bounds.SelectSourceWordsStmt)
	if err != nil {
		return nil, errors.WithMessage(err, "querying source words")
	}
	return &WordReader{cursor: cursor{rows: rows, kind: "word"}}, nil
}

// Next advances the reader to the next well-formed word, returning false at
// stream end or on a cursor error (inspect Err to distinguish).
func (r *WordReader) Next() bool {
	for r.rows.Next() {
		var row sourceRow
		if err := row.scan(r.rows); err != nil {
			r.skip(err)
		} else if g, err := row.bound(); err != nil {
			r.skip(err)
		} else {
			r.cur = g.WordBound
			return true
		}
	}
	r.err = r.rows.Err()
	return false
}

// Bound returns the word at the reader's current position.
func (r *WordReader) Bound() bounds.WordBound { return r.cur }

// A GlyphReader is a lazy, finite, single-pass cursor over the well-formed
// glyph rows of the source: every word, plus the sura header and bismillah
// elements. The glyph stream is a strict superset of the word stream.
type GlyphReader struct {
	cursor
	cur bounds.GlyphBound
}

// ReadGlyphs begins the glyph query against the source.
func ReadGlyphs(src *sql.DB) (*GlyphReader, error) {
	var rows, err = src.Query(bounds.SelectSourceGlyphsStmt)
	if err != nil {
		return nil, errors.WithMessage(err, "querying source glyphs")
	}
	return &GlyphReader{cursor: cursor{rows: rows, kind: "glyph"}}, nil
}

// Next advances the reader to the next well-formed glyph, returning false at
// stream end or on a cursor error (inspect Err to distinguish).
func (r *GlyphReader) Next() bool {
	for r.rows.Next() {
		var row sourceRow
		if err := row.scan(r.rows); err != nil {
			r.skip(err)
		} else if g, err := row.bound(); err != nil {
			r.skip(err)
		} else {
			r.cur = g
			return true
		}
	}
	r.err = r.rows.Err()
	return false
}

// Bound returns the glyph at the reader's current position.
func (r *GlyphReader) Bound() bounds.GlyphBound { return r.cur }
