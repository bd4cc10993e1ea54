package explore

import (
	"database/sql"

	"github.com/pkg/errors"

	"github.com/blueheron786/quran-word-position-data/bounds"
)

// Range bounds one axis of a region query. A nil endpoint leaves that side
// of the axis unbounded.
type Range struct {
	Lo, Hi *int
}

// Bounded returns a Range spanning [lo, hi].
func Bounded(lo, hi int) Range { return Range{Lo: &lo, Hi: &hi} }

// QueryRegion returns the words of |page| wholly contained by the region:
// a word matches when its box lies inside the x and y ranges, endpoints
// inclusive. Results are in (min_y, min_x) order for display. An empty
// result is a valid outcome.
func (s *Store) QueryRegion(page int, x, y Range) ([]bounds.WordBound, error) {
	var stmt = `SELECT ` + bounds.WordColumns + ` FROM word_bounds WHERE page_number = ?`
	var args = []interface{}{page}

	for _, c := range []struct {
		val  *int
		cond string
	}{
		{x.Lo, `min_x >= ?`},
		{x.Hi, `max_x <= ?`},
		{y.Lo, `min_y >= ?`},
		{y.Hi, `max_y <= ?`},
	} {
		if c.val != nil {
			stmt += ` AND ` + c.cond
			args = append(args, *c.val)
		}
	}
	stmt += ` ORDER BY min_y, min_x;`

	var rows, err = s.db.Query(stmt, args...)
	if err != nil {
		return nil, errors.WithMessage(err, "querying region")
	}
	return scanWords(rows)
}

// AyahWords returns the words of one ayah in reading order, crossing page
// breaks where the ayah spans them.
func (s *Store) AyahWords(sura, ayah int) ([]bounds.WordBound, error) {
	var rows, err = s.db.Query(`
		SELECT `+bounds.WordColumns+` FROM word_bounds
		WHERE sura_number = ? AND ayah_number = ?
		ORDER BY page_number, word_position;`, sura, ayah)
	if err != nil {
		return nil, errors.WithMessage(err, "querying ayah words")
	}
	return scanWords(rows)
}

// WordOccurrences returns every occurrence of the exact rendered text
// |word|, in mushaf order.
func (s *Store) WordOccurrences(word string) ([]bounds.WordBound, error) {
	var rows, err = s.db.Query(`
		SELECT `+bounds.WordColumns+` FROM word_bounds
		WHERE arabic_word = ?
		ORDER BY page_number, sura_number, ayah_number, word_position;`, word)
	if err != nil {
		return nil, errors.WithMessage(err, "querying word occurrences")
	}
	return scanWords(rows)
}

// LineSummary aggregates the glyphs of one rendered line of a page.
type LineSummary struct {
	LineNumber int
	LineType   bounds.LineType
	Glyphs     int64
	MinX, MaxX int // Horizontal extent of the line's glyphs.
	MinY, MaxY int // Vertical extent of the line's glyphs.
}

// PageLayout returns per-line aggregates of |page| in top-to-bottom order:
// each line's classification, glyph count, and bounding extents.
func (s *Store) PageLayout(page int) ([]LineSummary, error) {
	var rows, err = s.db.Query(`
		SELECT line_number, line_type, COUNT(*),
		       MIN(min_x), MAX(max_x), MIN(min_y), MAX(max_y)
		FROM glyph_bounds
		WHERE page_number = ?
		GROUP BY line_number, line_type
		ORDER BY line_number;`, page)
	if err != nil {
		return nil, errors.WithMessage(err, "querying page layout")
	}
	defer rows.Close()

	var out []LineSummary
	for rows.Next() {
		var l LineSummary
		if err = rows.Scan(&l.LineNumber, &l.LineType, &l.Glyphs,
			&l.MinX, &l.MaxX, &l.MinY, &l.MaxY); err != nil {
			return nil, errors.WithMessage(err, "scanning line summary")
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

// Locate returns the word of |page| whose box contains the point (x, y), or
// nil if no word does. Where boxes overlap, the first in (min_y, min_x)
// order wins.
func (s *Store) Locate(page, x, y int) (*bounds.WordBound, error) {
	var b bounds.WordBound
	var err = scanWord(s.db.QueryRow(`
		SELECT `+bounds.WordColumns+` FROM word_bounds
		WHERE page_number = ?
		  AND min_x <= ? AND max_x >= ?
		  AND min_y <= ? AND max_y >= ?
		ORDER BY min_y, min_x
		LIMIT 1;`, page, x, x, y, y), &b)

	if err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		return nil, errors.WithMessage(err, "locating word")
	}
	return &b, nil
}
