package bounds

// SelectSourceWordsStmt reads word rows from the upstream store: one row per
// word of an ayah-text line. Column names are the upstream Perl pipeline's
// own; the extractor renames them into the destination schema.
const SelectSourceWordsStmt = `
SELECT glyph_id, page, line, line_kind, line_pos, sura, ayah, word, text, img_w, x1, x2, y1, y2
FROM madani_glyphs
WHERE line_kind = 'ayah'
ORDER BY page, line, line_pos;
`

// SelectSourceGlyphsStmt reads the full glyph set: the word rows plus sura
// header and bismillah elements. It is a strict superset of the word query.
const SelectSourceGlyphsStmt = `
SELECT glyph_id, page, line, line_kind, line_pos, sura, ayah, word, text, img_w, x1, x2, y1, y2
FROM madani_glyphs
ORDER BY page, line, line_pos;
`

// CreateWordBoundsStmt defines the word_bounds table. Rows rely on SQLite's
// implicit rowid; the composite (page, sura, ayah, word_position) identity
// is deliberately not constrained unique, as the upstream store carries
// recurrences which are preserved as-is.
const CreateWordBoundsStmt = `
CREATE TABLE word_bounds
(
    page_number   INTEGER NOT NULL,
    sura_number   INTEGER NOT NULL,
    ayah_number   INTEGER NOT NULL,
    word_position INTEGER NOT NULL,
    arabic_word   TEXT    NOT NULL,
    glyph_code    INTEGER NOT NULL,
    img_width     INTEGER NOT NULL,
    min_x         INTEGER NOT NULL,
    max_x         INTEGER NOT NULL,
    min_y         INTEGER NOT NULL,
    max_y         INTEGER NOT NULL,
    line_number   INTEGER NOT NULL,
    line_position INTEGER NOT NULL
);
`

// CreateGlyphBoundsStmt defines the glyph_bounds table: the word_bounds
// column set plus the line_type classification.
const CreateGlyphBoundsStmt = `
CREATE TABLE glyph_bounds
(
    page_number   INTEGER NOT NULL,
    sura_number   INTEGER NOT NULL,
    ayah_number   INTEGER NOT NULL,
    word_position INTEGER NOT NULL,
    arabic_word   TEXT    NOT NULL,
    glyph_code    INTEGER NOT NULL,
    img_width     INTEGER NOT NULL,
    min_x         INTEGER NOT NULL,
    max_x         INTEGER NOT NULL,
    min_y         INTEGER NOT NULL,
    max_y         INTEGER NOT NULL,
    line_number   INTEGER NOT NULL,
    line_position INTEGER NOT NULL,
    line_type     TEXT    NOT NULL
);
`

// SchemaStmts is the ordered statement sequence which (re)creates the
// destination schema. Dropping a table also drops its indexes, so the
// sequence is idempotent: re-running an extraction replaces prior content
// wholesale rather than appending to it.
var SchemaStmts = []string{
	`DROP TABLE IF EXISTS word_bounds;`,
	`DROP TABLE IF EXISTS glyph_bounds;`,
	CreateWordBoundsStmt,
	CreateGlyphBoundsStmt,
	`CREATE INDEX idx_word_bounds_page ON word_bounds (page_number);`,
	`CREATE INDEX idx_word_bounds_location ON word_bounds (sura_number, ayah_number);`,
	`CREATE INDEX idx_word_bounds_word ON word_bounds (arabic_word);`,
	`CREATE INDEX idx_glyph_bounds_page ON glyph_bounds (page_number);`,
	`CREATE INDEX idx_glyph_bounds_location ON glyph_bounds (sura_number, ayah_number);`,
}

// InsertWordBoundStmt inserts one WordBound into word_bounds.
const InsertWordBoundStmt = `
INSERT INTO word_bounds
(
    page_number,
    sura_number,
    ayah_number,
    word_position,
    arabic_word,
    glyph_code,
    img_width,
    min_x,
    max_x,
    min_y,
    max_y,
    line_number,
    line_position
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
`

// InsertGlyphBoundStmt inserts one GlyphBound into glyph_bounds.
const InsertGlyphBoundStmt = `
INSERT INTO glyph_bounds
(
    page_number,
    sura_number,
    ayah_number,
    word_position,
    arabic_word,
    glyph_code,
    img_width,
    min_x,
    max_x,
    min_y,
    max_y,
    line_number,
    line_position,
    line_type
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
`

// WordColumns is the word_bounds SELECT column list, in the order scanned
// by readers of the produced database.
const WordColumns = `page_number, sura_number, ayah_number, word_position, arabic_word, glyph_code, img_width, min_x, max_x, min_y, max_y, line_number, line_position`

// GlyphColumns is the glyph_bounds SELECT column list: WordColumns plus
// line_type.
const GlyphColumns = WordColumns + `, line_type`
