package extract

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/blueheron786/quran-word-position-data/bounds"
)

func TestRunEndToEnd(t *testing.T) {
	var dir = t.TempDir()
	var srcPath = filepath.Join(dir, "source.sqlite")
	var outPath = filepath.Join(dir, "out.sqlite")

	var src = newSourceDB(t, srcPath)
	// Page two of the mushaf: header line, bismillah line, then ayah text.
	insertGlyph(t, src, 201, 2, 1, "sura_name", 1, 2, 0, 0, "سورة البقرة", 1024, 305, 719, 88, 162)
	insertGlyph(t, src, 202, 2, 2, "bismillah", 1, 2, 0, 0, "بسم الله الرحمن الرحيم", 1024, 260, 764, 170, 240)
	insertGlyph(t, src, 203, 2, 3, "ayah", 1, 2, 1, 1, "الم", 1024, 412, 489, 291, 357)
	insertGlyph(t, src, 204, 2, 4, "ayah", 1, 2, 2, 1, "ذلك", 1024, 620, 700, 380, 440)
	insertGlyph(t, src, 205, 2, 4, "ayah", 2, 2, 2, 2, "الكتاب", 1024, 500, 610, 380, 441)

	var stats, err = Run(Config{
		SourceDriver: "sqlite3",
		SourceDSN:    srcPath,
		OutputPath:   outPath,
	})
	require.NoError(t, err)
	require.Equal(t, Stats{WordRows: 3, GlyphRows: 5}, stats)

	// Word rows round-trip with identical text and bounds, in source order.
	require.Equal(t, []bounds.WordBound{
		{PageNumber: 2, SuraNumber: 2, AyahNumber: 1, WordPosition: 1,
			ArabicWord: "الم", GlyphCode: 203, ImgWidth: 1024,
			MinX: 412, MaxX: 489, MinY: 291, MaxY: 357, LineNumber: 3, LinePosition: 1},
		{PageNumber: 2, SuraNumber: 2, AyahNumber: 2, WordPosition: 1,
			ArabicWord: "ذلك", GlyphCode: 204, ImgWidth: 1024,
			MinX: 620, MaxX: 700, MinY: 380, MaxY: 440, LineNumber: 4, LinePosition: 1},
		{PageNumber: 2, SuraNumber: 2, AyahNumber: 2, WordPosition: 2,
			ArabicWord: "الكتاب", GlyphCode: 205, ImgWidth: 1024,
			MinX: 500, MaxX: 610, MinY: 380, MaxY: 441, LineNumber: 4, LinePosition: 2},
	}, readWords(t, outPath))

	// The glyph load preserves line classifications, again in source order.
	require.Equal(t,
		[]string{"sura-header", "bismillah", "ayah-text", "ayah-text", "ayah-text"},
		readLineTypes(t, outPath))
}

func TestRunSkipsMalformedRows(t *testing.T) {
	var dir = t.TempDir()
	var srcPath = filepath.Join(dir, "source.sqlite")
	var outPath = filepath.Join(dir, "out.sqlite")

	var src = newSourceDB(t, srcPath)
	insertGlyph(t, src, 1, 1, 2, "ayah", 1, 1, 1, 1, "بسم", 1024, 100, 180, 90, 150)
	insertGlyph(t, src, 2, 1, 2, "ayah", 2, 1, 1, 2, "الله", 1024, 200, 280, 90, 150)
	insertGlyph(t, src, 3, 1, 1, "bismillah", 1, 1, 0, 0, "بسم الله", 1024, 90, 700, 20, 80)

	// Malformed ayah rows are skipped by both the word and glyph loads.
	insertGlyph(t, src, 4, 1, 3, "ayah", 1, 1, 2, 1, "الحمد", 1024, nil, 180, 90, 150)
	insertGlyph(t, src, 5, 700, 3, "ayah", 2, 1, 2, 2, "لله", 1024, 200, 280, 90, 150)
	insertGlyph(t, src, 6, 1, 3, "ayah", 3, 1, 2, 0, "رب", 1024, 300, 380, 90, 150)
	// Malformed non-word rows are skipped by the glyph load alone.
	insertGlyph(t, src, 7, 1, 1, "sura_name", 1, 1, 0, 0, "سورة الفاتحة", 1024, 305, 719, 162, 88)
	insertGlyph(t, src, 8, 1, 1, "header", 2, 1, 0, 0, "سورة", 1024, 305, 719, 88, 162)

	var stats, err = Run(Config{
		SourceDriver: "sqlite3",
		SourceDSN:    srcPath,
		OutputPath:   outPath,
	})
	require.NoError(t, err)
	require.Equal(t, Stats{WordRows: 2, GlyphRows: 3, SkippedRows: 8}, stats)

	// Stored rows all satisfy the bound invariants.
	var db = openSQLite(t, outPath)
	var n int64
	require.NoError(t, db.QueryRow(`
		SELECT COUNT(*) FROM glyph_bounds
		WHERE min_x >= max_x OR min_y >= max_y
		   OR page_number < 1 OR page_number > 604 OR line_position < 1;
	`).Scan(&n))
	require.Zero(t, n)
}

func TestRunSampleCounts(t *testing.T) {
	var dir = t.TempDir()
	var srcPath = filepath.Join(dir, "source.sqlite")
	var outPath = filepath.Join(dir, "out.sqlite")

	var src = newSourceDB(t, srcPath)
	seedSource(t, src, 421, 55)

	var stats, err = Run(Config{
		SourceDriver: "sqlite3",
		SourceDSN:    srcPath,
		OutputPath:   outPath,
	})
	require.NoError(t, err)
	require.Equal(t, Stats{WordRows: 421, GlyphRows: 476}, stats)

	var db = openSQLite(t, outPath)
	var words, glyphs int64
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM word_bounds;`).Scan(&words))
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM glyph_bounds;`).Scan(&glyphs))
	require.Equal(t, int64(421), words)
	require.Equal(t, int64(476), glyphs)
}

func TestRunIsIdempotent(t *testing.T) {
	var dir = t.TempDir()
	var srcPath = filepath.Join(dir, "source.sqlite")
	var outPath = filepath.Join(dir, "out.sqlite")

	var src = newSourceDB(t, srcPath)
	seedSource(t, src, 20, 4)

	var cfg = Config{SourceDriver: "sqlite3", SourceDSN: srcPath, OutputPath: outPath}

	var stats1, err = Run(cfg)
	require.NoError(t, err)
	var first = readWords(t, outPath)
	var firstTypes = readLineTypes(t, outPath)

	// A second run replaces tables wholesale rather than appending.
	stats2, err := Run(cfg)
	require.NoError(t, err)
	require.Equal(t, stats1, stats2)
	require.Equal(t, first, readWords(t, outPath))
	require.Equal(t, firstTypes, readLineTypes(t, outPath))
}

func TestRunWithUnreachableSource(t *testing.T) {
	var dir = t.TempDir()
	var outPath = filepath.Join(dir, "out.sqlite")

	var _, err = Run(Config{
		SourceDriver: "sqlite3",
		SourceDSN:    filepath.Join(dir, "no-such-dir", "source.sqlite"),
		OutputPath:   outPath,
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "connecting to source")

	// The failure precedes any destination write: no output file exists.
	_, err = os.Stat(outPath)
	require.True(t, os.IsNotExist(err))
}

func TestLoadWordsRollsBackOnCursorFailure(t *testing.T) {
	var dest, err = OpenDest(filepath.Join(t.TempDir(), "out.sqlite"))
	require.NoError(t, err)
	defer dest.Close()
	require.NoError(t, CreateSchema(dest))

	var word = bounds.WordBound{
		PageNumber: 1, SuraNumber: 1, AyahNumber: 1, WordPosition: 1,
		ArabicWord: "بسم", GlyphCode: 1, ImgWidth: 1024,
		MinX: 100, MaxX: 180, MinY: 90, MaxY: 150, LineNumber: 2, LinePosition: 1,
	}
	_, err = LoadWords(dest, &failingWordSource{
		rows: []bounds.WordBound{word, word},
		err:  errors.New("simulated cursor failure"),
	})
	require.EqualError(t, err, "reading source words: simulated cursor failure")

	// The partial load rolled back: the table is empty, never partial.
	var n int64
	require.NoError(t, dest.QueryRow(`SELECT COUNT(*) FROM word_bounds;`).Scan(&n))
	require.Zero(t, n)
}

func TestOpenDestWithUnwritablePath(t *testing.T) {
	var _, err = OpenDest(filepath.Join(t.TempDir(), "no-such-dir", "out.sqlite"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "creating destination")
}

func TestCreateSchemaReplacesPriorContent(t *testing.T) {
	var dest, err = OpenDest(filepath.Join(t.TempDir(), "out.sqlite"))
	require.NoError(t, err)
	defer dest.Close()

	require.NoError(t, CreateSchema(dest))
	_, err = dest.Exec(bounds.InsertWordBoundStmt,
		1, 1, 1, 1, "بسم", 1, 1024, 100, 180, 90, 150, 2, 1)
	require.NoError(t, err)

	require.NoError(t, CreateSchema(dest))

	var n int64
	require.NoError(t, dest.QueryRow(`SELECT COUNT(*) FROM word_bounds;`).Scan(&n))
	require.Zero(t, n)
}

// failingWordSource yields |rows| and then fails with |err|.
type failingWordSource struct {
	rows []bounds.WordBound
	err  error
	i    int
}

func (s *failingWordSource) Next() bool {
	if s.i < len(s.rows) {
		s.i++
		return true
	}
	return false
}
func (s *failingWordSource) Bound() bounds.WordBound { return s.rows[s.i-1] }
func (s *failingWordSource) Err() error              { return s.err }

// newSourceDB creates a SQLite stand-in of the upstream glyph table at |path|.
func newSourceDB(t *testing.T, path string) *sql.DB {
	var db, err = sql.Open("sqlite3", path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
		CREATE TABLE madani_glyphs (
			glyph_id INTEGER, page INTEGER, line INTEGER, line_kind TEXT,
			line_pos INTEGER, sura INTEGER, ayah INTEGER, word INTEGER,
			text TEXT, img_w INTEGER,
			x1 INTEGER, x2 INTEGER, y1 INTEGER, y2 INTEGER
		);`)
	require.NoError(t, err)
	return db
}

func insertGlyph(t *testing.T, db *sql.DB, args ...interface{}) {
	var _, err = db.Exec(`
		INSERT INTO madani_glyphs VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`,
		args...)
	require.NoError(t, err)
}

// seedSource populates the stand-in with |words| well-formed word rows and
// |extras| well-formed non-word rows.
func seedSource(t *testing.T, db *sql.DB, words, extras int) {
	for i := 0; i != words; i++ {
		insertGlyph(t, db,
			1000+i, 1+i%604, 2+i%14, "ayah", 1+i%9,
			1+i%114, 1+i%30, 1+i%12, fmt.Sprintf("كلمة%d", i), 1024,
			10+i%200, 220+i%200, 30+i%100, 140+i%100)
	}
	for i := 0; i != extras; i++ {
		var kind = "sura_name"
		if i%2 == 1 {
			kind = "bismillah"
		}
		insertGlyph(t, db,
			9000+i, 1+i%604, 1, kind, 1,
			1+i%114, 0, 0, "سورة", 1024,
			305, 719, 88, 162)
	}
}

func openSQLite(t *testing.T, path string) *sql.DB {
	var db, err = sql.Open("sqlite3", path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func readWords(t *testing.T, path string) []bounds.WordBound {
	var db = openSQLite(t, path)

	var rows, err = db.Query(`SELECT ` + bounds.WordColumns + ` FROM word_bounds ORDER BY rowid;`)
	require.NoError(t, err)
	defer rows.Close()

	var out []bounds.WordBound
	for rows.Next() {
		var b bounds.WordBound
		require.NoError(t, rows.Scan(
			&b.PageNumber, &b.SuraNumber, &b.AyahNumber, &b.WordPosition,
			&b.ArabicWord, &b.GlyphCode, &b.ImgWidth,
			&b.MinX, &b.MaxX, &b.MinY, &b.MaxY,
			&b.LineNumber, &b.LinePosition))
		out = append(out, b)
	}
	require.NoError(t, rows.Err())
	return out
}

func readLineTypes(t *testing.T, path string) []string {
	var db = openSQLite(t, path)

	var rows, err = db.Query(`SELECT line_type FROM glyph_bounds ORDER BY rowid;`)
	require.NoError(t, err)
	defer rows.Close()

	var out []string
	for rows.Next() {
		var lt string
		require.NoError(t, rows.Scan(&lt))
		out = append(out, lt)
	}
	require.NoError(t, rows.Err())
	return out
}
