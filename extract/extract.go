// Package extract implements the one-shot batch extraction of word and glyph
// bounding boxes from the upstream relational store into a fresh SQLite
// database. An extraction connects to the source and verifies it's reachable,
// opens (or creates) the destination file, re-creates the destination schema,
// and then bulk-loads the word_bounds and glyph_bounds tables, each within a
// single transaction.
//
// Malformed source rows (null or non-numeric bounds, out-of-range pages or
// suras, inverted boxes, unknown line kinds) are never fatal: readers skip
// them, log a warning, and count them into the run's Stats. Connection and
// I/O failures are fatal, and the source is verified before the destination
// is touched so that an unreachable source leaves no output file behind.
package extract

import (
	"database/sql"

	log "github.com/sirupsen/logrus"
)

// Config parameterizes a Run.
type Config struct {
	// SourceDriver is the database/sql driver of the source store: "mysql"
	// for the upstream pipeline's store, or "postgres" for a mirrored copy.
	SourceDriver string
	// SourceDSN is the connection string of the source store.
	SourceDSN string
	// OutputPath is the filesystem path of the SQLite database to produce.
	OutputPath string
}

// Stats tallies the outcome of a Run.
type Stats struct {
	// WordRows is the number of rows loaded into word_bounds.
	WordRows int64
	// GlyphRows is the number of rows loaded into glyph_bounds.
	GlyphRows int64
	// SkippedRows is the total number of malformed source rows which were
	// skipped (and logged) across both loads.
	SkippedRows int64
}

// Run performs a complete extraction described by |cfg|, returning Stats of
// the rows loaded and skipped. Handles are released on return regardless of
// outcome.
func Run(cfg Config) (Stats, error) {
	var stats Stats

	src, err := OpenSource(cfg.SourceDriver, cfg.SourceDSN)
	if err != nil {
		return stats, err
	}
	defer src.Close()

	dest, err := OpenDest(cfg.OutputPath)
	if err != nil {
		return stats, err
	}
	defer dest.Close()

	if err = CreateSchema(dest); err != nil {
		return stats, err
	}

	if stats.WordRows, stats.SkippedRows, err = loadWords(src, dest); err != nil {
		return stats, err
	}
	var skipped int64
	if stats.GlyphRows, skipped, err = loadGlyphs(src, dest); err != nil {
		return stats, err
	}
	stats.SkippedRows += skipped

	return stats, nil
}

func loadWords(src, dest *sql.DB) (n, skipped int64, err error) {
	var r *WordReader
	if r, err = ReadWords(src); err != nil {
		return 0, 0, err
	}
	defer r.Close()

	if n, err = LoadWords(dest, r); err != nil {
		return n, r.Skipped(), err
	}
	log.WithFields(log.Fields{"rows": n, "skipped": r.Skipped()}).
		Info("loaded word_bounds")
	return n, r.Skipped(), nil
}

func loadGlyphs(src, dest *sql.DB) (n, skipped int64, err error) {
	var r *GlyphReader
	if r, err = ReadGlyphs(src); err != nil {
		return 0, 0, err
	}
	defer r.Close()

	if n, err = LoadGlyphs(dest, r); err != nil {
		return n, r.Skipped(), err
	}
	log.WithFields(log.Fields{"rows": n, "skipped": r.Skipped()}).
		Info("loaded glyph_bounds")
	return n, r.Skipped(), nil
}
