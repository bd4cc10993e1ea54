// Package bounds defines the word- and glyph-level bounding box records of
// rendered mushaf pages: the row types of the produced word_bounds and
// glyph_bounds tables, their validation rules, and the SQL statements which
// create, populate, and query them.
package bounds

import (
	"github.com/pkg/errors"
)

// LineType classifies a page line as a sura header, a bismillah marker, or
// ayah text. Word records are drawn exclusively from ayah-text lines; glyph
// records span all three.
type LineType string

const (
	SuraHeader LineType = "sura-header"
	Bismillah  LineType = "bismillah"
	AyahText   LineType = "ayah-text"
)

// MaxPageNumber and MaxSuraNumber bound the valid page and sura ranges of
// the Madani mushaf dataset.
const (
	MaxPageNumber = 604
	MaxSuraNumber = 114
)

// ParseLineKind maps a line_kind value of the upstream pipeline's schema to
// its LineType. The mapping is a direct value translation of the pipeline's
// fixed enum; any other value is an error.
func ParseLineKind(kind string) (LineType, error) {
	switch kind {
	case "sura_name":
		return SuraHeader, nil
	case "bismillah":
		return Bismillah, nil
	case "ayah":
		return AyahText, nil
	default:
		return "", errors.Errorf("unknown line_kind (%q)", kind)
	}
}

// Validate returns an error if the LineType is not a known value.
func (t LineType) Validate() error {
	switch t {
	case SuraHeader, Bismillah, AyahText:
		return nil
	default:
		return errors.Errorf("invalid line_type (%q)", string(t))
	}
}

// WordBound is one word occurrence on a rendered page, together with the
// pixel bounding box which encloses it. Its composite identity of
// (page, sura, ayah, word position) is not unique: the upstream store may
// carry parallel recurrences, and they are preserved rather than
// deduplicated.
type WordBound struct {
	PageNumber   int
	SuraNumber   int
	AyahNumber   int
	WordPosition int
	ArabicWord   string
	GlyphCode    int64
	ImgWidth     int
	MinX, MaxX   int
	MinY, MaxY   int
	LineNumber   int
	LinePosition int
}

// Validate returns an error if the WordBound is not well-formed. Word
// records additionally require a positive ayah number and word position,
// and non-empty text.
func (b WordBound) Validate() error {
	if err := b.validateBase(); err != nil {
		return err
	} else if b.AyahNumber < 1 {
		return errors.Errorf("invalid ayah_number (%d; expected >= 1)", b.AyahNumber)
	} else if b.WordPosition < 1 {
		return errors.Errorf("invalid word_position (%d; expected >= 1)", b.WordPosition)
	} else if b.ArabicWord == "" {
		return errors.New("invalid arabic_word (empty)")
	}
	return nil
}

// validateBase checks the invariants shared by word and glyph records.
func (b WordBound) validateBase() error {
	if b.PageNumber < 1 || b.PageNumber > MaxPageNumber {
		return errors.Errorf("invalid page_number (%d; expected 1 <= page <= %d)",
			b.PageNumber, MaxPageNumber)
	} else if b.SuraNumber < 1 || b.SuraNumber > MaxSuraNumber {
		return errors.Errorf("invalid sura_number (%d; expected 1 <= sura <= %d)",
			b.SuraNumber, MaxSuraNumber)
	} else if b.MinX >= b.MaxX {
		return errors.Errorf("invalid x bounds (min %d, max %d; expected min < max)",
			b.MinX, b.MaxX)
	} else if b.MinY >= b.MaxY {
		return errors.Errorf("invalid y bounds (min %d, max %d; expected min < max)",
			b.MinY, b.MaxY)
	} else if b.LineNumber < 1 {
		return errors.Errorf("invalid line_number (%d; expected >= 1)", b.LineNumber)
	} else if b.LinePosition < 1 {
		return errors.Errorf("invalid line_position (%d; expected >= 1)", b.LinePosition)
	} else if b.ImgWidth < 1 {
		return errors.Errorf("invalid img_width (%d; expected >= 1)", b.ImgWidth)
	}
	return nil
}

// GlyphBound is one rendered visual element on a page: every word, plus the
// sura header and bismillah elements which are not words. The glyph set is a
// strict superset of the word set.
type GlyphBound struct {
	WordBound
	LineType LineType
}

// Validate returns an error if the GlyphBound is not well-formed. Glyphs of
// ayah-text lines carry full word semantics; sura header and bismillah
// glyphs have no ayah or word position (both zero).
func (g GlyphBound) Validate() error {
	if err := g.LineType.Validate(); err != nil {
		return err
	}
	if g.LineType == AyahText {
		return g.WordBound.Validate()
	}
	if err := g.validateBase(); err != nil {
		return err
	} else if g.AyahNumber < 0 {
		return errors.Errorf("invalid ayah_number (%d; expected >= 0)", g.AyahNumber)
	} else if g.WordPosition < 0 {
		return errors.Errorf("invalid word_position (%d; expected >= 0)", g.WordPosition)
	}
	return nil
}
