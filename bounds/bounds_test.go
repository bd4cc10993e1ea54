package bounds

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLineKindParsing(t *testing.T) {
	var cases = []struct {
		kind   string
		expect LineType
		err    string
	}{
		{kind: "sura_name", expect: SuraHeader},
		{kind: "bismillah", expect: Bismillah},
		{kind: "ayah", expect: AyahText},
		{kind: "header", err: `unknown line_kind ("header")`},
		{kind: "", err: `unknown line_kind ("")`},
	}
	for _, tc := range cases {
		var lt, err = ParseLineKind(tc.kind)

		if tc.err != "" {
			require.EqualError(t, err, tc.err)
		} else {
			require.NoError(t, err)
			require.Equal(t, tc.expect, lt)
		}
	}
}

func TestLineTypeValidationCases(t *testing.T) {
	require.NoError(t, SuraHeader.Validate())
	require.NoError(t, Bismillah.Validate())
	require.NoError(t, AyahText.Validate())
	require.EqualError(t, LineType("ayah").Validate(), `invalid line_type ("ayah")`)
	require.EqualError(t, LineType("").Validate(), `invalid line_type ("")`)
}

func TestWordBoundValidationCases(t *testing.T) {
	var model = WordBound{
		PageNumber:   2,
		SuraNumber:   2,
		AyahNumber:   1,
		WordPosition: 1,
		ArabicWord:   "الم",
		GlyphCode:    2001,
		ImgWidth:     1024,
		MinX:         412, MaxX: 489,
		MinY: 291, MaxY: 357,
		LineNumber:   2,
		LinePosition: 1,
	}
	require.NoError(t, model.Validate())

	var cases = []struct {
		fn     func(*WordBound)
		expect string
	}{
		{func(b *WordBound) { b.PageNumber = 0 }, `invalid page_number (0; expected 1 <= page <= 604)`},
		{func(b *WordBound) { b.PageNumber = 605 }, `invalid page_number (605; expected 1 <= page <= 604)`},
		{func(b *WordBound) { b.SuraNumber = 0 }, `invalid sura_number (0; expected 1 <= sura <= 114)`},
		{func(b *WordBound) { b.SuraNumber = 115 }, `invalid sura_number (115; expected 1 <= sura <= 114)`},
		{func(b *WordBound) { b.MinX = b.MaxX }, `invalid x bounds (min 489, max 489; expected min < max)`},
		{func(b *WordBound) { b.MaxY = b.MinY - 1 }, `invalid y bounds (min 291, max 290; expected min < max)`},
		{func(b *WordBound) { b.LineNumber = 0 }, `invalid line_number (0; expected >= 1)`},
		{func(b *WordBound) { b.LinePosition = -1 }, `invalid line_position (-1; expected >= 1)`},
		{func(b *WordBound) { b.ImgWidth = 0 }, `invalid img_width (0; expected >= 1)`},
		{func(b *WordBound) { b.AyahNumber = 0 }, `invalid ayah_number (0; expected >= 1)`},
		{func(b *WordBound) { b.WordPosition = 0 }, `invalid word_position (0; expected >= 1)`},
		{func(b *WordBound) { b.ArabicWord = "" }, `invalid arabic_word (empty)`},
	}
	for _, tc := range cases {
		var b = model
		tc.fn(&b)
		require.EqualError(t, b.Validate(), tc.expect)
	}
}

func TestGlyphBoundValidationCases(t *testing.T) {
	// Sura header and bismillah glyphs carry no ayah or word position.
	var header = GlyphBound{
		WordBound: WordBound{
			PageNumber: 2,
			SuraNumber: 2,
			GlyphCode:  1999,
			ImgWidth:   1024,
			MinX:       305, MaxX: 719,
			MinY: 88, MaxY: 162,
			LineNumber:   1,
			LinePosition: 1,
		},
		LineType: SuraHeader,
	}
	require.NoError(t, header.Validate())

	var bismillah = header
	bismillah.LineType = Bismillah
	bismillah.LineNumber = 2
	require.NoError(t, bismillah.Validate())

	// Ayah-text glyphs are held to full word semantics.
	var word = header
	word.LineType = AyahText
	require.EqualError(t, word.Validate(), `invalid ayah_number (0; expected >= 1)`)

	word.AyahNumber, word.WordPosition = 1, 1
	word.ArabicWord = "الم"
	require.NoError(t, word.Validate())

	var cases = []struct {
		fn     func(*GlyphBound)
		expect string
	}{
		{func(g *GlyphBound) { g.LineType = "ayah" }, `invalid line_type ("ayah")`},
		{func(g *GlyphBound) { g.AyahNumber = -1 }, `invalid ayah_number (-1; expected >= 0)`},
		{func(g *GlyphBound) { g.WordPosition = -3 }, `invalid word_position (-3; expected >= 0)`},
		{func(g *GlyphBound) { g.PageNumber = 700 }, `invalid page_number (700; expected 1 <= page <= 604)`},
		{func(g *GlyphBound) { g.MinY = g.MaxY }, `invalid y bounds (min 162, max 162; expected min < max)`},
	}
	for _, tc := range cases {
		var g = header
		tc.fn(&g)
		require.EqualError(t, g.Validate(), tc.expect)
	}
}
