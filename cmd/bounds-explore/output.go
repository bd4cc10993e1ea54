package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/blueheron786/quran-word-position-data/bounds"
	"github.com/blueheron786/quran-word-position-data/explore"
)

func writeWordTable(words []bounds.WordBound) {
	var table = tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Page", "Sura", "Ayah", "Word", "Text", "X1", "Y1", "X2", "Y2", "Line"})

	for _, w := range words {
		table.Append(wordRow(w))
	}
	table.Render()
}

func writeGlyphTable(glyphs []bounds.GlyphBound) {
	var table = tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Page", "Sura", "Ayah", "Word", "Text", "Type", "X1", "Y1", "X2", "Y2", "Line"})

	for _, g := range glyphs {
		table.Append([]string{
			strconv.Itoa(g.PageNumber),
			strconv.Itoa(g.SuraNumber),
			strconv.Itoa(g.AyahNumber),
			strconv.Itoa(g.WordPosition),
			g.ArabicWord,
			string(g.LineType),
			strconv.Itoa(g.MinX),
			strconv.Itoa(g.MinY),
			strconv.Itoa(g.MaxX),
			strconv.Itoa(g.MaxY),
			fmt.Sprintf("%d:%d", g.LineNumber, g.LinePosition),
		})
	}
	table.Render()
}

func writeLayoutTable(lines []explore.LineSummary) {
	var table = tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Line", "Type", "Glyphs", "X1", "X2", "Y1", "Y2"})

	for _, l := range lines {
		table.Append([]string{
			strconv.Itoa(l.LineNumber),
			string(l.LineType),
			strconv.FormatInt(l.Glyphs, 10),
			strconv.Itoa(l.MinX),
			strconv.Itoa(l.MaxX),
			strconv.Itoa(l.MinY),
			strconv.Itoa(l.MaxY),
		})
	}
	table.Render()
}

func wordRow(w bounds.WordBound) []string {
	return []string{
		strconv.Itoa(w.PageNumber),
		strconv.Itoa(w.SuraNumber),
		strconv.Itoa(w.AyahNumber),
		strconv.Itoa(w.WordPosition),
		w.ArabicWord,
		strconv.Itoa(w.MinX),
		strconv.Itoa(w.MinY),
		strconv.Itoa(w.MaxX),
		strconv.Itoa(w.MaxY),
		fmt.Sprintf("%d:%d", w.LineNumber, w.LinePosition),
	}
}
