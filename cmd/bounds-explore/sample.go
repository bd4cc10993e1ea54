package main

import (
	"github.com/blueheron786/quran-word-position-data/bounds"
	mbp "github.com/blueheron786/quran-word-position-data/mainboilerplate"
)

type cmdSample struct {
	Table string `long:"table" choice:"word_bounds" choice:"glyph_bounds" default:"word_bounds" description:"Table to sample"`
	Count int    `long:"count" short:"n" default:"10" description:"Number of rows to print"`
	Args  struct {
		Path string `positional-arg-name:"db-path" description:"Path of the bounds database (overrides --database)"`
	} `positional-args:"yes"`
}

func (cmd *cmdSample) Execute([]string) error {
	var s = openStore(cmd.Args.Path)
	defer s.Close()

	var glyphs, err = s.Sample(cmd.Table, cmd.Count)
	mbp.Must(err, "failed to sample table", "table", cmd.Table)

	if cmd.Table == "word_bounds" {
		var words []bounds.WordBound
		for _, g := range glyphs {
			words = append(words, g.WordBound)
		}
		writeWordTable(words)
	} else {
		writeGlyphTable(glyphs)
	}
	return nil
}
