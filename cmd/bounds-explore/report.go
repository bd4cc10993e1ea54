package main

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/blueheron786/quran-word-position-data/bounds"
	mbp "github.com/blueheron786/quran-word-position-data/mainboilerplate"
)

type cmdReport struct {
	Page   int `long:"page" default:"1" description:"Page to detail in the per-page section"`
	Sample int `long:"sample" short:"n" default:"10" description:"Rows of the word sample"`
	Args   struct {
		Path string `positional-arg-name:"db-path" description:"Path of the bounds database (overrides --database)"`
	} `positional-args:"yes"`
}

func (cmd *cmdReport) Execute([]string) error {
	var s = openStore(cmd.Args.Path)
	defer s.Close()

	section("Schema")
	var tables, err = s.Tables()
	mbp.Must(err, "failed to list tables")

	for _, table := range tables {
		var cols, err = s.Columns(table)
		mbp.Must(err, "failed to describe table", "table", table)

		var names []string
		for _, c := range cols {
			names = append(names, fmt.Sprintf("%s %s", c.Name, c.Type))
		}
		fmt.Printf("%s (%s)\n", table, strings.Join(names, ", "))
	}

	section("Summary")
	summary, err := s.Summary()
	mbp.Must(err, "failed to summarize database")

	fmt.Printf("Words:  %s\n", humanize.Comma(summary.Words))
	fmt.Printf("Glyphs: %s\n", humanize.Comma(summary.Glyphs))
	if summary.Words != 0 {
		fmt.Printf("Pages:  %s (%d-%d)\n", humanize.Comma(summary.Pages), summary.MinPage, summary.MaxPage)
		fmt.Printf("Suras:  %s (%d-%d)\n", humanize.Comma(summary.Suras), summary.MinSura, summary.MaxSura)
	}

	section(fmt.Sprintf("First %d words", cmd.Sample))
	glyphs, err := s.Sample("word_bounds", cmd.Sample)
	mbp.Must(err, "failed to sample word_bounds")

	var words []bounds.WordBound
	for _, g := range glyphs {
		words = append(words, g.WordBound)
	}
	writeWordTable(words)

	section(fmt.Sprintf("Page %d", cmd.Page))
	stats, err := s.PageStats(cmd.Page)
	mbp.Must(err, "failed to aggregate page", "page", cmd.Page)

	fmt.Printf("Words:  %s\n", humanize.Comma(stats.Words))
	fmt.Printf("Glyphs: %s\n", humanize.Comma(stats.Glyphs))
	fmt.Printf("Lines:  %d\n", stats.Lines)
	fmt.Printf("Suras:  %d\n", stats.Suras)

	lines, err := s.PageLayout(cmd.Page)
	mbp.Must(err, "failed to query page layout", "page", cmd.Page)
	if len(lines) != 0 {
		writeLayoutTable(lines)
	}

	section("Words of the opening ayah (1:1)")
	opening, err := s.AyahWords(1, 1)
	mbp.Must(err, "failed to query ayah words")
	if len(opening) == 0 {
		fmt.Println("The database holds no words of 1:1.")
	} else {
		writeWordTable(opening)
	}
	return nil
}

func section(name string) {
	fmt.Printf("\n=== %s ===\n", name)
}
