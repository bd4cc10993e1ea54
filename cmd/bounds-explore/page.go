package main

import (
	"fmt"

	"github.com/dustin/go-humanize"

	mbp "github.com/blueheron786/quran-word-position-data/mainboilerplate"
)

type cmdPage struct {
	Args struct {
		Page int    `positional-arg-name:"page" required:"true" description:"Page number (1..604)"`
		Path string `positional-arg-name:"db-path" description:"Path of the bounds database (overrides --database)"`
	} `positional-args:"yes"`
}

func (cmd *cmdPage) Execute([]string) error {
	var s = openStore(cmd.Args.Path)
	defer s.Close()

	var stats, err = s.PageStats(cmd.Args.Page)
	mbp.Must(err, "failed to aggregate page", "page", cmd.Args.Page)

	fmt.Printf("Page %d:\n", stats.Page)
	fmt.Printf("  Words:  %s\n", humanize.Comma(stats.Words))
	fmt.Printf("  Glyphs: %s\n", humanize.Comma(stats.Glyphs))
	fmt.Printf("  Lines:  %d\n", stats.Lines)
	fmt.Printf("  Suras:  %d\n", stats.Suras)
	return nil
}
