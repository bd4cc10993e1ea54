package main

import (
	"fmt"

	"github.com/dustin/go-humanize"

	mbp "github.com/blueheron786/quran-word-position-data/mainboilerplate"
)

type cmdSummary struct {
	Args struct {
		Path string `positional-arg-name:"db-path" description:"Path of the bounds database (overrides --database)"`
	} `positional-args:"yes"`
}

func (cmd *cmdSummary) Execute([]string) error {
	var s = openStore(cmd.Args.Path)
	defer s.Close()

	var summary, err = s.Summary()
	mbp.Must(err, "failed to summarize database")

	fmt.Printf("Words:  %s\n", humanize.Comma(summary.Words))
	fmt.Printf("Glyphs: %s\n", humanize.Comma(summary.Glyphs))
	if summary.Words != 0 {
		fmt.Printf("Pages:  %s (%d-%d)\n", humanize.Comma(summary.Pages), summary.MinPage, summary.MaxPage)
		fmt.Printf("Suras:  %s (%d-%d)\n", humanize.Comma(summary.Suras), summary.MinSura, summary.MaxSura)
	}
	return nil
}
