package main

import (
	"fmt"

	"github.com/dustin/go-humanize"

	mbp "github.com/blueheron786/quran-word-position-data/mainboilerplate"
)

type cmdWord struct {
	Args struct {
		Text string `positional-arg-name:"text" required:"true" description:"Exact rendered Arabic text to find"`
		Path string `positional-arg-name:"db-path" description:"Path of the bounds database (overrides --database)"`
	} `positional-args:"yes"`
}

func (cmd *cmdWord) Execute([]string) error {
	var s = openStore(cmd.Args.Path)
	defer s.Close()

	var words, err = s.WordOccurrences(cmd.Args.Text)
	mbp.Must(err, "failed to query word occurrences")

	if len(words) == 0 {
		fmt.Printf("No occurrences of %q.\n", cmd.Args.Text)
		return nil
	}
	fmt.Printf("%s occurrences of %q:\n", humanize.Comma(int64(len(words))), cmd.Args.Text)
	writeWordTable(words)
	return nil
}
