package main

import (
	"fmt"

	mbp "github.com/blueheron786/quran-word-position-data/mainboilerplate"
)

type cmdLayout struct {
	Args struct {
		Page int    `positional-arg-name:"page" required:"true" description:"Page number (1..604)"`
		Path string `positional-arg-name:"db-path" description:"Path of the bounds database (overrides --database)"`
	} `positional-args:"yes"`
}

func (cmd *cmdLayout) Execute([]string) error {
	var s = openStore(cmd.Args.Path)
	defer s.Close()

	var lines, err = s.PageLayout(cmd.Args.Page)
	mbp.Must(err, "failed to query page layout", "page", cmd.Args.Page)

	if len(lines) == 0 {
		fmt.Printf("Page %d holds no glyphs.\n", cmd.Args.Page)
		return nil
	}
	writeLayoutTable(lines)
	return nil
}
