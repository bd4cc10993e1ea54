package main

import (
	"fmt"

	"github.com/blueheron786/quran-word-position-data/bounds"
	mbp "github.com/blueheron786/quran-word-position-data/mainboilerplate"
)

type cmdLocate struct {
	Args struct {
		Page int    `positional-arg-name:"page" required:"true" description:"Page number (1..604)"`
		X    int    `positional-arg-name:"x" required:"true" description:"X pixel coordinate"`
		Y    int    `positional-arg-name:"y" required:"true" description:"Y pixel coordinate"`
		Path string `positional-arg-name:"db-path" description:"Path of the bounds database (overrides --database)"`
	} `positional-args:"yes"`
}

func (cmd *cmdLocate) Execute([]string) error {
	var s = openStore(cmd.Args.Path)
	defer s.Close()

	var word, err = s.Locate(cmd.Args.Page, cmd.Args.X, cmd.Args.Y)
	mbp.Must(err, "failed to locate word", "page", cmd.Args.Page)

	if word == nil {
		fmt.Printf("No word of page %d contains (%d, %d).\n",
			cmd.Args.Page, cmd.Args.X, cmd.Args.Y)
		return nil
	}
	writeWordTable([]bounds.WordBound{*word})
	return nil
}
