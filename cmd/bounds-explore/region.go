package main

import (
	"fmt"

	"github.com/blueheron786/quran-word-position-data/explore"
	mbp "github.com/blueheron786/quran-word-position-data/mainboilerplate"
)

type cmdRegion struct {
	XMin *int `long:"x-min" description:"Lower inclusive x bound of the region"`
	XMax *int `long:"x-max" description:"Upper inclusive x bound of the region"`
	YMin *int `long:"y-min" description:"Lower inclusive y bound of the region"`
	YMax *int `long:"y-max" description:"Upper inclusive y bound of the region"`
	Args struct {
		Page int    `positional-arg-name:"page" required:"true" description:"Page number (1..604)"`
		Path string `positional-arg-name:"db-path" description:"Path of the bounds database (overrides --database)"`
	} `positional-args:"yes"`
}

func (cmd *cmdRegion) Execute([]string) error {
	var s = openStore(cmd.Args.Path)
	defer s.Close()

	var words, err = s.QueryRegion(cmd.Args.Page,
		explore.Range{Lo: cmd.XMin, Hi: cmd.XMax},
		explore.Range{Lo: cmd.YMin, Hi: cmd.YMax})
	mbp.Must(err, "failed to query region", "page", cmd.Args.Page)

	if len(words) == 0 {
		fmt.Printf("No words of page %d lie within the region.\n", cmd.Args.Page)
		return nil
	}
	writeWordTable(words)
	return nil
}
