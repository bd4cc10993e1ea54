package main

import (
	"fmt"

	mbp "github.com/blueheron786/quran-word-position-data/mainboilerplate"
)

type cmdAyah struct {
	Args struct {
		Sura int    `positional-arg-name:"sura" required:"true" description:"Sura number (1..114)"`
		Ayah int    `positional-arg-name:"ayah" required:"true" description:"Ayah number"`
		Path string `positional-arg-name:"db-path" description:"Path of the bounds database (overrides --database)"`
	} `positional-args:"yes"`
}

func (cmd *cmdAyah) Execute([]string) error {
	var s = openStore(cmd.Args.Path)
	defer s.Close()

	var words, err = s.AyahWords(cmd.Args.Sura, cmd.Args.Ayah)
	mbp.Must(err, "failed to query ayah words")

	if len(words) == 0 {
		fmt.Printf("The database holds no words of %d:%d.\n", cmd.Args.Sura, cmd.Args.Ayah)
		return nil
	}
	writeWordTable(words)
	return nil
}
