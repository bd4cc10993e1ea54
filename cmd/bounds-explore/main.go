package main

import (
	"github.com/jessevdk/go-flags"

	"github.com/blueheron786/quran-word-position-data/explore"
	mbp "github.com/blueheron786/quran-word-position-data/mainboilerplate"
)

const iniFilename = "quran-bounds.ini"

// Config is the top-level configuration object of bounds-explore.
var Config = new(struct {
	Database string `long:"database" env:"DATABASE" default:"quran_word_bounds.sqlite" description:"Path of the bounds database to explore"`

	Log mbp.LogConfig `group:"Logging" namespace:"log" env-namespace:"LOG"`
})

// openStore opens the database at |path|, falling back to --database when
// |path| is empty. Every sub-command routes through here.
func openStore(path string) *explore.Store {
	mbp.InitLog(Config.Log)

	if path == "" {
		path = Config.Database
	}
	var store, err = explore.Open(path)
	mbp.Must(err, "failed to open bounds database", "path", path)
	return store
}

func main() {
	var parser = flags.NewParser(Config, flags.Default)
	parser.LongDescription = `bounds-explore inspects a database produced by bounds-extract: a fixed menu
of counts, samples, and region, layout, and lookup queries. It never mutates
the database it opens.

Each sub-command accepts an optional trailing [db-path] argument overriding
--database. Optionally configure bounds-explore with a '` + iniFilename + `' file in
the current working directory, or with '~/.config/quran-bounds/` + iniFilename + `'.
`

	mustAddCmd(parser, "report", "Print the full database report", `
Print everything at once: tables and their columns, the whole-database
summary, a leading sample of word_bounds, statistics of one page, and the
word boxes of the opening ayah.
`, &cmdReport{})

	mustAddCmd(parser, "summary", "Print whole-database totals", `
Print row counts of both tables, and the distinct page and sura counts and
ranges covered by word_bounds.
`, &cmdSummary{})

	mustAddCmd(parser, "sample", "Print leading rows of a table", `
Print the first rows of word_bounds or glyph_bounds in storage order.
Storage order reflects extraction insert order but is not a contract of
the data.
`, &cmdSample{})

	mustAddCmd(parser, "region", "Query words within a page region", `
Print the words of a page wholly contained by a bounding region. Omitted
bounds leave that side unbounded; endpoints are inclusive.

Words of page 2 with boxes inside x [100, 500]:
>  bounds-explore region --x-min 100 --x-max 500 2
`, &cmdRegion{})

	mustAddCmd(parser, "page", "Print statistics of one page", `
Print word, glyph, line, and sura counts of one rendered page.
`, &cmdPage{})

	mustAddCmd(parser, "layout", "Print per-line aggregates of one page", `
Print one row per rendered line of a page: its classification, glyph count,
and bounding extents, top to bottom.
`, &cmdLayout{})

	mustAddCmd(parser, "word", "Find occurrences of a word", `
Print every occurrence of an exact rendered text, in mushaf order.

>  bounds-explore word الله
`, &cmdWord{})

	mustAddCmd(parser, "ayah", "Print the word boxes of one ayah", `
Print the words of one ayah in reading order, crossing page breaks where
the ayah spans them.

The first ayah of sura 2:
>  bounds-explore ayah 2 1
`, &cmdAyah{})

	mustAddCmd(parser, "locate", "Find the word at a page coordinate", `
Print the word whose box contains a pixel coordinate of a rendered page,
if any. The hit test is inclusive of box edges.

>  bounds-explore locate 2 450 320
`, &cmdLocate{})

	mbp.AddPrintConfigCmd(parser, iniFilename)
	mbp.MustParseConfig(parser, iniFilename)
}

func mustAddCmd(parser *flags.Parser, name, short, long string, cfg interface{}) {
	var _, err = parser.AddCommand(name, short, long, cfg)
	mbp.Must(err, "failed to add command")
}
