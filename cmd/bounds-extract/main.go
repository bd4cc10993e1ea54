package main

import (
	"time"

	"github.com/dustin/go-humanize"
	_ "github.com/go-sql-driver/mysql"
	"github.com/jessevdk/go-flags"
	_ "github.com/lib/pq"
	log "github.com/sirupsen/logrus"

	"github.com/blueheron786/quran-word-position-data/extract"
	mbp "github.com/blueheron786/quran-word-position-data/mainboilerplate"
)

const iniFilename = "quran-bounds.ini"

// Config is the top-level configuration object of bounds-extract.
var Config = new(struct {
	Source struct {
		Driver string `long:"driver" env:"DRIVER" default:"mysql" choice:"mysql" choice:"postgres" description:"Driver of the source store"`
		DSN    string `long:"dsn" env:"DSN" default:"root@tcp(localhost:3306)/quran_pages" description:"Connection string of the source store"`
	} `group:"Source" namespace:"source" env-namespace:"SOURCE"`

	Output string `long:"output" env:"OUTPUT" default:"quran_word_bounds.sqlite" description:"Path of the SQLite database to produce"`

	Log mbp.LogConfig `group:"Logging" namespace:"log" env-namespace:"LOG"`
})

type cmdExtract struct {
	Args struct {
		DSN string `positional-arg-name:"source-dsn" description:"Connection string of the source store (overrides --source.dsn)"`
	} `positional-args:"yes"`
}

func (cmd *cmdExtract) Execute([]string) error {
	mbp.InitLog(Config.Log)

	var dsn = Config.Source.DSN
	if cmd.Args.DSN != "" {
		dsn = cmd.Args.DSN
	}
	log.WithFields(log.Fields{
		"driver": Config.Source.Driver,
		"output": Config.Output,
	}).Info("starting extraction")

	var started = time.Now()
	var stats, err = extract.Run(extract.Config{
		SourceDriver: Config.Source.Driver,
		SourceDSN:    dsn,
		OutputPath:   Config.Output,
	})
	if err != nil {
		log.WithField("err", err).Fatal("extraction failed")
	}

	log.WithFields(log.Fields{
		"words":   humanize.Comma(stats.WordRows),
		"glyphs":  humanize.Comma(stats.GlyphRows),
		"skipped": stats.SkippedRows,
		"elapsed": time.Since(started).Round(time.Millisecond).String(),
	}).Info("extraction complete")
	return nil
}

func main() {
	var parser = flags.NewParser(Config, flags.Default)

	_, _ = parser.AddCommand("run", "Run an extraction", `
Run a complete extraction: connect to the source store, re-create the
word_bounds and glyph_bounds tables of the output database, and bulk-load
both, each within a single transaction. An optional positional argument
overrides --source.dsn.

Malformed source rows are skipped, logged, and counted; they never fail the
run. Re-running an extraction replaces the output tables wholesale.
`, &cmdExtract{})

	mbp.AddPrintConfigCmd(parser, iniFilename)
	mbp.MustParseConfig(parser, iniFilename)
}
