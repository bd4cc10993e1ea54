package mainboilerplate

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jessevdk/go-flags"
)

// configSearchDirs returns the directories searched for an INI file, in
// order of precedence: the working directory first, then the user's
// configuration directory.
func configSearchDirs() []string {
	return []string{
		".",
		filepath.Join(os.Getenv("HOME"), ".config", "quran-bounds"),
		filepath.Join(os.Getenv("UserProfile"), ".config", "quran-bounds"),
	}
}

// MustParseConfig parses the combination of an optional INI file named
// |configName|, configured environment bindings, and explicit flags into the
// Parser, exiting on a parse failure.
func MustParseConfig(parser *flags.Parser, configName string) {
	// Tolerate unknown options while parsing the INI file, which may name
	// options of this program's sibling.
	var origOptions = parser.Options
	parser.Options |= flags.IgnoreUnknown

	var iniParser = flags.NewIniParser(parser)

	for _, dir := range configSearchDirs() {
		var err = iniParser.ParseFile(filepath.Join(dir, configName))

		if err == nil {
			break
		} else if os.IsNotExist(err) {
			// Pass.
		} else {
			fmt.Println(err)
			os.Exit(1)
		}
	}

	parser.Options = origOptions
	MustParseArgs(parser)
}

// MustParseArgs requires that the Parser ParseArgs without error, exiting
// (or panicking, on a developer error in the config object itself) if it
// cannot.
func MustParseArgs(parser *flags.Parser) {
	var _, err = parser.ParseArgs(os.Args[1:])
	if err == nil {
		return
	}
	var flagErr, ok = err.(*flags.Error)
	if !ok {
		Must(err, "fatal error")
	}

	switch flagErr.Type {
	case flags.ErrDuplicatedFlag, flags.ErrTag, flags.ErrInvalidTag,
		flags.ErrShortNameTooLong, flags.ErrMarshal:
		// The configuration object itself is malformed: a developer error,
		// not an input error.
		panic(err)

	case flags.ErrCommandRequired, flags.ErrHelp:
		if flagErr.Type == flags.ErrCommandRequired || parser.Options&flags.PrintErrors == 0 {
			os.Stderr.WriteString("\n")
			parser.WriteHelp(os.Stderr)
		}
		fmt.Fprintf(os.Stderr, "\nVersion %s, built at %s.\n", Version, BuildDate)
		os.Exit(1)

	default:
		// An input error. go-flags already printed a helpful message.
		os.Exit(1)
	}
}

// AddPrintConfigCmd registers the "print-config" command, which helps users
// verify their configuration by exporting the combined runtime configuration
// in INI format.
func AddPrintConfigCmd(parser *flags.Parser, configName string) {
	parser.AddCommand("print-config", "Print combined configuration and exit", `
print-config parses the combined configuration from `+configName+`, flags,
and environment variables, and then writes the configuration to stdout in INI format.
`, &printConfig{parser})
}

type printConfig struct {
	*flags.Parser `no-flag:"t"`
}

func (p printConfig) Execute([]string) error {
	var ini = flags.NewIniParser(p.Parser)
	ini.Write(os.Stdout, flags.IniIncludeComments|flags.IniCommentDefaults|flags.IniIncludeDefaults)
	return nil
}
