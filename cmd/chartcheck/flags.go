package main

import (
	"fmt"

	flag "github.com/spf13/pflag"
)

// cliFlags holds parsed command-line flags. The zero-argument invocation
// validates the current working directory.
type cliFlags struct {
	root    string
	jsonOut bool
	quiet   bool
	verbose bool
	version bool
}

// parseFlags parses args, which includes the program name at args[0].
func parseFlags(args []string) (*cliFlags, error) {
	fs := flag.NewFlagSet("chartcheck", flag.ContinueOnError)
	flags := &cliFlags{}

	fs.StringVar(&flags.root, "root", ".", "project root containing index.html")
	fs.BoolVar(&flags.jsonOut, "json", false, "write the report as JSON to stdout")
	fs.BoolVarP(&flags.quiet, "quiet", "q", false, "suppress the success line")
	fs.BoolVarP(&flags.verbose, "verbose", "v", false, "print progress to stderr")
	fs.BoolVar(&flags.version, "version", false, "print version and exit")

	if err := fs.Parse(args[1:]); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("%w: unexpected argument %q", ErrUsage, fs.Arg(0))
	}
	return flags, nil
}
