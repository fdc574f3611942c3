// msc - the MSCode interpreter CLI
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/tliron/commonlog"

	"github.com/tomBoddaert/msc/manifest"

	_ "github.com/tliron/commonlog/simple"
)

const version = "1.0.0"

var log = commonlog.GetLogger("msc")

func main() {
	suppress := flag.Bool("suppress", false, "Suppress errors and input prompts")
	forceStdin := flag.Bool("stdin", false, "Read the program from stdin")
	showVersion := flag.Bool("version", false, "Print the version")
	tracePath := flag.String("trace", "", "Record a CBOR execution trace to `file`")
	limit := flag.Uint64("limit", 0, "Stop after `n` steps (0 = unlimited)")
	verbosity := flag.Int("v", 0, "Log verbosity")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: msc [options] [files...]\n\n")
		fmt.Fprintf(os.Stderr, "Runs MSCode programs. With no files, the program is read from stdin.\n")
		fmt.Fprintf(os.Stderr, "An msc.toml in the working directory (or an ancestor) selects the\n")
		fmt.Fprintf(os.Stderr, "register type and run defaults; flags override it.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  msc program.msc              # Run a file\n")
		fmt.Fprintf(os.Stderr, "  msc < program.msc            # Run from a pipe (no interactive input)\n")
		fmt.Fprintf(os.Stderr, "  msc -trace run.cbor prog.msc # Record an execution trace\n")
		fmt.Fprintf(os.Stderr, "  msc -limit 1000 loop.msc     # Cap a non-halting program\n")
	}
	flag.Parse()

	commonlog.Configure(*verbosity, nil)

	if *showVersion {
		fmt.Printf("msc version %s\n", version)
		return
	}

	m, err := manifest.FindAndLoad(".")
	if err != nil {
		fail(*suppress, err)
	}
	if m == nil {
		m = manifest.Default()
	} else {
		log.Infof("using manifest in %s", m.Dir)
	}

	opts := options{
		files:     flag.Args(),
		useStdin:  *forceStdin,
		suppress:  m.Run.Suppress,
		limit:     m.Run.Limit,
		tracePath: m.Trace.Output,
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "suppress":
			opts.suppress = *suppress
		case "limit":
			opts.limit = *limit
		case "trace":
			opts.tracePath = *tracePath
		}
	})

	if err := dispatch(m.Register, opts); err != nil {
		fail(opts.suppress, err)
	}
}

func fail(suppress bool, err error) {
	if !suppress {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(1)
}
