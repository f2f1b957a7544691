// vsnew inspects, exports, and applies the vsnew syntax highlighting style.
//
// See 'vsnew -h' for usage.
package main

import (
	"errors"
	"flag"
	"io"
	"log"
	"os"

	"braces.dev/errtrace"
	"go.abhg.dev/vsnew/internal/errdefer"
	"go.abhg.dev/vsnew/vsnew"
)

func main() {
	cmd := mainCmd{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
	os.Exit(cmd.Run(os.Args[1:]))
}

// mainCmd is the actual entry point to the program.
type mainCmd struct {
	Stdout io.Writer // == os.Stdout
	Stderr io.Writer // == os.Stderr

	log *log.Logger
}

func (cmd *mainCmd) Run(args []string) (exitCode int) {
	cmd.log = log.New(cmd.Stderr, "", 0)

	opts, err := (&cliParser{
		Stdout: cmd.Stdout,
		Stderr: cmd.Stderr,
	}).Parse(args)
	if err != nil {
		// '$cmd -h' should exit with zero.
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		// No need to print anything.
		// Parse prints messages.
		return 1
	}

	if err := cmd.run(opts); err != nil {
		cmd.log.Printf("vsnew: %v", err)
		return 1
	}
	return 0
}

func (cmd *mainCmd) run(opts *params) (err error) {
	debugw, err := opts.Debug.Create(cmd.Stderr)
	if err != nil {
		return errtrace.Errorf("open debug log: %w", err)
	}
	defer errdefer.Close(&err, debugw)

	debugLog := log.New(debugw, "", 0)
	defer func() {
		if err != nil {
			debugLog.Print(errtrace.FormatString(err))
		}
	}()

	tbl, err := vsnew.New()
	if err != nil {
		return errtrace.Errorf("build %v style: %w", vsnew.Name, err)
	}

	style, err := vsnew.Register(tbl)
	if err != nil {
		return errtrace.Errorf("register %v style: %w", vsnew.Name, err)
	}
	debugLog.Printf("Registered style %q with %d entries", style.Name, tbl.Len())

	out := cmd.Stdout
	if len(opts.OutFile) > 0 {
		f, createErr := os.Create(opts.OutFile)
		if createErr != nil {
			return errtrace.Wrap(createErr)
		}
		defer errdefer.Close(&err, f)
		out = f
	}

	r := Runner{
		Log:   debugLog,
		Table: tbl,
		Style: style,
		Out:   out,
	}

	switch {
	case opts.List:
		return errtrace.Wrap(r.List(opts.Tree))
	case len(opts.Lookups) > 0:
		return errtrace.Wrap(r.Lookup(categories(opts.Lookups), opts.Resolve))
	case len(opts.Export) > 0:
		return errtrace.Wrap(r.Export(opts.Export))
	default:
		return errtrace.Wrap(r.Render(opts.Files, RenderOptions{
			Format:  opts.Format,
			Classes: opts.Classes,
			Lang:    opts.Lang,
		}))
	}
}
