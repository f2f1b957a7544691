package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/peterbourgon/ff/v3"
	"go.abhg.dev/vsnew/internal/flagvalue"
	"go.abhg.dev/vsnew/styletable"
)

var (
	errHelp             = flag.ErrHelp
	errInvalidArguments = errors.New("invalid arguments")
)

// _envPrefix is the prefix for environment variables
// that set flags, e.g. VSNEW_FORMAT=terminal.
const _envPrefix = "VSNEW"

// params holds all arguments for vsnew.
type params struct {
	version bool
	help    Help

	Config  string
	Debug   flagvalue.FileSwitch
	OutFile string

	List    bool
	Tree    bool
	Lookups []categoryFlag
	Resolve bool
	Export  exportFormat

	Format  outputFormat
	Classes bool
	Lang    string

	Files []string
}

// cliParser parses the command line arguments for vsnew.
type cliParser struct {
	Stdout io.Writer
	Stderr io.Writer
}

func (cmd *cliParser) newFlagSet() (*params, *flag.FlagSet) {
	flag := flag.NewFlagSet("vsnew", flag.ContinueOnError)
	flag.SetOutput(cmd.Stderr)
	flag.Usage = func() {
		_ = DefaultHelp.Write(cmd.Stderr)
	}

	p := params{Format: formatHTML}

	// Inspection:
	flag.BoolVar(&p.List, "list", false, "")
	flag.BoolVar(&p.Tree, "tree", false, "")
	flag.Var(flagvalue.ListOf(&p.Lookups), "lookup", "")
	flag.BoolVar(&p.Resolve, "resolve", false, "")
	flag.Var(&p.Export, "export", "")

	// Rendering:
	flag.Var(&p.Format, "format", "")
	flag.BoolVar(&p.Classes, "classes", false, "")
	flag.StringVar(&p.Lang, "lang", "", "")
	flag.StringVar(&p.OutFile, "out", "", "")

	// Program-level:
	flag.StringVar(&p.Config, "config", "", "")
	flag.Var(&p.Debug, "debug", "")
	flag.BoolVar(&p.version, "version", false, "")
	flag.Var(&p.help, "help", "")
	flag.Var(&p.help, "h", "")

	return &p, flag
}

func (cmd *cliParser) Parse(args []string) (*params, error) {
	p, flag := cmd.newFlagSet()
	err := ff.Parse(flag, args,
		ff.WithEnvVarPrefix(_envPrefix),
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(ff.PlainParser),
	)
	if err != nil {
		if !errors.Is(err, errHelp) {
			// flag.FlagSet reports its own errors.
			// Errors from reading the config file are ours to print.
			fmt.Fprintln(cmd.Stderr, err)
		}
		return nil, err
	}
	args = flag.Args()

	if p.version {
		fmt.Fprintln(cmd.Stdout, "vsnew", _version)
		return nil, errHelp
	}

	if p.help == DefaultHelp && len(args) > 0 {
		// The user might have done "-h foo"
		// instead of "-h=foo".
		// If the argument is a known help topic,
		// take it.
		var h Help
		if err := h.Set(args[0]); err == nil && h.Known() {
			p.help = h
		}
	}

	switch p.help {
	case NoHelp:
		// proceed as usual
	default:
		if err := p.help.Write(cmd.Stderr); err != nil {
			fmt.Fprintln(cmd.Stderr, err)
		}
		return nil, errHelp
	}

	if p.Tree && !p.List {
		fmt.Fprintln(cmd.Stderr, "-tree may only be used with -list.")
		return nil, errInvalidArguments
	}
	if p.Resolve && len(p.Lookups) == 0 {
		fmt.Fprintln(cmd.Stderr, "-resolve may only be used with -lookup.")
		return nil, errInvalidArguments
	}

	p.Files = args
	if !p.List && len(p.Lookups) == 0 && len(p.Export) == 0 && len(p.Files) == 0 {
		fmt.Fprintln(cmd.Stderr, "Please provide at least one file, or one of -list, -lookup, -export.")
		_ = UsageHelp.Write(cmd.Stderr)
		return nil, errInvalidArguments
	}

	return p, nil
}

// categoryFlag is a token category passed to -lookup.
type categoryFlag styletable.Category

var _ flag.Getter = (*categoryFlag)(nil)

func (c *categoryFlag) Get() any { return styletable.Category(*c) }

func (c *categoryFlag) String() string { return string(*c) }

func (c *categoryFlag) Set(s string) error {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return errors.New("category must not be empty")
	}
	*c = categoryFlag(s)
	return nil
}

func categories(fs []categoryFlag) []styletable.Category {
	cats := make([]styletable.Category, len(fs))
	for i, f := range fs {
		cats[i] = styletable.Category(f)
	}
	return cats
}

// exportFormat is the output format for -export.
type exportFormat string

const (
	exportChroma   exportFormat = "chroma"
	exportCSS      exportFormat = "css"
	exportPygments exportFormat = "pygments"
)

var _exportFormats = []exportFormat{exportChroma, exportCSS, exportPygments}

var _ flag.Getter = (*exportFormat)(nil)

func (f *exportFormat) Get() any { return *f }

func (f *exportFormat) String() string { return string(*f) }

func (f *exportFormat) Set(s string) error {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, want := range _exportFormats {
		if s == string(want) {
			*f = want
			return nil
		}
	}
	return fmt.Errorf("unknown export format %q: valid values are %q", s, _exportFormats)
}

// outputFormat is the output format for rendered files.
type outputFormat string

const (
	formatHTML     outputFormat = "html"
	formatTerminal outputFormat = "terminal"
)

var _ flag.Getter = (*outputFormat)(nil)

func (f *outputFormat) Get() any { return *f }

func (f *outputFormat) String() string { return string(*f) }

func (f *outputFormat) Set(s string) error {
	switch v := outputFormat(strings.ToLower(strings.TrimSpace(s))); v {
	case formatHTML, formatTerminal:
		*f = v
		return nil
	default:
		return fmt.Errorf("unknown format %q: valid values are %q", s, []outputFormat{formatHTML, formatTerminal})
	}
}
