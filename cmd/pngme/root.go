package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/fumin/pngme/internal/cli"
	"github.com/fumin/pngme/internal/commands"
	"github.com/fumin/pngme/internal/config"
)

// globals are the flags every command accepts.
type globals struct {
	configPath string
	logLevel   string
	level      string
}

func (g *globals) register(flagSet *pflag.FlagSet) {
	flagSet.StringVar(&g.configPath, "config", "", "config file (default $"+config.EnvVar+")")
	flagSet.StringVar(&g.logLevel, "log-level", "", "debug, info, warn or error (overrides log.level)")
	flagSet.StringVar(&g.level, "level", "", "compression: default, none, speed or best (overrides compression)")
}

// runner loads the configuration, applies flag overrides and builds the
// command runner.
func (g *globals) runner() (*commands.Runner, error) {
	var cfg *config.Config
	var err error
	if g.configPath != "" {
		cfg, err = config.LoadFile(g.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}
	if g.logLevel != "" {
		cfg.Log.Level = g.logLevel
	}
	if g.level != "" {
		cfg.Compression = g.level
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	level, err := cfg.LogLevel()
	if err != nil {
		return nil, err
	}
	return commands.NewRunner(cli.NewLogger(os.Stderr, level), cfg), nil
}

func newFlagSet(name string, g *globals) *pflag.FlagSet {
	flagSet := pflag.NewFlagSet(name, pflag.ContinueOnError)
	g.register(flagSet)
	return flagSet
}

func requireArgs(args []string, n int, usage string) error {
	if len(args) < n {
		return fmt.Errorf("expected %s", usage)
	}
	return nil
}

// root builds the command tree. Command output goes to stdout.
func root(stdout io.Writer) *cli.Command {
	var g globals

	var unchecked bool
	encode := &cli.Command{
		Name:    "encode",
		Summary: "Hide a message in a chunk",
		Description: "Store MESSAGE in a chunk of type TYPE, replacing any chunk of that type.\n" +
			"Unless --unchecked is given, TYPE must be ancillary and private with the\n" +
			"reserved bit clear, for example ruSt.",
		Usage: "pngme encode FILE TYPE MESSAGE... [flags]",
		Examples: []cli.Example{
			{Description: "Hide a message", Command: "pngme encode image.png ruSt this is a secret"},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := newFlagSet("encode", &g)
			flagSet.BoolVar(&unchecked, "unchecked", false, "allow any well-formed chunk type")
			return flagSet
		},
		Run: func(args []string) error {
			if err := requireArgs(args, 3, "FILE TYPE MESSAGE..."); err != nil {
				return err
			}
			r, err := g.runner()
			if err != nil {
				return err
			}
			return r.Encode(args[0], args[1], strings.Join(args[2:], " "), r.Config.Checked && !unchecked)
		},
	}

	decode := &cli.Command{
		Name:    "decode",
		Summary: "Print the message stored in a chunk",
		Usage:   "pngme decode FILE TYPE [flags]",
		Flags:   func() *pflag.FlagSet { return newFlagSet("decode", &g) },
		Run: func(args []string) error {
			if err := requireArgs(args, 2, "FILE TYPE"); err != nil {
				return err
			}
			r, err := g.runner()
			if err != nil {
				return err
			}
			msg, err := r.Decode(args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(stdout, msg)
			return nil
		},
	}

	var removeUnchecked bool
	remove := &cli.Command{
		Name:    "remove",
		Summary: "Remove the first chunk of a type",
		Usage:   "pngme remove FILE TYPE [flags]",
		Flags: func() *pflag.FlagSet {
			flagSet := newFlagSet("remove", &g)
			flagSet.BoolVar(&removeUnchecked, "unchecked", false, "allow removing any chunk type, critical ones included")
			return flagSet
		},
		Run: func(args []string) error {
			if err := requireArgs(args, 2, "FILE TYPE"); err != nil {
				return err
			}
			r, err := g.runner()
			if err != nil {
				return err
			}
			return r.Remove(args[0], args[1], r.Config.Checked && !removeUnchecked)
		},
	}

	var format string
	printCmd := &cli.Command{
		Name:    "print",
		Summary: "List the chunks of a file",
		Usage:   "pngme print FILE [flags]",
		Flags: func() *pflag.FlagSet {
			flagSet := newFlagSet("print", &g)
			flagSet.StringVar(&format, "format", commands.FormatText, "output format: text, json or cbor")
			return flagSet
		},
		Run: func(args []string) error {
			if err := requireArgs(args, 1, "FILE"); err != nil {
				return err
			}
			r, err := g.runner()
			if err != nil {
				return err
			}
			out, err := r.Print(args[0], format)
			if err != nil {
				return err
			}
			fmt.Fprintln(stdout, strings.TrimRight(out, "\n"))
			return nil
		},
	}

	var keep []string
	scrub := &cli.Command{
		Name:        "scrub",
		Summary:     "Remove chunks not needed to render the image",
		Description: "Remove every chunk except the critical ones, the ancillary chunks that\naffect rendering and the types listed by --keep or scrub.keep.",
		Usage:       "pngme scrub FILE [flags]",
		Flags: func() *pflag.FlagSet {
			flagSet := newFlagSet("scrub", &g)
			flagSet.StringSliceVar(&keep, "keep", nil, "chunk type to keep (repeatable)")
			return flagSet
		},
		Run: func(args []string) error {
			if err := requireArgs(args, 1, "FILE"); err != nil {
				return err
			}
			r, err := g.runner()
			if err != nil {
				return err
			}
			removed, err := r.Scrub(args[0], keep)
			if err != nil {
				return err
			}
			for _, t := range removed {
				fmt.Fprintln(stdout, t)
			}
			return nil
		},
	}

	var out string
	generate := &cli.Command{
		Name:    "generate",
		Summary: "Write demonstration images",
		Usage:   "pngme generate [flags]",
		Flags: func() *pflag.FlagSet {
			flagSet := newFlagSet("generate", &g)
			flagSet.StringVar(&out, "out", "", "output directory (default generate.output_dir)")
			return flagSet
		},
		Run: func(args []string) error {
			r, err := g.runner()
			if err != nil {
				return err
			}
			paths, err := r.Generate(out)
			for _, path := range paths {
				fmt.Fprintln(stdout, path)
			}
			return err
		},
	}

	return &cli.Command{
		Name:        "pngme",
		Description: "pngme edits PNG files at the chunk level.",
		Subcommands: []*cli.Command{encode, decode, remove, printCmd, scrub, generate},
	}
}
