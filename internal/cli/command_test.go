package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

func TestCommand_Execute_DispatchesToSubcommand(t *testing.T) {
	var called string
	var receivedArgs []string

	root := &Command{
		Name: "pngme",
		Subcommands: []*Command{
			{
				Name: "encode",
				Run: func(args []string) error {
					called = "encode"
					receivedArgs = args
					return nil
				},
			},
			{
				Name: "decode",
				Run: func(args []string) error {
					called = "decode"
					return nil
				},
			},
		},
	}

	if err := root.Execute([]string{"encode", "a.png", "ruSt"}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if called != "encode" {
		t.Errorf("dispatched to %q, want %q", called, "encode")
	}
	if len(receivedArgs) != 2 || receivedArgs[1] != "ruSt" {
		t.Errorf("args = %v", receivedArgs)
	}
}

func TestCommand_Execute_FlagParsing(t *testing.T) {
	var format string
	var target string

	command := &Command{
		Name: "print",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("print", pflag.ContinueOnError)
			flagSet.StringVar(&format, "format", "text", "output format")
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				target = args[0]
			}
			return nil
		},
	}

	if err := command.Execute([]string{"image.png", "--format", "json"}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if format != "json" {
		t.Errorf("format = %q, want %q", format, "json")
	}
	if target != "image.png" {
		t.Errorf("target = %q, want %q", target, "image.png")
	}
}

func TestCommand_Execute_UnknownFlagSuggestion(t *testing.T) {
	command := &Command{
		Name: "encode",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("encode", pflag.ContinueOnError)
			flagSet.Bool("unchecked", false, "skip the chunk type policy")
			return flagSet
		},
		Run: func(args []string) error { return nil },
	}

	err := command.Execute([]string{"--uncheked"})
	if err == nil {
		t.Fatal("expected error for unknown flag")
	}
	if !strings.Contains(err.Error(), "did you mean --unchecked?") {
		t.Errorf("error = %q", err)
	}
}

func TestCommand_Execute_UnknownCommandSuggestion(t *testing.T) {
	root := &Command{
		Name:        "pngme",
		Output:      &bytes.Buffer{},
		Subcommands: []*Command{{Name: "scrub", Run: func([]string) error { return nil }}},
	}
	err := root.Execute([]string{"scrb"})
	if err == nil {
		t.Fatal("expected error for unknown command")
	}
	if !strings.Contains(err.Error(), `did you mean "scrub"?`) {
		t.Errorf("error = %q", err)
	}

	err = root.Execute([]string{"completely-different"})
	if err == nil || strings.Contains(err.Error(), "did you mean") {
		t.Errorf("error = %v", err)
	}
}

func TestCommand_Execute_SubcommandRequired(t *testing.T) {
	var help bytes.Buffer
	root := &Command{
		Name:        "pngme",
		Output:      &help,
		Subcommands: []*Command{{Name: "print", Summary: "List chunks"}},
	}
	if err := root.Execute(nil); err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(help.String(), "print") || !strings.Contains(help.String(), "List chunks") {
		t.Errorf("help = %q", help.String())
	}
}

func TestCommand_PrintHelp(t *testing.T) {
	var help bytes.Buffer
	root := &Command{Name: "pngme", Output: &help}
	sub := &Command{
		Name:        "scrub",
		Summary:     "Remove chunks",
		Description: "Remove every chunk not needed to render the image.",
		Usage:       "pngme scrub FILE [flags]",
		Examples:    []Example{{Description: "Keep text chunks", Command: "pngme scrub a.png --keep tEXt"}},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("scrub", pflag.ContinueOnError)
			flagSet.StringSlice("keep", nil, "chunk types to keep")
			return flagSet
		},
		Run: func([]string) error { return nil },
	}
	root.Subcommands = []*Command{sub}

	if err := root.Execute([]string{"scrub", "--help"}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	out := help.String()
	for _, want := range []string{"Remove every chunk", "pngme scrub FILE", "--keep", "# Keep text chunks"} {
		if !strings.Contains(out, want) {
			t.Errorf("help missing %q:\n%s", want, out)
		}
	}
}

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"encode", "encode", 0},
		{"encdoe", "encode", 2},
		{"scrb", "scrub", 1},
		{"kitten", "sitting", 3},
	}
	for _, test := range tests {
		if got := levenshtein(test.a, test.b); got != test.want {
			t.Errorf("levenshtein(%q, %q) = %d, want %d", test.a, test.b, got, test.want)
		}
	}
}
