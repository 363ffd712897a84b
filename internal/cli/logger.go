package cli

import (
	"log/slog"
	"os"

	"golang.org/x/term"
)

// NewLogger returns a logger writing to out at the given level. A
// terminal gets slog's text format; pipes and files get JSON lines.
//
// Commands scope it with With:
//
//	logger := cli.NewLogger(os.Stderr, level).With("command", "encode", "file", path)
func NewLogger(out *os.File, level slog.Leveler) *slog.Logger {
	var handler slog.Handler
	options := &slog.HandlerOptions{Level: level}
	if term.IsTerminal(int(out.Fd())) {
		handler = slog.NewTextHandler(out, options)
	} else {
		handler = slog.NewJSONHandler(out, options)
	}
	return slog.New(handler)
}
