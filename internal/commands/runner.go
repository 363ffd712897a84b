// Package commands implements the pngme operations on files: hiding,
// reading and removing messages, listing and scrubbing chunks, and
// generating demonstration images.
package commands

import (
	"fmt"
	"io"
	"log/slog"

	png "github.com/fumin/pngme"
	"github.com/fumin/pngme/internal/config"
)

// Runner carries what every command needs. The zero value is not
// usable; build one with NewRunner.
type Runner struct {
	Logger *slog.Logger
	Config *config.Config
}

// NewRunner returns a Runner. A nil logger discards output and a nil
// config means config.Default.
func NewRunner(logger *slog.Logger, cfg *config.Config) *Runner {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if cfg == nil {
		cfg = config.Default()
	}
	return &Runner{Logger: logger, Config: cfg}
}

func parseType(s string, checked bool) (png.ChunkType, error) {
	t, err := png.ParseChunkType(s)
	if err != nil {
		return png.ChunkType{}, fmt.Errorf("chunk type %q: %w", s, err)
	}
	if checked {
		if err := t.Checked(); err != nil {
			return png.ChunkType{}, fmt.Errorf("chunk type %q: %w", s, err)
		}
	}
	return t, nil
}

// Encode stores message in a chunk of type typ, replacing any chunk of
// that type already in the file. With checked set, typ must be an
// ancillary private type.
func (r *Runner) Encode(file, typ, message string, checked bool) error {
	logger := r.Logger.With("command", "encode", "file", file, "type", typ)

	t, err := parseType(typ, checked)
	if err != nil {
		return err
	}
	if len(message) > png.MaxChunkLength {
		return fmt.Errorf("message of %d bytes does not fit in a chunk", len(message))
	}
	p, err := readPng(file)
	if err != nil {
		return err
	}

	replaced := 0
	for {
		if _, err := p.RemoveChunk(t); err != nil {
			break
		}
		replaced++
	}
	p.AppendChunk(png.NewChunk(t, []byte(message)))

	if err := writePng(file, p); err != nil {
		return err
	}
	logger.Info("message encoded", "bytes", len(message), "replaced", replaced)
	return nil
}

// Decode returns the text stored in the first chunk of type typ.
func (r *Runner) Decode(file, typ string) (string, error) {
	logger := r.Logger.With("command", "decode", "file", file, "type", typ)

	t, err := parseType(typ, false)
	if err != nil {
		return "", err
	}
	p, err := readPng(file)
	if err != nil {
		return "", err
	}
	c := p.ChunkByType(t)
	if c == nil {
		return "", fmt.Errorf("%s: %w", typ, png.ErrChunkNotFound)
	}
	text, err := c.Text()
	if err != nil {
		return "", fmt.Errorf("%s: %w", typ, err)
	}
	logger.Debug("message decoded", "bytes", c.Length())
	return text, nil
}

// Remove deletes the first chunk of type typ. With checked set, typ
// must be an ancillary private type, which keeps Remove from breaking
// the image.
func (r *Runner) Remove(file, typ string, checked bool) error {
	logger := r.Logger.With("command", "remove", "file", file, "type", typ)

	t, err := parseType(typ, checked)
	if err != nil {
		return err
	}
	p, err := readPng(file)
	if err != nil {
		return err
	}
	c, err := p.RemoveChunk(t)
	if err != nil {
		return fmt.Errorf("%s: %w", typ, err)
	}
	if err := writePng(file, p); err != nil {
		return err
	}
	logger.Info("chunk removed", "bytes", c.Length())
	return nil
}

// Scrub removes every chunk not needed to render the image, sparing the
// types in keep and in the configured scrub.keep list. It returns the
// removed types in file order.
func (r *Runner) Scrub(file string, keep []string) ([]png.ChunkType, error) {
	logger := r.Logger.With("command", "scrub", "file", file)

	keepTypes, err := r.Config.KeepTypes()
	if err != nil {
		return nil, err
	}
	for _, s := range keep {
		t, err := parseType(s, false)
		if err != nil {
			return nil, err
		}
		keepTypes = append(keepTypes, t)
	}

	p, err := readPng(file)
	if err != nil {
		return nil, err
	}
	removed := p.Scrub(keepTypes...)
	if len(removed) == 0 {
		logger.Info("nothing to scrub")
		return nil, nil
	}
	if err := writePng(file, p); err != nil {
		return nil, err
	}
	logger.Info("file scrubbed", "removed", chunkTypeNames(removed))
	return removed, nil
}

func chunkTypeNames(types []png.ChunkType) []string {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = t.String()
	}
	return names
}
