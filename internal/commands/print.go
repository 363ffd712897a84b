package commands

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/fxamacker/cbor/v2"
	"github.com/zeebo/blake3"
)

// Print output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatCBOR = "cbor"
)

var ErrUnknownFormat = errors.New("unknown output format")

// encMode is Core Deterministic CBOR, so equal reports encode to equal
// bytes.
var encMode cbor.EncMode

func init() {
	var err error
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("commands: CBOR encoder initialization failed: " + err.Error())
	}
}

// A Report describes the chunks of one file.
type Report struct {
	File   string `json:"file" cbor:"file"`
	Width  uint32 `json:"width,omitempty" cbor:"width,omitempty"`
	Height uint32 `json:"height,omitempty" cbor:"height,omitempty"`

	// ImageDigest is the hex BLAKE3 hash of the concatenated IDAT
	// payloads. It changes only when the compressed pixels do, so it is
	// stable across encode, remove and scrub.
	ImageDigest string `json:"image_digest,omitempty" cbor:"image_digest,omitempty"`

	Chunks []ChunkInfo `json:"chunks" cbor:"chunks"`
}

// ChunkInfo is one line of a Report.
type ChunkInfo struct {
	Type     string `json:"type" cbor:"type"`
	Length   uint32 `json:"length" cbor:"length"`
	CRC      uint32 `json:"crc" cbor:"crc"`
	Critical bool   `json:"critical" cbor:"critical"`
	Text     string `json:"text,omitempty" cbor:"text,omitempty"`
}

// Inspect reads file and builds its Report. A missing or invalid IHDR
// leaves the dimensions at zero.
func (r *Runner) Inspect(file string) (*Report, error) {
	p, err := readPng(file)
	if err != nil {
		return nil, err
	}

	rep := &Report{File: file, Chunks: []ChunkInfo{}}
	if h, err := p.Header(); err == nil {
		rep.Width, rep.Height = h.Dimensions()
	} else {
		r.Logger.Warn("no usable image header", "file", file, "error", err)
	}
	if data := p.ImageData(); len(data) > 0 {
		sum := blake3.Sum256(data)
		rep.ImageDigest = hex.EncodeToString(sum[:])
	}
	for _, c := range p.Chunks() {
		info := ChunkInfo{
			Type:     c.Type().String(),
			Length:   c.Length(),
			CRC:      c.CRC(),
			Critical: c.Type().IsCritical(),
		}
		if !info.Critical {
			if text, err := c.Text(); err == nil {
				info.Text = text
			}
		}
		rep.Chunks = append(rep.Chunks, info)
	}
	return rep, nil
}

// Print renders the Report of file in the given format.
func (r *Runner) Print(file, format string) (string, error) {
	rep, err := r.Inspect(file)
	if err != nil {
		return "", err
	}
	r.Logger.Debug("printing report", "command", "print", "file", file, "format", format, "chunks", len(rep.Chunks))
	return rep.Render(format)
}

// Render formats the report as styled text, indented JSON or hex
// encoded CBOR.
func (rep *Report) Render(format string) (string, error) {
	switch format {
	case "", FormatText:
		return rep.text(), nil
	case FormatJSON:
		b, err := json.MarshalIndent(rep, "", "  ")
		if err != nil {
			return "", err
		}
		return string(b), nil
	case FormatCBOR:
		b, err := encMode.Marshal(rep)
		if err != nil {
			return "", err
		}
		return hex.EncodeToString(b), nil
	}
	return "", fmt.Errorf("%w %q (want %s, %s or %s)", ErrUnknownFormat, format, FormatText, FormatJSON, FormatCBOR)
}

var (
	titleStyle     = lipgloss.NewStyle().Bold(true)
	criticalStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	ancillaryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	faintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

func (rep *Report) text() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render(rep.File))
	if rep.Width != 0 {
		fmt.Fprintf(&sb, " %dx%d", rep.Width, rep.Height)
	}
	sb.WriteByte('\n')
	for _, c := range rep.Chunks {
		style := ancillaryStyle
		if c.Critical {
			style = criticalStyle
		}
		fmt.Fprintf(&sb, "  %s (%d)", style.Render(c.Type), c.Length)
		if c.Text != "" {
			sb.WriteString(": " + printable(c.Text))
		}
		sb.WriteByte('\n')
	}
	if rep.ImageDigest != "" {
		sb.WriteString(faintStyle.Render("image data blake3 " + rep.ImageDigest))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// printable escapes control and other non-printing runes so chunk text
// cannot drive the terminal.
func printable(s string) string {
	var sb strings.Builder
	for _, r := range s {
		if unicode.IsPrint(r) {
			sb.WriteRune(r)
			continue
		}
		q := strconv.QuoteRune(r)
		sb.WriteString(q[1 : len(q)-1])
	}
	return sb.String()
}
