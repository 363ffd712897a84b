package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	png "github.com/fumin/pngme"
)

// File access failures. The underlying OS error is kept in the chain.
var (
	ErrFileNotFound   = errors.New("file not found")
	ErrFileNotRead    = errors.New("file could not be read")
	ErrFileNotWritten = errors.New("file could not be written")
)

func readPng(path string) (*png.Png, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFileNotRead, err)
	}
	p, err := png.Decode(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// writePng replaces path with the encoded image. The bytes go to a
// temporary file in the same directory first, so a failed write leaves
// the original untouched.
func writePng(path string, p *png.Png) error {
	mode := fs.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".pngme-*")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFileNotWritten, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := p.WriteTo(tmp); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: %w", ErrFileNotWritten, err)
	}
	if err := tmp.Chmod(mode); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: %w", ErrFileNotWritten, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrFileNotWritten, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("%w: %w", ErrFileNotWritten, err)
	}
	return nil
}
