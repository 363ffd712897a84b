package main

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	png "github.com/fumin/pngme"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout bytes.Buffer
	err := root(&stdout).Execute(append(args, "--log-level", "error"))
	return stdout.String(), err
}

func TestCommands(t *testing.T) {
	t.Setenv("PNGME_CONFIG", "")
	dir := t.TempDir()

	out, err := run(t, "generate", "--out", dir, "--level", "speed")
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if !strings.Contains(out, "squares.png") {
		t.Fatalf("%q", out)
	}
	file := filepath.Join(dir, "squares.png")

	if _, err := run(t, "encode", file, "ruSt", "meet", "at", "noon"); err != nil {
		t.Fatalf("%+v", err)
	}
	out, err = run(t, "decode", file, "ruSt")
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if out != "meet at noon\n" {
		t.Fatalf("%q", out)
	}

	if _, err := run(t, "encode", file, "tEXt", "x"); !errors.Is(err, png.ErrExpectPrivate) {
		t.Fatalf("%+v", err)
	}
	if _, err := run(t, "encode", file, "tEXt", "Comment", "--unchecked"); err != nil {
		t.Fatalf("%+v", err)
	}

	out, err = run(t, "print", file, "--format", "json")
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if !strings.Contains(out, `"type": "ruSt"`) || !strings.Contains(out, `"width": 256`) {
		t.Fatalf("%s", out)
	}

	out, err = run(t, "scrub", file, "--keep", "tEXt")
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if out != "ruSt\n" {
		t.Fatalf("%q", out)
	}

	if _, err := run(t, "remove", file, "tEXt"); !errors.Is(err, png.ErrExpectPrivate) {
		t.Fatalf("%+v", err)
	}
	if _, err := run(t, "remove", file, "tEXt", "--unchecked"); err != nil {
		t.Fatalf("%+v", err)
	}
	if _, err := run(t, "decode", file, "tEXt"); !errors.Is(err, png.ErrChunkNotFound) {
		t.Fatalf("%+v", err)
	}
}

func TestCommandErrors(t *testing.T) {
	t.Setenv("PNGME_CONFIG", "")
	if _, err := run(t, "decode", "only-one-arg"); err == nil || !strings.Contains(err.Error(), "FILE TYPE") {
		t.Fatalf("%v", err)
	}
	if _, err := run(t, "generate", "--level", "fastest"); err == nil || !strings.Contains(err.Error(), "compression") {
		t.Fatalf("%v", err)
	}
	if _, err := run(t, "print", "x.png", "--config", filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing config")
	}
}
