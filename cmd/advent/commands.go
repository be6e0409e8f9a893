package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/advent-go/advent/internal/contract"
	"github.com/advent-go/advent/internal/scaffold"
)

type newCmd struct {
	Dir    string `type:"path" default:"." help:"Parent directory of the new program."`
	Module string `help:"Import path of the enclosing module (read from go.mod if omitted)."`
	Name   string `arg:"" help:"Name of the program, eg. day17."`
}

func (c *newCmd) Help() string {
	return `
Creates a directory containing a puzzle program that decodes its input as a list
of integers, and a test for both of its parts. Existing directories are never
overwritten.
`
}

func (c *newCmd) Run(logger *zap.Logger, w io.Writer) error {
	created, err := scaffold.Day{Name: c.Name, Dir: c.Dir, Module: c.Module}.Create()
	if err != nil {
		return err
	}
	logger.Debug("Created program", zap.String("dir", created.Dir), zap.Strings("files", created.Files))
	fmt.Fprintf(w, "created %s\n", created.Package)
	return nil
}

type checkCmd struct {
	Paths []string `arg:"" type:"path" help:"Go files or directories to check."`
}

// ErrDiagnostics is returned when any checked file violates a declaration contract.
var ErrDiagnostics = errors.New("declaration checks failed")

func (c *checkCmd) Run(logger *zap.Logger, w io.Writer) error {
	files, err := goFiles(c.Paths)
	if err != nil {
		return err
	}
	failed := 0
	for _, file := range files {
		src, err := os.ReadFile(file)
		if err != nil {
			return err
		}
		diags, err := contract.CheckSource(file, src)
		if err != nil {
			return err
		}
		logger.Debug("Checked", zap.String("file", file), zap.Int("diagnostics", len(diags)))
		for _, diag := range diags {
			fmt.Fprintln(w, diag)
		}
		failed += len(diags)
	}
	if failed > 0 {
		return fmt.Errorf("%w: %d problems", ErrDiagnostics, failed)
	}
	return nil
}

// goFiles expands directories into the Go files beneath them.
func goFiles(paths []string) ([]string, error) {
	out := []string{}
	for _, root := range paths {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				name := d.Name()
				if path != root && (strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") || name == "testdata") {
					return filepath.SkipDir
				}
				return nil
			}
			if strings.HasSuffix(path, ".go") {
				out = append(out, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}
