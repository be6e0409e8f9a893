// Package scaffold creates the skeleton of a new puzzle program.
package scaffold

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"text/template"

	"golang.org/x/mod/modfile"
)

// Library is the import path generated programs use for the harness.
const Library = "github.com/advent-go/advent"

//go:embed templates/*.tmpl
var embedded embed.FS

// templates rendered into each new program.
var templates fs.FS = embedded

var validName = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// ErrExists is returned when the target directory of a new program already exists.
var ErrExists = errors.New("directory already exists")

// Day describes a puzzle program to create.
type Day struct {
	// Name of the program, and of the directory created for it.
	Name string
	// Dir is the parent directory the program is created in.
	Dir string
	// Module is the import path of the module containing Dir. If empty it is read from the
	// nearest enclosing go.mod.
	Module string
	// Library is the import path of the harness. Defaults to Library.
	Library string
}

// Created summarises a generated program.
type Created struct {
	Dir     string
	Package string
	Files   []string
}

// Create writes the program skeleton.
//
// An existing directory is never overwritten, and a directory that cannot be fully rendered is
// removed again.
func (d Day) Create() (*Created, error) {
	if !validName.MatchString(d.Name) {
		return nil, fmt.Errorf("invalid program name %q: must be a lower case Go identifier", d.Name)
	}
	if d.Dir == "" {
		d.Dir = "."
	}
	if d.Library == "" {
		d.Library = Library
	}
	parent, err := filepath.Abs(d.Dir)
	if err != nil {
		return nil, err
	}
	target := filepath.Join(parent, d.Name)
	if _, err := os.Stat(target); err == nil {
		return nil, fmt.Errorf("%s: %w", target, ErrExists)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	pkg, err := d.packagePath(parent)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(target, 0o755); err != nil {
		return nil, err
	}
	files, err := d.renderAll(target)
	if err != nil {
		_ = os.RemoveAll(target)
		return nil, err
	}
	return &Created{Dir: target, Package: pkg, Files: files}, nil
}

func (d Day) renderAll(target string) ([]string, error) {
	entries, err := fs.Glob(templates, "templates/*.tmpl")
	if err != nil {
		return nil, err
	}
	files := []string{}
	for _, entry := range entries {
		name := strings.TrimSuffix(path.Base(entry), ".tmpl")
		if err := d.render(entry, filepath.Join(target, name)); err != nil {
			return nil, err
		}
		files = append(files, name)
	}
	return files, nil
}

func (d Day) render(entry, dest string) error {
	tmpl, err := template.ParseFS(templates, entry)
	if err != nil {
		return err
	}
	w, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer w.Close() // nolint: errcheck
	if err := tmpl.Execute(w, d); err != nil {
		return fmt.Errorf("%s: %w", path.Base(entry), err)
	}
	return w.Close()
}

func (d Day) packagePath(parent string) (string, error) {
	if d.Module != "" {
		return path.Join(d.Module, d.Name), nil
	}
	root, module, err := FindModule(parent)
	if err != nil {
		return "", err
	}
	rel, err := filepath.Rel(root, parent)
	if err != nil {
		return "", err
	}
	return path.Join(module, filepath.ToSlash(rel), d.Name), nil
}

// FindModule walks up from dir to the nearest go.mod and returns its directory and module path.
func FindModule(dir string) (root, module string, err error) {
	for {
		data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
		if err == nil {
			module := modfile.ModulePath(data)
			if module == "" {
				return "", "", fmt.Errorf("%s: no module directive", filepath.Join(dir, "go.mod"))
			}
			return dir, module, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", "", err
		}
		up := filepath.Dir(dir)
		if up == dir {
			return "", "", errors.New("not inside a Go module: no go.mod found")
		}
		dir = up
	}
}
