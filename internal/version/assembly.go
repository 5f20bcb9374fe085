// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package version

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/matt-FFFFFF/packagebuilder/internal/commandline"
	"github.com/matt-FFFFFF/packagebuilder/internal/ctxlog"
	"github.com/spf13/afero"
)

const (
	dllExtension = ".dll"
	exeExtension = ".exe"
	binDirectory = "bin"
)

// AttributeReader reads a version attribute from an assembly file.
// An empty value means the attribute is not present.
type AttributeReader interface {
	ReadAttribute(ctx context.Context, fs afero.Fs, path string, attribute commandline.AssemblyVersionType) (string, error)
}

// Assembly resolves the version from an assembly attribute.
type Assembly struct {
	fs        afero.Fs
	root      string
	file      string
	attribute commandline.AssemblyVersionType
	reader    AttributeReader
}

// NewAssembly returns a resolver reading attribute from file.
// A relative file is looked up in root, then in root/bin.
// A nil reader selects PEReader.
func NewAssembly(fs afero.Fs, root, file string, attribute commandline.AssemblyVersionType, reader AttributeReader) (*Assembly, error) {
	file = strings.TrimSpace(file)
	if file == "" {
		return nil, ErrAssemblyRequired
	}

	if reader == nil {
		reader = PEReader{}
	}

	return &Assembly{
		fs:        fs,
		root:      root,
		file:      file,
		attribute: attribute,
		reader:    reader,
	}, nil
}

// Path returns the assembly path that Resolve reads.
func (a *Assembly) Path() string {
	name := AssemblyFileName(a.file)
	if filepath.IsAbs(name) {
		return name
	}

	path := filepath.Join(a.root, name)
	if a.exists(path) || strings.ContainsAny(name, `/\`) {
		return path
	}

	if bin := filepath.Join(a.root, binDirectory, name); a.exists(bin) {
		return bin
	}

	return path
}

// Attribute returns the attribute the version is read from.
func (a *Assembly) Attribute() commandline.AssemblyVersionType {
	return a.attribute
}

// Resolve reads the version attribute from the assembly.
func (a *Assembly) Resolve(ctx context.Context) (string, error) {
	path := a.Path()
	if !a.exists(path) {
		return "", fmt.Errorf("%w: %s", ErrAssemblyNotFound, path)
	}

	ctxlog.Debug(ctx, "reading assembly version", "path", path, "attribute", a.attribute.String())

	v, err := a.reader.ReadAttribute(ctx, a.fs, path, a.attribute)
	if err != nil {
		return "", fmt.Errorf("reading %s from %s: %w", a.attribute, path, err)
	}

	v = strings.TrimSpace(v)
	if v == "" {
		return "", fmt.Errorf("%w: %s in %s", ErrVersionNotFound, a.attribute, path)
	}

	return v, nil
}

func (a *Assembly) exists(path string) bool {
	info, err := a.fs.Stat(path)
	return err == nil && !info.IsDir()
}

// AssemblyFileName appends the .dll extension unless name already ends with .dll or .exe.
func AssemblyFileName(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	if ext == dllExtension || ext == exeExtension {
		return name
	}

	return name + dllExtension
}
