// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package version resolves the version of the package being built.
package version

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/matt-FFFFFF/packagebuilder/internal/commandline"
	"github.com/spf13/afero"
)

var (
	// ErrVersionRequired is returned when an explicit version is empty.
	ErrVersionRequired = errors.New("a version is required")
	// ErrAssemblyRequired is returned when no assembly file name is available.
	ErrAssemblyRequired = errors.New("an assembly file name is required")
	// ErrAssemblyNotFound is returned when the assembly file does not exist.
	ErrAssemblyNotFound = errors.New("assembly file not found")
	// ErrVersionNotFound is returned when the assembly does not carry the requested attribute.
	ErrVersionNotFound = errors.New("version not found")
	// ErrUnknownSource is returned by FromSource for an unsupported VersionSource.
	ErrUnknownSource = errors.New("unknown version source")
)

// Resolver resolves a package version.
type Resolver interface {
	Resolve(ctx context.Context) (string, error)
}

// Static is a version given literally.
type Static string

// NewStatic returns a Static resolver. The version must not be blank.
func NewStatic(v string) (Static, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return "", ErrVersionRequired
	}

	return Static(v), nil
}

// Resolve returns the version.
func (s Static) Resolve(_ context.Context) (string, error) {
	if s == "" {
		return "", ErrVersionRequired
	}

	return string(s), nil
}

// FromSource creates the Resolver for a parsed -version argument.
// An assembly given as the wildcard, or not at all, is the assembly named after the module.
func FromSource(source commandline.VersionSource, module, root string, fs afero.Fs, reader AttributeReader) (Resolver, error) {
	switch s := source.(type) {
	case commandline.ExplicitVersion:
		return NewStatic(s.Value)
	case commandline.AssemblyVersionSource:
		file := s.Assembly
		if file == "" || file == commandline.Wildcard {
			file = module
		}

		return NewAssembly(fs, root, file, s.Attribute, reader)
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnknownSource, source)
	}
}
