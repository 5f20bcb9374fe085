// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package packaging

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/hashicorp/go-multierror"
	"github.com/matt-FFFFFF/packagebuilder/internal/commandline"
	"github.com/matt-FFFFFF/packagebuilder/internal/config"
	"github.com/matt-FFFFFF/packagebuilder/internal/ctxlog"
	"github.com/matt-FFFFFF/packagebuilder/internal/version"
	"github.com/spf13/afero"
)

const nuSpecExtension = ".nuspec"

var (
	// ErrInvalidRequest is returned when a request fails validation.
	ErrInvalidRequest = errors.New("invalid package request")
	// ErrMissingMetadata is returned for each required metadata field that is empty.
	ErrMissingMetadata = errors.New("required package metadata is missing")
	// ErrOutputRequired is returned when no output directory is known.
	ErrOutputRequired = errors.New("an output directory is required")
)

// Metadata is the package metadata written to the manifest.
type Metadata struct {
	ID          string `yaml:"id"`
	Version     string `yaml:"version"`
	Title       string `yaml:"title,omitempty"`
	Authors     string `yaml:"authors"`
	Description string `yaml:"description"`
}

// Request is everything needed to build one module package.
type Request struct {
	Module           Module
	Metadata         Metadata
	RootPath         string
	OutputDirectory  string
	NuSpecFile       string
	NuSpecProperties []commandline.Property
}

// Options are the collaborators of NewRequest.
type Options struct {
	Settings config.Settings
	// Source defaults to StaticSource.
	Source ModuleSource
	// Fs defaults to config.FsFactory().
	Fs afero.Fs
	// AttributeReader defaults to version.PEReader.
	AttributeReader version.AttributeReader
}

// NewRequest creates a validated Request from a parsed command line.
func NewRequest(ctx context.Context, cl *commandline.CommandLine, opts Options) (*Request, error) {
	if cl.Module() == "" {
		return nil, ErrModuleRequired
	}

	if isSystemModule(cl.Module()) {
		return nil, fmt.Errorf("%w: %s", ErrSystemModule, cl.Module())
	}

	if opts.Source == nil {
		opts.Source = StaticSource{}
	}

	if opts.Fs == nil {
		opts.Fs = config.FsFactory()
	}

	module, err := opts.Source.Module(ctx, cl.Module())
	if err != nil {
		return nil, fmt.Errorf("loading module %s: %w", cl.Module(), err)
	}

	req := &Request{
		Module:          module,
		RootPath:        opts.Settings.RootPath,
		OutputDirectory: rooted(opts.Settings.RootPath, cl.OutputDirectory()),
		Metadata: Metadata{
			ID:          module.Name,
			Version:     module.Version,
			Title:       module.DisplayName,
			Authors:     module.Author,
			Description: module.Description,
		},
	}

	if req.OutputDirectory == "" {
		req.OutputDirectory = rooted(opts.Settings.RootPath, opts.Settings.OutputDirectory)
	}

	if v, ok := cl.Version(); ok {
		resolver, err := version.FromSource(v.Source(), module.Name, opts.Settings.RootPath, opts.Fs, opts.AttributeReader)
		if err != nil {
			return nil, err
		}

		if req.Metadata.Version, err = resolver.Resolve(ctx); err != nil {
			return nil, fmt.Errorf("resolving version: %w", err)
		}
	}

	if md, ok := cl.Metadata(); ok {
		req.Metadata.override(md)
	}

	if nuspec := cl.NuSpecFile(); nuspec != "" {
		if nuspec == commandline.Wildcard {
			nuspec = module.Name + nuSpecExtension
		}

		req.NuSpecFile = rooted(opts.Settings.RootPath, nuspec)
		req.NuSpecProperties = cl.Properties().Slice()
	} else if cl.Properties().Len() > 0 {
		ctxlog.Warn(ctx, "ignoring -properties without -nuspec", "count", cl.Properties().Len())
	}

	ctxlog.Debug(ctx, "package request",
		"module", req.Module.Name,
		"id", req.Metadata.ID,
		"version", req.Metadata.Version,
		"output", req.OutputDirectory,
		"nuspec", req.NuSpecFile,
	)

	if err := req.Validate(); err != nil {
		return nil, err
	}

	return req, nil
}

// Validate reports every problem with the request at once.
func (r *Request) Validate() error {
	var err error

	required := []struct {
		name  string
		value string
	}{
		{commandline.PropMetadataID, r.Metadata.ID},
		{"version", r.Metadata.Version},
		{commandline.PropMetadataAuthors, r.Metadata.Authors},
		{commandline.PropMetadataDescription, r.Metadata.Description},
	}

	for _, field := range required {
		if field.value == "" {
			err = multierror.Append(err, fmt.Errorf("%w: %s", ErrMissingMetadata, field.name))
		}
	}

	if r.OutputDirectory == "" {
		err = multierror.Append(err, ErrOutputRequired)
	}

	if err != nil {
		return errors.Join(ErrInvalidRequest, err)
	}

	return nil
}

// PackageFileName is the file name of the package built for the request.
func (r *Request) PackageFileName() string {
	return fmt.Sprintf("%s_%s.nupkg", r.Metadata.ID, r.Metadata.Version)
}

func (m *Metadata) override(md commandline.Metadata) {
	if md.ID != "" {
		m.ID = md.ID
	}

	if md.Title != "" {
		m.Title = md.Title
	}

	if md.Description != "" {
		m.Description = md.Description
	}

	if md.Authors != "" {
		m.Authors = md.Authors
	}
}

func rooted(root, path string) string {
	if path == "" || filepath.IsAbs(path) || root == "" {
		return path
	}

	return filepath.Join(root, path)
}
