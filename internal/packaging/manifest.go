// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package packaging

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
	"github.com/matt-FFFFFF/packagebuilder/internal/config"
	"github.com/matt-FFFFFF/packagebuilder/internal/ctxlog"
	"github.com/spf13/afero"
)

const (
	manifestSuffix = ".build.yaml"
	dirPerm        = 0o755
	filePerm       = 0o644
)

// ErrNuSpecNotFound is returned when the NuSpec file of a request does not exist.
var ErrNuSpecNotFound = errors.New("nuspec file not found")

// Builder builds the package for a request.
type Builder interface {
	Build(ctx context.Context, req *Request) (*Result, error)
}

// Result describes a completed build.
type Result struct {
	OutputDirectory string
	PackageFileName string
}

// ManifestWriter is a Builder that writes the resolved request as a YAML build
// manifest, plus the expanded NuSpec file when one is given.
type ManifestWriter struct {
	fs afero.Fs
}

var _ Builder = (*ManifestWriter)(nil)

// NewManifestWriter returns a ManifestWriter. A nil fs selects config.FsFactory().
func NewManifestWriter(fs afero.Fs) *ManifestWriter {
	if fs == nil {
		fs = config.FsFactory()
	}

	return &ManifestWriter{fs: fs}
}

type manifestProperty struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

type manifest struct {
	Package    string             `yaml:"package"`
	Module     Module             `yaml:"module"`
	Metadata   Metadata           `yaml:"metadata"`
	NuSpec     string             `yaml:"nuspec,omitempty"`
	Properties []manifestProperty `yaml:"properties,omitempty"`
}

// Build implements Builder.
func (w *ManifestWriter) Build(ctx context.Context, req *Request) (*Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if err := w.fs.MkdirAll(req.OutputDirectory, dirPerm); err != nil {
		return nil, fmt.Errorf("creating output directory %s: %w", req.OutputDirectory, err)
	}

	m := manifest{
		Package:  req.PackageFileName(),
		Module:   req.Module,
		Metadata: req.Metadata,
	}

	if req.NuSpecFile != "" {
		name, err := w.writeNuSpec(ctx, req)
		if err != nil {
			return nil, err
		}

		m.NuSpec = name

		for _, p := range req.NuSpecProperties {
			m.Properties = append(m.Properties, manifestProperty{Name: p.Name, Value: p.Value})
		}
	}

	data, err := yaml.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal build manifest: %w", err)
	}

	name := req.Metadata.ID + "." + req.Metadata.Version + manifestSuffix
	if err := afero.WriteFile(w.fs, filepath.Join(req.OutputDirectory, name), data, filePerm); err != nil {
		return nil, fmt.Errorf("writing %s: %w", name, err)
	}

	ctxlog.Info(ctx, "build manifest written", "directory", req.OutputDirectory, "file", name)

	return &Result{
		OutputDirectory: req.OutputDirectory,
		PackageFileName: name,
	}, nil
}

func (w *ManifestWriter) writeNuSpec(ctx context.Context, req *Request) (string, error) {
	content, err := afero.ReadFile(w.fs, req.NuSpecFile)
	if errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("%w: %s", ErrNuSpecNotFound, req.NuSpecFile)
	}

	if err != nil {
		return "", fmt.Errorf("reading %s: %w", req.NuSpecFile, err)
	}

	expanded, err := ExpandTokens(string(content), NewPropertyProvider(req.Metadata, req.NuSpecProperties))
	if err != nil {
		return "", fmt.Errorf("expanding %s: %w", req.NuSpecFile, err)
	}

	name := req.Metadata.ID + "." + req.Metadata.Version + nuSpecExtension
	if err := afero.WriteFile(w.fs, filepath.Join(req.OutputDirectory, name), []byte(expanded), filePerm); err != nil {
		return "", fmt.Errorf("writing %s: %w", name, err)
	}

	ctxlog.Debug(ctx, "nuspec expanded", "source", req.NuSpecFile, "file", name)

	return name, nil
}
