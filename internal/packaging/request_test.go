// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package packaging

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/matt-FFFFFF/packagebuilder/internal/commandline"
	"github.com/matt-FFFFFF/packagebuilder/internal/config"
	"github.com/matt-FFFFFF/packagebuilder/internal/version"
	"github.com/prashantv/gostub"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSettings = config.Settings{
	RootPath:        filepath.FromSlash("/app"),
	OutputDirectory: config.DefaultOutputDirectory,
}

type readerFunc func(path string, attribute commandline.AssemblyVersionType) (string, error)

func (f readerFunc) ReadAttribute(_ context.Context, _ afero.Fs, path string, attribute commandline.AssemblyVersionType) (string, error) {
	return f(path, attribute)
}

type failingSource struct{}

func (failingSource) Module(_ context.Context, name string) (Module, error) {
	return Module{}, ErrModuleNotFound
}

func mustParse(t *testing.T, raw string) *commandline.CommandLine {
	t.Helper()

	cl, err := commandline.Parse(raw)
	require.NoError(t, err)

	return cl
}

func TestNewRequestModuleRequired(t *testing.T) {
	_, err := NewRequest(context.Background(), mustParse(t, "-debug"), Options{Settings: testSettings})
	require.ErrorIs(t, err, ErrModuleRequired)

	var argErr *commandline.ArgumentError
	require.ErrorAs(t, err, &argErr)
	assert.Equal(t, commandline.KindRequired, argErr.Kind)
	assert.Equal(t, commandline.ArgModule, argErr.Argument)
}

func TestNewRequestSystemModule(t *testing.T) {
	_, err := NewRequest(context.Background(), mustParse(t, "-module:cms.customsystemmodule"), Options{Settings: testSettings})
	require.ErrorIs(t, err, ErrSystemModule)
}

func TestNewRequestModuleSourceError(t *testing.T) {
	_, err := NewRequest(context.Background(), mustParse(t, "-module:Acme.Blog"), Options{
		Settings: testSettings,
		Source:   failingSource{},
	})
	require.ErrorIs(t, err, ErrModuleNotFound)
}

func TestNewRequest(t *testing.T) {
	source := StaticSource{Defaults: Module{Author: "Acme", Version: "3.0.0"}}

	tests := []struct {
		name       string
		raw        string
		want       Metadata
		wantOutput string
		wantNuSpec string
		wantProps  []commandline.Property
	}{
		{
			name: "module defaults",
			raw:  "-module:Acme.Blog",
			want: Metadata{
				ID:          "Acme.Blog",
				Version:     "3.0.0",
				Title:       "Acme.Blog",
				Authors:     "Acme",
				Description: "The Acme.Blog module.",
			},
			wantOutput: "/app/Export",
		},
		{
			name: "explicit version and metadata overrides",
			raw:  "-module:Acme.Blog -version:1.2.3 -metadata:id=Acme.Blog.Core,title=,authors=Jo",
			want: Metadata{
				ID:          "Acme.Blog.Core",
				Version:     "1.2.3",
				Title:       "Acme.Blog",
				Authors:     "Jo",
				Description: "The Acme.Blog module.",
			},
			wantOutput: "/app/Export",
		},
		{
			name: "relative output",
			raw:  "-module:Acme.Blog -output:out/packages",
			want: Metadata{
				ID:          "Acme.Blog",
				Version:     "3.0.0",
				Title:       "Acme.Blog",
				Authors:     "Acme",
				Description: "The Acme.Blog module.",
			},
			wantOutput: "/app/out/packages",
		},
		{
			name: "absolute output",
			raw:  "-module:Acme.Blog -output:/var/packages",
			want: Metadata{
				ID:          "Acme.Blog",
				Version:     "3.0.0",
				Title:       "Acme.Blog",
				Authors:     "Acme",
				Description: "The Acme.Blog module.",
			},
			wantOutput: "/var/packages",
		},
		{
			name: "nuspec wildcard with properties",
			raw:  "-module:Acme.Blog -nuspec -properties:owner=Acme,tags='blog cms'",
			want: Metadata{
				ID:          "Acme.Blog",
				Version:     "3.0.0",
				Title:       "Acme.Blog",
				Authors:     "Acme",
				Description: "The Acme.Blog module.",
			},
			wantOutput: "/app/Export",
			wantNuSpec: "/app/Acme.Blog.nuspec",
			wantProps: []commandline.Property{
				{Name: "owner", Value: "Acme"},
				{Name: "tags", Value: "blog cms"},
			},
		},
		{
			name: "properties without nuspec are ignored",
			raw:  "-module:Acme.Blog -properties:owner=Acme",
			want: Metadata{
				ID:          "Acme.Blog",
				Version:     "3.0.0",
				Title:       "Acme.Blog",
				Authors:     "Acme",
				Description: "The Acme.Blog module.",
			},
			wantOutput: "/app/Export",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req, err := NewRequest(context.Background(), mustParse(t, tc.raw), Options{
				Settings: testSettings,
				Source:   source,
				Fs:       afero.NewMemMapFs(),
			})
			require.NoError(t, err)

			assert.Equal(t, tc.want, req.Metadata)
			assert.Equal(t, filepath.FromSlash(tc.wantOutput), req.OutputDirectory)
			assert.Equal(t, filepath.FromSlash(tc.wantNuSpec), req.NuSpecFile)
			assert.Equal(t, tc.wantProps, req.NuSpecProperties)
		})
	}
}

func TestNewRequestAssemblyVersion(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, filepath.FromSlash("/app/bin/Acme.Blog.dll"), []byte("MZ"), 0o644))

	var gotPath string

	var gotAttribute commandline.AssemblyVersionType

	reader := readerFunc(func(path string, attribute commandline.AssemblyVersionType) (string, error) {
		gotPath, gotAttribute = path, attribute
		return "4.5.6", nil
	})

	stubs := gostub.Stub(&config.FsFactory, func() afero.Fs { return fs })
	defer stubs.Reset()

	req, err := NewRequest(context.Background(),
		mustParse(t, "-module:Acme.Blog -version:assemblyAttribute=AssemblyInformationalVersion -metadata:authors=Jo"),
		Options{Settings: testSettings, AttributeReader: reader},
	)
	require.NoError(t, err)

	assert.Equal(t, "4.5.6", req.Metadata.Version)
	assert.Equal(t, filepath.FromSlash("/app/bin/Acme.Blog.dll"), gotPath)
	assert.Equal(t, commandline.AssemblyInformationalVersion, gotAttribute)
}

func TestNewRequestAssemblyVersionErrors(t *testing.T) {
	fs := afero.NewMemMapFs()

	_, err := NewRequest(context.Background(),
		mustParse(t, "-module:Acme.Blog -version:assembly=Acme.Missing"),
		Options{Settings: testSettings, Fs: fs},
	)
	require.ErrorIs(t, err, version.ErrAssemblyNotFound)

	require.NoError(t, afero.WriteFile(fs, filepath.FromSlash("/app/Acme.Blog.dll"), []byte("MZ"), 0o644))

	_, err = NewRequest(context.Background(),
		mustParse(t, "-module:Acme.Blog -version"),
		Options{
			Settings:        testSettings,
			Fs:              fs,
			AttributeReader: readerFunc(func(string, commandline.AssemblyVersionType) (string, error) { return "", nil }),
		},
	)
	require.ErrorIs(t, err, version.ErrVersionNotFound)
}

func TestValidate(t *testing.T) {
	_, err := NewRequest(context.Background(), mustParse(t, "-module:Acme.Blog"), Options{
		Settings: config.Settings{RootPath: filepath.FromSlash("/app")},
		Fs:       afero.NewMemMapFs(),
	})
	require.ErrorIs(t, err, ErrInvalidRequest)
	require.ErrorIs(t, err, ErrMissingMetadata)
	require.ErrorIs(t, err, ErrOutputRequired)
	assert.Contains(t, err.Error(), "version")
	assert.Contains(t, err.Error(), "authors")
	assert.NotContains(t, err.Error(), "missing: id")

	valid := &Request{
		Metadata:        Metadata{ID: "a", Version: "1", Authors: "b", Description: "c"},
		OutputDirectory: "out",
	}
	require.NoError(t, valid.Validate())
	assert.Equal(t, "a_1.nupkg", valid.PackageFileName())
}

func TestStaticSource(t *testing.T) {
	m, err := StaticSource{}.Module(context.Background(), " Acme.Blog ")
	require.NoError(t, err)
	assert.Equal(t, Module{Name: "Acme.Blog", DisplayName: "Acme.Blog", Description: "The Acme.Blog module."}, m)

	m, err = StaticSource{Defaults: Module{DisplayName: "Blog", Description: "A blog."}}.Module(context.Background(), "Acme.Blog")
	require.NoError(t, err)
	assert.Equal(t, "Blog", m.DisplayName)
	assert.Equal(t, "A blog.", m.Description)

	_, err = StaticSource{}.Module(context.Background(), "")
	require.True(t, errors.Is(err, ErrModuleRequired))
}
