// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package config holds the settings that do not come from the command line.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

const (
	// EnvRoot is the application root used to locate assemblies. Defaults to the working directory.
	EnvRoot = "PACKAGEBUILDER_ROOT"
	// EnvOutput is the output directory used when -output is not given.
	EnvOutput = "PACKAGEBUILDER_OUTPUT"
	// DefaultOutputDirectory is used when neither -output nor EnvOutput is set.
	// Relative to the application root.
	DefaultOutputDirectory = "Export"
)

// FsFactory returns the filesystem used for assembly lookup and package output.
var FsFactory = func() afero.Fs {
	return afero.NewOsFs()
}

// Settings are the environment derived settings.
type Settings struct {
	// RootPath is the absolute application root.
	RootPath string
	// OutputDirectory is the default output directory.
	OutputDirectory string
}

// FromEnv reads Settings from the environment.
func FromEnv() (Settings, error) {
	root := strings.TrimSpace(os.Getenv(EnvRoot))
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return Settings{}, fmt.Errorf("cannot determine working directory: %w", err)
		}

		root = wd
	}

	root, err := filepath.Abs(root)
	if err != nil {
		return Settings{}, fmt.Errorf("invalid %s: %w", EnvRoot, err)
	}

	output := strings.TrimSpace(os.Getenv(EnvOutput))
	if output == "" {
		output = filepath.Join(root, DefaultOutputDirectory)
	}

	return Settings{
		RootPath:        root,
		OutputDirectory: output,
	}, nil
}
