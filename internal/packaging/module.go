// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package packaging turns a parsed command line into a package build request
// and builds it.
package packaging

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/matt-FFFFFF/packagebuilder/internal/commandline"
	"golang.org/x/text/cases"
)

// CustomSystemModule is the code name of the module that holds site customizations.
// It cannot be packaged.
const CustomSystemModule = "CMS.CustomSystemModule"

var (
	// ErrModuleRequired is returned when no module was given on the command line.
	ErrModuleRequired = commandline.NewRequiredError(commandline.ArgModule)
	// ErrModuleNotFound is returned by a ModuleSource for an unknown module.
	ErrModuleNotFound = errors.New("module not found")
	// ErrSystemModule is returned for CustomSystemModule.
	ErrSystemModule = errors.New("the custom system module cannot be packaged")
)

// Module describes the module being packaged.
type Module struct {
	Name        string `yaml:"name"`
	DisplayName string `yaml:"displayName,omitempty"`
	Description string `yaml:"description,omitempty"`
	Author      string `yaml:"author,omitempty"`
	Version     string `yaml:"version,omitempty"`
}

// ModuleSource looks up modules by code name.
type ModuleSource interface {
	Module(ctx context.Context, name string) (Module, error)
}

// StaticSource derives a module from its code name.
// Non-empty fields of Defaults apply to every module.
type StaticSource struct {
	Defaults Module
}

var _ ModuleSource = StaticSource{}

// Module implements ModuleSource.
func (s StaticSource) Module(_ context.Context, name string) (Module, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Module{}, ErrModuleRequired
	}

	m := s.Defaults
	m.Name = name

	if m.DisplayName == "" {
		m.DisplayName = name
	}

	if m.Description == "" {
		m.Description = fmt.Sprintf("The %s module.", m.DisplayName)
	}

	return m, nil
}

func isSystemModule(name string) bool {
	fold := cases.Fold()
	return fold.String(name) == fold.String(CustomSystemModule)
}
