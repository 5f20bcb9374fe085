// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package diagnostic renders errors for the console.
package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/matt-FFFFFF/packagebuilder/internal/commandline"
	"golang.org/x/text/cases"
)

// MaxSuggestionDistance is the largest edit distance for which a suggestion is made.
const MaxSuggestionDistance = 3

// Render returns the console text for err.
// Argument errors get the argument and property names on their own lines and,
// when the name is unknown, the closest known name.
func Render(err error) string {
	if err == nil {
		return ""
	}

	var argErr *commandline.ArgumentError
	if !errors.As(err, &argErr) {
		return err.Error()
	}

	var sb strings.Builder

	sb.WriteString(argErr.Message())

	if argErr.Argument != "" {
		fmt.Fprintf(&sb, "\nArgument name: %s", argErr.Argument)
	}

	if argErr.Property != "" {
		fmt.Fprintf(&sb, "\nProperty name: %s", argErr.Property)
	}

	if argErr.Kind == commandline.KindNotRecognized {
		var suggestion string
		if !argErr.IsProperty() {
			suggestion = Suggest(argErr.Argument)
		} else {
			suggestion = closest(argErr.Property, propertyNames(argErr.Argument))
		}

		if suggestion != "" {
			fmt.Fprintf(&sb, "\nDid you mean '%s'?", suggestion)
		}
	}

	return sb.String()
}

// Suggest returns the known argument closest to name, or the empty string.
func Suggest(name string) string {
	args := commandline.Arguments()

	names := make([]string, 0, len(args))
	for _, a := range args {
		names = append(names, a.Name)
	}

	return closest(name, names)
}

// Chain returns one line per error in the tree of err, indented by depth.
func Chain(err error) []string {
	var lines []string

	var walk func(e error, depth int)
	walk = func(e error, depth int) {
		lines = append(lines, fmt.Sprintf("%s%T: %s", strings.Repeat("  ", depth), e, e.Error()))

		switch u := e.(type) {
		case interface{ Unwrap() []error }:
			for _, c := range u.Unwrap() {
				if c != nil {
					walk(c, depth+1)
				}
			}
		case interface{ Unwrap() error }:
			if c := u.Unwrap(); c != nil {
				walk(c, depth+1)
			}
		}
	}

	if err != nil {
		walk(err, 0)
	}

	return lines
}

func closest(name string, candidates []string) string {
	if name == "" {
		return ""
	}

	fold := cases.Fold()
	target := fold.String(name)
	best, bestDistance := "", MaxSuggestionDistance+1

	for _, c := range candidates {
		d := levenshtein.ComputeDistance(target, fold.String(c))
		if d == 0 {
			return ""
		}

		if d < bestDistance {
			best, bestDistance = c, d
		}
	}

	return best
}

func propertyNames(argument string) []string {
	var props []commandline.PropertyInfo

	switch argument {
	case commandline.ArgMetadata:
		props = commandline.MetadataProperties()
	case commandline.ArgVersion:
		props = commandline.VersionProperties()
	}

	names := make([]string, 0, len(props))
	for _, p := range props {
		if p.Name != commandline.PropVersionValue {
			names = append(names, p.Name)
		}
	}

	return names
}
