// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package commandline

import (
	"slices"
	"strings"
)

// CommandLine is the parsed packagebuilder command line. It is immutable.
type CommandLine struct {
	help            bool
	debug           bool
	module          string
	nuSpecFile      string
	outputDirectory string
	metadata        *Metadata
	version         *Version
	properties      *Properties
}

// Parse parses a raw command line that does not start with the executable.
func Parse(commandLine string) (*CommandLine, error) {
	return fromTokens(ParseCommandLine(commandLine))
}

// FromArgs builds a CommandLine from argument tokens, one argument per element.
//
// This is the entry point for process arguments: pass os.Args[1:]. The shell has
// already split the invocation string, removed the executable and stripped the quotes,
// so property values are grouped again with RestoreQuotes. Blank elements are skipped.
func FromArgs(arguments []string) (*CommandLine, error) {
	tokens := make([]string, 0, len(arguments))
	for _, argument := range arguments {
		tokens = append(tokens, RestoreQuotes(strings.TrimSpace(argument)))
	}

	return fromTokens(tokens)
}

func fromTokens(tokens []string) (*CommandLine, error) {
	b := newBuilder()

	for _, token := range tokens {
		if token == "" {
			continue
		}

		if err := b.add(token); err != nil {
			return nil, err
		}
	}

	return b.build(), nil
}

// Help reports whether help was requested.
func (c *CommandLine) Help() bool { return c.help }

// Debug reports whether debug output was requested.
func (c *CommandLine) Debug() bool { return c.debug }

// Module returns the module code name, or the empty string.
func (c *CommandLine) Module() string { return c.module }

// NuSpecFile returns the NuSpec file, Wildcard, or the empty string.
func (c *CommandLine) NuSpecFile() string { return c.nuSpecFile }

// OutputDirectory returns the output directory, or the empty string.
func (c *CommandLine) OutputDirectory() string { return c.outputDirectory }

// Metadata returns the metadata overrides. The bool is false when -metadata was not given.
func (c *CommandLine) Metadata() (Metadata, bool) {
	if c.metadata == nil {
		return Metadata{}, false
	}

	return *c.metadata, true
}

// Version returns the version argument. The bool is false when -version was not given,
// in which case the version carries only the default attribute.
func (c *CommandLine) Version() (Version, bool) {
	if c.version == nil {
		return Version{AssemblyVersionType: AssemblyFileVersion}, false
	}

	return *c.version, true
}

// Properties returns the NuSpec replacement properties. It is never nil.
func (c *CommandLine) Properties() *Properties { return c.properties }

// builder accumulates a CommandLine. Every valued argument may be set once.
type builder struct {
	cl   *CommandLine
	seen map[string]bool
}

func newBuilder() *builder {
	return &builder{
		cl:   &CommandLine{},
		seen: make(map[string]bool),
	}
}

func (b *builder) build() *CommandLine {
	if b.cl.properties == nil {
		b.cl.properties = &Properties{}
	}

	return b.cl
}

// once fails when argument has been set before.
func (b *builder) once(argument string) error {
	if b.seen[argument] {
		return argumentAlreadyDefined(argument)
	}

	b.seen[argument] = true

	return nil
}

func (b *builder) add(argument string) error {
	name, value := ParseArgument(argument)

	switch {
	case isHelp(name):
		b.cl.help = true
	case equalName(name, ArgDebug):
		b.cl.debug = true
	case equalName(name, ArgModule):
		if err := b.once(ArgModule); err != nil {
			return err
		}

		b.cl.module = TrimQuotes(value)
	case equalName(name, ArgNuSpecFile):
		if err := b.once(ArgNuSpecFile); err != nil {
			return err
		}

		b.cl.nuSpecFile = TrimQuotes(value)
		if b.cl.nuSpecFile == "" {
			b.cl.nuSpecFile = Wildcard
		}
	case equalName(name, ArgOutput):
		if err := b.once(ArgOutput); err != nil {
			return err
		}

		b.cl.outputDirectory = TrimQuotes(value)
	case equalName(name, ArgMetadata):
		if err := b.once(ArgMetadata); err != nil {
			return err
		}

		metadata, err := parseMetadata(value)
		if err != nil {
			return err
		}

		b.cl.metadata = metadata
	case equalName(name, ArgProperties):
		if err := b.once(ArgProperties); err != nil {
			return err
		}

		properties, err := parseProperties(value)
		if err != nil {
			return err
		}

		b.cl.properties = properties
	case equalName(name, ArgVersion):
		if err := b.once(ArgVersion); err != nil {
			return err
		}

		version, err := parseVersion(value)
		if err != nil {
			return err
		}

		b.cl.version = version
	default:
		return argumentNotRecognized(name)
	}

	return nil
}

func isHelp(name string) bool {
	return equalName(name, ArgHelp) || slices.Contains(helpAliases, name)
}

// parseProperties accepts any property name. Names already present are skipped.
func parseProperties(value string) (*Properties, error) {
	parsed, err := ParseArgumentProperties(ArgProperties, value)
	if err != nil {
		return nil, err
	}

	properties := &Properties{}
	for name, v := range parsed.All() {
		properties.add(name, v)
	}

	return properties, nil
}
