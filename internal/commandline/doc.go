// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package commandline parses the packagebuilder command line.
//
// The grammar is not POSIX flags. An invocation is a space separated list of
// arguments of the form `-name[:value]` (or `-name=value`). Structured arguments
// take a comma separated property list as their value, `name[=value],...`.
// Single or double quotes protect spaces, commas and equals signs:
//
//	-module:Custom.Module -metadata:id=Custom,title='Custom, Module' -nuspec
//
// Parsing is pure. It performs no I/O and holds no package level state, so
// independent command lines can be parsed concurrently.
package commandline
