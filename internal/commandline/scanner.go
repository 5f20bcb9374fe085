// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package commandline

import (
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Wildcard is the value substituted for arguments that must be derived from context later,
// e.g. a bare `-nuspec`.
const Wildcard = "*"

const (
	dashChar        = '-'
	singleQuoteChar = '\''
	doubleQuoteChar = '"'
	commaChar       = ','
	equalsChar      = '='
	spaceChar       = ' '
)

// Dash look-alikes that are accepted in place of a leading '-'.
// Text copied from documents often has them substituted by typographic dashes.
var unicodeDashes = []rune{
	'᠆', // Mongolian todo soft hyphen
	'‐', // hyphen
	'‑', // non-breaking hyphen
	'‒', // figure dash
	'–', // en dash
	'—', // em dash
	'―', // horizontal bar
	'−', // minus sign
}

// IndexOfUnquoted returns the byte index of the first delim in s that is not inside quotes,
// or -1 if there is none.
//
// A quote character opens a run unless it matches the innermost open run, in which case it closes it.
// A single quote therefore never closes a double quoted run and vice versa.
func IndexOfUnquoted(s string, delim byte) int {
	var open []byte

	for i := 0; i < len(s); i++ {
		c := s[i]

		switch {
		case c == delim:
			if len(open) == 0 {
				return i
			}
		case c == singleQuoteChar || c == doubleQuoteChar:
			if len(open) == 0 || open[len(open)-1] != c {
				open = append(open, c)
			} else {
				open = open[:len(open)-1]
			}
		}
	}

	return -1
}

// ParseCommandLine splits a raw command line into argument tokens on unquoted spaces.
// Surrounding whitespace is removed and runs of spaces do not produce empty tokens.
func ParseCommandLine(commandLine string) []string {
	var arguments []string

	block := strings.TrimSpace(commandLine)

	for {
		i := IndexOfUnquoted(block, spaceChar)
		if i <= 0 {
			break
		}

		arguments = append(arguments, block[:i])
		block = strings.TrimSpace(block[i+1:])
	}

	if block != "" {
		arguments = append(arguments, block)
	}

	return arguments
}

// ParseArgument splits an argument token into its name and value at the first ':' or '='.
// A leading Unicode dash is normalized to '-'. The value is empty when there is no separator.
func ParseArgument(argument string) (name, value string) {
	argument = normalizeDashes(argument)

	i := strings.IndexAny(argument, ":=")
	if i == -1 {
		return argument, ""
	}

	return argument[:i], argument[i+1:]
}

// ParseArgumentProperties parses the value of a structured argument into its properties.
// Names and values have one layer of quotes removed. A property without '=' or with a
// trailing '=' has an empty value. Repeating a property is an error naming argument and property.
func ParseArgumentProperties(argument, value string) (*Properties, error) {
	properties := &Properties{}
	rest := value

	for rest != "" {
		commaIndex := IndexOfUnquoted(rest, commaChar)

		block := rest
		if commaIndex != -1 {
			block = rest[:commaIndex]
		}

		name, propertyValue := block, ""
		if equalsIndex := IndexOfUnquoted(block, equalsChar); equalsIndex != -1 {
			name, propertyValue = block[:equalsIndex], block[equalsIndex+1:]
		}

		name = TrimQuotes(name)
		propertyValue = TrimQuotes(propertyValue)

		if !properties.add(name, propertyValue) {
			return nil, propertyAlreadyDefined(argument, name)
		}

		if commaIndex == -1 || commaIndex == len(rest)-1 {
			break
		}

		rest = rest[commaIndex+1:]
	}

	return properties, nil
}

// TrimQuotes removes exactly one pair of matching single or double quotes surrounding value.
// Anything else, including an unbalanced quote, is returned unchanged.
func TrimQuotes(value string) string {
	if len(value) < 2 {
		return value
	}

	first, last := value[0], value[len(value)-1]
	if first == last && (first == singleQuoteChar || first == doubleQuoteChar) {
		return value[1 : len(value)-1]
	}

	return value
}

// RestoreQuotes quotes again the property values of a structured argument whose quotes
// were removed by a shell, e.g. `-metadata:authors=Jo Smith, Sam Jones`.
//
// A block that starts with whitespace and has no '=' continues the value of the previous
// property. Values that contain a comma are then wrapped in single quotes. Arguments that still contain a
// quote character, or are not -metadata, -version or -properties, are returned unchanged.
func RestoreQuotes(argument string) string {
	if strings.ContainsAny(argument, "'\"") {
		return argument
	}

	name, value := ParseArgument(argument)
	if value == "" || !isStructured(name) {
		return argument
	}

	var blocks []string

	for _, block := range strings.Split(value, string(commaChar)) {
		if n := len(blocks); n > 0 && isContinuation(block) && strings.ContainsRune(blocks[n-1], equalsChar) {
			blocks[n-1] += string(commaChar) + block
			continue
		}

		blocks = append(blocks, block)
	}

	for i, block := range blocks {
		if n, v, ok := strings.Cut(block, string(equalsChar)); ok && strings.ContainsRune(v, commaChar) {
			blocks[i] = n + string(equalsChar) + string(singleQuoteChar) + v + string(singleQuoteChar)
		}
	}

	return argument[:len(argument)-len(value)] + strings.Join(blocks, string(commaChar))
}

func isStructured(name string) bool {
	return equalName(name, ArgMetadata) || equalName(name, ArgVersion) || equalName(name, ArgProperties)
}

func isContinuation(block string) bool {
	r, size := utf8.DecodeRuneInString(block)
	return size > 0 && unicode.IsSpace(r) && !strings.ContainsRune(block, equalsChar)
}

func normalizeDashes(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || !slices.Contains(unicodeDashes, r) {
		return s
	}

	return string(dashChar) + s[size:]
}
