// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package packaging

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/hashicorp/go-multierror"
	"github.com/matt-FFFFFF/packagebuilder/internal/commandline"
	"golang.org/x/text/cases"
)

// ErrTokenNoValue is returned when a NuSpec replacement token has no value.
var ErrTokenNoValue = errors.New("replacement token has no value")

var tokenPattern = regexp.MustCompile(`\$(\w+)\$`)

// PropertyProvider supplies the values of NuSpec replacement tokens.
// The package metadata always wins over custom properties of the same name.
type PropertyProvider struct {
	values map[string]string
}

// NewPropertyProvider creates a PropertyProvider from the metadata and custom properties.
func NewPropertyProvider(md Metadata, custom []commandline.Property) *PropertyProvider {
	p := &PropertyProvider{values: make(map[string]string, 5+len(custom))}
	p.set("id", md.ID)
	p.set("version", md.Version)
	p.set("title", md.Title)
	p.set("description", md.Description)
	p.set("authors", md.Authors)

	for _, prop := range custom {
		if _, ok := p.Value(prop.Name); !ok {
			p.set(prop.Name, prop.Value)
		}
	}

	return p
}

// Value returns the value of a property, ignoring case.
func (p *PropertyProvider) Value(name string) (string, bool) {
	v, ok := p.values[cases.Fold().String(name)]
	return v, ok
}

func (p *PropertyProvider) set(name, value string) {
	p.values[cases.Fold().String(name)] = value
}

// ExpandTokens replaces every $name$ token in content with its property value.
// All tokens without a value are reported together.
func ExpandTokens(content string, p *PropertyProvider) (string, error) {
	var err error

	out := tokenPattern.ReplaceAllStringFunc(content, func(token string) string {
		name := token[1 : len(token)-1]

		v, ok := p.Value(name)
		if !ok {
			err = multierror.Append(err, fmt.Errorf("%w: %s", ErrTokenNoValue, name))
			return token
		}

		return v
	})

	if err != nil {
		return "", err
	}

	return out, nil
}
