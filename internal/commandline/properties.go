// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package commandline

import (
	"iter"

	"golang.org/x/text/cases"
)

// Property is a single `name[=value]` pair of an argument value.
type Property struct {
	Name  string
	Value string
}

// Properties is an insertion ordered set of properties with case-insensitive names.
// The zero value is empty and ready to use. Callers outside this package only read it.
type Properties struct {
	items []Property
	index map[string]int
}

// foldName returns the key used for case-insensitive name comparison.
// A new Caser is created on every call as a Caser must not be shared between goroutines.
func foldName(name string) string {
	return cases.Fold().String(name)
}

// equalName reports whether two argument or property names match.
func equalName(a, b string) bool {
	return foldName(a) == foldName(b)
}

// add inserts the property unless a property with the same name exists.
// It reports whether the property was inserted.
func (p *Properties) add(name, value string) bool {
	key := foldName(name)
	if _, ok := p.index[key]; ok {
		return false
	}

	if p.index == nil {
		p.index = make(map[string]int)
	}

	p.index[key] = len(p.items)
	p.items = append(p.items, Property{Name: name, Value: value})

	return true
}

// Get returns the value of the named property.
func (p *Properties) Get(name string) (string, bool) {
	if p == nil {
		return "", false
	}

	i, ok := p.index[foldName(name)]
	if !ok {
		return "", false
	}

	return p.items[i].Value, true
}

// Has reports whether the named property exists.
func (p *Properties) Has(name string) bool {
	_, ok := p.Get(name)
	return ok
}

// Len returns the number of properties.
func (p *Properties) Len() int {
	if p == nil {
		return 0
	}

	return len(p.items)
}

// All iterates over the properties in insertion order.
func (p *Properties) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		if p == nil {
			return
		}

		for _, item := range p.items {
			if !yield(item.Name, item.Value) {
				return
			}
		}
	}
}

// Slice returns a copy of the properties in insertion order.
func (p *Properties) Slice() []Property {
	if p == nil {
		return nil
	}

	return append([]Property(nil), p.items...)
}

// Map returns the properties as a map keyed by the names as they were written.
func (p *Properties) Map() map[string]string {
	m := make(map[string]string, p.Len())
	for name, value := range p.All() {
		m[name] = value
	}

	return m
}
