// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package commandline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProperties(t *testing.T) {
	p := &Properties{}
	assert.True(t, p.add("Token", "1"))
	assert.True(t, p.add("other", "2"))
	assert.False(t, p.add("TOKEN", "3"), "names are case-insensitive")

	v, ok := p.Get("token")
	assert.True(t, ok)
	assert.Equal(t, "1", v)
	assert.True(t, p.Has("OTHER"))
	assert.False(t, p.Has("missing"))
	assert.Equal(t, 2, p.Len())
	assert.Equal(t, map[string]string{"Token": "1", "other": "2"}, p.Map())

	var names []string
	for name := range p.All() {
		names = append(names, name)
		break
	}

	assert.Equal(t, []string{"Token"}, names)
}

func TestPropertiesNil(t *testing.T) {
	var p *Properties

	_, ok := p.Get("x")
	assert.False(t, ok)
	assert.Zero(t, p.Len())
	assert.Nil(t, p.Slice())
	assert.Empty(t, p.Map())

	for range p.All() {
		t.Fatal("nil properties should not yield")
	}
}
