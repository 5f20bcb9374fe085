// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package diagnostic

import (
	"errors"
	"fmt"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/matt-FFFFFF/packagebuilder/internal/commandline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "unknown argument with suggestion",
			raw:  "-modul:Acme.Blog",
			want: "The argument '-modul' is not recognized.\nArgument name: -modul\nDid you mean '-module'?",
		},
		{
			name: "unknown argument without suggestion",
			raw:  "-frobnicate",
			want: "The argument '-frobnicate' is not recognized.\nArgument name: -frobnicate",
		},
		{
			name: "already defined",
			raw:  "-module:a -MODULE:b",
			want: "The argument '-module' has already been defined.\nArgument name: -module",
		},
		{
			name: "unknown metadata property",
			raw:  "-metadata:titel=Blog",
			want: "The property 'titel' is not recognized.\nArgument name: -metadata\nProperty name: titel\nDid you mean 'title'?",
		},
		{
			name: "invalid attribute",
			raw:  "-version:assemblyAttribute=Foo",
			want: "The value 'Foo' is not a recognized value for property 'assemblyAttribute'.\n" +
				"Argument name: -version\nProperty name: assemblyAttribute",
		},
		{
			name: "empty metadata property",
			raw:  "-metadata:,",
			want: "The property '' is not recognized.\nArgument name: -metadata",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := commandline.Parse(tc.raw)
			require.Error(t, err)
			assert.Equal(t, tc.want, Render(err))
		})
	}
}

func TestRenderOtherErrors(t *testing.T) {
	assert.Empty(t, Render(nil))
	assert.Equal(t, "boom", Render(errors.New("boom")))

	wrapped := fmt.Errorf("building: %w", commandline.NewRequiredError(commandline.ArgModule))
	assert.Equal(t, "The argument '-module' is required.\nArgument name: -module", Render(wrapped))
}

func TestSuggest(t *testing.T) {
	tests := map[string]string{
		"-modul":    "-module",
		"-NUSPC":    "-nuspec",
		"-outptu":   "-output",
		"-versoin":  "-version",
		"-module":   "",
		"-xyzzyxyz": "",
	}

	for in, want := range tests {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, want, Suggest(in))
		})
	}
}

func TestChain(t *testing.T) {
	sentinel := errors.New("leaf")

	var merr error
	merr = multierror.Append(merr, sentinel)

	err := fmt.Errorf("top: %w", errors.Join(errors.New("first"), merr))

	lines := Chain(err)
	require.Len(t, lines, 5)
	assert.Contains(t, lines[0], "top: first")
	assert.Equal(t, "  *errors.joinError: first\n"+merr.Error(), lines[1])
	assert.Equal(t, "    *errors.errorString: first", lines[2])
	assert.Contains(t, lines[3], "*multierror.Error")
	assert.Equal(t, "      *errors.errorString: leaf", lines[4])

	assert.Empty(t, Chain(nil))
}
