// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package version

import (
	"bytes"
	"encoding/binary"
	"testing"
	"unicode/utf16"

	"github.com/matt-FFFFFF/packagebuilder/internal/commandline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func utf16z(s string) []byte {
	units := append(utf16.Encode([]rune(s)), 0)
	b := make([]byte, len(units)*2)

	for i, u := range units {
		binary.LittleEndian.PutUint16(b[i*2:], u)
	}

	return b
}

func pad4(b *bytes.Buffer) {
	for b.Len()%4 != 0 {
		b.WriteByte(0)
	}
}

// encodeBlock writes a version block the way resource compilers lay it out.
func encodeBlock(key string, value []byte, text bool, children ...[]byte) []byte {
	var b bytes.Buffer

	b.Write(make([]byte, versionBlockHeaderSize))
	b.Write(utf16z(key))
	pad4(&b)
	b.Write(value)

	for _, c := range children {
		pad4(&b)
		b.Write(c)
	}

	out := b.Bytes()
	valueLength := len(value)
	typ := uint16(0)

	if text {
		valueLength /= 2
		typ = 1
	}

	binary.LittleEndian.PutUint16(out, uint16(len(out)))
	binary.LittleEndian.PutUint16(out[2:], uint16(valueLength))
	binary.LittleEndian.PutUint16(out[4:], typ)

	return out
}

func fixedFileInfo(major, minor, build, revision uint16) []byte {
	b := make([]byte, 52)
	binary.LittleEndian.PutUint32(b, fixedFileInfoSignature)
	binary.LittleEndian.PutUint32(b[4:], 0x00010000)
	binary.LittleEndian.PutUint32(b[8:], uint32(major)<<16|uint32(minor))
	binary.LittleEndian.PutUint32(b[12:], uint32(build)<<16|uint32(revision))

	return b
}

func versionResource(fixed []byte, strs ...string) []byte {
	var entries [][]byte
	for i := 0; i+1 < len(strs); i += 2 {
		entries = append(entries, encodeBlock(strs[i], utf16z(strs[i+1]), true))
	}

	table := encodeBlock("040904b0", nil, true, entries...)
	sfi := encodeBlock(stringFileInfoKey, nil, true, table)
	translation := encodeBlock("Translation", []byte{0x09, 0x04, 0xb0, 0x04}, false)
	vfi := encodeBlock("VarFileInfo", nil, true, translation)

	return encodeBlock(versionInfoKey, fixed, false, sfi, vfi)
}

func TestParseVersionInfo(t *testing.T) {
	data := versionResource(fixedFileInfo(1, 2, 3, 4),
		"CompanyName", "Acme",
		"FileVersion", "1.2.3.4",
		"ProductVersion", "1.2.3-beta+abc",
		"Assembly Version", "1.0.0.0",
	)

	info, err := parseVersionInfo(data)
	require.NoError(t, err)

	assert.Equal(t, "1.2.3.4", info.fixedFileVersion)
	assert.Equal(t, "Acme", info.strings["CompanyName"])
	assert.Equal(t, "1.0.0.0", info.attribute(commandline.AssemblyVersion))
	assert.Equal(t, "1.2.3.4", info.attribute(commandline.AssemblyFileVersion))
	assert.Equal(t, "1.2.3-beta+abc", info.attribute(commandline.AssemblyInformationalVersion))
}

func TestParseVersionInfoFallsBackToFixedFileVersion(t *testing.T) {
	data := versionResource(fixedFileInfo(5, 6, 7, 8), "ProductVersion", "5.6")

	info, err := parseVersionInfo(data)
	require.NoError(t, err)

	assert.Equal(t, "5.6.7.8", info.attribute(commandline.AssemblyFileVersion))
	assert.Empty(t, info.attribute(commandline.AssemblyVersion))
}

func TestParseVersionInfoMalformed(t *testing.T) {
	tests := map[string][]byte{
		"empty":      nil,
		"short":      {0x10, 0x00},
		"too long":   {0xff, 0x00, 0x00, 0x00, 0x00, 0x00},
		"wrong key":  encodeBlock("NOT_VERSION", nil, false),
		"bad length": {0x02, 0x00, 0x00, 0x00, 0x00, 0x00},
	}

	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := parseVersionInfo(data)
			require.ErrorIs(t, err, ErrMalformedResource)
		})
	}
}

// resourceTree builds a resource section with one type, name and language entry.
func resourceTree(rva, typeID uint32, data []byte) []byte {
	const (
		nameDir  = 24
		langDir  = 48
		dataDesc = 72
		dataOff  = 88
	)

	b := make([]byte, dataOff+len(data))
	dir := func(off int, id, target uint32) {
		binary.LittleEndian.PutUint16(b[off+14:], 1)
		binary.LittleEndian.PutUint32(b[off+16:], id)
		binary.LittleEndian.PutUint32(b[off+20:], target)
	}

	dir(0, typeID, nameDir|highBit)
	dir(nameDir, 1, langDir|highBit)
	dir(langDir, 1033, dataDesc)
	binary.LittleEndian.PutUint32(b[dataDesc:], rva+dataOff)
	binary.LittleEndian.PutUint32(b[dataDesc+4:], uint32(len(data)))
	copy(b[dataOff:], data)

	return b
}

func TestFindVersionResource(t *testing.T) {
	const rva = 0x4000

	data := versionResource(fixedFileInfo(1, 0, 0, 0), "FileVersion", "1.0.0.0")

	got, err := findVersionResource(resourceTree(rva, rtVersion, data), rva)
	require.NoError(t, err)
	assert.Equal(t, data, got)

	_, err = findVersionResource(resourceTree(rva, 3, data), rva)
	require.ErrorIs(t, err, ErrNoVersionResource)

	tree := resourceTree(rva, rtVersion, data)
	_, err = findVersionResource(tree[:80], rva)
	require.ErrorIs(t, err, ErrMalformedResource)

	_, err = findVersionResource(tree, rva+0x1000)
	require.ErrorIs(t, err, ErrMalformedResource)
}
