// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package version

import (
	"context"
	"debug/pe"
	"encoding/binary"
	"errors"
	"fmt"
	"strings"
	"unicode/utf16"

	"github.com/matt-FFFFFF/packagebuilder/internal/commandline"
	"github.com/spf13/afero"
)

const (
	rtVersion              = 16
	fixedFileInfoSignature = 0xFEEF04BD
	versionInfoKey         = "VS_VERSION_INFO"
	stringFileInfoKey      = "StringFileInfo"
	resourceDirectorySize  = 16
	resourceEntrySize      = 8
	resourceDataEntrySize  = 16
	versionBlockHeaderSize = 6
	highBit                = 0x80000000
)

var (
	// ErrNoVersionResource is returned when the image has no version resource.
	ErrNoVersionResource = errors.New("no version resource")
	// ErrMalformedResource is returned when the resource data cannot be decoded.
	ErrMalformedResource = errors.New("malformed resource data")
)

// attributeKeys are the StringFileInfo keys the .NET compilers write for each attribute.
var attributeKeys = map[commandline.AssemblyVersionType]string{
	commandline.AssemblyVersion:              "Assembly Version",
	commandline.AssemblyFileVersion:          "FileVersion",
	commandline.AssemblyInformationalVersion: "ProductVersion",
}

var le = binary.LittleEndian

// PEReader reads version attributes from the Win32 version resource of a PE image.
type PEReader struct{}

var _ AttributeReader = PEReader{}

// ReadAttribute implements AttributeReader.
// An image without a version resource yields an empty value.
func (PEReader) ReadAttribute(_ context.Context, fs afero.Fs, path string, attribute commandline.AssemblyVersionType) (string, error) {
	f, err := fs.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close() //nolint:errcheck

	img, err := pe.NewFile(f)
	if err != nil {
		return "", fmt.Errorf("not a PE image: %w", err)
	}

	data, err := imageVersionResource(img)
	if errors.Is(err, ErrNoVersionResource) {
		return "", nil
	}

	if err != nil {
		return "", err
	}

	info, err := parseVersionInfo(data)
	if err != nil {
		return "", err
	}

	return info.attribute(attribute), nil
}

func imageVersionResource(img *pe.File) ([]byte, error) {
	var dirs []pe.DataDirectory

	switch h := img.OptionalHeader.(type) {
	case *pe.OptionalHeader32:
		dirs = h.DataDirectory[:min(h.NumberOfRvaAndSizes, uint32(len(h.DataDirectory)))]
	case *pe.OptionalHeader64:
		dirs = h.DataDirectory[:min(h.NumberOfRvaAndSizes, uint32(len(h.DataDirectory)))]
	}

	if len(dirs) <= pe.IMAGE_DIRECTORY_ENTRY_RESOURCE {
		return nil, ErrNoVersionResource
	}

	rva := dirs[pe.IMAGE_DIRECTORY_ENTRY_RESOURCE].VirtualAddress
	if rva == 0 {
		return nil, ErrNoVersionResource
	}

	for _, sec := range img.Sections {
		size := max(sec.VirtualSize, sec.Size)
		if rva < sec.VirtualAddress || rva >= sec.VirtualAddress+size {
			continue
		}

		data, err := sec.Data()
		if err != nil {
			return nil, fmt.Errorf("reading section %s: %w", sec.Name, err)
		}

		offset := rva - sec.VirtualAddress
		if int(offset) >= len(data) {
			return nil, ErrMalformedResource
		}

		return findVersionResource(data[offset:], rva)
	}

	return nil, ErrNoVersionResource
}

type resourceEntry struct {
	id     uint32
	named  bool
	offset uint32
	isDir  bool
}

// findVersionResource walks the type, name and language levels of the resource tree.
// rsrc starts at the resource root, which is mapped at rva.
func findVersionResource(rsrc []byte, rva uint32) ([]byte, error) {
	types, err := readResourceDirectory(rsrc, 0)
	if err != nil {
		return nil, err
	}

	var entry *resourceEntry

	for i := range types {
		if !types[i].named && types[i].id == rtVersion && types[i].isDir {
			entry = &types[i]
			break
		}
	}

	if entry == nil {
		return nil, ErrNoVersionResource
	}

	// name level, then language level
	for range 2 {
		next, err := readResourceDirectory(rsrc, entry.offset)
		if err != nil {
			return nil, err
		}

		if len(next) == 0 {
			return nil, ErrNoVersionResource
		}

		entry = &next[0]
	}

	if entry.isDir || uint64(entry.offset)+resourceDataEntrySize > uint64(len(rsrc)) {
		return nil, ErrMalformedResource
	}

	dataRVA := le.Uint32(rsrc[entry.offset:])
	size := le.Uint32(rsrc[entry.offset+4:])

	if dataRVA < rva || uint64(dataRVA-rva)+uint64(size) > uint64(len(rsrc)) {
		return nil, ErrMalformedResource
	}

	start := dataRVA - rva

	return rsrc[start : start+size], nil
}

func readResourceDirectory(rsrc []byte, offset uint32) ([]resourceEntry, error) {
	if uint64(offset)+resourceDirectorySize > uint64(len(rsrc)) {
		return nil, ErrMalformedResource
	}

	count := uint32(le.Uint16(rsrc[offset+12:])) + uint32(le.Uint16(rsrc[offset+14:]))
	start := offset + resourceDirectorySize

	if uint64(start)+uint64(count)*resourceEntrySize > uint64(len(rsrc)) {
		return nil, ErrMalformedResource
	}

	entries := make([]resourceEntry, 0, count)

	for i := range count {
		e := rsrc[start+i*resourceEntrySize:]
		name := le.Uint32(e)
		data := le.Uint32(e[4:])
		entries = append(entries, resourceEntry{
			id:     name &^ highBit,
			named:  name&highBit != 0,
			offset: data &^ highBit,
			isDir:  data&highBit != 0,
		})
	}

	return entries, nil
}

type versionBlock struct {
	key      string
	value    []byte
	children []versionBlock
}

// parseVersionBlock decodes one VS_VERSIONINFO style block and its children.
// It returns the block and its declared length.
func parseVersionBlock(b []byte) (versionBlock, int, error) {
	if len(b) < versionBlockHeaderSize {
		return versionBlock{}, 0, ErrMalformedResource
	}

	length := int(le.Uint16(b))
	valueLength := int(le.Uint16(b[2:]))
	text := le.Uint16(b[4:]) == 1

	if length < versionBlockHeaderSize || length > len(b) {
		return versionBlock{}, 0, ErrMalformedResource
	}

	b = b[:length]
	key, off := readUTF16String(b, versionBlockHeaderSize)
	off = min(align4(off), length)

	// text values are counted in UTF-16 code units
	size := valueLength
	if text {
		size *= 2
	}

	end := min(off+size, length)
	blk := versionBlock{key: key, value: b[off:end]}

	for off = align4(end); off+versionBlockHeaderSize <= length; {
		child, n, err := parseVersionBlock(b[off:])
		if err != nil {
			return versionBlock{}, 0, err
		}

		blk.children = append(blk.children, child)
		off = align4(off + n)
	}

	return blk, length, nil
}

type versionInfo struct {
	strings          map[string]string
	fixedFileVersion string
}

func parseVersionInfo(data []byte) (versionInfo, error) {
	root, _, err := parseVersionBlock(data)
	if err != nil {
		return versionInfo{}, err
	}

	if root.key != versionInfoKey {
		return versionInfo{}, fmt.Errorf("%w: unexpected key %q", ErrMalformedResource, root.key)
	}

	info := versionInfo{strings: make(map[string]string)}

	if len(root.value) >= 16 && le.Uint32(root.value) == fixedFileInfoSignature {
		ms := le.Uint32(root.value[8:])
		ls := le.Uint32(root.value[12:])
		info.fixedFileVersion = fmt.Sprintf("%d.%d.%d.%d", ms>>16, ms&0xffff, ls>>16, ls&0xffff)
	}

	for _, child := range root.children {
		if child.key != stringFileInfoKey {
			continue
		}

		for _, table := range child.children {
			for _, s := range table.children {
				if info.strings[s.key] == "" {
					info.strings[s.key] = decodeUTF16(s.value)
				}
			}
		}
	}

	return info, nil
}

func (v versionInfo) attribute(t commandline.AssemblyVersionType) string {
	s := strings.TrimSpace(v.strings[attributeKeys[t]])
	if s == "" && t == commandline.AssemblyFileVersion {
		return v.fixedFileVersion
	}

	return s
}

// readUTF16String reads a null terminated UTF-16LE string starting at off.
// It returns the string and the offset after the terminator.
func readUTF16String(b []byte, off int) (string, int) {
	var units []uint16

	for off+1 < len(b) {
		u := le.Uint16(b[off:])
		off += 2

		if u == 0 {
			break
		}

		units = append(units, u)
	}

	return string(utf16.Decode(units)), off
}

func decodeUTF16(b []byte) string {
	s, _ := readUTF16String(b, 0)
	return s
}

func align4(n int) int {
	return (n + 3) &^ 3
}
