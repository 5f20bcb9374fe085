// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package commandline

import "fmt"

// AssemblyVersionType selects the assembly attribute a version is read from.
type AssemblyVersionType int

const (
	// AssemblyVersion is the AssemblyVersion attribute.
	AssemblyVersion AssemblyVersionType = iota
	// AssemblyFileVersion is the AssemblyFileVersion attribute. It is the default.
	AssemblyFileVersion
	// AssemblyInformationalVersion is the AssemblyInformationalVersion attribute.
	AssemblyInformationalVersion
)

var assemblyVersionTypeNames = map[AssemblyVersionType]string{
	AssemblyVersion:              "AssemblyVersion",
	AssemblyFileVersion:          "AssemblyFileVersion",
	AssemblyInformationalVersion: "AssemblyInformationalVersion",
}

// String returns the attribute name.
func (t AssemblyVersionType) String() string {
	if name, ok := assemblyVersionTypeNames[t]; ok {
		return name
	}

	return fmt.Sprintf("AssemblyVersionType(%d)", int(t))
}

// ParseAssemblyVersionType parses an attribute name, ignoring case.
func ParseAssemblyVersionType(s string) (AssemblyVersionType, bool) {
	for t, name := range assemblyVersionTypeNames {
		if equalName(s, name) {
			return t, true
		}
	}

	return 0, false
}

// Version holds the -version argument.
// Value is the explicit version. Otherwise the version is read from Assembly,
// which is Wildcard when the assembly named after the module should be used.
type Version struct {
	Value               string
	Assembly            string
	AssemblyVersionType AssemblyVersionType
}

// VersionSource tells where a package version comes from.
// It is either an ExplicitVersion or an AssemblyVersionSource.
type VersionSource interface {
	versionSource()
}

// ExplicitVersion is a version given literally on the command line.
type ExplicitVersion struct {
	Value string
}

// AssemblyVersionSource is a version read from an attribute of an assembly.
type AssemblyVersionSource struct {
	Assembly  string
	Attribute AssemblyVersionType
}

func (ExplicitVersion) versionSource()       {}
func (AssemblyVersionSource) versionSource() {}

// Source returns the tagged form of the version.
func (v Version) Source() VersionSource {
	if v.Value != "" {
		return ExplicitVersion{Value: v.Value}
	}

	return AssemblyVersionSource{Assembly: v.Assembly, Attribute: v.AssemblyVersionType}
}

func parseVersion(value string) (*Version, error) {
	properties, err := ParseArgumentProperties(ArgVersion, value)
	if err != nil {
		return nil, err
	}

	version := &Version{AssemblyVersionType: AssemblyFileVersion}

	for name, v := range properties.All() {
		switch {
		case equalName(name, PropVersionAssembly):
			if v == "" {
				v = Wildcard
			}

			version.Assembly = v
		case equalName(name, PropVersionAssemblyAttribute):
			t, ok := ParseAssemblyVersionType(v)
			if !ok {
				return nil, propertyInvalidValue(ArgVersion, name, v)
			}

			version.AssemblyVersionType = t
		case name == "" || v != "":
			return nil, propertyNotRecognized(ArgVersion, name)
		case version.Value != "":
			return nil, propertyAlreadyDefined(ArgVersion, PropVersionValue)
		default:
			// `-version:1.2.3` parses as a property named 1.2.3 without a value.
			version.Value = name
		}
	}

	return version, nil
}
