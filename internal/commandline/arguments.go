// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package commandline

// Argument names.
const (
	ArgHelp       = "-help"
	ArgDebug      = "-debug"
	ArgModule     = "-module"
	ArgNuSpecFile = "-nuspec"
	ArgOutput     = "-output"
	ArgMetadata   = "-metadata"
	ArgProperties = "-properties"
	ArgVersion    = "-version"
)

// Property names of the structured arguments.
const (
	PropMetadataID          = "id"
	PropMetadataTitle       = "title"
	PropMetadataDescription = "description"
	PropMetadataAuthors     = "authors"

	// PropVersionValue names the bare version string in errors and help. It cannot be typed.
	PropVersionValue             = "<value>"
	PropVersionAssembly          = "assembly"
	PropVersionAssemblyAttribute = "assemblyAttribute"
)

// Help aliases compared exactly, in addition to ArgHelp.
var helpAliases = []string{"-?", "/?", "?"}

// ArgumentInfo describes an argument for the help output.
type ArgumentInfo struct {
	Name        string
	Placeholder string
	Description string
}

// Usage returns the argument as it is typed, e.g. `-module:<codename>`.
func (a ArgumentInfo) Usage() string {
	if a.Placeholder == "" {
		return a.Name
	}

	return a.Name + ":<" + a.Placeholder + ">"
}

// PropertyInfo describes a property of a structured argument for the help output.
type PropertyInfo struct {
	Name        string
	Description string
}

// Arguments returns the recognized arguments in help order.
func Arguments() []ArgumentInfo {
	return []ArgumentInfo{
		{
			Name:        ArgModule,
			Placeholder: "codename",
			Description: "The code name of the module to package.",
		},
		{
			Name:        ArgNuSpecFile,
			Placeholder: "nuspecfile",
			Description: "The NuSpec manifest used to build the package. When the value is omitted, " +
				"<codename>.nuspec is used.",
		},
		{
			Name:        ArgOutput,
			Placeholder: "path",
			Description: "The directory the package is written to.",
		},
		{
			Name:        ArgMetadata,
			Placeholder: "object",
			Description: "Overrides the package metadata. See the metadata object below.",
		},
		{
			Name:        ArgProperties,
			Placeholder: "object",
			Description: "Replacement tokens for the NuSpec manifest, e.g. token1=value1,token2=value2. " +
				"Only used together with " + ArgNuSpecFile + ".",
		},
		{
			Name:        ArgVersion,
			Placeholder: "object",
			Description: "The package version, either explicit or read from an assembly. See the version object below.",
		},
		{
			Name:        ArgDebug,
			Description: "Writes debug logs and error details.",
		},
		{
			Name:        ArgHelp,
			Description: "Displays this help.",
		},
	}
}

// MetadataProperties returns the properties of the -metadata object.
func MetadataProperties() []PropertyInfo {
	return []PropertyInfo{
		{Name: PropMetadataID, Description: "The package identifier."},
		{Name: PropMetadataTitle, Description: "The package title."},
		{Name: PropMetadataDescription, Description: "The package description."},
		{Name: PropMetadataAuthors, Description: "A comma separated list of package authors. Quote the value."},
	}
}

// VersionProperties returns the properties of the -version object.
func VersionProperties() []PropertyInfo {
	return []PropertyInfo{
		{Name: PropVersionValue, Description: "An explicit version, e.g. 1.2.3."},
		{
			Name: PropVersionAssembly,
			Description: "The assembly the version is read from. When the value is omitted, " +
				"the assembly named after the module is used.",
		},
		{
			Name: PropVersionAssemblyAttribute,
			Description: "The assembly attribute holding the version: AssemblyVersion, " +
				"AssemblyFileVersion (default) or AssemblyInformationalVersion.",
		},
	}
}

// KnownArguments returns every accepted argument name, help aliases included.
func KnownArguments() []string {
	names := []string{ArgHelp}
	names = append(names, helpAliases...)

	for _, a := range Arguments() {
		if a.Name != ArgHelp {
			names = append(names, a.Name)
		}
	}

	return names
}
