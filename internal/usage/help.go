// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package usage writes the help, header and result summary of the tool.
package usage

import (
	"fmt"

	"github.com/matt-FFFFFF/packagebuilder/internal/commandline"
)

const (
	metadataSectionTitle = "Metadata object (" + commandline.ArgMetadata + ":<object>):"
	versionSectionTitle  = "Version object (" + commandline.ArgVersion + ":<object>):"
	notesSectionTitle    = "Notes:"
	examplesSectionTitle = "Examples:"
	resultSuccess        = "The package was built successfully."
	resultOutput         = "Output directory:"
	resultPackage        = "Package name:"
)

const notes = `Argument names ignore case and are separated from their value by ':' or '='.
Objects are comma separated property=value pairs. Quote values that contain spaces or commas with ' or ".
A relative output directory, assembly or NuSpec file is resolved against the application root (%s).
The application root defaults to the working directory.`

var examples = []string{
	"%s -module:Acme.Blog",
	"%s -module:Acme.Blog -output:C:\\Packages -version:1.2.0",
	"%s -module:Acme.Blog -nuspec -properties:owners=Acme,tags='blog cms'",
	"%s -module:Acme.Blog -version:assembly=Acme.Blog.Core,assemblyAttribute=AssemblyInformationalVersion",
	"%s -module:Acme.Blog -metadata:title='Acme Blog',authors='Jo Smith, Sam Jones'",
}

// WriteHeader writes the tool name and version.
func WriteHeader(c *Console, tool, version string) {
	c.Heading(fmt.Sprintf("%s version %s", tool, version))
}

// WriteHelp writes the full help.
func WriteHelp(c *Console, tool, rootEnv string) {
	c.NewLine()
	c.Message(fmt.Sprintf("Usage: %s %s [options]", tool, moduleUsage()))

	c.NewLine()
	c.Table(argumentRows())

	c.NewLine()
	c.Heading(metadataSectionTitle)
	c.Table(propertyRows(commandline.MetadataProperties()))

	c.NewLine()
	c.Heading(versionSectionTitle)
	c.Table(propertyRows(commandline.VersionProperties()))

	c.NewLine()
	c.Heading(notesSectionTitle)
	c.Indented(fmt.Sprintf(notes, rootEnv), DefaultIndent, 0)

	c.NewLine()
	c.Heading(examplesSectionTitle)

	for _, e := range examples {
		c.Indented(fmt.Sprintf(e, tool), DefaultIndent, DefaultIndent)
	}
}

// WriteResult writes the summary of a successful build.
func WriteResult(c *Console, outputDirectory, packageFileName string) {
	c.NewLine()
	c.Message(resultSuccess)
	c.NewLine()
	c.Table([]Row{
		{Key: resultOutput, Value: outputDirectory},
		{Key: resultPackage, Value: packageFileName},
	})
}

func moduleUsage() string {
	for _, a := range commandline.Arguments() {
		if a.Name == commandline.ArgModule {
			return a.Usage()
		}
	}

	return commandline.ArgModule
}

func argumentRows() []Row {
	args := commandline.Arguments()

	rows := make([]Row, 0, len(args))
	for _, a := range args {
		rows = append(rows, Row{Key: a.Usage(), Value: a.Description})
	}

	return rows
}

func propertyRows(props []commandline.PropertyInfo) []Row {
	rows := make([]Row, 0, len(props))
	for _, p := range props {
		rows = append(rows, Row{Key: p.Name, Value: p.Description})
	}

	return rows
}
