// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package build is the packagebuilder command: it parses the command line and builds
// the module package.
package build

import (
	"context"
	"fmt"
	"io"

	"github.com/matt-FFFFFF/packagebuilder/internal/commandline"
	"github.com/matt-FFFFFF/packagebuilder/internal/config"
	"github.com/matt-FFFFFF/packagebuilder/internal/ctxlog"
	"github.com/matt-FFFFFF/packagebuilder/internal/diagnostic"
	"github.com/matt-FFFFFF/packagebuilder/internal/packaging"
	"github.com/matt-FFFFFF/packagebuilder/internal/usage"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"
)

// ToolName is the name of the executable.
const ToolName = "packagebuilder"

const (
	exitFailure         = 1
	errorDetailOverflow = 6
	progressInitialize  = "Initializing application..."
	progressBuild       = "Building package..."
)

var (
	// ConsoleFactory creates the console the command writes to.
	ConsoleFactory = func(out, errOut io.Writer) *usage.Console {
		return usage.NewConsole(out, errOut)
	}
	// SourceFactory creates the module source.
	SourceFactory = func() packaging.ModuleSource {
		return packaging.StaticSource{}
	}
	// BuilderFactory creates the package builder.
	BuilderFactory = func(fs afero.Fs) packaging.Builder {
		return packaging.NewManifestWriter(fs)
	}
)

// NewCommand returns the root command. Arguments are not parsed as flags: the
// tool has its own grammar, see package commandline.
func NewCommand(version string, out, errOut io.Writer) *cli.Command {
	return &cli.Command{
		Name:            ToolName,
		Usage:           "Builds a redistributable package of a module",
		UsageText:       ToolName + " -module:<codename> [options]",
		Version:         version,
		Writer:          out,
		ErrWriter:       errOut,
		SkipFlagParsing: true,
		HideHelp:        true,
		HideVersion:     true,
		Copyright:       "Copyright (c) matt-FFFFFF 2025. All rights reserved.",
		Action:          actionFunc,
	}
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	console := ConsoleFactory(cmd.Writer, cmd.ErrWriter)
	usage.WriteHeader(console, ToolName, cmd.Version)

	if cmd.Args().Len() == 0 {
		usage.WriteHelp(console, ToolName, config.EnvRoot)
		return cli.Exit("", exitFailure)
	}

	cl, err := commandline.FromArgs(cmd.Args().Slice())
	if err != nil {
		console.NewLine()
		console.Error(diagnostic.Render(err))

		return cli.Exit("", exitFailure)
	}

	if cl.Help() {
		usage.WriteHelp(console, ToolName, config.EnvRoot)
		return nil
	}

	if cl.Debug() {
		ctxlog.EnableDebug()
	}

	res, err := build(ctx, console, cl)
	if err != nil {
		console.NewLine()
		console.Error(diagnostic.Render(err))

		if cl.Debug() {
			console.ErrorDetail(fmt.Sprintf("\n[%T]", err), 0)

			for _, line := range diagnostic.Chain(err) {
				console.ErrorDetail(line, errorDetailOverflow)
			}
		}

		return cli.Exit("", exitFailure)
	}

	usage.WriteResult(console, res.OutputDirectory, res.PackageFileName)

	return nil
}

func build(ctx context.Context, console *usage.Console, cl *commandline.CommandLine) (*packaging.Result, error) {
	console.NewLine()
	console.Message(progressInitialize)

	settings, err := config.FromEnv()
	if err != nil {
		return nil, err
	}

	ctxlog.Debug(ctx, "settings", "root", settings.RootPath, "output", settings.OutputDirectory)

	fs := config.FsFactory()

	req, err := packaging.NewRequest(ctx, cl, packaging.Options{
		Settings: settings,
		Source:   SourceFactory(),
		Fs:       fs,
	})
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	console.Message(progressBuild)

	return BuilderFactory(fs).Build(ctx, req)
}
