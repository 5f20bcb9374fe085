// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main contains the packagebuilder command-line interface (CLI).
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/matt-FFFFFF/packagebuilder"
	"github.com/matt-FFFFFF/packagebuilder/cmd/packagebuilder/build"
	"github.com/matt-FFFFFF/packagebuilder/internal/ctxlog"
	"github.com/matt-FFFFFF/packagebuilder/internal/signalbroker"
)

func main() {
	base := ctxlog.New(context.Background(), ctxlog.DefaultLogger)

	ctx, cancel := context.WithCancel(base)
	defer cancel()

	watchCtx, stopWatch := context.WithCancel(base)
	defer stopWatch()

	sigCh := signalbroker.New(ctx)
	defer signalbroker.Stop(sigCh)

	go signalbroker.Watch(watchCtx, sigCh, cancel, func() { os.Exit(1) })

	version := fmt.Sprintf("%s (commit: %s)", packagebuilder.Version, packagebuilder.Commit)

	err := build.NewCommand(version, os.Stdout, os.Stderr).Run(ctx, os.Args) // Err is handled by cli framework

	// Check if the context was cancelled (e.g., due to signals)
	if ctx.Err() != nil {
		ctxlog.Logger(ctx).Error("build terminated due to cancellation", "error", ctx.Err())
		os.Exit(1)
	}

	if err != nil {
		ctxlog.Logger(ctx).Debug("build failed", "error", err)
		os.Exit(1)
	}
}
