// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package ctxlog carries a slog logger in a context.Context.
//
// The level is read from the PACKAGEBUILDER_LOG_LEVEL environment variable at start up
// and defaults to WARN. The default handler prints records in a human readable way,
// with the attributes formatted as indented JSON.
package ctxlog
