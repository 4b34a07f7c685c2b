// Copyright The Mantle Authors
// SPDX-License-Identifier: Apache-2.0

// Package version carries the build-time version string reported by the
// "version" subcommand that cli.Execute attaches to every command.
package version

// Version is overridden at build time via -ldflags.
var Version = "unknown"
