// Copyright The Mantle Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"github.com/spf13/cobra"

	"github.com/flatcar/payload-extract/cli"
)

var root = &cobra.Command{
	Use:   "payload-extract [flags] SOURCE",
	Short: "Extract partition images from an Android A/B update payload.bin",
	Long: `payload-extract reads an update_engine payload (raw payload.bin, a ZIP
archive containing payload.bin as a stored entry, or an http(s) URL to such
an archive) and writes one image file per partition.`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	fv := root.Flags().BoolVarP
	sv := root.Flags().StringVarP
	iv := root.Flags().IntVarP

	fv(&listOnly, "list", "l", false, "list partitions and exit without extracting")
	sv(&outputDir, "output", "o", ".", "directory to write partition images into")
	sv(&partitionsFlag, "partitions", "p", "", "comma-separated partition names to extract (default: all)")
	iv(&concurrency, "concurrency", "c", 0, "number of worker goroutines (default: number of CPUs)")
	root.Flags().BoolVar(&noVerify, "no-verify", false, "skip per-operation SHA-256 verification")
	sv(&userAgent, "user-agent", "u", "", "User-Agent header sent on HTTP requests")
}

func main() {
	cli.Execute(root)
}
