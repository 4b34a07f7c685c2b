// Copyright The Mantle Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/flatcar/payload-extract/internal/archive"
	"github.com/flatcar/payload-extract/internal/extract"
	"github.com/flatcar/payload-extract/internal/ioreader"
	"github.com/flatcar/payload-extract/internal/metadata"
	"github.com/flatcar/payload-extract/internal/payload"
	"github.com/flatcar/payload-extract/internal/progress"
)

var (
	listOnly       bool
	outputDir      string
	partitionsFlag string
	concurrency    int
	noVerify       bool
	userAgent      string
)

func isHTTPSource(source string) bool {
	u, err := url.Parse(source)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https")
}

// openBackend constructs the random-access backend named by source,
// following the classification rule in spec §6: http(s) URLs and paths
// ending in .zip are archives, everything else is a raw payload.
func openBackend(source string) (ioreader.Backend, error) {
	if isHTTPSource(source) {
		return ioreader.OpenHTTP(source, userAgent)
	}
	return ioreader.OpenFile(source)
}

func isArchiveSource(source string) bool {
	return isHTTPSource(source) || strings.HasSuffix(source, ".zip")
}

func runExtract(cmd *cobra.Command, args []string) error {
	source := args[0]

	backend, err := openBackend(source)
	if err != nil {
		return err
	}
	defer backend.Close()

	payloadBackend := backend
	if isArchiveSource(source) {
		member, err := archive.Locate(backend, archive.PayloadEntryName)
		if err != nil {
			return err
		}
		payloadBackend = member
	}

	p, err := payload.Open(payloadBackend)
	if err != nil {
		return err
	}

	var names []string
	if partitionsFlag != "" {
		names = strings.Split(partitionsFlag, ",")
	}
	selected, err := extract.Select(p.Partitions(), names)
	if err != nil {
		return err
	}

	if listOnly {
		return listPartitions(cmd, selected)
	}

	opts := extract.Options{Concurrency: concurrency, Verify: !noVerify}
	if err := extract.Run(payloadBackend, p.DataOffset, selected, outputDir, opts, progress.NewTerminal()); err != nil {
		return errors.Wrap(err, "extraction failed")
	}
	return nil
}

// listPartitions prints one line per selected partition: name,
// human-readable size, and operation count. No header row, no trailing
// summary.
func listPartitions(cmd *cobra.Command, selected []*metadata.PartitionUpdate) error {
	out := cmd.OutOrStdout()
	for _, p := range selected {
		size := p.GetNewPartitionInfo().GetSize()
		fmt.Fprintf(out, "%s\t%s\t%d ops\n", p.GetPartitionName(), humanize.Bytes(size), len(p.GetOperations()))
	}
	return nil
}
