package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"

	"organize/internal/organizer"
)

// renderReport formats a run report for the terminal. The table layout is
// used when stdout is a TTY; otherwise output stays plain for piping.
func renderReport(report *organizer.Report, useTable bool) string {
	var b strings.Builder

	summary := fmt.Sprintf("Organized %d of %d files (%d skipped) in %s",
		report.OrganizedFiles, report.TotalFiles, report.SkippedFiles, report.Directory)
	if report.DryRun {
		summary += " [dry run: nothing was moved]"
	}
	b.WriteString(summary)
	b.WriteByte('\n')

	if len(report.Buckets) > 0 {
		if useTable {
			rows := make([][]string, 0, len(report.Buckets))
			for _, bucket := range report.Buckets {
				rows = append(rows, []string{
					bucket.Key,
					fmt.Sprintf("%d", bucket.Count),
					humanize.Bytes(uint64(bucket.Bytes)),
				})
			}
			b.WriteString(renderTable([]string{"Folder", "Files", "Size"}, rows))
			b.WriteByte('\n')
		} else {
			for _, bucket := range report.Buckets {
				fmt.Fprintf(&b, "  %-16s %d files, %s\n",
					bucket.Key, bucket.Count, humanize.Bytes(uint64(bucket.Bytes)))
			}
		}
	}

	if len(report.Errors) > 0 {
		fmt.Fprintf(&b, "Errors (%d):\n", len(report.Errors))
		for _, line := range report.Errors {
			fmt.Fprintf(&b, "  %s\n", line)
		}
	}

	return b.String()
}

func stdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
