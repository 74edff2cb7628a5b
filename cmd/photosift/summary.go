package main

import (
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"photosift/internal/organizer"
)

const (
	ansiReset  = "\x1b[0m"
	ansiYellow = "\x1b[33m"
)

// colorizeOutput reports whether the command writes to a terminal, so ANSI
// color is only emitted where it renders.
func colorizeOutput(cmd *cobra.Command) bool {
	f, ok := cmd.OutOrStdout().(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func renderRunSummary(stats *organizer.Stats, colorize bool) string {
	rows := [][]string{
		{"Files found", strconv.Itoa(stats.FilesFound)},
		{"Duplicates found", strconv.Itoa(stats.DuplicatesFound)},
		{"Duplicates removed", strconv.Itoa(stats.DuplicatesRemoved)},
		{"Space freed", organizer.HumanBytes(stats.BytesFreed)},
		{"Files organized", strconv.Itoa(stats.FilesOrganized)},
		{"Already in place", strconv.Itoa(stats.AlreadyInPlace)},
	}
	if stats.Skipped > 0 {
		rows = append(rows, []string{"Skipped", strconv.Itoa(stats.Skipped)})
	}
	rows = append(rows,
		[]string{"Folders pruned", strconv.Itoa(stats.FoldersPruned)},
		[]string{"Errors", strconv.Itoa(stats.Errors)},
		[]string{"Duration", stats.Duration().Round(time.Millisecond).String()},
	)
	for _, source := range sortedKeys(stats.DateSources) {
		rows = append(rows, []string{"Dates from " + source, strconv.Itoa(stats.DateSources[source])})
	}

	var b strings.Builder
	if stats.DryRun {
		b.WriteString(dryRunBanner(colorize))
		b.WriteByte('\n')
	}
	b.WriteString(renderSummaryTable("Run "+stats.RunID, rows))
	return b.String()
}

func renderConsolidateSummary(stats *organizer.ConsolidateStats, colorize bool) string {
	rows := [][]string{
		{"Files found", strconv.Itoa(stats.FilesFound)},
		{"Photos", strconv.Itoa(stats.PhotosFound)},
		{"Videos", strconv.Itoa(stats.VideosFound)},
		{"Moved", strconv.Itoa(stats.Moved)},
		{"Already in place", strconv.Itoa(stats.AlreadyInPlace)},
		{"Duplicates skipped", strconv.Itoa(stats.DuplicatesSkipped)},
		{"Bytes moved", organizer.HumanBytes(stats.BytesMoved)},
		{"Errors", strconv.Itoa(stats.Errors)},
		{"Duration", stats.Duration().Round(time.Millisecond).String()},
	}

	var b strings.Builder
	if stats.DryRun {
		b.WriteString(dryRunBanner(colorize))
		b.WriteByte('\n')
	}
	b.WriteString(renderSummaryTable("Consolidation "+stats.RunID, rows))
	return b.String()
}

func dryRunBanner(colorize bool) string {
	banner := "[DRY RUN] no changes were made; pass --execute to apply"
	if colorize {
		return ansiYellow + banner + ansiReset
	}
	return banner
}

func renderSummaryTable(title string, rows [][]string) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.SetTitle(title)
	for _, row := range rows {
		tw.AppendRow(table.Row{row[0], row[1]})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft},
		{Number: 2, Align: text.AlignRight},
	})
	return tw.Render()
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
