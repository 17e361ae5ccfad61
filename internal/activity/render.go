package activity

import (
	"fmt"
	"io"
	"strconv"
)

const (
	timestampDisplayLayoutConstant = "2006-01-02 15:04"
	rawRecordTemplateConstant      = "%s\t%s\t%s\t+%d\t-%d\t%s\n"
	tableRecordTemplateConstant    = "%s  %s%s%s  %s%s%s  %s+%s%s %s-%s%s  %s\n"
	summaryCountTemplateConstant   = "\n%d commits shown (%s)\n"
	summaryTotalsTemplateConstant  = "Total LoC: %s+%d%s %s-%d%s\n"
	warningLineTemplateConstant    = "warning: %s %s: %s\n"

	ansiBoldConstant  = "\x1b[1m"
	ansiDimConstant   = "\x1b[2m"
	ansiGreenConstant = "\x1b[32m"
	ansiRedConstant   = "\x1b[31m"
	ansiResetConstant = "\x1b[0m"
)

// Renderer writes aggregate results as an aligned table or as raw
// tab-separated lines, and lists accumulated warnings after the result.
type Renderer struct {
	outputWriter io.Writer
	errorWriter  io.Writer
}

// NewRenderer constructs a Renderer targeting the provided writers.
func NewRenderer(outputWriter io.Writer, errorWriter io.Writer) *Renderer {
	return &Renderer{outputWriter: outputWriter, errorWriter: errorWriter}
}

// RenderRaw emits one time\trepo\thash\t+ins\t-del\tsubject line per record.
func (renderer *Renderer) RenderRaw(result AggregateResult) error {
	for _, record := range result.Records {
		_, writeError := fmt.Fprintf(renderer.outputWriter, rawRecordTemplateConstant,
			record.Timestamp.Local().Format(timestampDisplayLayoutConstant),
			record.Repository,
			record.Hash,
			record.Insertions,
			record.Deletions,
			record.Subject)
		if writeError != nil {
			return writeError
		}
	}
	return nil
}

// RenderTable emits an aligned, colored table followed by summary totals.
// Column widths derive from the displayed records only.
func (renderer *Renderer) RenderTable(result AggregateResult, window ScanWindow) error {
	repositoryWidth := 0
	insertionWidth := 1
	deletionWidth := 1
	for _, record := range result.Records {
		repositoryWidth = maxInt(repositoryWidth, len(record.Repository))
		insertionWidth = maxInt(insertionWidth, len(strconv.Itoa(record.Insertions)))
		deletionWidth = maxInt(deletionWidth, len(strconv.Itoa(record.Deletions)))
	}

	for _, record := range result.Records {
		_, writeError := fmt.Fprintf(renderer.outputWriter, tableRecordTemplateConstant,
			record.Timestamp.Local().Format(timestampDisplayLayoutConstant),
			ansiBoldConstant, padRight(record.Repository, repositoryWidth), ansiResetConstant,
			ansiDimConstant, record.Hash, ansiResetConstant,
			ansiGreenConstant, padLeft(strconv.Itoa(record.Insertions), insertionWidth), ansiResetConstant,
			ansiRedConstant, padLeft(strconv.Itoa(record.Deletions), deletionWidth), ansiResetConstant,
			record.Subject)
		if writeError != nil {
			return writeError
		}
	}

	if _, writeError := fmt.Fprintf(renderer.outputWriter, summaryCountTemplateConstant, len(result.Records), window.Description); writeError != nil {
		return writeError
	}
	_, writeError := fmt.Fprintf(renderer.outputWriter, summaryTotalsTemplateConstant,
		ansiGreenConstant, result.TotalInsertions, ansiResetConstant,
		ansiRedConstant, result.TotalDeletions, ansiResetConstant)
	return writeError
}

// RenderWarnings lists non-fatal warnings on the error writer, one per line.
func (renderer *Renderer) RenderWarnings(warnings []Warning) {
	for _, warning := range warnings {
		fmt.Fprintf(renderer.errorWriter, warningLineTemplateConstant, warning.Category, warning.Path, warning.Detail)
	}
}

func padRight(value string, width int) string {
	for len(value) < width {
		value += " "
	}
	return value
}

func padLeft(value string, width int) string {
	for len(value) < width {
		value = " " + value
	}
	return value
}

func maxInt(first int, second int) int {
	if first > second {
		return first
	}
	return second
}
