package activity_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/temirov/workfeed/internal/activity"
)

func renderTestResult() activity.AggregateResult {
	return activity.AggregateResult{
		Records: []activity.CommitRecord{
			{
				Timestamp:  time.Date(2025, time.March, 14, 9, 30, 0, 0, time.Local),
				Repository: "alpha",
				Hash:       "abcdef0",
				Insertions: 12,
				Deletions:  3,
				Subject:    "add request retries",
			},
			{
				Timestamp:  time.Date(2025, time.March, 13, 18, 5, 0, 0, time.Local),
				Repository: "beta-service",
				Hash:       "1234567",
				Insertions: 4,
				Deletions:  110,
				Subject:    "drop legacy handler",
			},
		},
		TotalInsertions: 16,
		TotalDeletions:  113,
	}
}

func TestRenderRawEmitsTabSeparatedLines(testInstance *testing.T) {
	var outputBuffer bytes.Buffer
	renderer := activity.NewRenderer(&outputBuffer, &bytes.Buffer{})

	require.NoError(testInstance, renderer.RenderRaw(renderTestResult()))

	expectedOutput := "2025-03-14 09:30\talpha\tabcdef0\t+12\t-3\tadd request retries\n" +
		"2025-03-13 18:05\tbeta-service\t1234567\t+4\t-110\tdrop legacy handler\n"
	require.Equal(testInstance, expectedOutput, outputBuffer.String())
}

func TestRenderRawEmitsNothingForEmptyResult(testInstance *testing.T) {
	var outputBuffer bytes.Buffer
	renderer := activity.NewRenderer(&outputBuffer, &bytes.Buffer{})

	require.NoError(testInstance, renderer.RenderRaw(activity.AggregateResult{}))
	require.Zero(testInstance, outputBuffer.Len())
}

func TestRenderTableAlignsColumnsAndSummarizes(testInstance *testing.T) {
	var outputBuffer bytes.Buffer
	renderer := activity.NewRenderer(&outputBuffer, &bytes.Buffer{})

	window := activity.ScanWindow{Description: "the last 7 days"}
	require.NoError(testInstance, renderer.RenderTable(renderTestResult(), window))

	renderedOutput := outputBuffer.String()
	outputLines := strings.Split(strings.TrimRight(renderedOutput, "\n"), "\n")
	require.Len(testInstance, outputLines, 4)

	// Repository column pads to the widest name so hashes line up.
	require.Contains(testInstance, outputLines[0], "alpha       ")
	require.Contains(testInstance, outputLines[1], "beta-service")

	// Counts right-align inside their color spans.
	require.Contains(testInstance, outputLines[0], "+12")
	require.Contains(testInstance, outputLines[0], "-  3")
	require.Contains(testInstance, outputLines[1], "+ 4")
	require.Contains(testInstance, outputLines[1], "-110")

	require.Contains(testInstance, renderedOutput, "2 commits shown (the last 7 days)")
	require.Contains(testInstance, renderedOutput, "Total LoC: ")
	require.Contains(testInstance, renderedOutput, "+16")
	require.Contains(testInstance, renderedOutput, "-113")
	require.Contains(testInstance, renderedOutput, "\x1b[1m")
	require.Contains(testInstance, renderedOutput, "\x1b[32m")
	require.Contains(testInstance, renderedOutput, "\x1b[31m")
	require.Contains(testInstance, renderedOutput, "\x1b[0m")
}

func TestRenderWarningsWriteToErrorWriter(testInstance *testing.T) {
	var outputBuffer bytes.Buffer
	var errorBuffer bytes.Buffer
	renderer := activity.NewRenderer(&outputBuffer, &errorBuffer)

	renderer.RenderWarnings([]activity.Warning{
		{Category: activity.WarningCategoryFetch, Path: "/code/alpha", Detail: "connection refused"},
		{Category: activity.WarningCategoryDirectoryRead, Path: "/code/locked", Detail: "permission denied"},
	})

	require.Zero(testInstance, outputBuffer.Len())
	require.Equal(testInstance,
		"warning: fetch /code/alpha: connection refused\n"+
			"warning: directory_read /code/locked: permission denied\n",
		errorBuffer.String())
}
