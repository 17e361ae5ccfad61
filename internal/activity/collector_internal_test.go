package activity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/temirov/workfeed/internal/gitrepo"
)

func TestEvaluateCommit(testInstance *testing.T) {
	windowStart := time.Date(2025, time.March, 8, 0, 0, 0, 0, time.UTC)
	insideWindow := windowStart.Add(24 * time.Hour)
	baseRequest := CollectionRequest{
		Window:           ScanWindow{Start: windowStart, Description: "the last 7 days"},
		Identity:         gitrepo.AuthorIdentity{Email: "test@example.com", Name: "Test User"},
		FilterByIdentity: true,
	}

	testCases := []struct {
		name        string
		parentCount int
		committedAt time.Time
		authorEmail string
		authorName  string
		adjust      func(request *CollectionRequest)
		expected    commitEvaluation
	}{
		{
			name:        "matching_commit_inside_window",
			parentCount: 1,
			committedAt: insideWindow,
			authorEmail: "TEST@example.com",
			expected:    commitEvaluationEmit,
		},
		{
			name:        "commit_before_window_stops_walk",
			parentCount: 1,
			committedAt: windowStart.Add(-time.Second),
			authorEmail: "test@example.com",
			expected:    commitEvaluationStop,
		},
		{
			name:        "commit_at_window_start_is_included",
			parentCount: 1,
			committedAt: windowStart,
			authorEmail: "test@example.com",
			expected:    commitEvaluationEmit,
		},
		{
			name:        "merge_skipped_by_default",
			parentCount: 2,
			committedAt: insideWindow,
			authorEmail: "test@example.com",
			expected:    commitEvaluationSkip,
		},
		{
			name:        "merge_emitted_when_requested",
			parentCount: 2,
			committedAt: insideWindow,
			authorEmail: "test@example.com",
			adjust:      func(request *CollectionRequest) { request.IncludeMerges = true },
			expected:    commitEvaluationEmit,
		},
		{
			name:        "old_merge_stops_before_merge_filter",
			parentCount: 2,
			committedAt: windowStart.Add(-time.Hour),
			authorEmail: "test@example.com",
			expected:    commitEvaluationStop,
		},
		{
			name:        "foreign_author_skipped",
			parentCount: 1,
			committedAt: insideWindow,
			authorEmail: "other@example.com",
			authorName:  "Other User",
			expected:    commitEvaluationSkip,
		},
		{
			name:        "name_match_accepted",
			parentCount: 1,
			committedAt: insideWindow,
			authorEmail: "work@example.com",
			authorName:  "Test User",
			expected:    commitEvaluationEmit,
		},
		{
			name:        "identity_filter_disabled_accepts_anyone",
			parentCount: 1,
			committedAt: insideWindow,
			authorEmail: "other@example.com",
			adjust:      func(request *CollectionRequest) { request.FilterByIdentity = false },
			expected:    commitEvaluationEmit,
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			request := baseRequest
			if testCase.adjust != nil {
				testCase.adjust(&request)
			}
			evaluation := evaluateCommit(testCase.parentCount, testCase.committedAt, testCase.authorEmail, testCase.authorName, request)
			require.Equal(testInstance, testCase.expected, evaluation)
		})
	}
}

func TestCommitSubject(testInstance *testing.T) {
	testCases := []struct {
		name     string
		message  string
		expected string
	}{
		{name: "single_line", message: "fix bug", expected: "fix bug"},
		{name: "multi_line_keeps_first", message: "fix bug\n\nlonger explanation", expected: "fix bug"},
		{name: "trailing_whitespace_trimmed", message: "fix bug  \nbody", expected: "fix bug"},
		{name: "empty_message_uses_placeholder", message: "", expected: "(no message)"},
		{name: "whitespace_only_uses_placeholder", message: "   \n", expected: "(no message)"},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			require.Equal(testInstance, testCase.expected, commitSubject(testCase.message))
		})
	}
}
