package activity

import (
	"context"
	"strings"
	"time"

	"github.com/go-git/go-git/v5/plumbing/object"
	"go.uber.org/zap"

	"github.com/temirov/workfeed/internal/gitrepo"
)

const (
	defaultFetchTimeoutConstant       = 30 * time.Second
	missingSubjectPlaceholderConstant = "(no message)"
)

// CollectionRequest describes a single-repository collection run. The window
// and identity are shared read-only across all concurrent collectors.
type CollectionRequest struct {
	RepositoryPath   string
	DisplayName      string
	Window           ScanWindow
	Identity         gitrepo.AuthorIdentity
	FilterByIdentity bool
	IncludeMerges    bool
	FetchRemotes     bool
	FetchTimeout     time.Duration
}

type commitEvaluation int

const (
	commitEvaluationEmit commitEvaluation = iota
	commitEvaluationSkip
	commitEvaluationStop
)

// RepositoryCommitCollector walks a repository's history from HEAD, newest
// first, and emits the commits matching the request.
type RepositoryCommitCollector struct {
	logger *zap.Logger
}

// NewRepositoryCommitCollector constructs a collector logging through the provided logger.
func NewRepositoryCommitCollector(logger *zap.Logger) *RepositoryCommitCollector {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RepositoryCommitCollector{logger: logger}
}

// CollectCommits fetches (when requested), walks history, and returns the
// repository's qualifying commits in newest-first order. Repository-level
// failures become warnings with an empty result; they never abort the
// aggregate.
func (collector *RepositoryCommitCollector) CollectCommits(executionContext context.Context, request CollectionRequest) ([]CommitRecord, []Warning) {
	var warnings []Warning

	repository, openError := gitrepo.OpenRepository(request.RepositoryPath)
	if openError != nil {
		collector.logger.Debug(repositoryOpenFailedMessageConstant,
			zap.String(logFieldRepositoryConstant, request.RepositoryPath),
			zap.Error(openError))
		return nil, append(warnings, Warning{Category: WarningCategoryRepositoryAccess, Path: request.RepositoryPath, Detail: openError.Error()})
	}

	if request.FetchRemotes {
		fetchTimeout := request.FetchTimeout
		if fetchTimeout <= 0 {
			fetchTimeout = defaultFetchTimeoutConstant
		}
		if fetchError := repository.FetchAllRemotes(executionContext, fetchTimeout); fetchError != nil {
			// Local history still serves; the feed just may lag the remote.
			collector.logger.Debug(fetchFailedMessageConstant,
				zap.String(logFieldRepositoryConstant, request.RepositoryPath),
				zap.Error(fetchError))
			warnings = append(warnings, Warning{Category: WarningCategoryFetch, Path: request.RepositoryPath, Detail: fetchError.Error()})
		}
	}

	var records []CommitRecord
	walkError := repository.WalkHistory(func(commit *object.Commit) (bool, error) {
		switch evaluateCommit(commit.NumParents(), commit.Committer.When, commit.Author.Email, commit.Author.Name, request) {
		case commitEvaluationStop:
			return false, nil
		case commitEvaluationSkip:
			return true, nil
		}

		insertions, deletions := gitrepo.FirstParentDiffStat(commit)
		records = append(records, CommitRecord{
			Timestamp:  commit.Committer.When,
			Repository: request.DisplayName,
			Hash:       gitrepo.ShortHash(commit.Hash.String()),
			Insertions: insertions,
			Deletions:  deletions,
			Subject:    commitSubject(commit.Message),
			IsMerge:    commit.NumParents() > 1,
		})
		return true, nil
	})
	if walkError != nil {
		collector.logger.Debug(historyWalkFailedMessageConstant,
			zap.String(logFieldRepositoryConstant, request.RepositoryPath),
			zap.Error(walkError))
		return nil, append(warnings, Warning{Category: WarningCategoryRepositoryAccess, Path: request.RepositoryPath, Detail: walkError.Error()})
	}

	collector.logger.Debug(repositoryScannedMessageConstant,
		zap.String(logFieldRepositoryConstant, request.RepositoryPath),
		zap.Int(logFieldCommitCountConstant, len(records)))

	return records, warnings
}

// evaluateCommit applies the filter chain in order: window cutoff first, then
// merge exclusion, then author identity. The walk stops on the first commit
// older than the window start; committer-date ordering makes that an accepted
// approximation even when merge commits are slightly out of order.
func evaluateCommit(parentCount int, committedAt time.Time, authorEmail string, authorName string, request CollectionRequest) commitEvaluation {
	if !request.Window.Contains(committedAt) {
		return commitEvaluationStop
	}
	if parentCount > 1 && !request.IncludeMerges {
		return commitEvaluationSkip
	}
	if request.FilterByIdentity && !request.Identity.Matches(authorEmail, authorName) {
		return commitEvaluationSkip
	}
	return commitEvaluationEmit
}

func commitSubject(commitMessage string) string {
	subjectLine := commitMessage
	if newlineIndex := strings.IndexByte(subjectLine, '\n'); newlineIndex >= 0 {
		subjectLine = subjectLine[:newlineIndex]
	}
	subjectLine = strings.TrimSpace(subjectLine)
	if len(subjectLine) == 0 {
		return missingSubjectPlaceholderConstant
	}
	return subjectLine
}
