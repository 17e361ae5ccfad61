package gitrepo

import (
	"context"
	"errors"
	"io"
	"time"

	gitlib "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

const shortHashLengthConstant = 7

// Repository wraps an opened git repository for read-only history access.
type Repository struct {
	path       string
	repository *gitlib.Repository
}

// OpenRepository opens the repository rooted at repositoryPath.
func OpenRepository(repositoryPath string) (*Repository, error) {
	openedRepository, openError := gitlib.PlainOpen(repositoryPath)
	if openError != nil {
		return nil, openError
	}
	return &Repository{path: repositoryPath, repository: openedRepository}, nil
}

// Path returns the filesystem path the repository was opened from.
func (repository *Repository) Path() string {
	return repository.path
}

// CommitVisitor receives commits in newest-first committer-date order.
// Returning false stops the walk without error.
type CommitVisitor func(commit *object.Commit) (bool, error)

// WalkHistory traverses history from HEAD in reverse committer-date order,
// matching native git log ordering rather than strict topological order.
func (repository *Repository) WalkHistory(visit CommitVisitor) error {
	headReference, headError := repository.repository.Head()
	if headError != nil {
		return headError
	}

	commitIterator, logError := repository.repository.Log(&gitlib.LogOptions{
		From:  headReference.Hash(),
		Order: gitlib.LogOrderCommitterTime,
	})
	if logError != nil {
		return logError
	}
	defer commitIterator.Close()

	for {
		commit, nextError := commitIterator.Next()
		if nextError != nil {
			if errors.Is(nextError, io.EOF) {
				return nil
			}
			return nextError
		}

		continueWalk, visitError := visit(commit)
		if visitError != nil {
			return visitError
		}
		if !continueWalk {
			return nil
		}
	}
}

// FetchAllRemotes performs a pruning fetch against every configured remote,
// each bounded by perRemoteTimeout. Individual failures are joined into the
// returned error; an up-to-date remote is not a failure. Repositories without
// remotes fetch nothing and return nil.
func (repository *Repository) FetchAllRemotes(executionContext context.Context, perRemoteTimeout time.Duration) error {
	remotes, remotesError := repository.repository.Remotes()
	if remotesError != nil {
		return remotesError
	}

	var fetchErrors []error
	for _, remote := range remotes {
		fetchContext, cancelFetch := context.WithTimeout(executionContext, perRemoteTimeout)
		fetchError := remote.FetchContext(fetchContext, &gitlib.FetchOptions{Prune: true})
		cancelFetch()

		if fetchError != nil && !errors.Is(fetchError, gitlib.NoErrAlreadyUpToDate) {
			fetchErrors = append(fetchErrors, fetchError)
		}
	}

	return errors.Join(fetchErrors...)
}

// FirstParentDiffStat computes insertions and deletions between a commit and
// its first parent. Root commits diff against the empty tree. Stat failures
// degrade to zero counts instead of failing the walk.
func FirstParentDiffStat(commit *object.Commit) (int, int) {
	fileStatistics, statisticsError := commit.Stats()
	if statisticsError != nil {
		return 0, 0
	}

	insertions := 0
	deletions := 0
	for _, fileStatistic := range fileStatistics {
		insertions += fileStatistic.Addition
		deletions += fileStatistic.Deletion
	}
	return insertions, deletions
}

// ShortHash abbreviates a full commit hash for display.
func ShortHash(fullHash string) string {
	if len(fullHash) <= shortHashLengthConstant {
		return fullHash
	}
	return fullHash[:shortHashLengthConstant]
}
