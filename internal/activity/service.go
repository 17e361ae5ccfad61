package activity

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/temirov/workfeed/internal/gitrepo"
)

const currentDirectoryDisplayNameConstant = "."

// ErrNoAuthorIdentity indicates the run cannot filter by author because git
// has neither user.email nor user.name configured.
var ErrNoAuthorIdentity = errors.New("no git author identity configured; set user.email or user.name, or pass --all")

// Service aggregates recent commit activity across discovered repositories.
type Service struct {
	discoverer       RepositoryDiscoverer
	identityResolver IdentityResolver
	collector        CommitCollector
	logger           *zap.Logger
	clock            Clock
	parallelism      int
}

// NewService constructs a Service using the provided dependencies.
func NewService(discoverer RepositoryDiscoverer, identityResolver IdentityResolver, collector CommitCollector, logger *zap.Logger, clock Clock) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if clock == nil {
		clock = SystemClock{}
	}

	parallelism := runtime.GOMAXPROCS(0)
	if parallelism < 1 {
		parallelism = 1
	}

	return &Service{
		discoverer:       discoverer,
		identityResolver: identityResolver,
		collector:        collector,
		logger:           logger,
		clock:            clock,
		parallelism:      parallelism,
	}
}

// Run discovers repositories beneath the root, collects their qualifying
// commits concurrently, and merges the per-repository lists into one globally
// ordered, capped aggregate. Partial per-repository failures surface as
// warnings on the result rather than errors.
func (service *Service) Run(executionContext context.Context, options CommandOptions) (AggregateResult, ScanWindow, error) {
	repositories, discoveryWarnings := service.discoverer.DiscoverRepositories(options.RootPath, options.Depth)

	warnings := make([]Warning, 0, len(discoveryWarnings))
	for _, discoveryWarning := range discoveryWarnings {
		warnings = append(warnings, Warning{Category: WarningCategoryDirectoryRead, Path: discoveryWarning.Path, Detail: discoveryWarning.Detail})
	}

	service.logger.Debug(repositoriesDiscoveredMessageConstant,
		zap.String(logFieldRootConstant, options.RootPath),
		zap.Int(logFieldRepositoryCountConstant, len(repositories)))

	if len(repositories) == 0 {
		return AggregateResult{}, ScanWindow{}, fmt.Errorf(noRepositoriesTemplateConstant, options.RootPath)
	}

	identity := gitrepo.AuthorIdentity{}
	if !options.AllAuthors {
		resolvedIdentity, identityError := service.identityResolver.ResolveIdentity()
		if identityError != nil {
			return AggregateResult{}, ScanWindow{}, identityError
		}
		if resolvedIdentity.IsEmpty() {
			return AggregateResult{}, ScanWindow{}, ErrNoAuthorIdentity
		}
		identity = resolvedIdentity
	}

	window := ResolveScanWindow(options.Window, service.clock.Now())

	// Indexed result slots keep the fan-out free of shared mutable state;
	// merging happens once after every collector joins.
	perRepositoryRecords := make([][]CommitRecord, len(repositories))
	perRepositoryWarnings := make([][]Warning, len(repositories))

	workerGroup, groupContext := errgroup.WithContext(executionContext)
	workerGroup.SetLimit(service.parallelism)

	for repositoryIndex, repositoryPath := range repositories {
		workerGroup.Go(func() error {
			request := CollectionRequest{
				RepositoryPath:   repositoryPath,
				DisplayName:      repositoryDisplayName(options.RootPath, repositoryPath),
				Window:           window,
				Identity:         identity,
				FilterByIdentity: !options.AllAuthors,
				IncludeMerges:    options.IncludeMerges,
				FetchRemotes:     options.FetchRemotes,
			}
			records, collectionWarnings := service.collector.CollectCommits(groupContext, request)
			perRepositoryRecords[repositoryIndex] = records
			perRepositoryWarnings[repositoryIndex] = collectionWarnings
			return nil
		})
	}

	if waitError := workerGroup.Wait(); waitError != nil {
		return AggregateResult{}, ScanWindow{}, waitError
	}

	for _, collectionWarnings := range perRepositoryWarnings {
		warnings = append(warnings, collectionWarnings...)
	}

	mergedRecords := mergeRecords(perRepositoryRecords)

	if len(mergedRecords) == 0 {
		if options.AllAuthors {
			return AggregateResult{}, window, fmt.Errorf(noCommitsTemplateConstant, window.Description)
		}
		return AggregateResult{}, window, fmt.Errorf(noCommitsForIdentityTemplateConstant, window.Description)
	}

	shownRecords := mergedRecords
	if options.Limit > 0 && len(shownRecords) > options.Limit {
		shownRecords = shownRecords[:options.Limit]
	}

	result := AggregateResult{Records: shownRecords, Warnings: warnings}
	for _, record := range shownRecords {
		result.TotalInsertions += record.Insertions
		result.TotalDeletions += record.Deletions
	}

	return result, window, nil
}

// mergeRecords flattens the locally ordered per-repository lists and sorts
// them into the global order: timestamp descending, then repository name, then
// hash. The tie-break keeps two runs over unchanged state byte-identical.
func mergeRecords(perRepositoryRecords [][]CommitRecord) []CommitRecord {
	totalRecordCount := 0
	for _, records := range perRepositoryRecords {
		totalRecordCount += len(records)
	}

	mergedRecords := make([]CommitRecord, 0, totalRecordCount)
	for _, records := range perRepositoryRecords {
		mergedRecords = append(mergedRecords, records...)
	}

	sort.Slice(mergedRecords, func(firstIndex, secondIndex int) bool {
		firstRecord := mergedRecords[firstIndex]
		secondRecord := mergedRecords[secondIndex]
		if !firstRecord.Timestamp.Equal(secondRecord.Timestamp) {
			return firstRecord.Timestamp.After(secondRecord.Timestamp)
		}
		if firstRecord.Repository != secondRecord.Repository {
			return firstRecord.Repository < secondRecord.Repository
		}
		return firstRecord.Hash < secondRecord.Hash
	})

	return mergedRecords
}

func repositoryDisplayName(rootPath string, repositoryPath string) string {
	relativePath, relativeError := filepath.Rel(rootPath, repositoryPath)
	if relativeError != nil {
		return repositoryPath
	}
	if relativePath == currentDirectoryDisplayNameConstant {
		return filepath.Base(repositoryPath)
	}
	return relativePath
}
