package activity

import (
	"context"

	"github.com/temirov/workfeed/internal/discovery"
	"github.com/temirov/workfeed/internal/gitrepo"
)

// RepositoryDiscoverer finds git repository roots beneath a scan root.
type RepositoryDiscoverer interface {
	DiscoverRepositories(rootPath string, maximumDepth int) ([]string, []discovery.Warning)
}

// IdentityResolver reads the configured git author identity.
type IdentityResolver interface {
	ResolveIdentity() (gitrepo.AuthorIdentity, error)
}

// CommitCollector gathers qualifying commits from a single repository.
type CommitCollector interface {
	CollectCommits(executionContext context.Context, request CollectionRequest) ([]CommitRecord, []Warning)
}
