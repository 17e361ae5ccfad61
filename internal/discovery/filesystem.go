package discovery

import (
	"os"
	"path/filepath"
	"sort"
)

const gitMetadataEntryNameConstant = ".git"

// Warning records a directory subtree skipped because it could not be read.
type Warning struct {
	Path   string
	Detail string
}

// FilesystemRepositoryDiscoverer locates git repositories on disk.
//
// A directory counts as a repository root when it directly contains a .git
// entry, whether that entry is a directory or a gitlink file written by
// worktrees and submodules. Symbolic links are not followed; cycle safety
// comes from the depth bound alone.
type FilesystemRepositoryDiscoverer struct{}

// NewFilesystemRepositoryDiscoverer constructs a depth-bounded repository discoverer.
func NewFilesystemRepositoryDiscoverer() *FilesystemRepositoryDiscoverer {
	return &FilesystemRepositoryDiscoverer{}
}

// DiscoverRepositories walks rootPath up to maximumDepth directory levels and
// returns the repository roots found, sorted lexicographically. Depth zero
// examines only the root itself. Unreadable directories are reported as
// warnings and their subtrees skipped.
func (discoverer *FilesystemRepositoryDiscoverer) DiscoverRepositories(rootPath string, maximumDepth int) ([]string, []Warning) {
	var repositories []string
	var warnings []Warning

	discoverer.collectRepositories(rootPath, maximumDepth, 0, &repositories, &warnings)

	sort.Strings(repositories)
	return repositories, warnings
}

func (discoverer *FilesystemRepositoryDiscoverer) collectRepositories(directoryPath string, maximumDepth int, currentDepth int, repositories *[]string, warnings *[]Warning) {
	if currentDepth > maximumDepth {
		return
	}

	if containsGitMetadata(directoryPath) {
		*repositories = append(*repositories, directoryPath)
		// A repository is not searched for nested repositories of its own.
		return
	}

	directoryEntries, readError := os.ReadDir(directoryPath)
	if readError != nil {
		*warnings = append(*warnings, Warning{Path: directoryPath, Detail: readError.Error()})
		return
	}

	for _, directoryEntry := range directoryEntries {
		if !directoryEntry.IsDir() {
			continue
		}
		discoverer.collectRepositories(filepath.Join(directoryPath, directoryEntry.Name()), maximumDepth, currentDepth+1, repositories, warnings)
	}
}

func containsGitMetadata(directoryPath string) bool {
	_, statError := os.Lstat(filepath.Join(directoryPath, gitMetadataEntryNameConstant))
	return statError == nil
}
