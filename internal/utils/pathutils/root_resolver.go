// Package pathutils normalizes filesystem path inputs for the workfeed CLI,
// expanding home directory shortcuts and validating scan roots.
package pathutils

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	emptyRootPathMessageConstant         = "scan root path is required"
	rootPathAccessErrorTemplateConstant  = "cannot access %q: %w"
	rootPathNotDirectoryTemplateConstant = "scan root %q is not a directory"
	rootPathResolutionTemplateConstant   = "cannot resolve %q: %w"
	rootPathCanonicalizeTemplateConstant = "cannot canonicalize %q: %w"
)

// RootPathResolver validates and canonicalizes the directory a scan starts from.
type RootPathResolver struct {
	homeExpander *HomeExpander
}

// NewRootPathResolver constructs a RootPathResolver with default home expansion.
func NewRootPathResolver() *RootPathResolver {
	return &RootPathResolver{homeExpander: NewHomeExpander()}
}

// NewRootPathResolverWithExpander constructs a RootPathResolver using the provided expander.
func NewRootPathResolverWithExpander(homeExpander *HomeExpander) *RootPathResolver {
	resolvedExpander := homeExpander
	if resolvedExpander == nil {
		resolvedExpander = NewHomeExpander()
	}
	return &RootPathResolver{homeExpander: resolvedExpander}
}

// ResolveDirectory expands, absolutizes, and verifies the candidate scan root.
// It fails when the path does not exist or is not a directory.
func (resolver *RootPathResolver) ResolveDirectory(candidatePath string) (string, error) {
	trimmedCandidate := strings.TrimSpace(candidatePath)
	if len(trimmedCandidate) == 0 {
		return "", errors.New(emptyRootPathMessageConstant)
	}

	expandedPath := resolver.homeExpander.Expand(trimmedCandidate)

	absolutePath, absoluteError := filepath.Abs(expandedPath)
	if absoluteError != nil {
		return "", fmt.Errorf(rootPathResolutionTemplateConstant, candidatePath, absoluteError)
	}

	canonicalPath, canonicalError := filepath.EvalSymlinks(absolutePath)
	if canonicalError != nil {
		return "", fmt.Errorf(rootPathCanonicalizeTemplateConstant, candidatePath, canonicalError)
	}

	pathInformation, statError := os.Stat(canonicalPath)
	if statError != nil {
		return "", fmt.Errorf(rootPathAccessErrorTemplateConstant, candidatePath, statError)
	}
	if !pathInformation.IsDir() {
		return "", fmt.Errorf(rootPathNotDirectoryTemplateConstant, candidatePath)
	}

	return canonicalPath, nil
}
