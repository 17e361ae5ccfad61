// Package gitrepo wraps go-git with the repository primitives the activity
// feed needs: opening a repository, walking history newest first, computing
// first-parent diff statistics, resolving the configured author identity,
// and fetching from remotes with pruning.
package gitrepo
