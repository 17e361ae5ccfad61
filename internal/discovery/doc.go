// Package discovery locates git repository roots beneath a scan root. The
// traversal is depth bounded, never descends into a discovered repository,
// and records unreadable directories as warnings instead of failing the scan.
package discovery
