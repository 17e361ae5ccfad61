package activity

import "time"

// WarningCategory classifies non-fatal degradations of a scan.
type WarningCategory string

// Warning categories surfaced alongside results.
const (
	WarningCategoryRepositoryAccess WarningCategory = "repository_access"
	WarningCategoryFetch            WarningCategory = "fetch"
	WarningCategoryDirectoryRead    WarningCategory = "directory_read"
)

// Warning describes a non-fatal problem encountered during a scan. Warnings
// reduce completeness of the aggregate without changing the exit code.
type Warning struct {
	Category WarningCategory
	Path     string
	Detail   string
}

// CommitRecord is one qualifying commit in the aggregated feed. Records are
// immutable once produced; their ordering key is timestamp descending with
// repository name and hash as deterministic tie-breakers.
type CommitRecord struct {
	Timestamp  time.Time
	Repository string
	Hash       string
	Insertions int
	Deletions  int
	Subject    string
	IsMerge    bool
}

// AggregateResult is the merged, capped, globally time-ordered view across
// all scanned repositories. Totals cover exactly the shown records, not the
// full matched set.
type AggregateResult struct {
	Records         []CommitRecord
	TotalInsertions int
	TotalDeletions  int
	Warnings        []Warning
}

// CommandOptions carries the fully resolved scan parameters.
type CommandOptions struct {
	RootPath      string
	Depth         int
	Window        WindowSelection
	Limit         int
	FetchRemotes  bool
	AllAuthors    bool
	IncludeMerges bool
	RawOutput     bool
}

// Clock abstracts time acquisition for deterministic testing.
type Clock interface {
	Now() time.Time
}

// SystemClock implements Clock using the system time source.
type SystemClock struct{}

// Now returns the current system time.
func (SystemClock) Now() time.Time {
	return time.Now()
}
