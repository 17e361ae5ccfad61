package activity

// Command metadata, flag definitions, and user-facing message templates.
const (
	commandUseConstant   = "workfeed <path>"
	commandShortConstant = "Show your recent commits across many git repositories"
	commandLongConstant  = "workfeed scans a directory tree for git repositories and prints a unified,\ntime-ordered feed of recent commits for your author identity (or all authors)."

	flagDepthName         = "depth"
	flagDepthShorthand    = "L"
	flagDepthDescription  = "Max directory depth to search for repositories"
	flagDaysName          = "days"
	flagDaysDescription   = "How many days back to look"
	flagTodayName         = "today"
	flagTodayDescription  = "Only commits since local midnight"
	flagMonthName         = "month"
	flagMonthDescription  = "Only commits since the start of the current month"
	flagLastMonthName     = "last-month"
	flagLastMonthDesc     = "Only commits since the start of the previous month"
	flagLimitName         = "limit"
	flagLimitShorthand    = "l"
	flagLimitDescription  = "Max number of commits to print across all repositories"
	flagRemoteName        = "remote"
	flagRemoteDescription = "Fetch from remotes before scanning (slower)"
	flagAllName           = "all"
	flagAllDescription    = "Do not filter to your author identity"
	flagMergesName        = "merges"
	flagMergesDescription = "Include merge commits"
	flagRawName           = "raw"
	flagRawShorthand      = "r"
	flagRawDescription    = "Raw tab-separated output for piping"

	noRepositoriesTemplateConstant       = "no git repositories found in %s"
	noCommitsTemplateConstant            = "no commits found in %s"
	noCommitsForIdentityTemplateConstant = "no commits found for your identity in %s (try --all)"

	repositoriesDiscoveredMessageConstant = "repositories discovered"
	repositoryScannedMessageConstant      = "repository scanned"
	repositoryOpenFailedMessageConstant   = "repository open failed"
	historyWalkFailedMessageConstant      = "history walk failed"
	fetchFailedMessageConstant            = "remote fetch failed"

	logFieldRootConstant            = "root"
	logFieldRepositoryConstant      = "repository"
	logFieldRepositoryCountConstant = "repository_count"
	logFieldCommitCountConstant     = "commit_count"
)
