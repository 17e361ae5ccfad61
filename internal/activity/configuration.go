package activity

const (
	defaultDepthConstant = 3
	defaultDaysConstant  = 7
	defaultLimitConstant = 50

	configurationRootKeyConstant          = "root"
	configurationDepthKeyConstant         = "depth"
	configurationDaysKeyConstant          = "days"
	configurationLimitKeyConstant         = "limit"
	configurationRemoteKeyConstant        = "remote"
	configurationAllAuthorsKeyConstant    = "all_authors"
	configurationIncludeMergesKeyConstant = "include_merges"
	configurationKeySeparatorConstant     = "."
)

// CommandConfiguration captures persisted settings for the activity command.
// Flags override configuration values only when explicitly changed.
type CommandConfiguration struct {
	Root          string `mapstructure:"root"`
	Depth         int    `mapstructure:"depth"`
	Days          int    `mapstructure:"days"`
	Limit         int    `mapstructure:"limit"`
	Remote        bool   `mapstructure:"remote"`
	AllAuthors    bool   `mapstructure:"all_authors"`
	IncludeMerges bool   `mapstructure:"include_merges"`
}

// DefaultConfigurationValues returns the command defaults keyed beneath configurationPrefix.
func DefaultConfigurationValues(configurationPrefix string) map[string]any {
	return map[string]any{
		configurationPrefix + configurationKeySeparatorConstant + configurationDepthKeyConstant:         defaultDepthConstant,
		configurationPrefix + configurationKeySeparatorConstant + configurationDaysKeyConstant:          defaultDaysConstant,
		configurationPrefix + configurationKeySeparatorConstant + configurationLimitKeyConstant:         defaultLimitConstant,
		configurationPrefix + configurationKeySeparatorConstant + configurationRemoteKeyConstant:        false,
		configurationPrefix + configurationKeySeparatorConstant + configurationAllAuthorsKeyConstant:    false,
		configurationPrefix + configurationKeySeparatorConstant + configurationIncludeMergesKeyConstant: false,
	}
}
