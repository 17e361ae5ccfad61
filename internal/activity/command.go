package activity

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/workfeed/internal/discovery"
	"github.com/temirov/workfeed/internal/gitrepo"
	"github.com/temirov/workfeed/internal/utils/pathutils"
)

// LoggerProvider supplies a zap logger for command execution.
type LoggerProvider func() *zap.Logger

// ConfigurationProvider supplies the persisted command configuration.
type ConfigurationProvider func() CommandConfiguration

// CommandBuilder assembles the activity feed cobra command with configurable
// dependencies. Zero-value fields fall back to the production implementations.
type CommandBuilder struct {
	LoggerProvider        LoggerProvider
	ConfigurationProvider ConfigurationProvider
	Discoverer            RepositoryDiscoverer
	IdentityResolver      IdentityResolver
	Collector             CommitCollector
	Clock                 Clock
	RootPathResolver      *pathutils.RootPathResolver
}

// Build constructs the cobra command for the cross-repository activity feed.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   commandUseConstant,
		Short: commandShortConstant,
		Long:  commandLongConstant,
		Args:  cobra.MaximumNArgs(1),
		RunE:  builder.run,
	}

	command.Flags().IntP(flagDepthName, flagDepthShorthand, defaultDepthConstant, flagDepthDescription)
	command.Flags().Int(flagDaysName, defaultDaysConstant, flagDaysDescription)
	command.Flags().Bool(flagTodayName, false, flagTodayDescription)
	command.Flags().Bool(flagMonthName, false, flagMonthDescription)
	command.Flags().Bool(flagLastMonthName, false, flagLastMonthDesc)
	command.Flags().IntP(flagLimitName, flagLimitShorthand, defaultLimitConstant, flagLimitDescription)
	command.Flags().Bool(flagRemoteName, false, flagRemoteDescription)
	command.Flags().Bool(flagAllName, false, flagAllDescription)
	command.Flags().Bool(flagMergesName, false, flagMergesDescription)
	command.Flags().BoolP(flagRawName, flagRawShorthand, false, flagRawDescription)

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	options, optionsError := builder.parseOptions(command, arguments)
	if optionsError != nil {
		return optionsError
	}

	logger := builder.resolveLogger()
	service := NewService(
		builder.resolveDiscoverer(),
		builder.resolveIdentityResolver(),
		builder.resolveCollector(logger),
		logger,
		builder.Clock,
	)

	result, window, runError := service.Run(command.Context(), options)
	if runError != nil {
		return runError
	}

	renderer := NewRenderer(command.OutOrStdout(), command.ErrOrStderr())
	if options.RawOutput {
		if renderError := renderer.RenderRaw(result); renderError != nil {
			return renderError
		}
	} else {
		if renderError := renderer.RenderTable(result, window); renderError != nil {
			return renderError
		}
	}

	// Warnings trail the result and never change the exit code.
	renderer.RenderWarnings(result.Warnings)

	return nil
}

func (builder *CommandBuilder) parseOptions(command *cobra.Command, arguments []string) (CommandOptions, error) {
	configuration := builder.resolveConfiguration()

	rootCandidate := configuration.Root
	if len(arguments) > 0 {
		rootCandidate = arguments[0]
	}

	rootPath, rootError := builder.resolveRootPathResolver().ResolveDirectory(rootCandidate)
	if rootError != nil {
		return CommandOptions{}, rootError
	}

	depthValue := configuration.Depth
	if command.Flags().Changed(flagDepthName) {
		depthValue, _ = command.Flags().GetInt(flagDepthName)
	}

	daysValue := configuration.Days
	if command.Flags().Changed(flagDaysName) {
		daysValue, _ = command.Flags().GetInt(flagDaysName)
	}

	limitValue := configuration.Limit
	if command.Flags().Changed(flagLimitName) {
		limitValue, _ = command.Flags().GetInt(flagLimitName)
	}

	todayFlag, _ := command.Flags().GetBool(flagTodayName)
	monthFlag, _ := command.Flags().GetBool(flagMonthName)
	lastMonthFlag, _ := command.Flags().GetBool(flagLastMonthName)
	rawFlag, _ := command.Flags().GetBool(flagRawName)

	options := CommandOptions{
		RootPath: rootPath,
		Depth:    depthValue,
		Window: WindowSelection{
			Days:      daysValue,
			Today:     todayFlag,
			Month:     monthFlag,
			LastMonth: lastMonthFlag,
		},
		Limit:         limitValue,
		FetchRemotes:  builder.resolveToggle(command, flagRemoteName, configuration.Remote),
		AllAuthors:    builder.resolveToggle(command, flagAllName, configuration.AllAuthors),
		IncludeMerges: builder.resolveToggle(command, flagMergesName, configuration.IncludeMerges),
		RawOutput:     rawFlag,
	}

	return options, nil
}

func (builder *CommandBuilder) resolveToggle(command *cobra.Command, flagName string, configuredValue bool) bool {
	if command.Flags().Changed(flagName) {
		flagValue, _ := command.Flags().GetBool(flagName)
		return flagValue
	}
	return configuredValue
}

func (builder *CommandBuilder) resolveConfiguration() CommandConfiguration {
	if builder.ConfigurationProvider == nil {
		return CommandConfiguration{Depth: defaultDepthConstant, Days: defaultDaysConstant, Limit: defaultLimitConstant}
	}
	return builder.ConfigurationProvider()
}

func (builder *CommandBuilder) resolveLogger() *zap.Logger {
	if builder.LoggerProvider == nil {
		return zap.NewNop()
	}
	logger := builder.LoggerProvider()
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

func (builder *CommandBuilder) resolveDiscoverer() RepositoryDiscoverer {
	if builder.Discoverer != nil {
		return builder.Discoverer
	}
	return discovery.NewFilesystemRepositoryDiscoverer()
}

func (builder *CommandBuilder) resolveIdentityResolver() IdentityResolver {
	if builder.IdentityResolver != nil {
		return builder.IdentityResolver
	}
	return gitrepo.NewConfiguredIdentityResolver()
}

func (builder *CommandBuilder) resolveCollector(logger *zap.Logger) CommitCollector {
	if builder.Collector != nil {
		return builder.Collector
	}
	return NewRepositoryCommitCollector(logger)
}

func (builder *CommandBuilder) resolveRootPathResolver() *pathutils.RootPathResolver {
	if builder.RootPathResolver != nil {
		return builder.RootPathResolver
	}
	return pathutils.NewRootPathResolver()
}
