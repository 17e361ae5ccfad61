package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	gitlib "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-viper/mapstructure/v2"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/temirov/workfeed/cmd/cli"
	"github.com/temirov/workfeed/internal/activity"
	"github.com/temirov/workfeed/internal/utils"
)

func nestDottedKeys(flatValues map[string]any) map[string]any {
	nestedValues := map[string]any{}
	for flatKey, value := range flatValues {
		keySegments := strings.Split(flatKey, ".")
		currentLevel := nestedValues
		for segmentIndex, keySegment := range keySegments {
			if segmentIndex == len(keySegments)-1 {
				currentLevel[keySegment] = value
				continue
			}
			childLevel, childExists := currentLevel[keySegment].(map[string]any)
			if !childExists {
				childLevel = map[string]any{}
				currentLevel[keySegment] = childLevel
			}
			currentLevel = childLevel
		}
	}
	return nestedValues
}

func TestDefaultConfigurationValuesDecodeIntoApplicationConfiguration(testInstance *testing.T) {
	defaultValues := map[string]any{
		"common.log_level":  string(utils.LogLevelInfo),
		"common.log_format": string(utils.LogFormatStructured),
	}
	for configurationKey, configurationValue := range activity.DefaultConfigurationValues("activity") {
		defaultValues[configurationKey] = configurationValue
	}

	var decodedConfiguration cli.ApplicationConfiguration
	decoder, decoderError := mapstructure.NewDecoder(&mapstructure.DecoderConfig{Result: &decodedConfiguration})
	require.NoError(testInstance, decoderError)
	require.NoError(testInstance, decoder.Decode(nestDottedKeys(defaultValues)))

	require.Equal(testInstance, string(utils.LogLevelInfo), decodedConfiguration.Common.LogLevel)
	require.Equal(testInstance, string(utils.LogFormatStructured), decodedConfiguration.Common.LogFormat)
	require.Equal(testInstance, 3, decodedConfiguration.Activity.Depth)
	require.Equal(testInstance, 7, decodedConfiguration.Activity.Days)
	require.Equal(testInstance, 50, decodedConfiguration.Activity.Limit)
	require.False(testInstance, decodedConfiguration.Activity.Remote)
	require.False(testInstance, decodedConfiguration.Activity.AllAuthors)
	require.False(testInstance, decodedConfiguration.Activity.IncludeMerges)
}

func writeApplicationTestCommit(testInstance *testing.T, repositoryPath string, subject string, when time.Time) {
	testInstance.Helper()

	repository, initError := gitlib.PlainInit(repositoryPath, false)
	require.NoError(testInstance, initError)

	worktree, worktreeError := repository.Worktree()
	require.NoError(testInstance, worktreeError)

	require.NoError(testInstance, os.WriteFile(filepath.Join(repositoryPath, "notes.txt"), []byte("notes\n"), 0o644))
	_, addError := worktree.Add("notes.txt")
	require.NoError(testInstance, addError)

	signature := &object.Signature{Name: "Application Tester", Email: "tester@example.com", When: when}
	_, commitError := worktree.Commit(subject, &gitlib.CommitOptions{Author: signature, Committer: signature})
	require.NoError(testInstance, commitError)
}

func writeApplicationTestConfiguration(testInstance *testing.T, configurationValues map[string]any) string {
	testInstance.Helper()

	encodedConfiguration, marshalError := yaml.Marshal(configurationValues)
	require.NoError(testInstance, marshalError)

	configurationPath := filepath.Join(testInstance.TempDir(), "config.yaml")
	require.NoError(testInstance, os.WriteFile(configurationPath, encodedConfiguration, 0o644))
	return configurationPath
}

func TestApplicationRendersRawFeedFromFixtureRepository(testInstance *testing.T) {
	rootPath := testInstance.TempDir()
	repositoryPath := filepath.Join(rootPath, "alpha")
	require.NoError(testInstance, os.MkdirAll(repositoryPath, 0o755))
	writeApplicationTestCommit(testInstance, repositoryPath, "introduce alpha feature", time.Now().Add(-time.Hour))

	configurationPath := writeApplicationTestConfiguration(testInstance, map[string]any{
		"common": map[string]any{
			"log_level":  "error",
			"log_format": "console",
		},
		"activity": map[string]any{
			"days": 30,
		},
	})

	application, constructionError := cli.NewApplication()
	require.NoError(testInstance, constructionError)

	var outputBuffer bytes.Buffer
	var errorBuffer bytes.Buffer
	rootCommand := application.RootCommand()
	rootCommand.SetOut(&outputBuffer)
	rootCommand.SetErr(&errorBuffer)
	rootCommand.SetArgs([]string{rootPath, "--all", "--raw", "--config", configurationPath})

	require.NoError(testInstance, application.Execute())

	outputLines := strings.Split(strings.TrimRight(outputBuffer.String(), "\n"), "\n")
	require.Len(testInstance, outputLines, 1)

	recordFields := strings.Split(outputLines[0], "\t")
	require.Len(testInstance, recordFields, 6)
	require.Equal(testInstance, "alpha", recordFields[1])
	require.Len(testInstance, recordFields[2], 7)
	require.Equal(testInstance, "introduce alpha feature", recordFields[5])
}

func TestApplicationReportsMissingRepositories(testInstance *testing.T) {
	emptyRootPath := testInstance.TempDir()

	application, constructionError := cli.NewApplication()
	require.NoError(testInstance, constructionError)

	rootCommand := application.RootCommand()
	rootCommand.SetOut(&bytes.Buffer{})
	rootCommand.SetErr(&bytes.Buffer{})
	rootCommand.SetArgs([]string{emptyRootPath, "--raw"})

	executionError := application.Execute()
	require.Error(testInstance, executionError)
	require.Contains(testInstance, executionError.Error(), "no git repositories found")
}
