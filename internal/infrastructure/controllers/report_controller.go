package controllers

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/podreport/internal/domain/commands"
	"github.com/rios0rios0/podreport/internal/domain/entities"
)

// ReportController handles the root command: `podreport [path]`.
type ReportController struct {
	command  commands.Report
	platform entities.HostingPlatform
}

var _ entities.Controller = (*ReportController)(nil)

// NewReportController creates a new ReportController.
func NewReportController(command commands.Report, platform entities.HostingPlatform) *ReportController {
	return &ReportController{
		command:  command,
		platform: platform,
	}
}

// GetBind returns the Cobra command metadata for the report controller.
func (it *ReportController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "podreport [path]",
		Short: "Report outdated CocoaPods dependencies with links to their release notes",
		Long: `Runs "pod outdated" in the given project directory (default: current directory),
then looks every outdated pod up on the CocoaPods search service and, when its
source lives on GitHub, prints a link to the project's releases page.

Usage modes:
  podreport                       Report on the project in the current directory
  podreport /path/to/project      Report on a specific project
  podreport --from-file out.txt   Report on previously captured "pod outdated" output
  pod outdated | podreport --from-file -`,
	}
}

// AddFlags adds the report-specific flags to the given Cobra command.
func (it *ReportController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().String("from-file", "",
		`Read "pod outdated" output from this file instead of running pod ("-" for stdin)`)
	cmd.Flags().StringP("output", "o", string(entities.OutputText),
		fmt.Sprintf("Output format (%v)", entities.OutputFormats()))
	cmd.Flags().Int("concurrency", entities.DefaultConcurrency,
		"Number of pods looked up on the search service at the same time")
	cmd.Flags().Duration("timeout", entities.DefaultTimeout,
		"Timeout of each search service request")
	cmd.Flags().String("search-url", entities.DefaultSearchURL,
		"CocoaPods search service endpoint")
}

// Execute builds the report and prints it to the command's output. Failures
// are returned without being logged; the caller reports them once.
func (it *ReportController) Execute(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	settings, err := loadSettings(cmd)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	fromFile, _ := cmd.Flags().GetString("from-file")
	projectDir := "."
	if len(args) > 0 {
		projectDir = args[0]
	}

	updates, err := it.command.Execute(ctx, settings, commands.ReportOptions{
		ProjectDir: projectDir,
		FromFile:   fromFile,
	})
	if err != nil {
		return fmt.Errorf("report failed: %w", err)
	}

	return NewReportPrinter(cmd.OutOrStdout(), it.platform).Print(updates, settings.Output)
}

// loadSettings reads the config file (explicit or auto-detected) and applies
// the flags the user set on top of it.
func loadSettings(cmd *cobra.Command) (*entities.Settings, error) {
	settings := entities.DefaultSettings()

	cfgPath, _ := cmd.Flags().GetString("config")
	if cfgPath == "" {
		if found, findErr := entities.FindConfigFile(); findErr == nil {
			cfgPath = found
		}
	}

	if cfgPath != "" {
		logger.Infof("Using config file: %s", cfgPath)
		loaded, err := entities.NewSettings(cfgPath)
		if err != nil {
			return nil, err
		}
		settings = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("output") {
		output, _ := flags.GetString("output")
		settings.Output = entities.OutputFormat(output)
	}
	if flags.Changed("concurrency") {
		settings.Concurrency, _ = flags.GetInt("concurrency")
	}
	if flags.Changed("timeout") {
		settings.Timeout, _ = flags.GetDuration("timeout")
	}
	if flags.Changed("search-url") {
		settings.SearchURL, _ = flags.GetString("search-url")
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}
