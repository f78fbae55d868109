package main

import (
	"os"

	"github.com/joho/godotenv"
	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/selfreplicator/internal"
	"github.com/rios0rios0/selfreplicator/internal/domain/entities"
	"github.com/rios0rios0/selfreplicator/internal/infrastructure/controllers"
)

func buildRootCommand(rootController entities.Controller) *cobra.Command {
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{
		Use:   "selfreplicator",
		Short: "Replicate a static site into a new GitHub repository",
		Long: `Create a new public GitHub repository with a personal access token,
upload a fixed set of site files into it and enable GitHub Pages,
then print the URL of the published site.

Usage modes:
  selfreplicator --token <token>   Run a full replication
  selfreplicator list              Show the files a run would upload`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(command *cobra.Command, _ []string) {
			applyVerbose(command)
		},
		RunE: func(command *cobra.Command, args []string) error {
			return rootController.Execute(command, args)
		},
	}

	// Global persistent flags
	cmd.PersistentFlags().StringP("config", "c", "",
		"Path to config file (default: auto-detect)")
	cmd.PersistentFlags().StringP("source", "s", "",
		"Directory or http(s) base URL holding the site files (default: embedded site)")
	cmd.PersistentFlags().String("api-url", "",
		"GitHub API base URL, for GitHub Enterprise (default: https://api.github.com/)")
	cmd.PersistentFlags().BoolP("verbose", "v", false,
		"Enable verbose output")

	rootController.AddFlags(cmd)
	return cmd
}

// applyVerbose switches to debug logging when --verbose is set.
func applyVerbose(cmd *cobra.Command) {
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		logger.SetLevel(logger.DebugLevel)
	}
}

func addSubcommands(rootCmd *cobra.Command, appContext *internal.AppInternal) {
	for _, controller := range appContext.GetControllers() {
		bind := controller.GetBind()
		ctrl := controller // capture for closure
		//nolint:exhaustruct // Minimal Command initialization with required fields only
		subCmd := &cobra.Command{
			Use:   bind.Use,
			Short: bind.Short,
			Long:  bind.Long,
			Args:  cobra.NoArgs,
			RunE: func(command *cobra.Command, arguments []string) error {
				return ctrl.Execute(command, arguments)
			},
		}

		// Add controller-specific flags
		ctrl.AddFlags(subCmd)

		rootCmd.AddCommand(subCmd)
	}
}

func main() {
	//nolint:exhaustruct // Minimal TextFormatter initialization with required fields only
	logger.SetFormatter(&logger.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})

	// A missing .env file is fine, the token can come from anywhere else
	_ = godotenv.Load()

	if os.Getenv("DEBUG") == "true" {
		logger.SetLevel(logger.DebugLevel)
	}

	// Inject controllers via DIG
	appContext := injectAppContext()
	cobraRoot := buildRootCommand(appContext.GetRootController())

	// Add all subcommands
	addSubcommands(cobraRoot, appContext)

	if err := cobraRoot.Execute(); err != nil {
		if !controllers.IsReported(err) {
			logger.Errorf("Error executing 'selfreplicator': %s", err)
		}
		os.Exit(1)
	}
}
