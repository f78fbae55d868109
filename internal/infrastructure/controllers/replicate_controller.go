package controllers

import (
	"context"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/selfreplicator/internal/domain/commands"
	"github.com/rios0rios0/selfreplicator/internal/domain/entities"
)

// ReplicateController handles the provisioning run (root command and "replicate").
type ReplicateController struct {
	command commands.Replicate
}

// NewReplicateController creates a new ReplicateController.
func NewReplicateController(command commands.Replicate) *ReplicateController {
	return &ReplicateController{command: command}
}

// GetBind returns the Cobra command metadata for the replicate controller.
func (it *ReplicateController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "replicate",
		Short: "Create the repository, upload the site and enable GitHub Pages",
		Long: `Create a public repository in the account owning the token, upload the
fixed set of site files into it one by one and turn on GitHub Pages.

The token is read from --token, the config file, GITHUB_TOKEN or GH_TOKEN,
and is asked for interactively when none of them is set.`,
	}
}

// Execute runs one provisioning run.
func (it *ReplicateController) Execute(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	token, _ := cmd.Flags().GetString("token")

	settings, err := loadSettings(cmd)
	if err != nil {
		logger.Errorf("failed to load config: %v", err)
		return reported(err)
	}

	// an aborted run was already reported by the command
	result, err := it.command.Execute(ctx, settings, commands.ReplicateOptions{Token: token})
	if err != nil {
		return reported(err)
	}

	logger.Infof(
		"Replication complete: %d files published, %d failed",
		len(result.Published), len(result.Failures),
	)
	return nil
}

// AddFlags adds the replicate-specific flags to the given Cobra command.
func (it *ReplicateController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().String("token", "", "GitHub personal access token (or set GITHUB_TOKEN)")
}
