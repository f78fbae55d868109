package controllers

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/selfreplicator/internal/domain/commands"
	"github.com/rios0rios0/selfreplicator/internal/domain/entities"
)

// ListController handles the "list" subcommand.
type ListController struct {
	command commands.List
}

// NewListController creates a new ListController.
func NewListController(command commands.List) *ListController {
	return &ListController{command: command}
}

// GetBind returns the Cobra command metadata for the list controller.
func (it *ListController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "list",
		Short: "List the files a run would upload",
		Long: `Read every file of the configured set from the source location and print
its size. Nothing is sent to the hosting provider.`,
	}
}

// Execute prints the listing to the command's output.
func (it *ListController) Execute(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		logger.Errorf("failed to load config: %v", err)
		return reported(err)
	}

	listing, err := it.command.Execute(context.Background(), settings)
	if err != nil {
		logger.Errorf("List failed: %v", err)
		return reported(err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Source: %s\n", listing.Location)
	for _, file := range listing.Files {
		fmt.Fprintf(out, "  %s (%d bytes)\n", file.Path, len(file.Content))
	}
	for _, failure := range listing.Failures {
		logger.Errorf("failed to read file %s: %v", failure.Path, failure.Err)
	}

	if len(listing.Failures) > 0 {
		return fmt.Errorf("%d of %d files could not be read",
			len(listing.Failures), len(settings.Sources.Files))
	}
	return nil
}

// AddFlags has no list-specific flags to add.
func (it *ListController) AddFlags(_ *cobra.Command) {}
