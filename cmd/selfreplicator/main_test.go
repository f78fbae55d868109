package main

import (
	"testing"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/selfreplicator/internal/domain/entities"
)

// recordingController counts runs and sees the log level each run starts with.
type recordingController struct {
	runs  int
	level logger.Level
}

func (c *recordingController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{Use: "replicate"}
}

func (c *recordingController) Execute(_ *cobra.Command, _ []string) error {
	c.runs++
	c.level = logger.GetLevel()
	return nil
}

func (c *recordingController) AddFlags(_ *cobra.Command) {}

//nolint:paralleltest // changes the global log level
func TestBuildRootCommand(t *testing.T) {
	t.Run("should switch to debug logging before the controller runs with --verbose", func(t *testing.T) {
		// given
		previous := logger.GetLevel()
		t.Cleanup(func() { logger.SetLevel(previous) })
		logger.SetLevel(logger.InfoLevel)
		controller := &recordingController{}
		root := buildRootCommand(controller)
		root.SetArgs([]string{"--verbose"})

		// when
		err := root.Execute()

		// then
		require.NoError(t, err)
		assert.Equal(t, 1, controller.runs)
		assert.Equal(t, logger.DebugLevel, controller.level)
	})

	t.Run("should keep the log level without --verbose", func(t *testing.T) {
		// given
		previous := logger.GetLevel()
		t.Cleanup(func() { logger.SetLevel(previous) })
		logger.SetLevel(logger.InfoLevel)
		controller := &recordingController{}
		root := buildRootCommand(controller)
		root.SetArgs([]string{})

		// when
		err := root.Execute()

		// then
		require.NoError(t, err)
		assert.Equal(t, logger.InfoLevel, controller.level)
	})
}
