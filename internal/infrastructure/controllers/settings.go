package controllers

import (
	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/selfreplicator/internal/domain/entities"
)

// loadSettings reads the config file named by --config, or the first one found in
// the default locations, and applies the command-line overrides on top of it.
// Without any config file the built-in defaults are used.
func loadSettings(cmd *cobra.Command) (*entities.Settings, error) {
	configPath, _ := cmd.Flags().GetString("config")

	var settings *entities.Settings
	if configPath == "" {
		found, err := entities.FindConfigFile()
		if err != nil {
			logger.Debugf("No config file found, using defaults: %v", err)
			settings = entities.DefaultSettings()
		} else {
			configPath = found
		}
	}

	if settings == nil {
		logger.Infof("Using config file: %s", configPath)

		loaded, err := entities.NewSettings(configPath)
		if err != nil {
			return nil, err
		}
		settings = loaded
	}

	if source, _ := cmd.Flags().GetString("source"); source != "" {
		settings.Sources.Location = source
	}
	if apiURL, _ := cmd.Flags().GetString("api-url"); apiURL != "" {
		settings.APIURL = apiURL
	}

	return settings, settings.Validate()
}
