package internal

import (
	"github.com/rios0rios0/selfreplicator/internal/domain/entities"
	"github.com/rios0rios0/selfreplicator/internal/infrastructure/controllers"
)

// AppInternal holds what the CLI needs from the container.
type AppInternal struct {
	controllers *[]entities.Controller
	replicate   *controllers.ReplicateController
}

// NewAppInternal creates the AppInternal from the registered controllers.
func NewAppInternal(
	all *[]entities.Controller,
	replicate *controllers.ReplicateController,
) *AppInternal {
	return &AppInternal{
		controllers: all,
		replicate:   replicate,
	}
}

// GetControllers returns every controller exposed as a subcommand.
func (it *AppInternal) GetControllers() []entities.Controller {
	return *it.controllers
}

// GetRootController returns the controller run by the bare root command.
func (it *AppInternal) GetRootController() entities.Controller {
	return it.replicate
}
