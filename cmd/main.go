package cmd

import (
	"github.com/shuffll/cli/configs"
	"github.com/shuffll/cli/controller"
)

type Handler struct {
	ctrl *controller.Controller
	cfg  *configs.Configs
}

func New() *Handler {
	return &Handler{
		ctrl: controller.New(),
		cfg:  configs.New(),
	}
}
