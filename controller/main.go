package controller

import (
	"github.com/google/go-github/github"
	"github.com/shuffll/cli/configs"
	"github.com/shuffll/cli/gateway"
	"github.com/shuffll/cli/logger"
)

type Controller struct {
	gtwy *gateway.Gateway
	cfg  *configs.Configs
	ghc  *github.Client
}

func New() *Controller {
	cfg := configs.New()
	return &Controller{
		gtwy: gateway.New(cfg, gateway.WithLogger(logger.LogErr)),
		cfg:  cfg,
		ghc:  github.NewClient(nil),
	}
}
