package controller

import (
	"context"

	"github.com/shuffll/cli/entity"
	"github.com/shuffll/cli/gateway"
	"github.com/shuffll/cli/logger"
	"github.com/shuffll/cli/node"
	"github.com/shuffll/cli/ui"
	"github.com/shuffll/cli/uuid"
	"github.com/sirupsen/logrus"
)

// Run executes one action over the request's input records.
func (c *Controller) Run(ctx context.Context, req *entity.RunRequest) ([]entity.Item, error) {
	if _, err := c.cfg.APIKey(); err != nil {
		return nil, err
	}

	params := make(map[string]interface{}, len(req.Params)+2)
	for k, v := range req.Params {
		params[k] = v
	}
	if req.Resource != "" {
		params["resource"] = req.Resource
	}
	if req.Operation != "" {
		params["operation"] = req.Operation
	}

	items := req.Items
	if len(items) == 0 {
		items = []entity.Item{{JSON: entity.Record{}}}
	}

	log := logger.LogErr.WithFields(logrus.Fields{
		"run": uuid.NewRunID(),
	})
	log.WithField("items", len(items)).Debug("run started")

	ui.StartSpinner(&ui.SpinnerCfg{
		Message: "Talking to Shuffll...",
	})
	out, err := node.New(c.gtwy, log).Execute(ctx, &node.StaticHost{
		Items:             items,
		Params:            params,
		ContinueOnFailure: req.ContinueOnFail,
	})
	ui.StopSpinner("")

	if gateway.IsUnauthorized(err) {
		return nil, rejected(err)
	}
	if err != nil {
		return nil, err
	}
	log.WithField("records", len(out)).Debug("run finished")
	return out, nil
}

// LoadOptions runs one option resolver with the selections made so far.
func (c *Controller) LoadOptions(ctx context.Context, method string, current map[string]interface{}) ([]entity.Option, error) {
	if _, err := c.cfg.APIKey(); err != nil {
		return nil, err
	}

	ui.StartSpinner(&ui.SpinnerCfg{
		Message: "Loading options...",
	})
	options, err := node.New(c.gtwy, logger.LogErr).LoadOptions(ctx, method, current)
	ui.StopSpinner("")

	if gateway.IsUnauthorized(err) {
		return nil, rejected(err)
	}
	return options, err
}
