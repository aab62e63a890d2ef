package controller

import (
	"context"
	"fmt"
	"strings"

	"github.com/shuffll/cli/entity"
	"github.com/shuffll/cli/errors"
	"github.com/shuffll/cli/gateway"
	"github.com/shuffll/cli/logger"
	"github.com/shuffll/cli/node"
)

// GetUser runs the credential probe with the configured key.
func (c *Controller) GetUser(ctx context.Context) (entity.Record, error) {
	if _, err := c.cfg.APIKey(); err != nil {
		return nil, err
	}
	user, err := node.New(c.gtwy, logger.LogErr).TestCredential(ctx)
	if gateway.IsUnauthorized(err) {
		return nil, rejected(err)
	}
	return user, err
}

// Login validates apiKey against the API and stores it once accepted.
func (c *Controller) Login(ctx context.Context, apiKey string) (entity.Record, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.ApiKeyEmpty
	}

	probe := gateway.New(
		gateway.StaticKey(apiKey),
		gateway.WithBaseURL(gateway.GetHost(c.cfg)),
		gateway.WithLogger(logger.LogErr),
	)
	user, err := node.New(probe, logger.LogErr).TestCredential(ctx)
	if gateway.IsUnauthorized(err) {
		return nil, rejected(err)
	}
	if err != nil {
		return nil, err
	}

	err = c.cfg.SetUserConfigs(&entity.UserConfig{
		ApiKey: apiKey,
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Logout wipes the stored key. It reports whether there was one.
func (c *Controller) Logout(ctx context.Context) (bool, error) {
	userCfg, err := c.cfg.GetUserConfigs()
	if err != nil {
		return false, err
	}
	if userCfg.ApiKey == "" {
		return false, nil
	}
	err = c.cfg.SetUserConfigs(&entity.UserConfig{})
	if err != nil {
		return false, err
	}
	return true, nil
}

// rejected adds the login hint to an authentication failure, keeping the
// API's own message.
func rejected(err error) error {
	return fmt.Errorf("%s\n%s", errors.ApiKeyRejected, err)
}
