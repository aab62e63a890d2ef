package controller

import (
	"context"

	"github.com/shuffll/cli/constants"
)

func (c *Controller) GetLatestVersion(ctx context.Context) (string, error) {
	rep, _, err := c.ghc.Repositories.GetLatestRelease(ctx, constants.RepoOwner, constants.RepoName)
	if err != nil {
		return "", err
	}
	return rep.GetTagName(), nil
}
