package cmd

import (
	"context"

	"github.com/shuffll/cli/constants"
	"github.com/shuffll/cli/entity"
	"github.com/shuffll/cli/logger"
	"github.com/shuffll/cli/ui"
)

func (h *Handler) Version(ctx context.Context, req *entity.CommandRequest) error {
	logger.LogOut.Infof("shuffll version %s", constants.Version)
	if constants.Version == "source" {
		return nil
	}

	latest, err := h.ctrl.GetLatestVersion(ctx)
	if err != nil {
		logger.LogErr.WithError(err).Debug("latest release lookup failed")
		return nil
	}
	if latest != "" && latest != constants.Version && latest != "v"+constants.Version {
		logger.LogOut.Infof("A newer version of the Shuffll CLI is available, please update to: %s", ui.GreenText(latest))
	}
	return nil
}
