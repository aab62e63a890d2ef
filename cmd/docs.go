package cmd

import (
	"context"

	"github.com/shuffll/cli/constants"
	"github.com/shuffll/cli/entity"
)

func (h *Handler) Docs(ctx context.Context, req *entity.CommandRequest) error {
	return h.ctrl.ConfirmBrowserOpen("Opening Shuffll Docs...", constants.ShuffllDocsURL)
}
