package cmd

import (
	"context"

	"github.com/shuffll/cli/entity"
)

func (h *Handler) Panic(ctx context.Context, req *entity.PanicRequest) error {
	h.ctrl.ReportPanic(ctx, req)
	// surpress errors
	return nil
}
