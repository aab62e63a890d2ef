package controller

import (
	"context"
	"fmt"

	"github.com/shuffll/cli/constants"
	"github.com/shuffll/cli/entity"
	"github.com/shuffll/cli/logger"
	"github.com/shuffll/cli/ui"
	"github.com/sirupsen/logrus"
)

// ReportPanic logs a recovered panic with its stack and points the user at
// the issue tracker.
func (c *Controller) ReportPanic(ctx context.Context, req *entity.PanicRequest) {
	ui.StopSpinner("")
	logger.LogErr.WithFields(logrus.Fields{
		"command": req.Command,
		"args":    fmt.Sprint(req.Args),
	}).Error(req.PanicError)
	logger.LogErr.Debug(req.Stacktrace)
	fmt.Printf("🚨 %s\nRun with %s and report the output at %s\n",
		ui.RedText("Something went wrong."), ui.Bold("--verbose"), constants.IssuesURL)
}
