package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/shuffll/cli/entity"
	cliErrors "github.com/shuffll/cli/errors"
	"github.com/shuffll/cli/logger"
	"github.com/shuffll/cli/node"
	"github.com/shuffll/cli/ui"
)

// Run executes the action picked with --resource and --operation.
func (h *Handler) Run(ctx context.Context, req *entity.CommandRequest) error {
	resource, err := req.Cmd.Flags().GetString("resource")
	if err != nil {
		return err
	}
	operation, err := req.Cmd.Flags().GetString("operation")
	if err != nil {
		return err
	}
	return h.runAction(ctx, req, resource, operation)
}

// Action returns a handler bound to one resource and operation.
func (h *Handler) Action(resource, operation string) entity.HandlerFunction {
	return func(ctx context.Context, req *entity.CommandRequest) error {
		return h.runAction(ctx, req, resource, operation)
	}
}

func (h *Handler) runAction(ctx context.Context, req *entity.CommandRequest, resource, operation string) error {
	flags := req.Cmd.Flags()
	paramsFile, err := flags.GetString("params")
	if err != nil {
		return err
	}
	paramArgs, err := flags.GetStringArray("param")
	if err != nil {
		return err
	}
	inputPath, err := flags.GetString("input")
	if err != nil {
		return err
	}
	continueOnFail, err := flags.GetBool("continue-on-fail")
	if err != nil {
		return err
	}
	noPrompt, err := flags.GetBool("no-prompt")
	if err != nil {
		return err
	}
	paired, err := flags.GetBool("paired")
	if err != nil {
		return err
	}

	params, err := collectParams(paramsFile, paramArgs)
	if err != nil {
		return err
	}
	items, err := readInput(inputPath, os.Stdin)
	if err != nil {
		return err
	}

	run := &entity.RunRequest{
		Resource:       resource,
		Operation:      operation,
		Params:         params,
		Items:          items,
		ContinueOnFail: continueOnFail,
		Interactive:    !noPrompt && ui.IsInteractive(),
	}

	action, err := h.resolveAction(run)
	if err != nil {
		return err
	}
	run.Resource, run.Operation = action.Resource, action.Operation

	if run.Interactive {
		if err := h.configure(ctx, action, run.Params); err != nil {
			return err
		}
	}

	out, err := h.ctrl.Run(ctx, run)
	if err != nil {
		var itemErr *node.ItemError
		if errors.As(err, &itemErr) {
			logger.LogErr.WithField("item", itemErr.Index).Debug(itemErr.Err)
			return fmt.Errorf("%s\n%s", cliErrors.RunFailed, itemErr.Error())
		}
		return err
	}

	failed := 0
	for _, item := range out {
		if _, ok := item.JSON["error"]; ok && len(item.JSON) == 1 {
			failed++
		}
	}
	if failed > 0 {
		logger.LogErr.Warnf("%d of %d records failed", failed, len(out))
	}

	return printItems(out, paired)
}

// resolveAction settles resource and operation before any record runs.
func (h *Handler) resolveAction(run *entity.RunRequest) (node.Action, error) {
	if run.Resource == "" && !run.Interactive {
		return node.Action{}, cliErrors.ResourceNotSpecified
	}
	if run.Interactive && (run.Resource == "" || run.Operation == "") {
		action, err := promptAction(run.Resource, run.Operation)
		if err != nil {
			return node.Action{}, err
		}
		if !node.Supported(action) {
			return node.Action{}, &node.UnsupportedActionError{Action: action}
		}
		return action, nil
	}

	def, ok := node.LookupResource(run.Resource)
	if !ok {
		return node.Action{}, &node.UnsupportedActionError{Action: node.Action{Resource: run.Resource, Operation: run.Operation}}
	}
	action := node.Action{Resource: run.Resource, Operation: run.Operation}
	if action.Operation == "" {
		action.Operation = def.DefaultOperation
	}
	if !node.Supported(action) {
		return node.Action{}, &node.UnsupportedActionError{Action: action}
	}
	return action, nil
}

func printItems(items []entity.Item, paired bool) error {
	var v interface{} = items
	if !paired {
		records := make([]entity.Record, 0, len(items))
		for _, item := range items {
			records = append(records, item.JSON)
		}
		v = records
	}

	return printJSON(v)
}
