package cmd

import (
	"context"
	"fmt"

	"github.com/shuffll/cli/entity"
	"github.com/shuffll/cli/errors"
	"github.com/shuffll/cli/node"
	"github.com/shuffll/cli/ui"
)

// Options prints the choices one option resolver offers for the given
// selections.
func (h *Handler) Options(ctx context.Context, req *entity.CommandRequest) error {
	method := req.Args[0]
	paramArgs, err := req.Cmd.Flags().GetStringArray("param")
	if err != nil {
		return err
	}
	asJSON, err := req.Cmd.Flags().GetBool("json")
	if err != nil {
		return err
	}

	current, err := collectParams("", paramArgs)
	if err != nil {
		return err
	}

	options, err := h.ctrl.LoadOptions(ctx, method, current)
	if err != nil {
		return err
	}
	if len(options) == 0 {
		for _, dep := range dependsOn(method) {
			if !hasValue(current, dep) {
				return errors.MissingParameter(dep)
			}
		}
	}

	if asJSON {
		return printJSON(options)
	}

	if len(options) == 0 {
		fmt.Println(ui.YellowText("No options"))
		return nil
	}
	lines := make([]string, 0, len(options))
	for _, o := range options {
		if o.Name == o.Value {
			lines = append(lines, o.Name)
			continue
		}
		lines = append(lines, fmt.Sprintf("%s %s", o.Name, ui.GrayText(o.Value)))
	}
	fmt.Print(ui.OrderedList(lines))
	return nil
}

// dependsOn returns the selections a resolver needs, as declared by the
// fields that use it.
func dependsOn(method string) []string {
	for _, a := range node.Actions() {
		fields, _ := node.Fields(a)
		for _, f := range fields {
			if f.LoadOptionsMethod == method {
				return f.LoadOptionsDependsOn
			}
		}
	}
	return nil
}
