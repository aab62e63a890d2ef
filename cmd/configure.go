package cmd

import (
	"context"
	"fmt"

	"github.com/shuffll/cli/entity"
	"github.com/shuffll/cli/errors"
	"github.com/shuffll/cli/node"
	"github.com/shuffll/cli/ui"
)

var noOptionsErrors = map[string]error{
	"getOrganizations": errors.NoOrganizationsFound,
	"getWorkspaces":    errors.NoWorkspacesFound,
	"getTemplates":     errors.NoTemplatesFound,
}

// promptAction asks for the resource and operation that weren't given.
func promptAction(resource, operation string) (node.Action, error) {
	if resource == "" {
		resources := make([]entity.Option, 0, len(node.Resources))
		for _, r := range node.Resources {
			resources = append(resources, r.Option)
		}
		selected, err := ui.PromptOptions("Resource", resources)
		if err != nil {
			return node.Action{}, err
		}
		resource = selected.Value
	}

	def, ok := node.LookupResource(resource)
	if !ok {
		return node.Action{}, &node.UnsupportedActionError{Action: node.Action{Resource: resource, Operation: operation}}
	}
	if operation == "" {
		selected, err := ui.PromptOptions("Operation", def.Operations)
		if err != nil {
			return node.Action{}, err
		}
		operation = selected.Value
	}
	return node.Action{Resource: resource, Operation: operation}, nil
}

// configure asks, in display order, for every required field of the action
// that has neither a value nor a default. Dropdowns are filled by the option
// resolvers from the answers given so far.
func (h *Handler) configure(ctx context.Context, action node.Action, params map[string]interface{}) error {
	fields, _ := node.Fields(action)
	for _, f := range fields {
		if !f.Required || hasValue(params, f.Name) || !emptyDefault(f.Default) {
			continue
		}

		value, err := h.promptField(ctx, f, params)
		if err != nil {
			return err
		}
		params[f.Name] = value
	}
	return nil
}

func (h *Handler) promptField(ctx context.Context, f node.Field, params map[string]interface{}) (interface{}, error) {
	switch {
	case f.LoadOptionsMethod != "":
		options, err := h.ctrl.LoadOptions(ctx, f.LoadOptionsMethod, params)
		if err != nil {
			return nil, err
		}
		if len(options) == 0 {
			if err, ok := noOptionsErrors[f.LoadOptionsMethod]; ok {
				return nil, err
			}
			return nil, errors.NoOptionsFound
		}
		selected, err := ui.PromptOptions(f.DisplayName, options)
		if err != nil {
			return nil, err
		}
		return selected.Value, nil
	case len(f.Options) > 0:
		selected, err := ui.PromptOptions(f.DisplayName, f.Options)
		if err != nil {
			return nil, err
		}
		return selected.Value, nil
	case f.Type == node.FieldTypeBoolean:
		def, _ := f.Default.(bool)
		return ui.PromptConfirm(f.DisplayName, def)
	default:
		label := f.DisplayName
		if f.Placeholder != "" {
			label = fmt.Sprintf("%s (%s)", f.DisplayName, f.Placeholder)
		}
		return ui.PromptText(label, true)
	}
}

func emptyDefault(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	default:
		return false
	}
}
