package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/shuffll/cli/entity"
	"github.com/shuffll/cli/node"
	"github.com/shuffll/cli/ui"
)

// Schema prints the node description, or the fields of one action.
func (h *Handler) Schema(ctx context.Context, req *entity.CommandRequest) error {
	resource, err := req.Cmd.Flags().GetString("resource")
	if err != nil {
		return err
	}
	operation, err := req.Cmd.Flags().GetString("operation")
	if err != nil {
		return err
	}
	asJSON, err := req.Cmd.Flags().GetBool("json")
	if err != nil {
		return err
	}

	if resource == "" {
		if asJSON {
			return printJSON(node.Describe())
		}
		for _, a := range node.Actions() {
			printActionSchema(a)
		}
		return nil
	}

	action := node.Action{Resource: resource, Operation: operation}
	if operation == "" {
		def, ok := node.LookupResource(resource)
		if !ok {
			return &node.UnsupportedActionError{Action: action}
		}
		action.Operation = def.DefaultOperation
	}
	fields, ok := node.Fields(action)
	if !ok {
		return &node.UnsupportedActionError{Action: action}
	}

	if asJSON {
		return printJSON(node.ActionSchema{Action: action, Fields: fields})
	}
	printActionSchema(action)
	return nil
}

func printActionSchema(a node.Action) {
	fields, _ := node.Fields(a)
	fmt.Print(ui.Heading(a.String()))

	lines := make([]string, 0, len(fields))
	for _, f := range fields {
		lines = append(lines, describeField(f, ""))
		for _, m := range f.Fields {
			lines = append(lines, describeField(m, f.Name+"."))
		}
	}
	fmt.Print(ui.UnorderedList(lines))
	fmt.Println()
}

func describeField(f node.Field, prefix string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s", ui.Bold(prefix+f.Name), ui.GrayText(string(f.Type)))
	if f.Required {
		fmt.Fprintf(&b, " %s", ui.RedText("required"))
	}
	if f.Default != nil && !emptyDefault(f.Default) {
		if _, isMap := f.Default.(map[string]interface{}); !isMap {
			fmt.Fprintf(&b, " default=%v", f.Default)
		}
	}
	if f.LoadOptionsMethod != "" {
		fmt.Fprintf(&b, " options from %s", f.LoadOptionsMethod)
	}
	if len(f.Options) > 0 {
		values := make([]string, 0, len(f.Options))
		for _, o := range f.Options {
			values = append(values, o.Value)
		}
		fmt.Fprintf(&b, " [%s]", strings.Join(values, "|"))
	}
	if f.Description != "" {
		fmt.Fprintf(&b, " - %s", f.Description)
	}
	return b.String()
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
