package node

import (
	"strings"
	"text/template"

	"github.com/pkg/errors"
	"github.com/shuffll/cli/entity"
)

// StaticHost serves a fixed parameter set to the node. A string value that
// starts with "=" is an expression: the rest is rendered as a text/template
// against the current input record, e.g. "={{ .email }}". Any other string is
// used as-is.
type StaticHost struct {
	Items             []entity.Item
	Params            map[string]interface{}
	ContinueOnFailure bool
}

func (h *StaticHost) InputData() []entity.Item {
	return h.Items
}

func (h *StaticHost) ContinueOnFail() bool {
	return h.ContinueOnFailure
}

func (h *StaticHost) Parameter(name string, itemIndex int) (interface{}, bool, error) {
	v, ok := h.Params[name]
	if !ok {
		return nil, false, nil
	}

	var data entity.Record
	if itemIndex >= 0 && itemIndex < len(h.Items) {
		data = h.Items[itemIndex].JSON
	}

	rendered, err := render(v, data)
	if err != nil {
		return nil, true, errors.Wrapf(err, "parameter %q", name)
	}
	return rendered, true, nil
}

const expressionPrefix = "="

func render(v interface{}, data entity.Record) (interface{}, error) {
	switch t := v.(type) {
	case string:
		expr, ok := strings.CutPrefix(t, expressionPrefix)
		if !ok {
			return t, nil
		}
		tpl, err := template.New("param").Option("missingkey=error").Parse(expr)
		if err != nil {
			return nil, err
		}
		var b strings.Builder
		if err := tpl.Execute(&b, map[string]interface{}(data)); err != nil {
			return nil, err
		}
		return b.String(), nil
	case map[string]interface{}:
		out := make(map[string]interface{}, len(t))
		for k, member := range t {
			r, err := render(member, data)
			if err != nil {
				return nil, errors.Wrap(err, k)
			}
			out[k] = r
		}
		return out, nil
	default:
		return v, nil
	}
}
