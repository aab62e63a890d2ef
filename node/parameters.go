package node

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/shuffll/cli/entity"
)

// Host is what the node needs from the platform that runs it.
type Host interface {
	InputData() []entity.Item
	// Parameter returns the raw value of a parameter for one input record and
	// whether it was set at all.
	Parameter(name string, itemIndex int) (interface{}, bool, error)
	ContinueOnFail() bool
}

// params reads the parameters of one input record, falling back to the
// schema default of the action's field when a value was never set.
type params struct {
	host   Host
	action Action
	index  int
}

func (p *params) raw(name string) (interface{}, error) {
	v, ok, err := p.host.Parameter(name, p.index)
	if err != nil {
		return nil, err
	}
	if ok && v != nil {
		return v, nil
	}
	if field, known := LookupField(p.action, name); known {
		return field.Default, nil
	}
	return nil, nil
}

func (p *params) String(name string) (string, error) {
	v, err := p.raw(name)
	if err != nil {
		return "", err
	}
	s, err := toString(v)
	if err != nil {
		return "", errors.Wrapf(err, "parameter %q", name)
	}
	return s, p.check(name, s)
}

func (p *params) Bool(name string) (bool, error) {
	v, err := p.raw(name)
	if err != nil {
		return false, err
	}
	if s, ok := v.(string); ok && s == "" {
		field, _ := LookupField(p.action, name)
		v = field.Default
	}
	b, err := toBool(v)
	if err != nil {
		return false, errors.Wrapf(err, "parameter %q", name)
	}
	return b, nil
}

// Collection returns the members that were added to a collection field.
func (p *params) Collection(name string) (*collection, error) {
	v, err := p.raw(name)
	if err != nil {
		return nil, err
	}
	c := &collection{params: p, name: name, values: map[string]interface{}{}}
	switch t := v.(type) {
	case nil:
	case map[string]interface{}:
		c.values = t
	case entity.Record:
		c.values = t
	default:
		return nil, errors.Errorf("parameter %q: expected a collection, got %T", name, v)
	}
	return c, nil
}

func (p *params) check(name, value string) error {
	field, known := LookupField(p.action, name)
	if !known {
		return nil
	}
	if value == "" {
		if field.Required {
			return errors.Errorf("parameter %q is required", name)
		}
		return nil
	}
	if len(field.Options) == 0 {
		return nil
	}
	for _, o := range field.Options {
		if o.Value == value {
			return nil
		}
	}
	return errors.Errorf("invalid value %q for parameter %q", value, name)
}

type collection struct {
	params *params
	name   string
	values map[string]interface{}
}

// Lookup returns a member's value and whether the member was added at all.
func (c *collection) Lookup(member string) (string, bool, error) {
	v, ok := c.values[member]
	if !ok {
		return "", false, nil
	}
	key := c.name + "." + member
	s, err := toString(v)
	if err != nil {
		return "", true, errors.Wrapf(err, "parameter %q", key)
	}
	return s, true, c.params.check(key, s)
}

// StringOr returns the member's value, or fallback when it is absent or empty.
func (c *collection) StringOr(member, fallback string) (string, error) {
	s, _, err := c.Lookup(member)
	if err != nil {
		return "", err
	}
	if s == "" {
		return fallback, nil
	}
	return s, nil
}

func toString(v interface{}) (string, error) {
	switch t := v.(type) {
	case nil:
		return "", nil
	case string:
		return t, nil
	case bool:
		return strconv.FormatBool(t), nil
	case int:
		return strconv.Itoa(t), nil
	case int64:
		return strconv.FormatInt(t, 10), nil
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), nil
	case json.Number:
		return t.String(), nil
	case entity.ID:
		return t.String(), nil
	default:
		return "", errors.Errorf("expected text, got %T", v)
	}
}

func toBool(v interface{}) (bool, error) {
	switch t := v.(type) {
	case nil:
		return false, nil
	case bool:
		return t, nil
	case string:
		switch strings.ToLower(strings.TrimSpace(t)) {
		case "yes", "y", "on":
			return true, nil
		case "no", "n", "off":
			return false, nil
		}
		return strconv.ParseBool(strings.TrimSpace(t))
	case int:
		return t != 0, nil
	case float64:
		return t != 0, nil
	default:
		return false, errors.Errorf("expected a boolean, got %T", v)
	}
}
