package cmd

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/shuffll/cli/entity"
	cliErrors "github.com/shuffll/cli/errors"
	"gopkg.in/yaml.v3"
)

// readParamsFile loads a YAML mapping of parameter names to values.
// Collections are nested mappings.
func readParamsFile(path string) (map[string]interface{}, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	params := map[string]interface{}{}
	if err := yaml.Unmarshal(data, &params); err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	return params, nil
}

// setParam applies one "name=value" argument. "collection.member=value" adds
// a member to a collection parameter.
func setParam(params map[string]interface{}, arg string) error {
	name, value, ok := strings.Cut(arg, "=")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return cliErrors.InvalidParameter(arg)
	}

	collection, member, nested := strings.Cut(name, ".")
	if !nested {
		params[name] = value
		return nil
	}
	if collection == "" || member == "" {
		return cliErrors.InvalidParameter(arg)
	}

	members, ok := params[collection].(map[string]interface{})
	if !ok {
		if params[collection] != nil {
			return cliErrors.InvalidParameter(arg)
		}
		members = map[string]interface{}{}
		params[collection] = members
	}
	members[member] = value
	return nil
}

// collectParams merges the --params file under the --param flags.
func collectParams(file string, args []string) (map[string]interface{}, error) {
	params := map[string]interface{}{}
	if file != "" {
		var err error
		params, err = readParamsFile(file)
		if err != nil {
			return nil, err
		}
	}
	for _, arg := range args {
		if err := setParam(params, arg); err != nil {
			return nil, err
		}
	}
	return params, nil
}

// readInput loads input records from path, or stdin when path is "-".
func readInput(path string, stdin io.Reader) ([]entity.Item, error) {
	if path == "" {
		return nil, nil
	}

	var r io.Reader = stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return parseInput(data)
}

// parseInput accepts a JSON array, JSON lines, or a single JSON value. Each
// value becomes one record; non-objects are wrapped like API responses.
func parseInput(data []byte) ([]entity.Item, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, nil
	}

	var values []interface{}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	if data[0] == '[' {
		if err := dec.Decode(&values); err != nil {
			return nil, errors.Wrap(err, "decoding input")
		}
	} else {
		for {
			var v interface{}
			err := dec.Decode(&v)
			if err == io.EOF {
				break
			}
			if err != nil {
				return nil, errors.Wrapf(err, "decoding input record %d", len(values))
			}
			values = append(values, v)
		}
	}

	items := make([]entity.Item, 0, len(values))
	for _, v := range values {
		items = append(items, entity.Item{JSON: entity.NewRecord(v)})
	}
	return items, nil
}

// hasValue reports whether a parameter was given a non-empty value.
func hasValue(params map[string]interface{}, name string) bool {
	v, ok := params[name]
	if !ok || v == nil {
		return false
	}
	if s, isString := v.(string); isString {
		return strings.TrimSpace(s) != ""
	}
	return true
}
