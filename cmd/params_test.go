package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shuffll/cli/entity"
	"github.com/shuffll/cli/node"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetParam(t *testing.T) {
	params := map[string]interface{}{}
	require.NoError(t, setParam(params, "prompt=a=b"))
	require.NoError(t, setParam(params, "additionalFields.language=en"))
	require.NoError(t, setParam(params, "additionalFields.storyTellingTechnique="))

	assert.Equal(t, map[string]interface{}{
		"prompt": "a=b",
		"additionalFields": map[string]interface{}{
			"language":              "en",
			"storyTellingTechnique": "",
		},
	}, params)

	for _, bad := range []string{"prompt", "=x", ".x=1", "prompt.x=1"} {
		assert.Error(t, setParam(params, bad), bad)
	}
}

func TestCollectParamsFlagsWinOverFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "params.yaml")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join([]string{
		"organizationId: 12",
		"workspaceId: w1",
		"enhance: false",
		"additionalFields:",
		"  toneOfVoice: Friendly",
		"  videoLength: \"2\"",
	}, "\n")), 0600))

	params, err := collectParams(path, []string{"workspaceId=w2", "additionalFields.language=fr"})
	require.NoError(t, err)
	assert.Equal(t, 12, params["organizationId"])
	assert.Equal(t, "w2", params["workspaceId"])
	assert.Equal(t, false, params["enhance"])
	assert.Equal(t, map[string]interface{}{
		"toneOfVoice": "Friendly",
		"videoLength": "2",
		"language":    "fr",
	}, params["additionalFields"])
}

func TestParseInput(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []entity.Record
	}{
		{"empty", "  \n", nil},
		{"array", `[{"a":1},{"a":2}]`, []entity.Record{{"a": json.Number("1")}, {"a": json.Number("2")}}},
		{"json lines", "{\"a\":\"x\"}\n{\"a\":\"y\"}\n", []entity.Record{{"a": "x"}, {"a": "y"}}},
		{"single object", `{"email":"g@x.y"}`, []entity.Record{{"email": "g@x.y"}}},
		{"scalars", `["p1", null]`, []entity.Record{{"data": "p1"}, {}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, err := parseInput([]byte(tt.input))
			require.NoError(t, err)
			var records []entity.Record
			for _, item := range items {
				records = append(records, item.JSON)
			}
			assert.Equal(t, tt.expected, records)
		})
	}

	_, err := parseInput([]byte(`{"a":`))
	assert.Error(t, err)
}

func TestReadInputFromStdin(t *testing.T) {
	items, err := readInput("-", strings.NewReader(`{"id":"p1"}`))
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "p1", items[0].JSON.String("id"))

	items, err = readInput("", strings.NewReader(`{"id":"p1"}`))
	require.NoError(t, err)
	assert.Nil(t, items)
}

func TestResolveAction(t *testing.T) {
	h := &Handler{}

	action, err := h.resolveAction(&entity.RunRequest{Resource: "template"})
	require.NoError(t, err)
	assert.Equal(t, node.Action{Resource: "template", Operation: "getAll"}, action)

	_, err = h.resolveAction(&entity.RunRequest{})
	assert.Error(t, err)

	_, err = h.resolveAction(&entity.RunRequest{Resource: "guest", Operation: "export"})
	var unsupported *node.UnsupportedActionError
	assert.ErrorAs(t, err, &unsupported)

	_, err = h.resolveAction(&entity.RunRequest{Resource: "video"})
	assert.ErrorAs(t, err, &unsupported)
}

func TestDependsOn(t *testing.T) {
	assert.Equal(t, []string{"organizationId", "workspaceId"}, dependsOn("getTemplates"))
	assert.Nil(t, dependsOn("getOrganizations"))
}

func TestEmptyDefault(t *testing.T) {
	assert.True(t, emptyDefault(nil))
	assert.True(t, emptyDefault(""))
	assert.False(t, emptyDefault(true))
	assert.False(t, emptyDefault("Link"))
}
