package node

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActionsHaveHandlers(t *testing.T) {
	all := Actions()
	assert.Len(t, all, 6)
	for _, a := range all {
		assert.True(t, Supported(a), a.String())
		assert.Contains(t, actions, a)
	}
	assert.Len(t, actions, len(actionFields))
}

func TestFieldsInDisplayOrder(t *testing.T) {
	fields, ok := Fields(Action{ResourceProject, OperationCreateFromTemplate})
	require.True(t, ok)

	var names []string
	for _, f := range fields {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{
		"organizationId", "workspaceId", "templateId", "promptType", "prompt", "recordingType", "additionalFields",
	}, names)
}

func TestRequiredFields(t *testing.T) {
	assert.Equal(t,
		[]string{"projectId", "email", "guestName", "toSendEmailToGuest"},
		RequiredFields(Action{ResourceGuest, OperationInvite}))
	assert.Equal(t,
		[]string{"organizationId", "workspaceId"},
		RequiredFields(Action{ResourceTemplate, OperationGetAll}))
}

func TestLookupField(t *testing.T) {
	a := Action{ResourceProject, OperationCreate}

	f, ok := LookupField(a, "additionalFields.videoLength")
	require.True(t, ok)
	assert.Equal(t, "1", f.Default)

	_, ok = LookupField(a, "templateId")
	assert.False(t, ok)

	f, ok = LookupField(Action{ResourceTemplate, OperationGet}, "templateId")
	require.True(t, ok)
	assert.Equal(t, []string{"organizationId", "workspaceId"}, f.LoadOptionsDependsOn)
}

func TestLoadOptionsMethods(t *testing.T) {
	assert.Equal(t, []string{
		"getOrganizations", "getStorytellingTechniques", "getTemplates", "getToneOfVoice", "getWorkspaces",
	}, LoadOptionsMethods())
}

func TestDescribe(t *testing.T) {
	d := Describe()
	assert.Equal(t, "shuffll", d.Name)
	assert.Equal(t, []string{"shuffllApi"}, d.Credentials)
	assert.Len(t, d.Actions, 6)
	assert.Equal(t, "create: project", d.Actions[0].String())
}
