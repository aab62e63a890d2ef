package node

import (
	"context"
	"sync"
	"testing"

	"github.com/pkg/errors"
	"github.com/shuffll/cli/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type call struct {
	method string
	args   []string
	body   interface{}
}

// fakeClient records calls and answers from canned values.
type fakeClient struct {
	mu    sync.Mutex
	calls []call

	err           error
	failOn        map[string]bool
	organizations []*entity.Organization
	organization  *entity.Organization
	templates     []interface{}
	tones         *entity.ToneOfVoiceList
	techniques    *entity.StorytellingTechniqueList
	response      interface{}
}

func (f *fakeClient) record(method string, body interface{}, args ...string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call{method: method, args: args, body: body})
	if len(args) > 0 && f.failOn[args[0]] {
		return errors.New("request failed with status code 500")
	}
	return f.err
}

func (f *fakeClient) GetMe(ctx context.Context) (interface{}, error) {
	return f.response, f.record("GetMe", nil)
}

func (f *fakeClient) ListOrganizations(ctx context.Context) ([]*entity.Organization, error) {
	return f.organizations, f.record("ListOrganizations", nil)
}

func (f *fakeClient) GetOrganization(ctx context.Context, organizationId string) (*entity.Organization, error) {
	return f.organization, f.record("GetOrganization", nil, organizationId)
}

func (f *fakeClient) ListTemplates(ctx context.Context, organizationId, workspaceId string) ([]interface{}, error) {
	return f.templates, f.record("ListTemplates", nil, organizationId, workspaceId)
}

func (f *fakeClient) GetTemplate(ctx context.Context, organizationId, workspaceId, templateId string) (interface{}, error) {
	return f.response, f.record("GetTemplate", nil, organizationId, workspaceId, templateId)
}

func (f *fakeClient) ListTonesOfVoice(ctx context.Context) (*entity.ToneOfVoiceList, error) {
	return f.tones, f.record("ListTonesOfVoice", nil)
}

func (f *fakeClient) ListStorytellingTechniques(ctx context.Context) (*entity.StorytellingTechniqueList, error) {
	return f.techniques, f.record("ListStorytellingTechniques", nil)
}

func (f *fakeClient) CreateProject(ctx context.Context, organizationId, workspaceId string, req *entity.CreateProjectRequest) (interface{}, error) {
	return f.response, f.record("CreateProject", req, organizationId, workspaceId)
}

func (f *fakeClient) ExportProject(ctx context.Context, projectId string, req *entity.ExportProjectRequest) (interface{}, error) {
	return f.response, f.record("ExportProject", req, projectId)
}

func (f *fakeClient) InviteGuest(ctx context.Context, projectId string, req *entity.InviteGuestRequest) (interface{}, error) {
	return f.response, f.record("InviteGuest", req, projectId)
}

func items(records ...entity.Record) []entity.Item {
	out := make([]entity.Item, 0, len(records))
	for _, r := range records {
		out = append(out, entity.Item{JSON: r})
	}
	return out
}

func TestExportProject(t *testing.T) {
	client := &fakeClient{response: map[string]interface{}{"status": "queued"}}
	host := &StaticHost{
		Items: items(entity.Record{}),
		Params: map[string]interface{}{
			"resource":  "project",
			"operation": "export",
			"projectId": "P",
			"enhance":   true,
			"webhook":   "https://hook",
		},
	}

	out, err := New(client, nil).Execute(context.Background(), host)
	require.NoError(t, err)
	require.Len(t, client.calls, 1)
	assert.Equal(t, "ExportProject", client.calls[0].method)
	assert.Equal(t, []string{"P"}, client.calls[0].args)
	assert.Equal(t, &entity.ExportProjectRequest{Enhance: true, Webhook: "https://hook"}, client.calls[0].body)
	assert.Equal(t, []entity.Item{{JSON: entity.Record{"status": "queued"}}}, out)
}

func TestCreateProjectDefaults(t *testing.T) {
	client := &fakeClient{response: map[string]interface{}{"id": "p1"}}
	host := &StaticHost{
		Items: items(entity.Record{}),
		Params: map[string]interface{}{
			"operation":      "create",
			"organizationId": "o",
			"workspaceId":    "w",
			"prompt":         "https://example.com",
		},
	}

	_, err := New(client, nil).Execute(context.Background(), host)
	require.NoError(t, err)
	require.Len(t, client.calls, 1)
	assert.Equal(t, []string{"o", "w"}, client.calls[0].args)
	assert.Equal(t, &entity.CreateProjectRequest{
		Prompt:        "https://example.com",
		PromptType:    entity.PromptTypeLink,
		RecordingType: entity.RecordingTypeAvatar,
		ToneOfVoice:   "Natural",
		VideoLength:   "1",
		Language:      entity.ProjectLanguage{Code: "auto"},
	}, client.calls[0].body)
}

func TestCreateProjectWithoutOptionalSettings(t *testing.T) {
	client := &fakeClient{}
	host := &StaticHost{
		Items: items(entity.Record{}),
		Params: map[string]interface{}{
			"organizationId": "o",
			"workspaceId":    "w",
			"promptType":     "Prompt",
			"prompt":         "Hello",
		},
	}

	_, err := New(client, nil).Execute(context.Background(), host)
	require.NoError(t, err)
	require.Len(t, client.calls, 1)
	req := client.calls[0].body.(*entity.CreateProjectRequest)
	assert.Equal(t, &entity.CreateProjectRequest{
		Prompt:        "Hello",
		PromptType:    entity.PromptTypePrompt,
		RecordingType: entity.RecordingTypeAvatar,
		ToneOfVoice:   "Natural",
		VideoLength:   "1",
		Language:      entity.ProjectLanguage{Code: "auto"},
	}, req)
	assert.Nil(t, req.StoryTellingTechnique)
	assert.Nil(t, req.CustomTemplate)
}

func TestPromptWithBracesIsSentAsIs(t *testing.T) {
	client := &fakeClient{}
	script := "Narrator: use {{double braces}} for emphasis"
	host := &StaticHost{
		Items: items(entity.Record{"topic": "x"}),
		Params: map[string]interface{}{
			"organizationId": "o",
			"workspaceId":    "w",
			"promptType":     "Script",
			"prompt":         script,
		},
		ContinueOnFailure: true,
	}

	out, err := New(client, nil).Execute(context.Background(), host)
	require.NoError(t, err)
	require.Len(t, client.calls, 1)
	assert.Equal(t, script, client.calls[0].body.(*entity.CreateProjectRequest).Prompt)
	assert.NotContains(t, out[0].JSON, "error")
}

func TestExpressionParameters(t *testing.T) {
	host := &StaticHost{
		Items: items(entity.Record{"url": "https://a.b", "lang": "fr"}),
		Params: map[string]interface{}{
			"prompt":           "={{ .url }}",
			"literal":          "{{ .url }}",
			"additionalFields": map[string]interface{}{"language": "={{ .lang }}"},
			"broken":           "={{ .missing }}",
		},
	}

	v, ok, err := host.Parameter("prompt", 0)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "https://a.b", v)

	v, _, err = host.Parameter("literal", 0)
	require.NoError(t, err)
	assert.Equal(t, "{{ .url }}", v)

	v, _, err = host.Parameter("additionalFields", 0)
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"language": "fr"}, v)

	_, _, err = host.Parameter("broken", 0)
	assert.Error(t, err)
}

func TestCreateFromTemplateWithSettings(t *testing.T) {
	client := &fakeClient{}
	host := &StaticHost{
		Items: items(entity.Record{}),
		Params: map[string]interface{}{
			"operation":      "createFromTemplate",
			"organizationId": "o",
			"workspaceId":    "w",
			"templateId":     "t1",
			"promptType":     "Script",
			"prompt":         "hello",
			"recordingType":  "camera",
			"additionalFields": map[string]interface{}{
				"toneOfVoice":           "Excited",
				"videoLength":           "0.5",
				"storyTellingTechnique": "",
				"language":              "fr",
			},
		},
	}

	_, err := New(client, nil).Execute(context.Background(), host)
	require.NoError(t, err)
	req := client.calls[0].body.(*entity.CreateProjectRequest)
	assert.Equal(t, "Excited", req.ToneOfVoice)
	assert.Equal(t, "0.5", req.VideoLength)
	assert.Equal(t, "fr", req.Language.Code)
	require.NotNil(t, req.StoryTellingTechnique)
	assert.Equal(t, "", *req.StoryTellingTechnique)
	assert.Equal(t, &entity.TemplateRef{Id: "t1"}, req.CustomTemplate)
}

func TestTemplateGetAllFansOut(t *testing.T) {
	client := &fakeClient{templates: []interface{}{
		map[string]interface{}{"id": "a"},
		map[string]interface{}{"id": "b"},
		"odd",
	}}
	host := &StaticHost{
		Items: items(entity.Record{}, entity.Record{}),
		Params: map[string]interface{}{
			"resource":       "template",
			"organizationId": "o",
			"workspaceId":    "w",
		},
	}

	out, err := New(client, nil).Execute(context.Background(), host)
	require.NoError(t, err)
	require.Len(t, out, 6)
	assert.Equal(t, entity.Record{"id": "a"}, out[0].JSON)
	assert.Equal(t, entity.Record{"id": "b"}, out[1].JSON)
	assert.Equal(t, entity.Record{"data": "odd"}, out[2].JSON)
	assert.Equal(t, 0, out[2].PairedItem)
	assert.Equal(t, 1, out[3].PairedItem)
}

func TestInviteGuestPerRecord(t *testing.T) {
	client := &fakeClient{}
	host := &StaticHost{
		Items: items(
			entity.Record{"email": "a@x.y", "name": "A"},
			entity.Record{"email": "b@x.y", "name": "B"},
		),
		Params: map[string]interface{}{
			"resource":           "guest",
			"projectId":          "P",
			"email":              "={{ .email }}",
			"guestName":          "={{ .name }}",
			"toSendEmailToGuest": "no",
		},
	}

	out, err := New(client, nil).Execute(context.Background(), host)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, entity.Record{}, out[0].JSON)
	assert.Equal(t, &entity.InviteGuestRequest{
		Email:              "a@x.y",
		GuestName:          "A",
		IncludeInviteInRes: true,
	}, client.calls[0].body)
	assert.Equal(t, "b@x.y", client.calls[1].body.(*entity.InviteGuestRequest).Email)
}

func exportHost(continueOnFail bool) *StaticHost {
	return &StaticHost{
		Items: items(
			entity.Record{"id": "ok1"},
			entity.Record{"id": "bad"},
			entity.Record{"id": "ok2"},
		),
		Params: map[string]interface{}{
			"operation": "export",
			"projectId": "={{ .id }}",
			"webhook":   "https://hook",
		},
		ContinueOnFailure: continueOnFail,
	}
}

func TestContinueOnFail(t *testing.T) {
	client := &fakeClient{
		failOn:   map[string]bool{"bad": true},
		response: map[string]interface{}{"ok": true},
	}

	out, err := New(client, nil).Execute(context.Background(), exportHost(true))
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, entity.Record{"ok": true}, out[0].JSON)
	assert.Equal(t, entity.Record{"error": "request failed with status code 500"}, out[1].JSON)
	assert.Equal(t, 1, out[1].PairedItem)
	assert.Equal(t, entity.Record{"ok": true}, out[2].JSON)
	assert.Len(t, client.calls, 3)
}

func TestAbortOnFailure(t *testing.T) {
	client := &fakeClient{failOn: map[string]bool{"bad": true}}

	out, err := New(client, nil).Execute(context.Background(), exportHost(false))
	assert.Nil(t, out)
	var itemErr *ItemError
	require.True(t, errors.As(err, &itemErr))
	assert.Equal(t, 1, itemErr.Index)
	assert.Len(t, client.calls, 2)
}

func TestMissingRequiredParameter(t *testing.T) {
	client := &fakeClient{}
	host := &StaticHost{
		Items:  items(entity.Record{}),
		Params: map[string]interface{}{"operation": "export", "webhook": "https://hook"},
	}

	_, err := New(client, nil).Execute(context.Background(), host)
	assert.EqualError(t, err, `item 0: parameter "projectId" is required`)
	assert.Empty(t, client.calls)
}

func TestInvalidOptionValue(t *testing.T) {
	host := &StaticHost{
		Items: items(entity.Record{}),
		Params: map[string]interface{}{
			"organizationId":   "o",
			"workspaceId":      "w",
			"prompt":           "p",
			"additionalFields": map[string]interface{}{"language": "de"},
		},
	}

	_, err := New(&fakeClient{}, nil).Execute(context.Background(), host)
	assert.EqualError(t, err, `item 0: invalid value "de" for parameter "additionalFields.language"`)
}

func TestUnsupportedAction(t *testing.T) {
	client := &fakeClient{}
	host := &StaticHost{
		Items:  items(entity.Record{}),
		Params: map[string]interface{}{"resource": "template", "operation": "export"},
	}

	out, err := New(client, nil).Execute(context.Background(), host)
	assert.Nil(t, out)
	var unsupported *UnsupportedActionError
	require.True(t, errors.As(err, &unsupported))
	assert.Equal(t, Action{Resource: "template", Operation: "export"}, unsupported.Action)
	assert.Empty(t, client.calls)
}

func TestNoInputRecords(t *testing.T) {
	client := &fakeClient{}
	out, err := New(client, nil).Execute(context.Background(), &StaticHost{})
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Empty(t, client.calls)
}

func TestCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(&fakeClient{}, nil).Execute(ctx, exportHost(true))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTestCredential(t *testing.T) {
	client := &fakeClient{response: map[string]interface{}{"email": "me@x.y"}}
	r, err := New(client, nil).TestCredential(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "me@x.y", r.String("email"))

	client.err = errors.New("Unauthorized")
	_, err = New(client, nil).TestCredential(context.Background())
	assert.EqualError(t, err, "Unauthorized")
}
