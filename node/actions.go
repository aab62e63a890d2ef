package node

import (
	"context"

	"github.com/shuffll/cli/entity"
)

type actionFunc func(ctx context.Context, c Client, p *params) ([]entity.Record, error)

var actions = map[Action]actionFunc{
	{ResourceProject, OperationCreate}:             createProject,
	{ResourceProject, OperationCreateFromTemplate}: createProject,
	{ResourceProject, OperationExport}:             exportProject,
	{ResourceTemplate, OperationGetAll}:            listTemplates,
	{ResourceTemplate, OperationGet}:               getTemplate,
	{ResourceGuest, OperationInvite}:               inviteGuest,
}

func single(resp interface{}, err error) ([]entity.Record, error) {
	if err != nil {
		return nil, err
	}
	return []entity.Record{entity.NewRecord(resp)}, nil
}

func workspaceSelection(p *params) (string, string, error) {
	organizationId, err := p.String("organizationId")
	if err != nil {
		return "", "", err
	}
	workspaceId, err := p.String("workspaceId")
	if err != nil {
		return "", "", err
	}
	return organizationId, workspaceId, nil
}

// buildCreateProjectRequest maps the record's parameters to the project
// creation body shared by create and createFromTemplate.
func buildCreateProjectRequest(p *params) (*entity.CreateProjectRequest, error) {
	promptType, err := p.String("promptType")
	if err != nil {
		return nil, err
	}
	prompt, err := p.String("prompt")
	if err != nil {
		return nil, err
	}
	recordingType, err := p.String("recordingType")
	if err != nil {
		return nil, err
	}

	extra, err := p.Collection("additionalFields")
	if err != nil {
		return nil, err
	}
	toneOfVoice, err := extra.StringOr("toneOfVoice", "Natural")
	if err != nil {
		return nil, err
	}
	videoLength, err := extra.StringOr("videoLength", "1")
	if err != nil {
		return nil, err
	}
	language, err := extra.StringOr("language", "auto")
	if err != nil {
		return nil, err
	}

	req := &entity.CreateProjectRequest{
		Prompt:        prompt,
		PromptType:    promptType,
		RecordingType: recordingType,
		ToneOfVoice:   toneOfVoice,
		VideoLength:   videoLength,
		Language:      entity.ProjectLanguage{Code: language},
	}

	technique, added, err := extra.Lookup("storyTellingTechnique")
	if err != nil {
		return nil, err
	}
	if added {
		req.StoryTellingTechnique = &technique
	}

	if p.action.Operation == OperationCreateFromTemplate {
		templateId, err := p.String("templateId")
		if err != nil {
			return nil, err
		}
		req.CustomTemplate = &entity.TemplateRef{Id: templateId}
	}

	return req, nil
}

func createProject(ctx context.Context, c Client, p *params) ([]entity.Record, error) {
	organizationId, workspaceId, err := workspaceSelection(p)
	if err != nil {
		return nil, err
	}
	req, err := buildCreateProjectRequest(p)
	if err != nil {
		return nil, err
	}
	return single(c.CreateProject(ctx, organizationId, workspaceId, req))
}

func exportProject(ctx context.Context, c Client, p *params) ([]entity.Record, error) {
	projectId, err := p.String("projectId")
	if err != nil {
		return nil, err
	}
	enhance, err := p.Bool("enhance")
	if err != nil {
		return nil, err
	}
	webhook, err := p.String("webhook")
	if err != nil {
		return nil, err
	}
	return single(c.ExportProject(ctx, projectId, &entity.ExportProjectRequest{
		Enhance: enhance,
		Webhook: webhook,
	}))
}

// listTemplates fans out: one record per template, in the order the API sent them.
func listTemplates(ctx context.Context, c Client, p *params) ([]entity.Record, error) {
	organizationId, workspaceId, err := workspaceSelection(p)
	if err != nil {
		return nil, err
	}
	templates, err := c.ListTemplates(ctx, organizationId, workspaceId)
	if err != nil {
		return nil, err
	}
	records := make([]entity.Record, 0, len(templates))
	for _, t := range templates {
		records = append(records, entity.NewRecord(t))
	}
	return records, nil
}

func getTemplate(ctx context.Context, c Client, p *params) ([]entity.Record, error) {
	organizationId, workspaceId, err := workspaceSelection(p)
	if err != nil {
		return nil, err
	}
	templateId, err := p.String("templateId")
	if err != nil {
		return nil, err
	}
	return single(c.GetTemplate(ctx, organizationId, workspaceId, templateId))
}

func inviteGuest(ctx context.Context, c Client, p *params) ([]entity.Record, error) {
	projectId, err := p.String("projectId")
	if err != nil {
		return nil, err
	}
	email, err := p.String("email")
	if err != nil {
		return nil, err
	}
	guestName, err := p.String("guestName")
	if err != nil {
		return nil, err
	}
	sendEmail, err := p.Bool("toSendEmailToGuest")
	if err != nil {
		return nil, err
	}
	webhook, err := p.String("guestFinishedWebhook")
	if err != nil {
		return nil, err
	}
	return single(c.InviteGuest(ctx, projectId, &entity.InviteGuestRequest{
		Email:                email,
		GuestName:            guestName,
		ToSendEmailToGuest:   sendEmail,
		GuestFinishedWebhook: webhook,
		IncludeInviteInRes:   true,
	}))
}
