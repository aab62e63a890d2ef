package node

import (
	"context"

	"github.com/shuffll/cli/entity"
)

// Client is the remote API as seen by the node. Calls that pass their
// response through to the output return the decoded JSON untouched.
type Client interface {
	GetMe(ctx context.Context) (interface{}, error)

	ListOrganizations(ctx context.Context) ([]*entity.Organization, error)
	GetOrganization(ctx context.Context, organizationId string) (*entity.Organization, error)

	ListTemplates(ctx context.Context, organizationId, workspaceId string) ([]interface{}, error)
	GetTemplate(ctx context.Context, organizationId, workspaceId, templateId string) (interface{}, error)

	ListTonesOfVoice(ctx context.Context) (*entity.ToneOfVoiceList, error)
	ListStorytellingTechniques(ctx context.Context) (*entity.StorytellingTechniqueList, error)

	CreateProject(ctx context.Context, organizationId, workspaceId string, req *entity.CreateProjectRequest) (interface{}, error)
	ExportProject(ctx context.Context, projectId string, req *entity.ExportProjectRequest) (interface{}, error)
	InviteGuest(ctx context.Context, projectId string, req *entity.InviteGuestRequest) (interface{}, error)
}
