package gateway

import (
	"context"
	"net/http"

	"github.com/shuffll/cli/entity"
)

// CreateProject creates a project in a workspace. A CustomTemplate on the
// request makes it a project from template.
func (g *Gateway) CreateProject(ctx context.Context, organizationId, workspaceId string, req *entity.CreateProjectRequest) (interface{}, error) {
	var resp interface{}
	path := workspacePath(organizationId, workspaceId) + "/projects/create"
	if err := g.do(ctx, http.MethodPost, path, req, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// ExportProject starts an export; the API calls req.Webhook once it's ready.
func (g *Gateway) ExportProject(ctx context.Context, projectId string, req *entity.ExportProjectRequest) (interface{}, error) {
	var resp interface{}
	if err := g.do(ctx, http.MethodPost, "/auth/project/"+segment(projectId)+"/edit/export", req, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (g *Gateway) InviteGuest(ctx context.Context, projectId string, req *entity.InviteGuestRequest) (interface{}, error) {
	var resp interface{}
	if err := g.do(ctx, http.MethodPost, "/auth/project/"+segment(projectId)+"/share/invite", req, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}
