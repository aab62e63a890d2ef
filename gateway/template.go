package gateway

import (
	"context"
	"net/http"
)

// ListTemplates returns the templates of a workspace as sent by the API.
func (g *Gateway) ListTemplates(ctx context.Context, organizationId, workspaceId string) ([]interface{}, error) {
	var templates []interface{}
	if err := g.do(ctx, http.MethodGet, workspacePath(organizationId, workspaceId)+"/templates", nil, &templates); err != nil {
		return nil, err
	}
	return templates, nil
}

func (g *Gateway) GetTemplate(ctx context.Context, organizationId, workspaceId, templateId string) (interface{}, error) {
	var template interface{}
	path := workspacePath(organizationId, workspaceId) + "/templates/" + segment(templateId)
	if err := g.do(ctx, http.MethodGet, path, nil, &template); err != nil {
		return nil, err
	}
	return template, nil
}
