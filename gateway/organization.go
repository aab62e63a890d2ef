package gateway

import (
	"context"
	"net/http"

	"github.com/shuffll/cli/entity"
)

func (g *Gateway) ListOrganizations(ctx context.Context) ([]*entity.Organization, error) {
	var orgs []*entity.Organization
	if err := g.do(ctx, http.MethodGet, "/auth/organization/list", nil, &orgs); err != nil {
		return nil, err
	}
	return orgs, nil
}

// GetOrganization returns the organization with its workspaces.
func (g *Gateway) GetOrganization(ctx context.Context, organizationId string) (*entity.Organization, error) {
	org := &entity.Organization{}
	if err := g.do(ctx, http.MethodGet, "/auth/organization/"+segment(organizationId), nil, org); err != nil {
		return nil, err
	}
	return org, nil
}

func workspacePath(organizationId, workspaceId string) string {
	return "/auth/organization/" + segment(organizationId) + "/workspace/" + segment(workspaceId)
}
