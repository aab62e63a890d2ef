package node

import (
	"context"

	"github.com/pkg/errors"
	"github.com/shuffll/cli/entity"
)

// LoadOptionsFunc resolves the choices of a dependent dropdown from the
// values chosen so far.
type LoadOptionsFunc func(ctx context.Context, c Client, current map[string]interface{}) ([]entity.Option, error)

var loadOptions = map[string]LoadOptionsFunc{
	"getOrganizations":          getOrganizations,
	"getWorkspaces":             getWorkspaces,
	"getTemplates":              getTemplates,
	"getToneOfVoice":            getToneOfVoice,
	"getStorytellingTechniques": getStorytellingTechniques,
}

// LoadOptions runs the named resolver. Resolvers never cache or retry.
func (n *Node) LoadOptions(ctx context.Context, method string, current map[string]interface{}) ([]entity.Option, error) {
	fn, ok := loadOptions[method]
	if !ok {
		return nil, errors.Errorf("unknown load options method %q", method)
	}
	n.log.WithField("method", method).Debug("loading options")
	return fn(ctx, n.client, current)
}

func currentValue(current map[string]interface{}, name string) string {
	s, err := toString(current[name])
	if err != nil {
		return ""
	}
	return s
}

func getOrganizations(ctx context.Context, c Client, current map[string]interface{}) ([]entity.Option, error) {
	orgs, err := c.ListOrganizations(ctx)
	if err != nil {
		return nil, err
	}
	options := []entity.Option{}
	for _, org := range orgs {
		options = append(options, entity.Option{Name: org.Name, Value: org.Id.String()})
	}
	return options, nil
}

func getWorkspaces(ctx context.Context, c Client, current map[string]interface{}) ([]entity.Option, error) {
	options := []entity.Option{}
	organizationId := currentValue(current, "organizationId")
	if organizationId == "" {
		return options, nil
	}

	org, err := c.GetOrganization(ctx, organizationId)
	if err != nil {
		return nil, err
	}
	for _, ws := range org.Workspaces {
		options = append(options, entity.Option{Name: ws.Name, Value: ws.Id.String()})
	}
	return options, nil
}

func getTemplates(ctx context.Context, c Client, current map[string]interface{}) ([]entity.Option, error) {
	options := []entity.Option{}
	organizationId := currentValue(current, "organizationId")
	workspaceId := currentValue(current, "workspaceId")
	if organizationId == "" || workspaceId == "" {
		return options, nil
	}

	templates, err := c.ListTemplates(ctx, organizationId, workspaceId)
	if err != nil {
		return nil, err
	}
	for _, t := range templates {
		r := entity.NewRecord(t)
		options = append(options, entity.Option{Name: r.String("name"), Value: r.String("id")})
	}
	return options, nil
}

func getToneOfVoice(ctx context.Context, c Client, current map[string]interface{}) ([]entity.Option, error) {
	tones, err := c.ListTonesOfVoice(ctx)
	if err != nil {
		return nil, err
	}
	options := []entity.Option{}
	for _, tone := range tones.Tones {
		options = append(options, entity.Option{Name: tone.Id.String(), Value: tone.Id.String()})
	}
	return options, nil
}

func getStorytellingTechniques(ctx context.Context, c Client, current map[string]interface{}) ([]entity.Option, error) {
	techniques, err := c.ListStorytellingTechniques(ctx)
	if err != nil {
		return nil, err
	}
	options := []entity.Option{}
	for _, t := range techniques.Techniques {
		options = append(options, entity.Option{Name: t.Technique, Value: t.Technique})
	}
	return options, nil
}
