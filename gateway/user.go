package gateway

import (
	"context"
	"net/http"
)

// GetMe is the credential probe: it succeeds only with a valid API key.
func (g *Gateway) GetMe(ctx context.Context) (interface{}, error) {
	var resp interface{}
	if err := g.do(ctx, http.MethodPost, "/auth/user/me", nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}
