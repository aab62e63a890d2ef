package gateway

import (
	"context"
	"net/http"

	"github.com/shuffll/cli/entity"
)

func (g *Gateway) ListTonesOfVoice(ctx context.Context) (*entity.ToneOfVoiceList, error) {
	tones := &entity.ToneOfVoiceList{}
	if err := g.do(ctx, http.MethodGet, "/auth/config/tone_of_voice", nil, tones); err != nil {
		return nil, err
	}
	return tones, nil
}

func (g *Gateway) ListStorytellingTechniques(ctx context.Context) (*entity.StorytellingTechniqueList, error) {
	techniques := &entity.StorytellingTechniqueList{}
	if err := g.do(ctx, http.MethodGet, "/auth/config/storytelling_techniques", nil, techniques); err != nil {
		return nil, err
	}
	return techniques, nil
}
