package entity

// ToneOfVoiceList is the payload of /auth/config/tone_of_voice.
type ToneOfVoiceList struct {
	Tones []*ToneOfVoice `json:"tones"`
}

type ToneOfVoice struct {
	Id ID `json:"id"`
}

// StorytellingTechniqueList is the payload of /auth/config/storytelling_techniques.
type StorytellingTechniqueList struct {
	Techniques []*StorytellingTechnique `json:"techniques"`
}

type StorytellingTechnique struct {
	Technique string `json:"technique"`
}
