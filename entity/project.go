package entity

const (
	PromptTypeLink   = "Link"
	PromptTypePrompt = "Prompt"
	PromptTypeScript = "Script"
)

const (
	RecordingTypeAvatar  = "avatar"
	RecordingTypeAIVoice = "ai-voice"
	RecordingTypeCamera  = "camera"
)

type CreateProjectRequest struct {
	Prompt        string `json:"prompt"`
	PromptType    string `json:"promptType"`
	RecordingType string `json:"recordingType"`
	ToneOfVoice   string `json:"toneOfVoice"`
	VideoLength   string `json:"videoLength"`
	// Left nil when the technique was never chosen; the member is then absent
	// from the body.
	StoryTellingTechnique *string         `json:"storyTellingTechnique,omitempty"`
	Language              ProjectLanguage `json:"language"`
	CustomTemplate        *TemplateRef    `json:"customTemplate,omitempty"`
}

type ProjectLanguage struct {
	Code string `json:"code"`
}

type TemplateRef struct {
	Id string `json:"id"`
}

type ExportProjectRequest struct {
	Enhance bool   `json:"enhance"`
	Webhook string `json:"webhook"`
}
