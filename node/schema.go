package node

import (
	"sort"

	"github.com/shuffll/cli/entity"
)

type FieldType string

const (
	FieldTypeString     FieldType = "string"
	FieldTypeBoolean    FieldType = "boolean"
	FieldTypeOptions    FieldType = "options"
	FieldTypeCollection FieldType = "collection"
)

const (
	ResourceProject  = "project"
	ResourceTemplate = "template"
	ResourceGuest    = "guest"
)

const (
	OperationCreate             = "create"
	OperationCreateFromTemplate = "createFromTemplate"
	OperationExport             = "export"
	OperationGetAll             = "getAll"
	OperationGet                = "get"
	OperationInvite             = "invite"
)

// Field describes one user-facing input of the node.
type Field struct {
	Name                 string          `json:"name"`
	DisplayName          string          `json:"displayName"`
	Type                 FieldType       `json:"type"`
	Required             bool            `json:"required,omitempty"`
	Default              interface{}     `json:"default"`
	Description          string          `json:"description,omitempty"`
	Placeholder          string          `json:"placeholder,omitempty"`
	Rows                 int             `json:"rows,omitempty"`
	Password             bool            `json:"password,omitempty"`
	Options              []entity.Option `json:"options,omitempty"`
	LoadOptionsMethod    string          `json:"loadOptionsMethod,omitempty"`
	LoadOptionsDependsOn []string        `json:"loadOptionsDependsOn,omitempty"`
	// Members of a collection field. Each is optional and only present once added.
	Fields []Field `json:"fields,omitempty"`
}

// Action is a (resource, operation) pair.
type Action struct {
	Resource  string `json:"resource"`
	Operation string `json:"operation"`
}

// String renders the action the way the node subtitle shows it.
func (a Action) String() string {
	return a.Operation + ": " + a.Resource
}

type ResourceDef struct {
	entity.Option
	DefaultOperation string          `json:"defaultOperation"`
	Operations       []entity.Option `json:"operations"`
}

// ActionSchema is the field set visible for one action.
type ActionSchema struct {
	Action
	Fields []Field `json:"fields"`
}

type Description struct {
	DisplayName     string         `json:"displayName"`
	Name            string         `json:"name"`
	Version         int            `json:"version"`
	Subtitle        string         `json:"subtitle"`
	Description     string         `json:"description"`
	Credentials     []string       `json:"credentials"`
	DefaultResource string         `json:"defaultResource"`
	Resources       []ResourceDef  `json:"resources"`
	Actions         []ActionSchema `json:"actions"`
}

var Resources = []ResourceDef{
	{
		Option:           entity.Option{Name: "🎬 Create & Manage Projects", Value: ResourceProject},
		DefaultOperation: OperationCreate,
		Operations: []entity.Option{
			{Name: "➕ Create New Project", Value: OperationCreate, Description: "Start a new video project from scratch", Action: "Create a project"},
			{Name: "📄 Create from Template", Value: OperationCreateFromTemplate, Description: "Use a pre-made template to create your project", Action: "Create a project from template"},
			{Name: "⬇️ Export Project", Value: OperationExport, Description: "Download your finished video", Action: "Export a project"},
		},
	},
	{
		Option:           entity.Option{Name: "📋 Browse Templates", Value: ResourceTemplate},
		DefaultOperation: OperationGetAll,
		Operations: []entity.Option{
			{Name: "📚 Get All Templates", Value: OperationGetAll, Description: "View all available video templates", Action: "Get all templates"},
			{Name: "🔍 Get Template Details", Value: OperationGet, Description: "Get detailed information about a specific template", Action: "Get a template"},
		},
	},
	{
		Option:           entity.Option{Name: "👥 Invite Collaborators", Value: ResourceGuest},
		DefaultOperation: OperationInvite,
		Operations: []entity.Option{
			{Name: "✉️ Send Invitation", Value: OperationInvite, Description: "Invite someone to collaborate on your project", Action: "Invite a guest"},
		},
	},
}

const DefaultResource = ResourceProject

var (
	organizationField = Field{
		Name:              "organizationId",
		DisplayName:       "Organization",
		Type:              FieldTypeOptions,
		Required:          true,
		Default:           "",
		Description:       "Select your organization",
		LoadOptionsMethod: "getOrganizations",
	}
	workspaceField = Field{
		Name:                 "workspaceId",
		DisplayName:          "Workspace",
		Type:                 FieldTypeOptions,
		Required:             true,
		Default:              "",
		Description:          "Select your workspace",
		LoadOptionsMethod:    "getWorkspaces",
		LoadOptionsDependsOn: []string{"organizationId"},
	}
	templateField = Field{
		Name:                 "templateId",
		DisplayName:          "Template",
		Type:                 FieldTypeOptions,
		Required:             true,
		Default:              "",
		LoadOptionsMethod:    "getTemplates",
		LoadOptionsDependsOn: []string{"organizationId", "workspaceId"},
	}
	promptTypeField = Field{
		Name:        "promptType",
		DisplayName: "Content Type",
		Type:        FieldTypeOptions,
		Required:    true,
		Default:     entity.PromptTypeLink,
		Description: "How do you want to create your video?",
		Options: []entity.Option{
			{Name: "🔗 Website Link", Value: entity.PromptTypeLink},
			{Name: "💭 Text Prompt", Value: entity.PromptTypePrompt},
			{Name: "📝 Full Script", Value: entity.PromptTypeScript},
		},
	}
	promptField = Field{
		Name:        "prompt",
		DisplayName: "Your Content",
		Type:        FieldTypeString,
		Required:    true,
		Default:     "",
		Rows:        4,
		Description: "Paste your link, prompt, or script here",
	}
	recordingTypeField = Field{
		Name:        "recordingType",
		DisplayName: "Video Style",
		Type:        FieldTypeOptions,
		Required:    true,
		Default:     entity.RecordingTypeAvatar,
		Description: "Choose how your video will be narrated",
		Options: []entity.Option{
			{Name: "🤖 AI Avatar", Value: entity.RecordingTypeAvatar},
			{Name: "🎤 AI Voiceover Only", Value: entity.RecordingTypeAIVoice},
			{Name: "📹 I'll Record Myself", Value: entity.RecordingTypeCamera},
		},
	}
	additionalFieldsField = Field{
		Name:        "additionalFields",
		DisplayName: "Optional Settings",
		Type:        FieldTypeCollection,
		Default:     map[string]interface{}{},
		Placeholder: "Add Setting",
		Fields: []Field{
			{
				Name:              "toneOfVoice",
				DisplayName:       "Tone of Voice",
				Type:              FieldTypeOptions,
				Default:           "Natural",
				Description:       "How should the narrator sound?",
				LoadOptionsMethod: "getToneOfVoice",
			},
			{
				Name:        "videoLength",
				DisplayName: "Video Duration",
				Type:        FieldTypeOptions,
				Default:     "1",
				Description: "Target length for your video",
				Options: []entity.Option{
					{Name: "⏱️ Short (1-2 min)", Value: "0.5"},
					{Name: "⏱️ Medium (2-3 min)", Value: "1"},
					{Name: "⏱️ Mid-Long (4-6 min)", Value: "2"},
					{Name: "⏱️ Long (7-10 min)", Value: "3"},
				},
			},
			{
				Name:              "storyTellingTechnique",
				DisplayName:       "Storytelling Style",
				Type:              FieldTypeOptions,
				Default:           "",
				Description:       "Choose a narrative structure",
				LoadOptionsMethod: "getStorytellingTechniques",
			},
			{
				Name:        "language",
				DisplayName: "Language",
				Type:        FieldTypeOptions,
				Default:     "auto",
				Description: "Video language",
				Options: []entity.Option{
					{Name: "🌐 Auto-Detect", Value: "auto"},
					{Name: "🇬🇧 English", Value: "en"},
					{Name: "🇪🇸 Español", Value: "es"},
					{Name: "🇫🇷 Français", Value: "fr"},
					{Name: "🇮🇱 עברית", Value: "iw"},
					{Name: "🇨🇳 中文", Value: "zh"},
				},
			},
		},
	}
	projectIdField = Field{
		Name:        "projectId",
		DisplayName: "Project ID",
		Type:        FieldTypeString,
		Required:    true,
		Default:     "",
		Placeholder: "Enter project ID",
	}
)

func describe(f Field, description string) Field {
	f.Description = description
	return f
}

// actionFields is the visibility rule table: for every supported action, the
// fields shown to the user, in display order.
var actionFields = map[Action][]Field{
	{ResourceProject, OperationCreate}: {
		organizationField,
		workspaceField,
		promptTypeField,
		promptField,
		recordingTypeField,
		additionalFieldsField,
	},
	{ResourceProject, OperationCreateFromTemplate}: {
		organizationField,
		workspaceField,
		describe(templateField, "Choose a template for your video"),
		promptTypeField,
		promptField,
		recordingTypeField,
		additionalFieldsField,
	},
	{ResourceProject, OperationExport}: {
		describe(projectIdField, "The ID of the project to export"),
		{
			Name:        "enhance",
			DisplayName: "Enhance Video Quality",
			Type:        FieldTypeBoolean,
			Required:    true,
			Default:     true,
			Description: "Whether to apply AI enhancement during export",
		},
		{
			Name:        "webhook",
			DisplayName: "Webhook URL",
			Type:        FieldTypeString,
			Required:    true,
			Default:     "",
			Description: "URL to notify when export is ready (use a Webhook node)",
			Placeholder: "https://hooks.zapier.com/...",
		},
	},
	{ResourceTemplate, OperationGetAll}: {
		organizationField,
		workspaceField,
	},
	{ResourceTemplate, OperationGet}: {
		organizationField,
		workspaceField,
		describe(templateField, "Choose which template to view"),
	},
	{ResourceGuest, OperationInvite}: {
		describe(projectIdField, "The project you want to share"),
		{
			Name:        "email",
			DisplayName: "Guest Email",
			Type:        FieldTypeString,
			Required:    true,
			Default:     "",
			Description: "Email address of the person to invite",
			Placeholder: "colleague@company.com",
		},
		{
			Name:        "guestName",
			DisplayName: "Guest Name",
			Type:        FieldTypeString,
			Required:    true,
			Default:     "",
			Description: "Full name of the person",
			Placeholder: "John Doe",
		},
		{
			Name:        "toSendEmailToGuest",
			DisplayName: "Send Email Invitation",
			Type:        FieldTypeBoolean,
			Required:    true,
			Default:     true,
			Description: "Whether to automatically email the invitation",
		},
		{
			Name:        "guestFinishedWebhook",
			DisplayName: "Notification Webhook (Optional)",
			Type:        FieldTypeString,
			Default:     "",
			Description: "Get notified when the guest completes their work",
			Placeholder: "https://hooks.zapier.com/...",
		},
	},
}

// Fields returns the fields visible for the action, in display order.
func Fields(a Action) ([]Field, bool) {
	fields, ok := actionFields[a]
	return fields, ok
}

func Supported(a Action) bool {
	_, ok := actionFields[a]
	return ok
}

// RequiredFields returns the names of the fields that must hold a value
// before the action can run.
func RequiredFields(a Action) []string {
	var names []string
	for _, f := range actionFields[a] {
		if f.Required {
			names = append(names, f.Name)
		}
	}
	return names
}

// LookupField finds a visible field by name. Collection members are addressed
// as "<collection>.<member>".
func LookupField(a Action, name string) (Field, bool) {
	for _, f := range actionFields[a] {
		if f.Name == name {
			return f, true
		}
		for _, m := range f.Fields {
			if f.Name+"."+m.Name == name {
				return m, true
			}
		}
	}
	return Field{}, false
}

func LookupResource(resource string) (ResourceDef, bool) {
	for _, r := range Resources {
		if r.Value == resource {
			return r, true
		}
	}
	return ResourceDef{}, false
}

// Actions lists every supported action, grouped by resource in declaration order.
func Actions() []Action {
	var actions []Action
	for _, r := range Resources {
		for _, op := range r.Operations {
			actions = append(actions, Action{Resource: r.Value, Operation: op.Value})
		}
	}
	return actions
}

// LoadOptionsMethods returns the sorted names of every resolver the schema refers to.
func LoadOptionsMethods() []string {
	seen := map[string]bool{}
	var visit func(fields []Field)
	visit = func(fields []Field) {
		for _, f := range fields {
			if f.LoadOptionsMethod != "" {
				seen[f.LoadOptionsMethod] = true
			}
			visit(f.Fields)
		}
	}
	for _, fields := range actionFields {
		visit(fields)
	}

	methods := make([]string, 0, len(seen))
	for m := range seen {
		methods = append(methods, m)
	}
	sort.Strings(methods)
	return methods
}

// Describe returns the full node description.
func Describe() Description {
	d := Description{
		DisplayName:     "Shuffll",
		Name:            "shuffll",
		Version:         1,
		Subtitle:        "<operation>: <resource>",
		Description:     "Interact with Shuffll API - AI-powered video creation",
		Credentials:     []string{Credential.Name},
		DefaultResource: DefaultResource,
		Resources:       Resources,
	}
	for _, a := range Actions() {
		d.Actions = append(d.Actions, ActionSchema{Action: a, Fields: actionFields[a]})
	}
	return d
}
