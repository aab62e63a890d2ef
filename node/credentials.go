package node

// CredentialDefinition describes the secret the host has to provide and how
// it is attached to outgoing requests.
type CredentialDefinition struct {
	Name             string  `json:"name"`
	DisplayName      string  `json:"displayName"`
	DocumentationURL string  `json:"documentationUrl"`
	Properties       []Field `json:"properties"`
	Header           string  `json:"header"`
	TestMethod       string  `json:"testMethod"`
	TestPath         string  `json:"testPath"`
}

const APIKeyHeader = "X-API-KEY"

var Credential = CredentialDefinition{
	Name:             "shuffllApi",
	DisplayName:      "Shuffll API",
	DocumentationURL: "https://docs.shuffll.com",
	Properties: []Field{
		{
			Name:        "apiKey",
			DisplayName: "API Key",
			Type:        FieldTypeString,
			Password:    true,
			Required:    true,
			Default:     "",
			Description: "Enter your Shuffll API Key. Open your Profile Settings in Shuffll, click the API Integration section, then copy the API Key and paste it here.",
		},
	},
	Header:     APIKeyHeader,
	TestMethod: "POST",
	TestPath:   "/auth/user/me",
}
