package constants

const (
	ShuffllDocsURL = "https://docs.shuffll.com"
	ApiKeyURL      = "https://app.shuffll.com/dashboard/(panel:api-key)"
	IssuesURL      = "https://github.com/shuffll/cli/issues"
)

const (
	ShuffllAPIURL   = "https://api.shuffll.com/api/v1"
	LocalhostAPIURL = "http://localhost:3000/api/v1"
)

const (
	RepoOwner = "shuffll"
	RepoName  = "cli"
)
