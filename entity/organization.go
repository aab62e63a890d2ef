package entity

type Organization struct {
	Id         ID           `json:"id"`
	Name       string       `json:"name"`
	Workspaces []*Workspace `json:"workspaces,omitempty"`
}

type Workspace struct {
	Id   ID     `json:"id"`
	Name string `json:"name"`
}
