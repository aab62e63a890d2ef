package entity

// Option is one entry of a dropdown: what the user sees and what gets stored.
type Option struct {
	Name        string `json:"name"`
	Value       string `json:"value"`
	Description string `json:"description,omitempty"`
	Action      string `json:"action,omitempty"`
}
