package entity

type PanicRequest struct {
	Command    string
	PanicError string
	Stacktrace string
	Args       []string
}

// RunRequest is everything the host collects before invoking the node.
type RunRequest struct {
	Resource       string
	Operation      string
	Params         map[string]interface{}
	Items          []Item
	ContinueOnFail bool
	Interactive    bool
}
