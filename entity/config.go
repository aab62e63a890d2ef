package entity

type RootConfig struct {
	User UserConfig `json:"user"`
}

type UserConfig struct {
	ApiKey string `json:"apiKey"`
}
