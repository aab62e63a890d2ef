package configs

import (
	"github.com/shuffll/cli/entity"
	"github.com/shuffll/cli/errors"
)

const apiKeyKey = "user.apiKey"

func (c *Configs) GetUserConfigs() (*entity.UserConfig, error) {
	if err := c.readConfig(c.rootConfigs); err != nil {
		return nil, errors.UserConfigUnreadable
	}
	return &entity.UserConfig{
		ApiKey: c.rootConfigs.viper.GetString(apiKeyKey),
	}, nil
}

func (c *Configs) SetUserConfigs(cfg *entity.UserConfig) error {
	if err := c.readConfig(c.rootConfigs); err != nil {
		return errors.UserConfigUnreadable
	}
	c.rootConfigs.viper.Set(apiKeyKey, cfg.ApiKey)
	return c.writeConfig(c.rootConfigs)
}

// APIKey returns the key requests are sent with: SHUFFLL_API_KEY if set,
// otherwise the stored one.
func (c *Configs) APIKey() (string, error) {
	if c.ShuffllApiKey != "" {
		return c.ShuffllApiKey, nil
	}
	user, err := c.GetUserConfigs()
	if err != nil {
		return "", err
	}
	if user.ApiKey == "" {
		return "", errors.UserConfigNotFound
	}
	return user.ApiKey, nil
}
