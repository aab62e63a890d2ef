package configs

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	viper      *viper.Viper
	configPath string
}

type Configs struct {
	rootConfigs *Config
	// Set from SHUFFLL_API_KEY; takes precedence over the stored key.
	ShuffllApiKey string
	ShuffllApiURL string
}

func IsDevMode() bool {
	environment, exists := os.LookupEnv("SHUFFLL_ENV")
	return exists && environment == "develop"
}

// LoadDotEnv reads .env from the working directory. Variables already set in
// the environment win.
func LoadDotEnv() error {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func ConfigDir() string {
	if dir := os.Getenv("SHUFFLL_CONFIG_DIR"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		home = os.Getenv("HOME")
	}
	return filepath.Join(home, ".shuffll")
}

func (c *Configs) CreatePathIfNotExist(path string) error {
	dir := filepath.Dir(path)

	if _, err := os.Stat(dir); os.IsNotExist(err) {
		err = os.MkdirAll(dir, 0700)
		if err != nil {
			return err
		}
	}

	return nil
}

// readConfig loads the file behind config. A missing file is an empty config.
func (c *Configs) readConfig(config *Config) error {
	err := config.viper.ReadInConfig()
	if err != nil && os.IsNotExist(err) {
		return nil
	}
	return err
}

func (c *Configs) writeConfig(config *Config) error {
	err := c.CreatePathIfNotExist(config.configPath)
	if err != nil {
		return err
	}
	return config.viper.WriteConfig()
}

func New() *Configs {
	// Root configs stored in ~/.shuffll/config.json
	rootViper := viper.New()
	rootPath := filepath.Join(ConfigDir(), "config.json")
	rootViper.SetConfigFile(rootPath)
	rootViper.SetConfigPermissions(0600)

	rootConfig := &Config{
		viper:      rootViper,
		configPath: rootPath,
	}

	return &Configs{
		rootConfigs:   rootConfig,
		ShuffllApiKey: os.Getenv("SHUFFLL_API_KEY"),
		ShuffllApiURL: os.Getenv("SHUFFLL_API_URL"),
	}
}

func (c *Configs) Path() string {
	return c.rootConfigs.configPath
}
