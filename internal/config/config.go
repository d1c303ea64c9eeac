package config

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/viper"
)

const Version = "v1.0.0"

// Config keys.
const (
	KeyAuthor         = "author"
	KeyDefaultVersion = "default_version"
	KeyGitInit        = "git_init"
	KeyGitMode        = "git_mode"
	KeyTemplateDir    = "template_dir"
	KeyHistory        = "history"
)

const (
	configName = ".kivagen"
	envPrefix  = "KIVAGEN"
)

type Config struct {
	Author         string `mapstructure:"author"`
	DefaultVersion string `mapstructure:"default_version"`
	GitInit        bool   `mapstructure:"git_init"`
	GitMode        string `mapstructure:"git_mode"`
	TemplateDir    string `mapstructure:"template_dir"`
	History        bool   `mapstructure:"history"`
}

// LoadConfig reads ~/.kivagen.yaml and KIVAGEN_* environment variables.
func LoadConfig() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	return LoadConfigFrom(home)
}

// LoadConfigFrom reads .kivagen.yaml from dir.
func LoadConfigFrom(dir string) (*Config, error) {
	viper.AddConfigPath(dir)
	viper.SetConfigName(configName)
	viper.SetConfigType("yaml")

	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()

	viper.SetDefault(KeyAuthor, "")
	viper.SetDefault(KeyDefaultVersion, "1.0.0")
	viper.SetDefault(KeyGitInit, true)
	viper.SetDefault(KeyGitMode, "exec")
	viper.SetDefault(KeyTemplateDir, "")
	viper.SetDefault(KeyHistory, true)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// Keys lists the settable keys in sorted order.
func Keys() []string {
	keys := []string{KeyAuthor, KeyDefaultVersion, KeyGitInit, KeyGitMode, KeyTemplateDir, KeyHistory}
	sort.Strings(keys)
	return keys
}

// IsKey reports whether key is a known config key.
func IsKey(key string) bool {
	for _, k := range Keys() {
		if k == strings.ToLower(key) {
			return true
		}
	}
	return false
}

func SaveConfig(key string, value interface{}) error {
	viper.Set(key, value)
	return Write()
}

func Write() error {
	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	return WriteTo(home)
}

// WriteTo persists the current settings to dir/.kivagen.yaml.
func WriteTo(dir string) error {
	configPath := filepath.Join(dir, configName+".yaml")
	return viper.WriteConfigAs(configPath)
}
