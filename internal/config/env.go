package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/spf13/viper"

	"github.com/ytget/android-template-generator/internal/logging"
)

// EnvPrefix is prepended to every environment variable, e.g. ATG_API_BASE_URL
const EnvPrefix = "ATG"

// DefaultAPIBaseURL is the local development origin of the generation service
const DefaultAPIBaseURL = "http://localhost:8080"

// Env holds process configuration read from the environment or atg.yaml
type Env struct {
	APIBaseURL  string
	DownloadDir string
	Log         logging.Config
}

// LoadEnv reads configuration. An explicit configPath must exist; otherwise
// atg.yaml is looked up in $HOME/.atg and the working directory and may be
// absent.
func LoadEnv(configPath string) (*Env, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("api_base_url", DefaultAPIBaseURL)
	v.SetDefault("download_dir", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.output", "stderr")
	v.SetDefault("log.file", "")

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		v.SetConfigName("atg")
		v.AddConfigPath("$HOME/.atg")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	baseURL, err := NormalizeBaseURL(v.GetString("api_base_url"))
	if err != nil {
		return nil, err
	}

	return &Env{
		APIBaseURL:  baseURL,
		DownloadDir: v.GetString("download_dir"),
		Log: logging.Config{
			Level:      v.GetString("log.level"),
			Format:     v.GetString("log.format"),
			Output:     v.GetString("log.output"),
			OutputFile: v.GetString("log.file"),
		},
	}, nil
}

// NormalizeBaseURL validates an http(s) origin and strips trailing slashes
func NormalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultAPIBaseURL, nil
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid API base URL %q: %w", raw, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", fmt.Errorf("API base URL must start with http:// or https://: %q", raw)
	}
	if parsed.Host == "" {
		return "", fmt.Errorf("API base URL has no host: %q", raw)
	}
	return strings.TrimRight(raw, "/"), nil
}
