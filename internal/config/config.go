package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/dshills/prreview/internal/providers"
)

// Environment variable names.
const (
	EnvGitHubToken   = "GITHUB_TOKEN"
	EnvRepoOwner     = "REPO_OWNER"
	EnvRepoName      = "REPO_NAME"
	EnvGitHubRepo    = "GITHUB_REPOSITORY"
	EnvGitHubAPIURL  = "GITHUB_API_URL"
	EnvProvider      = "LLM_PROVIDER"
	EnvDryRun        = "PRREVIEW_DRY_RUN"
	EnvRedactSecrets = "PRREVIEW_REDACT_SECRETS"
)

// Config represents the effective prreview configuration.
type Config struct {
	Provider      string            `toml:"provider" json:"provider"`
	Model         string            `toml:"model" json:"model"`
	Owner         string            `toml:"owner" json:"owner"`
	Repo          string            `toml:"repo" json:"repo"`
	GitHubAPIURL  string            `toml:"github_api_url" json:"githubApiUrl"`
	BaseURLs      map[string]string `toml:"base_urls" json:"baseUrls,omitempty"`
	RedactSecrets bool              `toml:"redact_secrets" json:"redactSecrets"`

	DryRun      bool              `toml:"-" json:"dryRun"`
	GitHubToken string            `toml:"-" json:"githubToken,omitempty"`
	APIKeys     map[string]string `toml:"-" json:"apiKeys,omitempty"`
}

// Default returns a Config with all defaults applied.
func Default() Config {
	return Config{
		Provider:      providers.DefaultProvider,
		GitHubAPIURL:  "https://api.github.com",
		RedactSecrets: true,
	}
}

// ConfigDir returns the platform-appropriate config directory for prreview.
func ConfigDir(getenv func(string) string) (string, error) {
	if xdg := getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "prreview"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "prreview"), nil
	case "windows":
		if appData := getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "prreview"), nil
		}
		return filepath.Join(home, "AppData", "Roaming", "prreview"), nil
	default:
		return filepath.Join(home, ".config", "prreview"), nil
	}
}

// ConfigPath returns the full path to the config file.
func ConfigPath(getenv func(string) string) (string, error) {
	dir, err := ConfigDir(getenv)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// LoadFile loads config from path. Returns zero Config and nil error if the
// file doesn't exist. The returned metadata reports which keys were set.
func LoadFile(path string) (Config, toml.MetaData, error) {
	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Config{}, toml.MetaData{}, nil
		}
		return Config{}, toml.MetaData{}, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return cfg, md, nil
}

// Save writes the file-backed fields of cfg to path. Credentials are never
// written.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()
	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return nil
}

// Load builds the effective config by merging: defaults <- file <- env <- overrides.
// getenv is the environment lookup (os.Getenv in production). The overrides
// map comes from CLI flags (only non-empty values should be set).
//
// Load fails with an *Error when the selected provider is unsupported or a
// setting cannot be parsed. Required credentials are not checked here; see
// RequirePlatform and RequireProviderKey.
func Load(getenv func(string) string, overrides map[string]string) (Config, error) {
	path, err := ConfigPath(getenv)
	if err != nil {
		return Config{}, err
	}
	fileCfg, md, err := LoadFile(path)
	if err != nil {
		return Config{}, err
	}
	return resolve(getenv, fileCfg, md, overrides)
}

func resolve(getenv func(string) string, fileCfg Config, md toml.MetaData, overrides map[string]string) (Config, error) {
	cfg := Default()
	mergeFile(&cfg, fileCfg, md)
	if err := mergeEnv(&cfg, getenv); err != nil {
		return Config{}, err
	}
	if err := mergeOverrides(&cfg, overrides); err != nil {
		return Config{}, err
	}

	spec, ok := providers.Lookup(cfg.Provider)
	if !ok {
		return Config{}, &Error{
			Variable: EnvProvider,
			Value:    cfg.Provider,
			Reason:   "unsupported LLM provider (supported: " + strings.Join(providers.Names(), ", ") + ")",
		}
	}
	cfg.Provider = spec.Name

	// A model from the file belongs to the file's provider.
	if fileCfg.Provider != "" && !strings.EqualFold(fileCfg.Provider, cfg.Provider) {
		cfg.Model = ""
	}
	if v := getenv(spec.ModelEnv); v != "" {
		cfg.Model = v
	}
	if v := overrides["model"]; v != "" {
		cfg.Model = v
	}
	if cfg.Model == "" {
		cfg.Model = spec.DefaultModel
	}

	return cfg, nil
}

func mergeFile(dst *Config, src Config, md toml.MetaData) {
	if src.Provider != "" {
		dst.Provider = src.Provider
	}
	if src.Model != "" {
		dst.Model = src.Model
	}
	if src.Owner != "" {
		dst.Owner = src.Owner
	}
	if src.Repo != "" {
		dst.Repo = src.Repo
	}
	if src.GitHubAPIURL != "" {
		dst.GitHubAPIURL = src.GitHubAPIURL
	}
	for name, u := range src.BaseURLs {
		dst.setBaseURL(name, u)
	}
	if md.IsDefined("redact_secrets") {
		dst.RedactSecrets = src.RedactSecrets
	}
}

func mergeEnv(cfg *Config, getenv func(string) string) error {
	cfg.GitHubToken = getenv(EnvGitHubToken)

	if v := getenv(EnvProvider); v != "" {
		cfg.Provider = strings.ToLower(strings.TrimSpace(v))
	}
	if v := getenv(EnvRepoOwner); v != "" {
		cfg.Owner = v
	}
	if v := getenv(EnvRepoName); v != "" {
		cfg.Repo = v
	}
	if cfg.Owner == "" || cfg.Repo == "" {
		if owner, repo, ok := strings.Cut(getenv(EnvGitHubRepo), "/"); ok {
			if cfg.Owner == "" {
				cfg.Owner = owner
			}
			if cfg.Repo == "" {
				cfg.Repo = repo
			}
		}
	}
	if v := getenv(EnvGitHubAPIURL); v != "" {
		cfg.GitHubAPIURL = v
	}

	for _, spec := range providers.Catalog {
		if v := getenv(spec.APIKeyEnv); v != "" {
			if cfg.APIKeys == nil {
				cfg.APIKeys = map[string]string{}
			}
			cfg.APIKeys[spec.Name] = v
		}
		if v := getenv(spec.BaseURLEnv); v != "" {
			cfg.setBaseURL(spec.Name, v)
		}
	}

	if v := getenv(EnvDryRun); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return &Error{Variable: EnvDryRun, Value: v, Reason: "must be a boolean"}
		}
		cfg.DryRun = b
	}
	if v := getenv(EnvRedactSecrets); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return &Error{Variable: EnvRedactSecrets, Value: v, Reason: "must be a boolean"}
		}
		cfg.RedactSecrets = b
	}
	return nil
}

func mergeOverrides(cfg *Config, overrides map[string]string) error {
	if overrides == nil {
		return nil
	}
	if v, ok := overrides["provider"]; ok && v != "" {
		cfg.Provider = strings.ToLower(strings.TrimSpace(v))
	}
	if v, ok := overrides["owner"]; ok && v != "" {
		cfg.Owner = v
	}
	if v, ok := overrides["repo"]; ok && v != "" {
		cfg.Repo = v
	}
	if v, ok := overrides["dryRun"]; ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return &Error{Variable: "--dry-run", Value: v, Reason: "must be a boolean"}
		}
		cfg.DryRun = b
	}
	return nil
}

func (c *Config) setBaseURL(provider, u string) {
	if c.BaseURLs == nil {
		c.BaseURLs = map[string]string{}
	}
	c.BaseURLs[strings.ToLower(provider)] = u
}

// APIKey returns the credential for the selected provider.
func (c Config) APIKey() string {
	return c.APIKeys[c.Provider]
}

// BaseURL returns the API base for the selected provider, empty for the
// provider's public endpoint.
func (c Config) BaseURL() string {
	return c.BaseURLs[c.Provider]
}

// Repository returns the qualified "owner/name" of the configured repository.
func (c Config) Repository() string {
	return c.Owner + "/" + c.Repo
}

// RequirePlatform checks the settings needed to reach the change-request
// platform, reporting the first missing one in the order GITHUB_TOKEN,
// REPO_OWNER, REPO_NAME.
func (c Config) RequirePlatform() error {
	if c.GitHubToken == "" {
		return missing(EnvGitHubToken)
	}
	if c.Owner == "" {
		return missing(EnvRepoOwner)
	}
	if c.Repo == "" {
		return missing(EnvRepoName)
	}
	return nil
}

// RequireProviderKey checks that the API key for the selected provider is set.
func (c Config) RequireProviderKey() error {
	spec, ok := providers.Lookup(c.Provider)
	if !ok {
		return &Error{Variable: EnvProvider, Value: c.Provider, Reason: "unsupported LLM provider"}
	}
	if c.APIKey() == "" {
		return missing(spec.APIKeyEnv)
	}
	return nil
}

// Masked returns a copy of c with credentials replaced, for display.
func (c Config) Masked() Config {
	out := c
	out.GitHubToken = mask(c.GitHubToken)
	if len(c.APIKeys) > 0 {
		out.APIKeys = make(map[string]string, len(c.APIKeys))
		for k, v := range c.APIKeys {
			out.APIKeys[k] = mask(v)
		}
	}
	return out
}

func mask(s string) string {
	if s == "" {
		return ""
	}
	if len(s) <= 8 {
		return "****"
	}
	return s[:4] + "****"
}
