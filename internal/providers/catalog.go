package providers

import "strings"

// Provider names.
const (
	OpenAIName   = "openai"
	DeepSeekName = "deepseek"
)

// Spec describes a supported provider: its defaults and the environment
// variables that configure it.
type Spec struct {
	Name           string
	DefaultModel   string
	DefaultBaseURL string
	APIKeyEnv      string
	ModelEnv       string
	BaseURLEnv     string
	Models         []string
}

// Catalog lists the supported providers. The first entry is the default.
var Catalog = []Spec{
	{
		Name:           OpenAIName,
		DefaultModel:   "gpt-4-1106-preview",
		DefaultBaseURL: "https://api.openai.com/v1",
		APIKeyEnv:      "OPENAI_API_KEY",
		ModelEnv:       "OPENAI_MODEL",
		BaseURLEnv:     "OPENAI_BASE_URL",
		Models: []string{
			"gpt-4-1106-preview",
			"gpt-4o",
			"gpt-4o-mini",
			"gpt-4.1",
			"gpt-4.1-mini",
		},
	},
	{
		Name:           DeepSeekName,
		DefaultModel:   "deepseek-chat",
		DefaultBaseURL: "https://api.deepseek.com/v1",
		APIKeyEnv:      "DEEPSEEK_API_KEY",
		ModelEnv:       "DEEPSEEK_MODEL",
		BaseURLEnv:     "DEEPSEEK_BASE_URL",
		Models: []string{
			"deepseek-chat",
			"deepseek-reasoner",
		},
	},
}

// DefaultProvider is the provider used when none is configured.
const DefaultProvider = OpenAIName

// Lookup returns the spec for a provider name, ignoring case.
func Lookup(name string) (Spec, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, s := range Catalog {
		if s.Name == name {
			return s, true
		}
	}
	return Spec{}, false
}

// Names returns the supported provider names in catalog order.
func Names() []string {
	names := make([]string, len(Catalog))
	for i, s := range Catalog {
		names[i] = s.Name
	}
	return names
}
