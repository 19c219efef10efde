package settings

import (
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Settings is the full configuration surface of the program, built once at
// startup and passed into constructors. Core packages never read the
// environment themselves.
type Settings struct {
	BotsFile     string
	OpenAIAPIKey string
	Model        string
	LogLevel     string
}

// BindEnv wires the environment variables onto a viper instance. BOTS_FILE
// and OPENAI_API_KEY keep their historical bare names; the rest are
// LOOM_-prefixed.
func BindEnv(v *viper.Viper) error {
	for key, envVar := range map[string]string{
		"bots-file":      "BOTS_FILE",
		"openai-api-key": "OPENAI_API_KEY",
		"model":          "LOOM_MODEL",
		"log-level":      "LOOM_LOG_LEVEL",
	} {
		if err := v.BindEnv(key, envVar); err != nil {
			return err
		}
	}
	v.SetDefault("model", "gpt-4")
	v.SetDefault("log-level", "info")
	return nil
}

// FromViper reads settings out of a viper instance that already has env
// bindings and any config file applied. Explicit Get calls rather than
// Unmarshal, because viper does not surface env-only values to Unmarshal.
func FromViper(v *viper.Viper) *Settings {
	return &Settings{
		BotsFile:     v.GetString("bots-file"),
		OpenAIAPIKey: v.GetString("openai-api-key"),
		Model:        v.GetString("model"),
		LogLevel:     v.GetString("log-level"),
	}
}

// Validate checks the fields the chat loop cannot run without.
func (s *Settings) Validate() error {
	if s.BotsFile == "" {
		return errors.New("no bots file configured (set BOTS_FILE)")
	}
	if s.OpenAIAPIKey == "" {
		return errors.New("no API key configured (set OPENAI_API_KEY)")
	}
	return nil
}
