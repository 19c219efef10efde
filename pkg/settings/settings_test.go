package settings

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper(t *testing.T) {
	v := viper.New()
	require.NoError(t, BindEnv(v))
	v.Set("bots-file", "/tmp/bots.json")
	v.Set("openai-api-key", "sk-test")
	v.Set("model", "gpt-4-turbo")

	s := FromViper(v)
	assert.Equal(t, "/tmp/bots.json", s.BotsFile)
	assert.Equal(t, "sk-test", s.OpenAIAPIKey)
	assert.Equal(t, "gpt-4-turbo", s.Model)
}

func TestBindEnvDefaults(t *testing.T) {
	v := viper.New()
	require.NoError(t, BindEnv(v))

	s := FromViper(v)
	assert.Equal(t, "gpt-4", s.Model)
	assert.Equal(t, "info", s.LogLevel)
}

func TestBindEnvReadsEnvironment(t *testing.T) {
	t.Setenv("BOTS_FILE", "/somewhere/bots.json")
	t.Setenv("OPENAI_API_KEY", "sk-env")

	v := viper.New()
	require.NoError(t, BindEnv(v))

	s := FromViper(v)
	assert.Equal(t, "/somewhere/bots.json", s.BotsFile)
	assert.Equal(t, "sk-env", s.OpenAIAPIKey)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		s       Settings
		wantErr string
	}{
		{"valid", Settings{BotsFile: "bots.json", OpenAIAPIKey: "sk"}, ""},
		{"missing bots file", Settings{OpenAIAPIKey: "sk"}, "BOTS_FILE"},
		{"missing api key", Settings{BotsFile: "bots.json"}, "OPENAI_API_KEY"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.s.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}
