package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "http://localhost:11434/v1", cfg.EmbeddingHost)
	assert.Equal(t, "http://localhost:11434/v1", cfg.GenerationHost)
	assert.NotEmpty(t, cfg.EmbeddingModel)
	assert.NotEmpty(t, cfg.GenerationModel)
	require.NoError(t, cfg.Validate())
}

func TestNewConfig_Options(t *testing.T) {
	cfg := NewConfig(
		WithHost("http://llm.internal:9100"),
		WithEmbeddingModel("text-embedding-3-small"),
		WithGenerationModel("gpt-4o-mini"),
		WithAPIKey("sk-test"),
	)

	require.NoError(t, cfg.Validate())
	assert.Equal(t, "http://llm.internal:9100/v1", cfg.EmbeddingHost)
	assert.Equal(t, "http://llm.internal:9100/v1", cfg.GenerationHost)
	assert.Equal(t, "text-embedding-3-small", cfg.EmbeddingModel)
	assert.Equal(t, "gpt-4o-mini", cfg.GenerationModel)
	assert.Equal(t, "sk-test", cfg.APIKey)
}

func TestNewConfig_SeparateHosts(t *testing.T) {
	cfg := NewConfig(
		WithEmbeddingHost("http://localhost:11434"),
		WithGenerationHost("http://localhost:9100/"),
	)

	require.NoError(t, cfg.Validate())
	assert.Equal(t, "http://localhost:11434/v1", cfg.EmbeddingHost)
	assert.Equal(t, "http://localhost:9100/v1", cfg.GenerationHost)
}

func TestConfig_Normalize(t *testing.T) {
	tests := []struct {
		name string
		host string
		want string
	}{
		{
			name: "adds v1 suffix",
			host: "http://localhost:8080",
			want: "http://localhost:8080/v1",
		},
		{
			name: "strips trailing slash before suffix",
			host: "http://localhost:8080/",
			want: "http://localhost:8080/v1",
		},
		{
			name: "keeps existing suffix",
			host: "http://localhost:8080/v1",
			want: "http://localhost:8080/v1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig(WithHost(tt.host))
			cfg.Normalize()
			assert.Equal(t, tt.want, cfg.EmbeddingHost)
			assert.Equal(t, tt.want, cfg.GenerationHost)
		})
	}
}

func TestConfig_Validate_MissingFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing embedding host", func(c *Config) { c.EmbeddingHost = "" }},
		{"missing generation host", func(c *Config) { c.GenerationHost = "" }},
		{"missing embedding model", func(c *Config) { c.EmbeddingModel = "" }},
		{"missing generation model", func(c *Config) { c.GenerationModel = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestConfig_Normalize_DefaultAPIKey(t *testing.T) {
	cfg := DefaultConfig()
	cfg.APIKey = ""
	cfg.Normalize()

	assert.Equal(t, "none", cfg.APIKey)
}
