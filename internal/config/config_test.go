package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/confirmly/dashboard-api/internal/repository/memory"
)

func validConfig() *Config {
	return &Config{
		Storage:   StorageConfig{Mode: StorageModeMock},
		Generator: memory.DefaultGeneratorConfig(),
	}
}

func TestValidateAcceptsDefaults(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestValidateRejectsUnknownMode(t *testing.T) {
	cfg := validConfig()
	cfg.Storage.Mode = "sqlite"
	assert.Error(t, cfg.Validate())
}

func TestValidateRejectsBadProportions(t *testing.T) {
	cfg := validConfig()
	cfg.Generator.Proportions.Confirmed = 0.99
	require.Error(t, cfg.Validate())
}

func TestGeneratorNotValidatedInDatabaseModes(t *testing.T) {
	cfg := validConfig()
	cfg.Storage.Mode = StorageModeDev
	cfg.Generator.Proportions.Confirmed = 0.99

	// Database modes never run the generator, so its parameters are not
	// load-bearing there.
	assert.NoError(t, cfg.Validate())
}

func TestValidateRejectsNegativeRetention(t *testing.T) {
	cfg := validConfig()
	cfg.Retention.Days = -1
	assert.Error(t, cfg.Validate())
}
