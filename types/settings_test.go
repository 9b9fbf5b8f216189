package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSettingsRedacted(t *testing.T) {
	settings := Settings{
		{Key: "SHIFTBASE_API_URL", Value: "https://api.shiftbase.com/api"},
		{Key: "SHIFTBASE_API_KEY", Value: "super-secret", Secret: true},
	}

	redacted := settings.Redacted()

	assert.Equal(t, "https://api.shiftbase.com/api", redacted[0].Value)
	assert.Equal(t, MaskToken, redacted[1].Value)

	// The original is untouched; the control plane still gets real values.
	assert.Equal(t, "super-secret", settings[1].Value)
}

func TestSettingsGet(t *testing.T) {
	settings := Settings{{Key: "DB_TARGET_TABLE", Value: "shift_report"}}

	value, ok := settings.Get("DB_TARGET_TABLE")
	assert.True(t, ok)
	assert.Equal(t, "shift_report", value)

	_, ok = settings.Get("MISSING")
	assert.False(t, ok)
}
