package config

import (
	"testing"

	v "github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reset(t *testing.T) {
	t.Helper()

	v.Reset()
	SetDefaults()
	t.Cleanup(v.Reset)
}

func TestDefaultsAreValid(t *testing.T) {
	reset(t)

	require.NoError(t, Validate())
	assert.Equal(t, int64(10<<20), v.GetInt64("upload.max_size"))
	assert.Equal(t, "everton@miranda.com", v.GetString("mail.from_address"))
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := map[string]any{
		"app.log_level":       "verbose",
		"host.port":           0,
		"db.driver":           "mysql",
		"security.rate_limit": -1,
		"security.token_ttl":  "0s",
		"storage.type":        "ftp",
		"upload.max_size":     0,
	}

	for key, val := range cases {
		t.Run(key, func(t *testing.T) {
			reset(t)
			v.Set(key, val)

			assert.Error(t, Validate())
		})
	}
}

func TestValidateS3RequiresCredentials(t *testing.T) {
	reset(t)
	v.Set("storage.type", "s3")
	assert.Error(t, Validate())

	reset(t)
	v.Set("storage.type", "s3")
	v.Set("aws.region", "us-east-1")
	v.Set("aws.access_key", "key")
	v.Set("aws.secret_access_key", "secret")
	v.Set("aws.bucket", "uploads")
	assert.NoError(t, Validate())
}

func TestValidateTurnstileNeedsSecret(t *testing.T) {
	reset(t)
	v.Set("turnstile.enabled", true)
	assert.Error(t, Validate())
}
