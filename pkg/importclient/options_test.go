package importclient

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOptionsDefaults(t *testing.T) {
	opts, err := LoadOptions(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, DefaultOptions(), opts)
}

func TestLoadOptionsConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "uploaddocs.yaml")
	content := "api_url: http://calibration.internal:8080/\n" +
		"email: lab@example.com\n" +
		"timeout: 30s\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	opts, err := LoadOptions(viper.New(), path)
	require.NoError(t, err)

	assert.Equal(t, "http://calibration.internal:8080", opts.APIURL)
	assert.Equal(t, "lab@example.com", opts.Email)
	assert.Equal(t, DefaultPassword, opts.Password)
	assert.Equal(t, 30*time.Second, opts.Timeout)
}

func TestLoadOptionsErrors(t *testing.T) {
	_, err := LoadOptions(viper.New(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	v := viper.New()
	v.Set("api_url", "  ")
	_, err = LoadOptions(v, "")
	assert.Error(t, err)

	v = viper.New()
	v.Set("timeout", "-1s")
	_, err = LoadOptions(v, "")
	assert.Error(t, err)
}
