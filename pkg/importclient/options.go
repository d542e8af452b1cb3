// Package importclient uploads zipped calibration documents to the import API.
package importclient

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Defaults for a local development API.
const (
	DefaultAPIURL   = "http://localhost:4010"
	DefaultEmail    = "office@local"
	DefaultPassword = "1234"
	DefaultZipPath  = "../../test-import.zip"
)

// Options configures the upload client.
type Options struct {
	APIURL   string `mapstructure:"api_url"`
	Email    string `mapstructure:"email"`
	Password string `mapstructure:"password"`
	// Timeout bounds each HTTP request. Zero leaves the client default (none).
	Timeout time.Duration `mapstructure:"timeout"`
}

// DefaultOptions returns the local development defaults.
func DefaultOptions() Options {
	return Options{
		APIURL:   DefaultAPIURL,
		Email:    DefaultEmail,
		Password: DefaultPassword,
	}
}

// SetDefaults registers DefaultOptions on v.
func SetDefaults(v *viper.Viper) {
	d := DefaultOptions()
	v.SetDefault("api_url", d.APIURL)
	v.SetDefault("email", d.Email)
	v.SetDefault("password", d.Password)
	v.SetDefault("timeout", d.Timeout)
}

// LoadOptions reads Options from v. When configFile is set it is read first;
// flags bound to v take precedence over it.
func LoadOptions(v *viper.Viper, configFile string) (Options, error) {
	SetDefaults(v)
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return Options{}, fmt.Errorf("read config %s: %w", configFile, err)
		}
	}

	var opts Options
	if err := v.Unmarshal(&opts); err != nil {
		return Options{}, fmt.Errorf("decode config: %w", err)
	}
	opts = opts.Normalize()
	if err := opts.Validate(); err != nil {
		return Options{}, err
	}
	return opts, nil
}

// Normalize trims whitespace and a trailing slash from the API URL.
func (o Options) Normalize() Options {
	o.APIURL = strings.TrimRight(strings.TrimSpace(o.APIURL), "/")
	o.Email = strings.TrimSpace(o.Email)
	return o
}

// Validate ensures the options can be used to reach the API.
func (o Options) Validate() error {
	if o.APIURL == "" {
		return fmt.Errorf("api_url is required")
	}
	if o.Timeout < 0 {
		return fmt.Errorf("timeout cannot be negative")
	}
	return nil
}
