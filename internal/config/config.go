package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	DefaultAPIURL      = "https://images-api.nasa.gov"
	DefaultSiteURL     = "https://images.nasa.gov"
	DefaultHTTPTimeout = 15 * time.Second
)

// Init wires environment variables, an optional config.env file and the
// persistent flags of root into viper. Flag names use dashes, keys use
// underscores: --log-level binds log_level.
func Init(root *cobra.Command) {
	viper.AutomaticEnv()
	_ = godotenv.Load("config.env")
	if root != nil {
		root.PersistentFlags().VisitAll(func(f *pflag.Flag) {
			_ = viper.BindPFlag(strings.ReplaceAll(f.Name, "-", "_"), f)
		})
	}
	setDefaults()
}

func setDefaults() {
	viper.SetDefault(KeyAPIURL, DefaultAPIURL)
	viper.SetDefault(KeySiteURL, DefaultSiteURL)
	viper.SetDefault(KeyHTTPTimeout, DefaultHTTPTimeout.String())
	viper.SetDefault(KeyRateLimit, 0.0)
	viper.SetDefault(KeyCaptionsPreviewSize, 1000)
	viper.SetDefault(KeyLogLevel, "info")
	viper.SetDefault(KeyTransport, "stdio")
	viper.SetDefault(KeyHost, "0.0.0.0")
	viper.SetDefault(KeyPort, 8000)
	viper.SetDefault(KeyEndpointPath, "/mcp")
}

func APIURL() string           { return strings.TrimRight(viper.GetString(KeyAPIURL), "/") }
func SiteURL() string          { return strings.TrimRight(viper.GetString(KeySiteURL), "/") }
func RateLimit() float64       { return viper.GetFloat64(KeyRateLimit) }
func CaptionsPreviewSize() int { return viper.GetInt(KeyCaptionsPreviewSize) }
func LogLevel() string         { return viper.GetString(KeyLogLevel) }
func Transport() string        { return strings.ToLower(viper.GetString(KeyTransport)) }
func Host() string             { return viper.GetString(KeyHost) }
func Port() int                { return viper.GetInt(KeyPort) }
func EndpointPath() string     { return viper.GetString(KeyEndpointPath) }

// HTTPTimeout bounds every outbound call to the NASA API.
func HTTPTimeout() (time.Duration, error) {
	d, err := parseDuration(viper.GetString(KeyHTTPTimeout), DefaultHTTPTimeout)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", KeyHTTPTimeout, err)
	}
	return d, nil
}

func parseDuration(value string, fallback time.Duration) (time.Duration, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(trimmed)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, fmt.Errorf("must be positive, got %s", d)
	}
	return d, nil
}
