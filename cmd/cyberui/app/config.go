package app

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/agentstation/cyberui/internal/server"
	"github.com/agentstation/cyberui/pkg/constants"
	"github.com/agentstation/cyberui/pkg/errors"
)

// Config holds the application configuration loaded from various sources
// including config files, environment variables, and .env files.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool
	Format  string

	// Config file
	ConfigFile string

	// Logging configuration
	LogLevel  string
	LogFormat string
	LogOutput string

	// Server holds defaults for the serve command.
	Server server.Config
}

// LoadConfig loads configuration from all sources in order of precedence:
// 1. Command-line flags (applied later by UpdateFromFlags)
// 2. Environment variables
// 3. .env files
// 4. Config file (configFile, or ~/.cyberui.yaml / ./.cyberui.yaml)
// 5. Defaults
func LoadConfig(configFile string) (*Config, error) {
	loadEnvFiles()

	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	setDefaults(v)

	if configFile == "" {
		configFile = os.Getenv("CYBERUI_CONFIG")
	}
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.NewConfigError("config", "failed to read "+configFile, err)
		}
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(".cyberui")

		// A missing default config file is fine.
		_ = v.ReadInConfig()
	}

	config := &Config{
		Verbose: v.GetBool("verbose"),
		Quiet:   v.GetBool("quiet"),
		NoColor: v.GetBool("no-color") || os.Getenv("NO_COLOR") != "",
		Format:  v.GetString("format"),

		ConfigFile: v.ConfigFileUsed(),

		LogLevel:  v.GetString("log_level"),
		LogFormat: v.GetString("log_format"),
		LogOutput: v.GetString("log_output"),

		Server: server.Config{
			Host:            v.GetString("server.host"),
			Port:            v.GetInt("server.port"),
			PathPrefix:      v.GetString("server.prefix"),
			CORSEnabled:     v.GetBool("server.cors"),
			CORSOrigins:     v.GetStringSlice("server.cors_origins"),
			RateLimit:       v.GetInt("server.rate_limit"),
			CacheTTL:        v.GetDuration("server.cache_ttl"),
			ReadTimeout:     v.GetDuration("server.read_timeout"),
			WriteTimeout:    v.GetDuration("server.write_timeout"),
			IdleTimeout:     v.GetDuration("server.idle_timeout"),
			ShutdownTimeout: v.GetDuration("server.shutdown_timeout"),
		},
	}

	return config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log_format", "auto")
	v.SetDefault("log_output", "stderr")

	v.SetDefault("server.host", constants.DefaultHost)
	v.SetDefault("server.port", constants.DefaultPort)
	v.SetDefault("server.prefix", constants.DefaultPathPrefix)
	v.SetDefault("server.cors", false)
	v.SetDefault("server.cors_origins", []string{})
	v.SetDefault("server.rate_limit", constants.DefaultRateLimit)
	v.SetDefault("server.cache_ttl", constants.DefaultCacheTTL)
	v.SetDefault("server.read_timeout", constants.DefaultReadTimeout)
	v.SetDefault("server.write_timeout", constants.DefaultWriteTimeout)
	v.SetDefault("server.idle_timeout", constants.DefaultIdleTimeout)
	v.SetDefault("server.shutdown_timeout", constants.DefaultShutdownTimeout)
}

// Flags carries the persistent flag values that were explicitly set on
// the command line. Nil fields were not set.
type Flags struct {
	Verbose  *bool
	Quiet    *bool
	NoColor  *bool
	Format   *string
	LogLevel *string
}

// UpdateFromFlags applies explicitly set flag values over config file and
// environment values.
func (c *Config) UpdateFromFlags(f Flags) {
	if f.Verbose != nil {
		c.Verbose = *f.Verbose
	}
	if f.Quiet != nil {
		c.Quiet = *f.Quiet
	}
	if f.NoColor != nil {
		c.NoColor = *f.NoColor
	}
	if f.Format != nil {
		c.Format = *f.Format
	}
	if f.LogLevel != nil {
		c.LogLevel = *f.LogLevel
	}
}

// loadEnvFiles loads environment variables from .env files.
// godotenv never overrides variables that are already set, so
// .env.local must be loaded first to win over .env.
func loadEnvFiles() {
	for _, envFile := range []string{".env.local", ".env"} {
		_ = godotenv.Load(envFile)
	}
}
