package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	EnvPrefix  = "RRPOOL"
	ConfigFlag = "config"
)

// flagKeys maps command line flag names to configuration keys.
var flagKeys = map[string]string{
	"server-host":         "server.host",
	"server-port":         "server.port",
	"server-strategy":     "server.strategy",
	"server-buffer-size":  "server.buffer-size",
	"server-max-headers":  "server.max-headers",
	"server-read-timeout": "server.read-timeout",
	"pool-workers":        "pool.workers",
	"admin-enabled":       "admin.enabled",
	"admin-http-port":     "admin.http-port",
	"admin-server-mode":   "admin.server-mode",
	"log-format":          "log-format",
	"log-level":           "log-level",
}

// RegisterFlags adds one flag per configuration field to fs, using the
// struct defaults as flag defaults.
func RegisterFlags(fs *pflag.FlagSet) {
	d := NewConfigurationWithOptionsAndDefaults()

	fs.String(ConfigFlag, "", "Path to a YAML configuration file")

	fs.String("server-host", d.Server.Host, "Address the front-end listens on")
	fs.Int("server-port", d.Server.Port, "Port the front-end listens on")
	fs.String("server-strategy", d.Server.Strategy, "Connection strategy: pool, thread or percore")
	fs.Int("server-buffer-size", d.Server.BufferSize, "Maximum size in bytes of a request head")
	fs.Int("server-max-headers", d.Server.MaxHeaders, "Maximum number of header fields in a request head")
	fs.Duration("server-read-timeout", d.Server.ReadTimeout, "Time a client has to send its request head (0 disables it)")
	fs.Int("pool-workers", d.Pool.Workers, "Number of pool workers (0 means one per CPU)")
	fs.Bool("admin-enabled", d.Admin.Enabled, "Start the admin HTTP server")
	fs.Int("admin-http-port", d.Admin.HTTPPort, "Port of the admin HTTP server")
	fs.String("admin-server-mode", d.Admin.ServerMode, "Admin server mode: dev or prod")
	fs.String("log-format", d.LogFormat, "Log format: console or json")
	fs.String("log-level", d.LogLevel, "Log level: debug, info, warn or error")
}

// Load builds the configuration from, in increasing priority, the defaults,
// the file named by the config flag, RRPOOL_* environment variables and the
// flags set on the command line.
func Load(v *viper.Viper, fs *pflag.FlagSet) (*Configuration, error) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	for name, key := range flagKeys {
		flag := fs.Lookup(name)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return nil, fmt.Errorf("failed to bind flag %q: %w", name, err)
		}
	}

	if f := fs.Lookup(ConfigFlag); f != nil && f.Value.String() != "" {
		v.SetConfigFile(f.Value.String())
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := NewConfigurationWithOptionsAndDefaults()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
