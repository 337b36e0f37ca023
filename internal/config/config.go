package config

import (
	"time"

	"github.com/go-playground/validator/v10"

	srvErrors "github.com/tupyy/rrpool/pkg/errors"
)

const (
	StrategyPool    = "pool"
	StrategyThread  = "thread"
	StrategyPerCore = "percore"
)

//go:generate go run github.com/ecordell/optgen -output zz_generated.configuration.go . Configuration Server Pool Admin
type Configuration struct {
	Server    Server `debugmap:"visible" mapstructure:"server"`
	Pool      Pool   `debugmap:"visible" mapstructure:"pool"`
	Admin     Admin  `debugmap:"visible" mapstructure:"admin"`
	LogFormat string `debugmap:"visible" mapstructure:"log-format" default:"console" validate:"oneof=console json"`
	LogLevel  string `debugmap:"visible" mapstructure:"log-level" default:"debug" validate:"oneof=debug info warn error"`
}

type Server struct {
	Host        string        `debugmap:"visible" mapstructure:"host" default:"0.0.0.0"`
	Port        int           `debugmap:"visible" mapstructure:"port" default:"8080" validate:"min=0,max=65535"`
	Strategy    string        `debugmap:"visible" mapstructure:"strategy" default:"pool" validate:"oneof=pool thread percore"`
	BufferSize  int           `debugmap:"visible" mapstructure:"buffer-size" default:"8096" validate:"min=64"`
	MaxHeaders  int           `debugmap:"visible" mapstructure:"max-headers" default:"16" validate:"min=1"`
	// ReadTimeout bounds the time a client has to send its request head.
	// Zero disables it.
	ReadTimeout time.Duration `debugmap:"visible" mapstructure:"read-timeout" default:"10s" validate:"min=0s"`
}

type Pool struct {
	Workers int `debugmap:"visible" mapstructure:"workers" default:"0" validate:"min=0"`
}

type Admin struct {
	Enabled    bool   `debugmap:"visible" mapstructure:"enabled" default:"true"`
	HTTPPort   int    `debugmap:"visible" mapstructure:"http-port" default:"8000" validate:"min=0,max=65535"`
	ServerMode string `debugmap:"visible" mapstructure:"server-mode" default:"dev" validate:"oneof=dev prod"`
}

// Validate checks field constraints declared in the struct tags.
func (c *Configuration) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return srvErrors.NewInvalidConfigurationError(err)
	}
	return nil
}
