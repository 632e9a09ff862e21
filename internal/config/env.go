package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Env holds process configuration, populated from environment
// variables with the APP prefix dropped for the common ones.
type Env struct {
	AppAddr string `envconfig:"APP_ADDR" default:":8080"`
	GinMode string `envconfig:"GIN_MODE"`

	PaymentDelay       time.Duration `envconfig:"PAYMENT_DELAY" default:"2500ms"`
	PaymentSuccessRate float64       `envconfig:"PAYMENT_SUCCESS_RATE" default:"0.85"`
	PaymentTimeout     time.Duration `envconfig:"PAYMENT_TIMEOUT" default:"30s"`

	SessionTTL time.Duration `envconfig:"SESSION_TTL" default:"30m"`

	CORSAllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
}

// LoadEnv reads the environment. Unset variables take their defaults;
// a malformed value is returned as an error rather than silently
// dropped.
func LoadEnv() (Env, error) {
	var env Env
	if err := envconfig.Process("", &env); err != nil {
		return Env{}, err
	}
	return env, nil
}
