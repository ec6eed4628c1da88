package dogapi

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

const (
	// DefaultBaseURL is the public dog.ceo API host.
	DefaultBaseURL = "https://dog.ceo"

	// DefaultUserAgent is sent with every request unless overridden.
	DefaultUserAgent = "go-breed-cache/1.0"

	// DefaultTimeout bounds a single request made with the default HTTP client.
	DefaultTimeout = 10 * time.Second
)

// Config holds the settings for the dog.ceo client.
type Config struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
}

// DefaultConfig returns a Config pointing at the public API.
func DefaultConfig() Config {
	return Config{
		BaseURL:   DefaultBaseURL,
		UserAgent: DefaultUserAgent,
		Timeout:   DefaultTimeout,
	}
}

// Validate checks whether the configuration values are valid.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.BaseURL, validation.Required, is.URL),
		validation.Field(&c.UserAgent, validation.Required),
		validation.Field(&c.Timeout, validation.Min(time.Duration(0))),
	)
}
