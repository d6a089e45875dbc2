// Package inspect serves a read-only JSON view of the compiled container over HTTP.
package inspect

import "errors"

// DefaultAddress is the default address of the inspect listener. It binds
// the loopback interface only.
const DefaultAddress = "127.0.0.1:8081"

// ErrEmptyAddress is returned when the address is empty.
var ErrEmptyAddress = errors.New("address must not be empty")

// ErrListenFailed is returned when the server fails to listen on the configured address.
var ErrListenFailed = errors.New("failed to listen")

// ErrShutdownFailed is returned when the server fails to shut down gracefully.
var ErrShutdownFailed = errors.New("shutdown failed")

// ErrEmptyName is returned when the listener name is empty.
var ErrEmptyName = errors.New("listener name must not be empty")

// ErrNilHandler is returned when a nil http.Handler is provided.
var ErrNilHandler = errors.New("handler must not be nil")

// ErrNilContainer is returned when no compiled container is provided.
var ErrNilContainer = errors.New("container must not be nil")

// Config holds the configuration for an inspect listener.
type Config struct {
	Address string `xml:"address" yaml:"address"`
}

// SetDefaults sets default values for the Config.
func (c *Config) SetDefaults() bool {
	if c.Address == "" {
		c.Address = DefaultAddress

		return true
	}

	return false
}

// Validate validates the Config.
func (c *Config) Validate() error {
	if c.Address == "" {
		return ErrEmptyAddress
	}

	return nil
}
