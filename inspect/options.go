package inspect

// Option defines a function type for configuring an inspect listener.
type Option func(*Config)

// WithAddress sets the address for the inspect listener.
func WithAddress(addr string) Option {
	return func(cfg *Config) {
		cfg.Address = addr
	}
}
