package reqinfo

import "go.uber.org/zap"

type (
	// An Option changes the Config used by New and Middleware.
	Option func(*Config)

	// Config holds the settings shared by New and Middleware.
	Config struct {
		// EnvironmentKey names the variable consulted by IsEnvDev
		// and IsEnvProd.
		EnvironmentKey string

		// Environment, when non-empty, is written to EnvironmentKey
		// on every Env built by Middleware.
		Environment string

		Logger *zap.Logger
	}
)

func newConfig(opts ...Option) *Config {
	cfg := &Config{
		EnvironmentKey: DefaultEnvironmentKey,
	}
	cfg.Init(opts...)
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return cfg
}

// Init applies opts to cfg, skipping nil options.
func (cfg *Config) Init(opts ...Option) {
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}
}

// WithEnvironmentKey changes the name of the environment variable.
// Empty keys are ignored.
func WithEnvironmentKey(key string) Option {
	return func(cfg *Config) {
		if key != "" {
			cfg.EnvironmentKey = key
		}
	}
}

// WithEnvironment sets the deployment environment name ("dev",
// "prod", ...) that Middleware adds to each request's Env.
func WithEnvironment(name string) Option {
	return func(cfg *Config) {
		cfg.Environment = name
	}
}

// WithLogger sets the logger used for debug output.  A nil logger
// disables logging.
func WithLogger(log *zap.Logger) Option {
	return func(cfg *Config) {
		cfg.Logger = log
	}
}
