package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/Aleph-Alpha/appkit/pkg/logger"
	"github.com/Aleph-Alpha/appkit/pkg/metrics"
	"github.com/Aleph-Alpha/appkit/pkg/tracer"
)

// Defaults for the application section.
const (
	DefaultEnvironment = logger.EnvironmentLocal
	DefaultName        = "Node API"
	DefaultDotEnvFile  = ".env"
)

// AppConfig holds the settings shared by every package.
type AppConfig struct {
	// Env selects the logging behavior: "production", "development" or "local".
	//
	// This setting can be configured via:
	//   - YAML configuration with the "env" key
	//   - Environment variable NODE_ENV
	Env string `yaml:"env" envconfig:"NODE_ENV" validate:"oneof=production development local"`

	// Name identifies the service in collector records, metric labels and
	// trace resources.
	//
	// This setting can be configured via:
	//   - YAML configuration with the "name" key
	//   - Environment variable APP_NAME
	Name string `yaml:"name" envconfig:"APP_NAME" validate:"required"`

	// ConfigFile points at an optional YAML file. It is only read from the
	// environment (or a .env file) since it locates the YAML itself.
	ConfigFile string `yaml:"-" envconfig:"APP_CONFIG_FILE"`
}

// Config is the immutable configuration snapshot of the process.
//
// It is returned by value; the sub-configurations handed to the other
// packages already carry the application name and environment.
type Config struct {
	App     AppConfig      `yaml:"app"`
	Log     logger.Config  `yaml:"log"`
	Metrics metrics.Config `yaml:"metrics"`
	Tracing tracer.Config  `yaml:"tracing"`
}

// Default returns the snapshot used when neither a file nor the environment
// sets anything.
func Default() Config {
	cfg := Config{
		App: AppConfig{
			Env:  DefaultEnvironment,
			Name: DefaultName,
		},
		Log:     logger.DefaultConfig(),
		Metrics: metrics.DefaultConfig(),
	}
	cfg.propagate()
	return cfg
}

// propagate copies the application section into the package sections.
func (c *Config) propagate() {
	c.Log.Environment = c.App.Env
	c.Log.ServiceName = c.App.Name
	c.Metrics.ServiceName = c.App.Name
	c.Tracing.ServiceName = c.App.Name
	c.Tracing.AppEnv = c.App.Env
}

// sections lists the structs read from the environment, each without a key
// prefix so the declared variable names are used verbatim.
func (c *Config) sections() []interface{} {
	return []interface{}{&c.App, &c.Log, &c.Metrics, &c.Tracing}
}

// String renders the snapshot as YAML. Secrets appear as [REDACTED].
func (c Config) String() string {
	out, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Sprintf("config: %v", err)
	}
	return string(out)
}
