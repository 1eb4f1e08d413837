package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// Option customizes Load.
type Option func(*options)

type options struct {
	dotEnvFile string
	configFile string
}

// WithDotEnvFile reads variables from path instead of ".env". An empty path
// disables the .env layer.
func WithDotEnvFile(path string) Option {
	return func(o *options) {
		o.dotEnvFile = path
	}
}

// WithConfigFile reads the YAML layer from path, taking precedence over
// APP_CONFIG_FILE.
func WithConfigFile(path string) Option {
	return func(o *options) {
		o.configFile = path
	}
}

// Load builds the configuration snapshot. Layers apply in this order, later
// ones winning:
//
//  1. built-in defaults
//  2. the YAML file (WithConfigFile or APP_CONFIG_FILE)
//  3. the .env file, which never overrides variables already set
//  4. the process environment
//
// Every invalid value, unknown YAML key and undeclared variable with a reserved
// prefix is collected into a single *ValidationError.
//
// Example:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	client, err := logger.NewLoggerClient(cfg.Log)
func Load(opts ...Option) (Config, error) {
	o := options{dotEnvFile: DefaultDotEnvFile}
	for _, opt := range opts {
		opt(&o)
	}

	if err := loadDotEnv(o.dotEnvFile); err != nil {
		return Config{}, err
	}

	cfg := Default()
	var errs problems

	path := o.configFile
	if path == "" {
		path = os.Getenv("APP_CONFIG_FILE")
	}
	if path != "" {
		if err := decodeFile(path, &cfg, &errs); err != nil {
			return Config{}, err
		}
	}

	for _, section := range cfg.sections() {
		if err := envconfig.Process("", section); err != nil {
			errs.add(describeEnvError(err))
		}
	}

	declared, err := declaredKeys(cfg.sections())
	if err != nil {
		return Config{}, fmt.Errorf("cannot list configuration variables: %w", err)
	}
	checkUndeclared(declared, &errs)

	cfg.App.ConfigFile = path
	cfg.propagate()
	validateStruct(cfg, &errs)

	if err := errs.err(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func loadDotEnv(path string) error {
	if path == "" {
		return nil
	}
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("cannot read %s: %w", path, err)
}

// decodeFile applies the YAML layer. Unknown keys are validation problems; a
// missing or unreadable file is returned as is.
func decodeFile(path string, cfg *Config, errs *problems) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("cannot open config file: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		describeYAMLError(path, err, errs)
	}
	return nil
}
