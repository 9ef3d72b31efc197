// Package config loads runtime settings for the multicast library: the size
// of the shared execution pool and the raise observer's instrumentation
// switches. Settings files are YAML or JSON.
package config

import "fmt"

// Settings holds the tunable runtime settings.
type Settings struct {
	// PoolSize caps the number of concurrently running units of work on
	// the shared pool. 0 means unbounded.
	PoolSize int `yaml:"pool_size" json:"pool_size"`

	// Observer configures raise instrumentation.
	Observer ObserverSettings `yaml:"observer" json:"observer"`
}

// ObserverSettings configures the logging, metrics, and tracing applied to
// observed raises.
type ObserverSettings struct {
	// Name labels spans, metrics, and log records for this callback owner.
	// Default: "multicast".
	Name string `yaml:"name" json:"name"`

	// Metrics enables OpenTelemetry metrics. Default: false.
	Metrics bool `yaml:"metrics" json:"metrics"`

	// Tracing enables OpenTelemetry tracing. Default: false.
	Tracing bool `yaml:"tracing" json:"tracing"`
}

// Default returns the settings used when no file is supplied.
func Default() Settings {
	return Settings{
		Observer: ObserverSettings{Name: "multicast"},
	}
}

// Validate checks the settings for values that cannot be applied.
func (s Settings) Validate() error {
	if s.PoolSize < 0 {
		return fmt.Errorf("pool_size must be >= 0, got %d", s.PoolSize)
	}
	return nil
}
