package config

import "fmt"

// ErrInvalidConfig signals that a configuration passed the schema but holds inconsistent values.
type ErrInvalidConfig struct {
	Field  string
	Reason string
}

func (e ErrInvalidConfig) Error() string {
	return fmt.Sprintf("invalid %s configuration: %s", e.Field, e.Reason)
}
