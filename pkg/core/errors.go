package core

import (
	"errors"
	"fmt"
)

var (
	ErrConfigMissing    = errors.New("configuration file not found")
	ErrConfigIncomplete = errors.New("configuration incomplete")
	ErrConfigParse      = errors.New("configuration value malformed")
	ErrConfigUnreadable = errors.New("configuration file unreadable")
	ErrDeletion         = errors.New("file deletion failed")
)

// ConfigErrorKind classifies a failed ParseConfig.
type ConfigErrorKind int

const (
	ConfigMissing ConfigErrorKind = iota + 1
	ConfigIncomplete
	ConfigParseError
	ConfigUnreadable
)

func (k ConfigErrorKind) sentinel() error {
	switch k {
	case ConfigMissing:
		return ErrConfigMissing
	case ConfigIncomplete:
		return ErrConfigIncomplete
	case ConfigParseError:
		return ErrConfigParse
	default:
		return ErrConfigUnreadable
	}
}

func (k ConfigErrorKind) String() string {
	switch k {
	case ConfigMissing:
		return "ConfigMissing"
	case ConfigIncomplete:
		return "ConfigIncomplete"
	case ConfigParseError:
		return "ConfigParseError"
	case ConfigUnreadable:
		return "ConfigUnreadable"
	default:
		return fmt.Sprintf("ConfigErrorKind(%d)", int(k))
	}
}

// ConfigError is returned by ParseConfig. errors.Is matches it against the
// sentinel of its Kind.
type ConfigError struct {
	Kind   ConfigErrorKind
	Path   string
	Detail string
	Err    error
}

func (e *ConfigError) Error() string {
	msg := fmt.Sprintf("%v: %s", e.Kind.sentinel(), e.Path)
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ConfigError) Is(target error) bool { return target == e.Kind.sentinel() }

func (e *ConfigError) Unwrap() error { return e.Err }

// DeleteError reports the file whose removal stopped a prune.
type DeleteError struct {
	Name    string
	Deleted int // files removed before the failure
	Err     error
}

func (e *DeleteError) Error() string {
	return fmt.Sprintf("delete %s (after %d deleted): %v", e.Name, e.Deleted, e.Err)
}

func (e *DeleteError) Is(target error) bool { return target == ErrDeletion }

func (e *DeleteError) Unwrap() error { return e.Err }
