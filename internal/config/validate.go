package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validateOnce sync.Once
	structRules  *validator.Validate
)

// rules returns the shared validator, reporting fields by their TOML names.
func rules() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			tag := fld.Tag.Get("toml")
			if tag == "-" || tag == "" {
				return fld.Name
			}
			if idx := strings.Index(tag, ","); idx >= 0 {
				tag = tag[:idx]
			}
			return tag
		})
		structRules = v
	})
	return structRules
}

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateFields(); err != nil {
		return err
	}
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateStore(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateFields() error {
	err := rules().Struct(c)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("validate config: %w", err)
	}
	return errors.New(describeFieldError(fieldErrs[0]))
}

// describeFieldError renders a rule failure as "section.key must ...".
func describeFieldError(fe validator.FieldError) string {
	key := fe.Namespace()
	if idx := strings.Index(key, "."); idx >= 0 {
		key = key[idx+1:]
	}
	switch fe.Tag() {
	case "oneof":
		return fmt.Sprintf("%s must be one of %s (got %q)", key, strings.Join(strings.Fields(fe.Param()), ", "), fmt.Sprint(fe.Value()))
	case "min":
		return fmt.Sprintf("%s must be at least %s", key, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", key, fe.Param())
	case "required":
		return fmt.Sprintf("%s must be set", key)
	default:
		return fmt.Sprintf("%s failed %s validation", key, fe.Tag())
	}
}

func (c *Config) validatePaths() error {
	if strings.TrimSpace(c.Paths.DataDir) == "" {
		return errors.New("paths.data_dir must be set")
	}
	return nil
}

func (c *Config) validateStore() error {
	if c.Store.Backend == BackendPostgres && c.Store.DSN == "" {
		return fmt.Errorf("store.dsn must be set when store.backend is postgres (or set %s)", EnvDatabaseURL)
	}
	return nil
}
