// Package cmd provides shared entrypoint helpers for rollcall commands.
package cmd

import (
	"errors"
	"flag"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/louisbranch/rollcall/internal/platform/config"
)

var validate = validator.New()

// ParseConfig loads environment defaults into cfg.
func ParseConfig[T any](cfg *T) error {
	if cfg == nil {
		return errors.New("config target is required")
	}
	return config.ParseEnv(cfg)
}

// ParseArgs parses command-line flags.
func ParseArgs(fs *flag.FlagSet, args []string) error {
	if fs == nil {
		return errors.New("flag parser is required")
	}
	if args == nil {
		args = []string{}
	}
	return fs.Parse(args)
}

// ValidateConfig checks cfg against its validate struct tags.
func ValidateConfig[T any](cfg *T) error {
	if cfg == nil {
		return errors.New("config target is required")
	}
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}
	return nil
}
