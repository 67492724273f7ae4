// Copyright (c) 2026, The Seedtone Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads theme-generation settings for the CLI from a
// TOML file and validates them.
package config

import (
	"fmt"
	"os"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
)

// Config holds the theme-generation settings accepted by the CLI.
type Config struct {

	// Steps is the chromatic palette length.
	Steps int `toml:"steps" validate:"min=2,max=32"`

	// GraySteps is the gray palette length.
	GraySteps int `toml:"gray_steps" validate:"min=2,max=32"`

	// GrayMixRatio scales the brand tint of the gray family, 0-1.
	GrayMixRatio float32 `toml:"gray_mix_ratio" validate:"gte=0,lte=1"`

	// PreserveSeed keeps the exact seed at one step of the
	// light-mode primary palette.
	PreserveSeed bool `toml:"preserve_seed"`

	// WithInfo adds the optional info role.
	WithInfo bool `toml:"with_info"`

	// Prefix is the variable name prefix for emitted declarations.
	Prefix string `toml:"prefix" validate:"required"`

	// Format is the variable dialect to emit.
	Format string `toml:"format" validate:"oneof=css scss less"`
}

// Default returns the settings used when no config file is given.
func Default() Config {
	return Config{
		Steps:        12,
		GraySteps:    14,
		GrayMixRatio: 0.2,
		PreserveSeed: true,
		Prefix:       "color",
		Format:       "css",
	}
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		validateInst = validator.New()
	})
	return validateInst
}

// Load reads a TOML config file, applying defaults for missing
// fields, and validates the result.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := Validate(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate performs schema validation on the configuration.
func Validate(cfg *Config) error {
	if err := validatorInstance().Struct(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
