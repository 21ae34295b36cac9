/*
 * config.go, part of molmass.
 *
 *
 * Copyright 2026 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

// Package config loads the molmass command configuration.
// Precedence (highest to lowest): flags > MOLMASS_* env vars > config file > defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// FileName is the config file looked for in the working directory.
const FileName = "molmass.yaml"

// EnvPrefix is the prefix of the environment variables read.
const EnvPrefix = "MOLMASS_"

// Output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// PlotConfig holds the default plot size, in cm.
type PlotConfig struct {
	Width  float64 `koanf:"width"`
	Height float64 `koanf:"height"`
}

// Config holds all the command options.
type Config struct {
	Table       string     `koanf:"table"` //empty means the built-in table
	Precision   int        `koanf:"precision"`
	Output      string     `koanf:"output"`
	Workers     int        `koanf:"workers"` //0 means GOMAXPROCS
	LogLevel    string     `koanf:"log_level"`
	Lenient     bool       `koanf:"lenient"`
	HistoryFile string     `koanf:"history_file"`
	Plot        PlotConfig `koanf:"plot"`

	FileUsed string `koanf:"-"` //the config file read, if any
}

func defaults() map[string]interface{} {
	history := ""
	if home, err := os.UserHomeDir(); err == nil {
		history = filepath.Join(home, ".molmass_history")
	}
	return map[string]interface{}{
		"table":        "",
		"precision":    2,
		"output":       OutputText,
		"workers":      0,
		"log_level":    "warn",
		"lenient":      false,
		"history_file": history,
		"plot.width":   12.0,
		"plot.height":  8.0,
	}
}

// Load builds the configuration. cfgFile is an explicit config file
// (it must exist); if empty, molmass.yaml is read from the working
// directory when present. flags may be nil.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")
	defs := defaults()

	// 1. Defaults
	if err := k.Load(confmap.Provider(defs, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Config file
	used := cfgFile
	if used == "" {
		if _, err := os.Stat(FileName); err == nil {
			used = FileName
		}
	}
	if used != "" {
		if err := k.Load(file.Provider(used), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", used, err)
		}
	}

	// 3. Environment. MOLMASS_LOG_LEVEL -> log_level, MOLMASS_PLOT_WIDTH -> plot.width
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Flags, only those explicitly set that name a config key.
	// Command-specific flags (batch --plot) are not configuration.
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			key := strings.ReplaceAll(f.Name, "-", "_")
			if _, ok := defs[key]; !ok || !f.Changed {
				return "", nil
			}
			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.FileUsed = used
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	if strings.HasPrefix(key, "plot_") {
		key = "plot." + strings.TrimPrefix(key, "plot_")
	}
	return key
}

// Validate checks the values that can't be fixed up later.
func (c *Config) Validate() error {
	if c.Precision < 0 || c.Precision > 12 {
		return fmt.Errorf("precision must be between 0 and 12, got %d", c.Precision)
	}
	switch c.Output {
	case OutputText, OutputJSON:
	default:
		return fmt.Errorf("unknown output format %q (want %s or %s)", c.Output, OutputText, OutputJSON)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers can't be negative, got %d", c.Workers)
	}
	if c.Plot.Width <= 0 || c.Plot.Height <= 0 {
		return fmt.Errorf("plot size must be positive, got %vx%v", c.Plot.Width, c.Plot.Height)
	}
	return nil
}
