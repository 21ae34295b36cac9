/*
 * config_test.go, part of molmass.
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

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.StringP("table", "t", "", "")
	fs.Int("precision", 2, "")
	fs.StringP("output", "o", "text", "")
	fs.String("log-level", "warn", "")
	fs.Bool("lenient", false, "")
	fs.String("plot", "", "") //a command flag, not a config key
	return fs
}

// chdir moves to a fresh directory so no molmass.yaml is picked up by accident.
func chdir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	//testing.T.Chdir needs go1.24; same effect for go1.21.
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(old) })
	return dir
}

func TestLoadDefaults(t *testing.T) {
	chdir(t)
	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "", cfg.Table)
	assert.Equal(t, 2, cfg.Precision)
	assert.Equal(t, OutputText, cfg.Output)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.False(t, cfg.Lenient)
	assert.Equal(t, 12.0, cfg.Plot.Width)
	assert.Equal(t, 8.0, cfg.Plot.Height)
	assert.Empty(t, cfg.FileUsed)
}

func TestLoadPrecedence(t *testing.T) {
	dir := chdir(t)
	yaml := "table: from-file.txt\nprecision: 4\nlog_level: debug\nplot:\n  width: 20\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(yaml), 0644))

	t.Run("file over defaults", func(t *testing.T) {
		cfg, err := Load("", nil)
		require.NoError(t, err)
		assert.Equal(t, "from-file.txt", cfg.Table)
		assert.Equal(t, 4, cfg.Precision)
		assert.Equal(t, 20.0, cfg.Plot.Width)
		assert.Equal(t, 8.0, cfg.Plot.Height)
		assert.Equal(t, FileName, cfg.FileUsed)
	})

	t.Run("env over file", func(t *testing.T) {
		t.Setenv("MOLMASS_PRECISION", "5")
		t.Setenv("MOLMASS_PLOT_HEIGHT", "10")
		cfg, err := Load("", nil)
		require.NoError(t, err)
		assert.Equal(t, 5, cfg.Precision)
		assert.Equal(t, 10.0, cfg.Plot.Height)
		assert.Equal(t, "debug", cfg.LogLevel)
	})

	t.Run("flags over env", func(t *testing.T) {
		t.Setenv("MOLMASS_PRECISION", "5")
		fs := testFlags()
		require.NoError(t, fs.Parse([]string{"--precision", "3", "-t", "flag.txt", "--log-level", "error", "--plot", "w.png"}))
		cfg, err := Load("", fs)
		require.NoError(t, err)
		assert.Equal(t, 3, cfg.Precision)
		assert.Equal(t, 20.0, cfg.Plot.Width)
		assert.Equal(t, "flag.txt", cfg.Table)
		assert.Equal(t, "error", cfg.LogLevel)
	})

	t.Run("unset flags don't override", func(t *testing.T) {
		fs := testFlags()
		require.NoError(t, fs.Parse(nil))
		cfg, err := Load("", fs)
		require.NoError(t, err)
		assert.Equal(t, 4, cfg.Precision)
	})
}

func TestLoadExplicitFile(t *testing.T) {
	chdir(t)
	_, err := Load("missing.yaml", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.yaml")

	other := filepath.Join(t.TempDir(), "other.yaml")
	require.NoError(t, os.WriteFile(other, []byte("output: json\n"), 0644))
	cfg, err := Load(other, nil)
	require.NoError(t, err)
	assert.Equal(t, OutputJSON, cfg.Output)
	assert.Equal(t, other, cfg.FileUsed)
}

func TestValidate(t *testing.T) {
	good := Config{Precision: 2, Output: OutputText, Plot: PlotConfig{Width: 1, Height: 1}}
	require.NoError(t, good.Validate())

	tests := []struct {
		name      string
		mutate    func(c *Config)
		errSubstr string
	}{
		{"negative precision", func(c *Config) { c.Precision = -1 }, "precision"},
		{"huge precision", func(c *Config) { c.Precision = 40 }, "precision"},
		{"bad output", func(c *Config) { c.Output = "xml" }, "unknown output format"},
		{"negative workers", func(c *Config) { c.Workers = -2 }, "workers"},
		{"zero plot", func(c *Config) { c.Plot.Width = 0 }, "plot size"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := good
			tt.mutate(&c)
			err := c.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errSubstr)
		})
	}
}
