/*
 * root.go, part of molmass.
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

// Package cli provides the command-line interface for molmass.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rmera/molmass"
	"github.com/rmera/molmass/internal/config"
	"github.com/rmera/molmass/tables"
)

// Version information (set at build time).
var Version = "0.1.0"

// errInvalidFormulas is returned when some formula could not be weighed. The
// details were already printed, so Execute doesn't print it again.
var errInvalidFormulas = errors.New("some formulas were not valid compounds")

type sessionKey struct{}

// session is everything a command needs: the configuration, a logger
// and the reference table, loaded once.
type session struct {
	cfg    *config.Config
	logger *zap.Logger
	table  *molmass.Table
	source string //where the table came from
}

// getSession retrieves the session stored by the root command.
func getSession(ctx context.Context) *session {
	if s, ok := ctx.Value(sessionKey{}).(*session); ok {
		return s
	}
	return nil
}

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	var cfgFile string
	rootCmd := &cobra.Command{
		Use:   "molmass [command]",
		Short: "molmass - molar masses of chemical formulas",
		Long: `molmass computes the molar mass of compounds written as plain formulas
(H2O, C6H12O6, NaCl) and lists the elements they contain.

With no command, it asks for formulas interactively.`,
		Version: Version,
		Args:    cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			switch cmd.Name() {
			case "help", "completion", "__complete", "version":
				return nil
			}
			cfg, err := config.Load(cfgFile, cmd.Flags())
			if err != nil {
				return err
			}
			s, err := newSession(cfg)
			if err != nil {
				return err
			}
			cmd.SetContext(context.WithValue(cmd.Context(), sessionKey{}, s))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, _ []string) {
			if s := getSession(cmd.Context()); s != nil {
				_ = s.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runREPL(cmd, getSession(cmd.Context()))
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default: ./"+config.FileName+")")
	pf.StringP("table", "t", "", "reference table file (.txt, .gz or .zst; default: built-in table)")
	pf.Int("precision", molmass.DefaultPrecision, "decimals shown for weights")
	pf.StringP("output", "o", config.OutputText, "output format (text|json)")
	pf.Int("workers", 0, "goroutines used by batch (default: GOMAXPROCS)")
	pf.String("log-level", "warn", "log level (debug|info|warn|error)")
	pf.Bool("lenient", false, "skip malformed lines in the table instead of failing")
	pf.String("history-file", "", "file to keep the interactive history in")

	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{config.OutputText, config.OutputJSON}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(newREPLCommand())
	rootCmd.AddCommand(newEvalCommand())
	rootCmd.AddCommand(newBatchCommand())
	rootCmd.AddCommand(newTableCommand())
	rootCmd.AddCommand(newPlotCommand())
	rootCmd.AddCommand(newVersionCommand())
	return rootCmd
}

// Execute runs the root command with the process arguments.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errInvalidFormulas) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return err
	}
	return nil
}

// newSession builds the logger and loads the reference table. A table that
// can't be loaded is fatal: there is nothing to compute without one.
func newSession(cfg *config.Config) (*session, error) {
	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	s := &session{cfg: cfg, logger: logger, source: "built-in"}
	if cfg.FileUsed != "" {
		logger.Debug("Using config file", zap.String("file", cfg.FileUsed))
	}
	var recs []molmass.Record
	if cfg.Table == "" {
		recs = molmass.DefaultRecords()
	} else {
		s.source = cfg.Table
		opts := []tables.Option{tables.WithLogger(logger)}
		if cfg.Lenient {
			opts = append(opts, tables.Lenient())
		}
		recs, err = tables.Open(cfg.Table, opts...)
		if err != nil {
			return nil, err
		}
	}
	s.table, err = molmass.NewTable(recs)
	if err != nil {
		return nil, err
	}
	if d := s.table.Duplicates(); d > 0 {
		logger.Warn("Repeated symbols in table, first entry kept", zap.String("table", s.source), zap.Int("ignored", d))
	}
	logger.Info("Loaded table", zap.String("table", s.source), zap.Int("elements", s.table.Len()))
	return s, nil
}
