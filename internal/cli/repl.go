/*
 * repl.go, part of molmass.
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

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rmera/molmass"
)

// Prompt is shown before each formula is read.
const Prompt = "Chemical composition? "

const replHelp = `Type a formula (H2O, C6H12O6, NaCl) to weigh it.
  .table   show the reference table in use
  .help    show this help
  .quit    leave (Ctrl-D works too)`

func newREPLCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Ask for formulas interactively (the default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runREPL(cmd, getSession(cmd.Context()))
		},
	}
}

// lineReader is the part of *readline.Instance the loop needs.
type lineReader interface {
	Readline() (string, error)
}

func runREPL(cmd *cobra.Command, s *session) error {
	in, out := cmd.InOrStdin(), cmd.OutOrStdout()
	term := isTerminal(in) && isTerminal(out)
	rlcfg := &readline.Config{
		Prompt:          Prompt,
		HistoryFile:     s.cfg.HistoryFile,
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
		Stdin:           io.NopCloser(in),
		Stdout:          out,
		Stderr:          cmd.ErrOrStderr(),
		FuncIsTerminal:  func() bool { return term },
	}
	if !term {
		//piped input, leave the real terminal alone.
		rlcfg.FuncMakeRaw = func() error { return nil }
		rlcfg.FuncExitRaw = func() error { return nil }
	}
	rl, err := readline.NewEx(rlcfg)
	if err != nil {
		return fmt.Errorf("unable to start the prompt: %w", err)
	}
	defer rl.Close()
	return replLoop(rl, s, newPrinter(out, cmd.ErrOrStderr(), s.cfg))
}

// isTerminal tells whether v is a file attached to a terminal.
func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && readline.IsTerminal(int(f.Fd()))
}

// replLoop reads formulas until EOF or .quit. Invalid formulas are reported
// and the loop goes on. Blank lines are ignored.
func replLoop(lr lineReader, s *session, p *printer) error {
	for {
		line, err := lr.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		line = strings.TrimRight(line, "\r\n")
		switch strings.TrimSpace(line) {
		case "":
			continue
		case ".quit", ".exit":
			return nil
		case ".help":
			fmt.Fprintln(p.out, replHelp)
			continue
		case ".table":
			fmt.Fprintf(p.out, "%d elements from %s\n", s.table.Len(), s.source)
			continue
		}
		R, err := molmass.Evaluate(s.table, line)
		if err != nil {
			s.logger.Debug("Invalid formula", zap.String("input", line), zap.Error(err))
		}
		if err := p.Print(line, R, err); err != nil {
			return err
		}
	}
}
