// Copyright 2026 The Dhall-Go Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package cli wires the evaluator core up to a small spf13/cobra
// command tree — minus any parser or loader, since this module's scope
// stops at the typed expression tree: every command here operates on
// one of the named fixtures in fixtures.go rather than a source file.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// ErrPrintedError indicates the command already wrote its diagnostic to
// stderr, so Main should not print err a second time.
var ErrPrintedError = fmt.Errorf("terminating because of errors")

// Command wraps *cobra.Command so subcommands share one place to hang
// output-writer helpers.
type Command struct {
	*cobra.Command
	hasErr bool
}

type errWriter Command

func (w *errWriter) Write(b []byte) (int, error) {
	c := (*Command)(w)
	c.hasErr = len(b) > 0
	return c.Command.OutOrStderr().Write(b)
}

// Stderr returns a writer that marks the command as failed as a side
// effect of anything being written to it.
func (c *Command) Stderr() io.Writer { return (*errWriter)(c) }

// New builds the root command and attaches every subcommand.
func New(args []string) *Command {
	root := &cobra.Command{
		Use:   "dhall-eval",
		Short: "evaluate hand-built typed expression fixtures against the core evaluator",

		SilenceErrors: true,
		SilenceUsage:  true,
	}
	c := &Command{Command: root}

	root.AddCommand(newEvalCmd(c))
	root.AddCommand(newListCmd(c))
	root.AddCommand(newTypeErrorDemoCmd(c))

	root.SetArgs(args)
	return c
}

// Run executes the parsed command line and reports whether a
// diagnostic was printed to stderr along the way.
func (c *Command) Run() error {
	if err := c.Command.Execute(); err != nil {
		return err
	}
	if c.hasErr {
		return ErrPrintedError
	}
	return nil
}

// Main runs the CLI and returns a process exit code, keeping the
// building of the error separate from reporting it.
func Main() int {
	c := New(os.Args[1:])
	if err := c.Run(); err != nil {
		if err != ErrPrintedError {
			fmt.Fprintln(os.Stderr, err)
		}
		return 1
	}
	return 0
}
