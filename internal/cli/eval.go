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

package cli

import (
	"fmt"

	"github.com/kr/pretty"
	"github.com/spf13/cobra"

	"github.com/marcesquerra/dhall-go/internal/core"
	"github.com/marcesquerra/dhall-go/internal/debug"
	"github.com/marcesquerra/dhall-go/internal/eval"
	"github.com/marcesquerra/dhall-go/internal/syntax"
)

func newEvalCmd(c *Command) *cobra.Command {
	var normalize, alpha, verbose bool

	cmd := &cobra.Command{
		Use:     "normalize <fixture>",
		Aliases: []string{"eval"},
		Short:   "evaluate a named fixture and print its result",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, ok := fixtures[args[0]]
			if !ok {
				fmt.Fprintf(c.Stderr(), "dhall-eval: unknown fixture %q (see `dhall-eval list`)\n", args[0])
				return nil
			}
			v := eval.Eval(f.build(), (*core.Env)(nil))
			if verbose {
				fmt.Fprintln(cmd.OutOrStdout(), debug.DumpDeep(v))
				return nil
			}
			expr := debug.Quote(v, debug.Options{Normalize: normalize, Alpha: alpha})
			fmt.Fprintln(cmd.OutOrStdout(), pretty.Sprint(expr))
			return nil
		},
	}
	cmd.Flags().BoolVar(&normalize, "normalize", true, "fully normalize before printing instead of showing only the weak head")
	cmd.Flags().BoolVar(&alpha, "alpha", false, "rewrite every binder label to _, the pure de Bruijn presentation")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "dump the fully normalized Value tree itself instead of quoting it back to surface syntax")
	return cmd
}

// newTypeErrorDemoCmd exercises the one error category the core itself
// can raise: requesting the type of a node that carries the "no type"
// marker, i.e. the top sort.
func newTypeErrorDemoCmd(c *Command) *cobra.Command {
	return &cobra.Command{
		Use:   "typecheck-error-demo",
		Short: "demonstrate the core's one error category: requesting the type of the top sort",
		RunE: func(cmd *cobra.Command, args []string) error {
			sort := core.New(core.ConstK{Const: syntax.Sort}, nil)
			_, typErr := sort.RequireType()
			if typErr == nil {
				fmt.Fprintln(c.Stderr(), "dhall-eval: expected a TypeError requesting Sort's type, got none")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %v\n", typErr.Code(), typErr)
			return nil
		},
	}
}

func newListCmd(c *Command) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "list the available fixtures",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range fixtureNames() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-24s %s\n", name, fixtures[name].about)
			}
			return nil
		},
	}
}
