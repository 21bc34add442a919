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
	"sort"

	"github.com/marcesquerra/dhall-go/internal/core"
	"github.com/marcesquerra/dhall-go/internal/syntax"
)

// te is a tiny builder shorthand: every fixture below only needs a
// Kind, never an elaborated Type (the typechecker that would fill it
// in is out of this module's scope), so every node carries Type == nil.
func te(k core.Kind) *core.TyExpr { return core.New(k, nil) }

func natLit(n uint64) *core.TyExpr { return te(core.NaturalLitK{Val: core.NewNatural(n)}) }

// fixtures maps a short name to a closed TyExpr plus a one-line
// description, standing in for the source files a real `dhall-eval`
// would load through a parser this module doesn't implement.
var fixtures = map[string]struct {
	build func() *core.TyExpr
	about string
}{
	"natural-plus": {
		about: "2 + 3",
		build: func() *core.TyExpr {
			return te(core.BinOpK{Op: syntax.NaturalPlus, L: natLit(2), R: natLit(3)})
		},
	},
	"bool-and-short-circuit": {
		about: "False && (would-be-neutral Var) reduces to False without looking at the right side",
		build: func() *core.TyExpr {
			return te(core.BinOpK{
				Op: syntax.BoolAnd,
				L:  te(core.BoolLitK{Val: false}),
				R:  te(core.VarK{Var: core.AlphaVar{Idx: 0}}),
			})
		},
	},
	"list-fold-sum": {
		about: "List/fold Natural [1, 2, 3] Natural (\\(x : Natural) -> \\(acc : Natural) -> x + acc) 0",
		build: func() *core.TyExpr {
			natType := te(core.BuiltinK{Builtin: syntax.NaturalType})
			list := te(core.NEListLitK{Exprs: []*core.TyExpr{natLit(1), natLit(2), natLit(3)}})
			cons := te(core.LambdaK{
				Label: "x", Type: natType,
				Body: te(core.LambdaK{
					Label: "acc", Type: natType,
					Body: te(core.BinOpK{
						Op: syntax.NaturalPlus,
						L:  te(core.VarK{Var: core.AlphaVar{Idx: 1}}),
						R:  te(core.VarK{Var: core.AlphaVar{Idx: 0}}),
					}),
				}),
			})
			fold := te(core.BuiltinK{Builtin: syntax.ListFold})
			app := te(core.AppK{Fn: fold, Arg: natType})
			app = te(core.AppK{Fn: app, Arg: list})
			app = te(core.AppK{Fn: app, Arg: natType})
			app = te(core.AppK{Fn: app, Arg: cons})
			app = te(core.AppK{Fn: app, Arg: natLit(0)})
			return app
		},
	},
	"text-interpolation": {
		about: `"the sum is ${Natural/show (2 + 3)}"`,
		build: func() *core.TyExpr {
			sum := te(core.BinOpK{Op: syntax.NaturalPlus, L: natLit(2), R: natLit(3)})
			shown := te(core.AppK{Fn: te(core.BuiltinK{Builtin: syntax.NaturalShow}), Arg: sum})
			return te(core.TextLitK{
				Head: "the sum is ",
				Tail: []core.TextTailK{{Expr: shown, Suffix: ""}},
			})
		},
	},
	"record-merge": {
		about: "{ x = 1 } ∧ { y = True }",
		build: func() *core.TyExpr {
			l := te(core.RecordLitK{Fields: map[syntax.Label]*core.TyExpr{"x": natLit(1)}})
			r := te(core.RecordLitK{Fields: map[syntax.Label]*core.TyExpr{"y": te(core.BoolLitK{Val: true})}})
			return te(core.BinOpK{Op: syntax.RecursiveRecordMerge, L: l, R: r})
		},
	},
	"record-merge-right-biased": {
		about: "{ a = 1, b = 2 } ⫽ { b = 3, c = 4 }",
		build: func() *core.TyExpr {
			l := te(core.RecordLitK{Fields: map[syntax.Label]*core.TyExpr{"a": natLit(1), "b": natLit(2)}})
			r := te(core.RecordLitK{Fields: map[syntax.Label]*core.TyExpr{"b": natLit(3), "c": natLit(4)}})
			return te(core.BinOpK{Op: syntax.RightBiasedRecordMerge, L: l, R: r})
		},
	},
	"list-length": {
		about: "List/length Natural [1, 2, 3]",
		build: func() *core.TyExpr {
			natType := te(core.BuiltinK{Builtin: syntax.NaturalType})
			list := te(core.NEListLitK{Exprs: []*core.TyExpr{natLit(1), natLit(2), natLit(3)}})
			app := te(core.AppK{Fn: te(core.BuiltinK{Builtin: syntax.ListLength}), Arg: natType})
			return te(core.AppK{Fn: app, Arg: list})
		},
	},
	"list-reverse": {
		about: "List/reverse Natural [1, 2, 3]",
		build: func() *core.TyExpr {
			natType := te(core.BuiltinK{Builtin: syntax.NaturalType})
			list := te(core.NEListLitK{Exprs: []*core.TyExpr{natLit(1), natLit(2), natLit(3)}})
			app := te(core.AppK{Fn: te(core.BuiltinK{Builtin: syntax.ListReverse}), Arg: natType})
			return te(core.AppK{Fn: app, Arg: list})
		},
	},
	"list-build-fold-fusion": {
		about: "List/build Natural (List/fold Natural [1, 2, 3]) — fuses back to [1, 2, 3]",
		build: func() *core.TyExpr {
			natType := te(core.BuiltinK{Builtin: syntax.NaturalType})
			list := te(core.NEListLitK{Exprs: []*core.TyExpr{natLit(1), natLit(2), natLit(3)}})
			fold := te(core.AppK{Fn: te(core.BuiltinK{Builtin: syntax.ListFold}), Arg: natType})
			fold = te(core.AppK{Fn: fold, Arg: list})
			build := te(core.AppK{Fn: te(core.BuiltinK{Builtin: syntax.ListBuild}), Arg: natType})
			return te(core.AppK{Fn: build, Arg: fold})
		},
	},
	"merge-optional-none": {
		about: "merge { Some = \\(x : Natural) -> x, None = 0 } (None Natural)",
		build: func() *core.TyExpr {
			natType := te(core.BuiltinK{Builtin: syntax.NaturalType})
			handlers := te(core.RecordLitK{Fields: map[syntax.Label]*core.TyExpr{
				"Some": te(core.LambdaK{Label: "x", Type: natType, Body: te(core.VarK{Var: core.AlphaVar{Idx: 0}})}),
				"None": natLit(0),
			}})
			none := te(core.AppK{Fn: te(core.BuiltinK{Builtin: syntax.OptionalNone}), Arg: natType})
			return te(core.MergeK{Handlers: handlers, Variant: none})
		},
	},
	"natural-subtract": {
		about: "Natural/subtract 3 5 == 2; Natural/subtract 5 3 == 0",
		build: func() *core.TyExpr {
			sub := te(core.BuiltinK{Builtin: syntax.NaturalSubtract})
			app := te(core.AppK{Fn: sub, Arg: natLit(3)})
			return te(core.AppK{Fn: app, Arg: natLit(5)})
		},
	},
}

func fixtureNames() []string {
	names := make([]string, 0, len(fixtures))
	for n := range fixtures {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
