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

// Package eval implements the evaluator and normalizer: turning a
// core.TyExpr plus a core.Env into a core.Value (Eval/ApplyAny), and
// reducing that Value's head by one layer at a time (the Normalize*
// family, ApplyBinOp, ApplyBuiltin).
//
// There is no evaluation context threaded through the calls: the
// language is total and side-effect free, so there is no runtime,
// import cache, or error position to carry — the only state a
// reduction step needs is already present in the Values being
// combined.
package eval

import (
	"github.com/marcesquerra/dhall-go/internal/core"
	"github.com/marcesquerra/dhall-go/internal/syntax"
)

// Eval builds a (lazy) Value for te in environment env. The returned
// Value's WHNF is computed at most once, the first time it is asked
// for, and is memoized from then on.
func Eval(te *core.TyExpr, env *core.Env) *core.Value {
	return core.Thunk(func() core.ValueF {
		return evalKind(te.Kind, env)
	})
}

func evalKind(k core.Kind, env *core.Env) core.ValueF {
	switch k := k.(type) {
	case core.VarK:
		return env.Lookup(k.Var.Idx).WHNF()

	case core.ConstK:
		return &core.ConstV{Const: k.Const}

	case core.BuiltinK:
		return &core.AppliedBuiltin{B: k.Builtin}

	case core.BoolLitK:
		return &core.BoolLitV{Val: k.Val}

	case core.NaturalLitK:
		return &core.NaturalLitV{Val: k.Val}

	case core.IntegerLitK:
		return &core.IntegerLitV{Val: k.Val}

	case core.DoubleLitK:
		return &core.DoubleLitV{Val: k.Val}

	case core.TextLitK:
		chunks := make([]core.TextChunk, 0, 1+2*len(k.Tail))
		chunks = append(chunks, core.TextChunk{Str: k.Head})
		for _, t := range k.Tail {
			chunks = append(chunks, core.TextChunk{Splice: Eval(t.Expr, env)})
			chunks = append(chunks, core.TextChunk{Str: t.Suffix})
		}
		return NormalizeTextLit(chunks).WHNF()

	case core.SomeLitK:
		return &core.NEOptionalLit{Val: Eval(k.Val, env)}

	case core.EmptyListLitK:
		return NormalizeEmptyList(Eval(k.Type, env)).WHNF()

	case core.NEListLitK:
		vals := make([]*core.Value, len(k.Exprs))
		for i, e := range k.Exprs {
			vals[i] = Eval(e, env)
		}
		return &core.NEListLit{Vals: vals}

	case core.RecordLitK:
		return &core.RecordLit{Fields: evalFields(k.Fields, env)}

	case core.RecordTypeK:
		return &core.RecordType{Fields: evalFields(k.Fields, env)}

	case core.UnionTypeK:
		alts := make(map[syntax.Label]*core.Value, len(k.Alts))
		for l, t := range k.Alts {
			if t == nil {
				alts[l] = nil
				continue
			}
			alts[l] = Eval(t, env)
		}
		return &core.UnionType{Alts: alts}

	case core.LambdaK:
		typ := Eval(k.Type, env)
		body := k.Body
		return &core.Lam{
			Label: k.Label,
			Type:  typ,
			Body: func(arg *core.Value) *core.Value {
				return Eval(body, env.Extend(arg))
			},
		}

	case core.PiK:
		typ := Eval(k.Type, env)
		body := k.Body
		return &core.Pi{
			Label: k.Label,
			Type:  typ,
			Body: func(arg *core.Value) *core.Value {
				return Eval(body, env.Extend(arg))
			},
		}

	case core.LetK:
		bound := Eval(k.Value, env)
		return Eval(k.Body, env.Extend(bound)).WHNF()

	case core.AppK:
		fn := Eval(k.Fn, env)
		arg := Eval(k.Arg, env)
		return ApplyAny(fn, arg).WHNF()

	case core.AnnotK:
		return Eval(k.Val, env).WHNF()

	case core.AssertK:
		return &core.NeutralAssert{Type: Eval(k.Type, env)}

	case core.BinOpK:
		l := Eval(k.L, env)
		r := Eval(k.R, env)
		return ApplyBinOp(k.Op, l, r).WHNF()

	case core.BoolIfK:
		return NormalizeBoolIf(Eval(k.Cond, env), Eval(k.Then, env), Eval(k.Else, env)).WHNF()

	case core.MergeK:
		handlers := Eval(k.Handlers, env)
		variant := Eval(k.Variant, env)
		return NormalizeMerge(handlers, variant).WHNF()

	case core.FieldK:
		rec := Eval(k.Record, env)
		return NormalizeField(rec, k.Label).WHNF()

	case core.ProjectK:
		rec := Eval(k.Record, env)
		return NormalizeProject(rec, k.Labels).WHNF()

	case core.ImportK:
		panic("eval: Import node reached the evaluator; resolver invariant violated")

	case core.EmbedK:
		panic("eval: Embed node reached the evaluator; resolver invariant violated")

	default:
		panic("eval: unhandled Kind")
	}
}

func evalFields(fields map[syntax.Label]*core.TyExpr, env *core.Env) map[syntax.Label]*core.Value {
	out := make(map[syntax.Label]*core.Value, len(fields))
	for l, e := range fields {
		out[l] = Eval(e, env)
	}
	return out
}
