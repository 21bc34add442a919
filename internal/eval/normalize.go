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

package eval

import (
	"github.com/marcesquerra/dhall-go/internal/core"
	"github.com/marcesquerra/dhall-go/internal/syntax"
)

// One-layer head reduction lives here as a family of Normalize*
// functions, one per construct that needs a reduction rule beyond what
// Eval already applies directly (App -> ApplyAny, BinOp -> ApplyBinOp).
// Rather than introduce a second ~20-constructor expression hierarchy
// over Value children purely to get a single dispatch function, each
// construct gets its own small function, called directly from
// eval.evalKind's switch.

// NormalizeEmptyList unwraps `List T` to its element type T when T's
// WHNF is the List type former applied to one argument; otherwise the
// annotation is kept as-is (a defensive fallback — well-typed input
// always supplies `List T`).
func NormalizeEmptyList(typ *core.Value) *core.Value {
	return core.Thunk(func() core.ValueF {
		if ab, ok := typ.WHNF().(*core.AppliedBuiltin); ok {
			if ab.B == syntax.ListType && len(ab.Args) == 1 {
				return &core.EmptyListLit{Type: ab.Args[0]}
			}
		}
		return &core.EmptyListLit{Type: typ}
	})
}

// NormalizeBoolIf applies the `if`/`then`/`else` identities: a literal
// condition selects a branch, `if b then True else False` collapses to
// b, and two alpha-equal branches make the condition irrelevant.
func NormalizeBoolIf(cond, then, els *core.Value) *core.Value {
	return core.Thunk(func() core.ValueF {
		if b, ok := cond.WHNF().(*core.BoolLitV); ok {
			if b.Val {
				return then.WHNF()
			}
			return els.WHNF()
		}
		if thenB, ok := then.WHNF().(*core.BoolLitV); ok {
			if elsB, ok := els.WHNF().(*core.BoolLitV); ok && thenB.Val && !elsB.Val {
				return cond.WHNF()
			}
		}
		if AlphaEquivalent(then, els) {
			return then.WHNF()
		}
		return &core.NeutralBoolIf{Cond: cond, Then: then, Else: els}
	})
}

// NormalizeField implements record-field access and union-constructor
// formation.
func NormalizeField(rec *core.Value, label syntax.Label) *core.Value {
	return core.Thunk(func() core.ValueF {
		switch r := rec.WHNF().(type) {
		case *core.RecordLit:
			if v, ok := r.Fields[label]; ok {
				return v.WHNF()
			}
			return &core.NeutralField{Record: rec, Label: label}
		case *core.UnionType:
			return &core.UnionConstructor{Label: label, AltTypes: r.Alts}
		default:
			return &core.NeutralField{Record: rec, Label: label}
		}
	})
}

// NormalizeProject implements record projection by a list of labels,
// including the `{}.{}` -> `{}` base case.
func NormalizeProject(rec *core.Value, labels []syntax.Label) *core.Value {
	return core.Thunk(func() core.ValueF {
		if len(labels) == 0 {
			return &core.RecordLit{Fields: map[syntax.Label]*core.Value{}}
		}
		if r, ok := rec.WHNF().(*core.RecordLit); ok {
			out := make(map[syntax.Label]*core.Value, len(labels))
			for _, l := range labels {
				if v, ok := r.Fields[l]; ok {
					out[l] = v
				}
			}
			return &core.RecordLit{Fields: out}
		}
		return &core.NeutralProject{Record: rec, Labels: labels}
	})
}

// NormalizeMerge implements pattern-matching a union against a record
// of handlers. It also handles matching against an Optional literal
// (`merge { Some = ..., None = ... } (None T)`), treating
// `None`/`Some` as the two-alternative union Optional desugars to: an
// EmptyOptionalLit dispatches to the "None" handler and an
// NEOptionalLit dispatches to "Some" applied to the payload, the same
// way UnionConstructor/UnionLit dispatch by label.
func NormalizeMerge(handlers, variant *core.Value) *core.Value {
	return core.Thunk(func() core.ValueF {
		hv, ok := handlers.WHNF().(*core.RecordLit)
		if !ok {
			return &core.NeutralMerge{Handlers: handlers, Variant: variant}
		}
		switch v := variant.WHNF().(type) {
		case *core.UnionConstructor:
			if h, ok := hv.Fields[v.Label]; ok {
				return h.WHNF()
			}
		case *core.UnionLit:
			if h, ok := hv.Fields[v.Label]; ok {
				return ApplyAny(h, v.Payload).WHNF()
			}
		case *core.EmptyOptionalLit:
			if h, ok := hv.Fields["None"]; ok {
				return h.WHNF()
			}
		case *core.NEOptionalLit:
			if h, ok := hv.Fields["Some"]; ok {
				return ApplyAny(h, v.Val).WHNF()
			}
		}
		return &core.NeutralMerge{Handlers: handlers, Variant: variant}
	})
}
