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

// Normalize forces v to full normal form: every reachable Value is
// forced to WHNF and, for composite shapes, every child is normalized
// too. It is used by the debug printer and by property tests that
// compare two terms up to full reduction rather than just weak-head.
//
// A Lam/Pi's body is an opaque Go closure, not a literal tree, so it
// cannot be normalized in place the way a record's fields can. Instead
// its normal form is computed once, by opening the closure with a
// fresh neutral variable at the binder's own depth and normalizing the
// result, and cached on the Lam/Pi's CachedNF field: a second
// Normalize of the same function Value reuses it instead of reopening
// and re-walking the body.
func Normalize(v *core.Value) *core.Value {
	return normalizeAt(v, 0)
}

func normalizeAt(v *core.Value, depth int) *core.Value {
	if v.IsNF() {
		return v
	}
	nf := core.WHNFValue(normalizeValueF(v.WHNF(), depth))
	nf.MarkNF()
	return nf
}

func normalizeValueF(vf core.ValueF, depth int) core.ValueF {
	switch vf := vf.(type) {
	case *core.Var, *core.ConstV, *core.BoolLitV, *core.NaturalLitV, *core.IntegerLitV, *core.DoubleLitV:
		return vf

	case *core.Lam:
		// The returned Lam keeps vf.Body itself (not the cached NF) as
		// its Body: this Value may still be applied to a real argument
		// later (ApplyAny, AlphaEquivalent's fresh-variable opening),
		// and only the real closure handles that correctly. CachedNF
		// guards against re-walking the body on repeat Normalize calls
		// reached through the same Value at the same depth; it is keyed
		// on vf itself (shared across every wrapper normalizeValueF
		// builds for this Lam) rather than on the returned struct.
		if vf.CachedNF() == nil {
			fresh := core.WHNFValue(&core.Var{Level: depth})
			vf.SetCachedNF(normalizeAt(vf.Body(fresh), depth+1))
		}
		return &core.Lam{Label: vf.Label, Type: normalizeAt(vf.Type, depth), Body: vf.Body}
	case *core.Pi:
		if vf.CachedNF() == nil {
			fresh := core.WHNFValue(&core.Var{Level: depth})
			vf.SetCachedNF(normalizeAt(vf.Body(fresh), depth+1))
		}
		return &core.Pi{Label: vf.Label, Type: normalizeAt(vf.Type, depth), Body: vf.Body}

	case *core.AppliedBuiltin:
		return &core.AppliedBuiltin{B: vf.B, Args: normalizeSlice(vf.Args, depth)}
	case *core.UnionConstructor:
		return &core.UnionConstructor{Label: vf.Label, AltTypes: normalizeFields(vf.AltTypes, depth)}
	case *core.UnionLit:
		return &core.UnionLit{Label: vf.Label, Payload: normalizeAt(vf.Payload, depth), AltTypes: normalizeFields(vf.AltTypes, depth)}

	case *core.EmptyListLit:
		return &core.EmptyListLit{Type: normalizeAt(vf.Type, depth)}
	case *core.NEListLit:
		return &core.NEListLit{Vals: normalizeSlice(vf.Vals, depth)}
	case *core.EmptyOptionalLit:
		return &core.EmptyOptionalLit{Type: normalizeAt(vf.Type, depth)}
	case *core.NEOptionalLit:
		return &core.NEOptionalLit{Val: normalizeAt(vf.Val, depth)}

	case *core.RecordLit:
		return &core.RecordLit{Fields: normalizeFields(vf.Fields, depth)}
	case *core.RecordType:
		return &core.RecordType{Fields: normalizeFields(vf.Fields, depth)}
	case *core.UnionType:
		return &core.UnionType{Alts: normalizeFields(vf.Alts, depth)}

	case *core.TextLit:
		chunks := make([]core.TextChunk, len(vf.Chunks))
		for i, c := range vf.Chunks {
			if c.Splice == nil {
				chunks[i] = c
				continue
			}
			chunks[i] = core.TextChunk{Splice: normalizeAt(c.Splice, depth)}
		}
		return &core.TextLit{Chunks: chunks}

	case *core.Equivalence:
		return &core.Equivalence{X: normalizeAt(vf.X, depth), Y: normalizeAt(vf.Y, depth)}

	case *core.NeutralApp:
		return &core.NeutralApp{Fn: normalizeAt(vf.Fn, depth), Arg: normalizeAt(vf.Arg, depth)}
	case *core.NeutralField:
		return &core.NeutralField{Record: normalizeAt(vf.Record, depth), Label: vf.Label}
	case *core.NeutralProject:
		return &core.NeutralProject{Record: normalizeAt(vf.Record, depth), Labels: vf.Labels}
	case *core.NeutralMerge:
		return &core.NeutralMerge{Handlers: normalizeAt(vf.Handlers, depth), Variant: normalizeAt(vf.Variant, depth)}
	case *core.NeutralBinOp:
		return &core.NeutralBinOp{Op: vf.Op, L: normalizeAt(vf.L, depth), R: normalizeAt(vf.R, depth)}
	case *core.NeutralBoolIf:
		return &core.NeutralBoolIf{Cond: normalizeAt(vf.Cond, depth), Then: normalizeAt(vf.Then, depth), Else: normalizeAt(vf.Else, depth)}
	case *core.NeutralAssert:
		return &core.NeutralAssert{Type: normalizeAt(vf.Type, depth)}

	default:
		return vf
	}
}

func normalizeSlice(vs []*core.Value, depth int) []*core.Value {
	out := make([]*core.Value, len(vs))
	for i, v := range vs {
		out[i] = normalizeAt(v, depth)
	}
	return out
}

func normalizeFields(m map[syntax.Label]*core.Value, depth int) map[syntax.Label]*core.Value {
	out := make(map[syntax.Label]*core.Value, len(m))
	for l, v := range m {
		if v == nil {
			out[l] = nil
			continue
		}
		out[l] = normalizeAt(v, depth)
	}
	return out
}
