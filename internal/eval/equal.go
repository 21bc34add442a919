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

// AlphaEquivalent decides alpha-equivalence by comparing both values
// down to full normal form, with bound variables compared by position
// rather than by label.
//
// Comparison is lazy and self-normalizing: equalNF forces each side to
// WHNF and recurses into its children, which — because it bottoms out
// only at leaves — has exactly the effect of normalizing both values
// first and then comparing, without a separate normalization pass.
func AlphaEquivalent(a, b *core.Value) bool {
	return equalNF(a, b, 0)
}

// equalNF compares two Values for alpha-equivalence at the given
// binder depth. depth counts Lam/Pi binders opened so far *during this
// comparison*; when two function Values are compared, each side's body
// is instantiated with the same fresh neutral variable at the current
// depth so that bound variables line up by position regardless of
// their original label or closure environment.
func equalNF(a, b *core.Value, depth int) bool {
	av, bv := a.WHNF(), b.WHNF()
	switch av := av.(type) {
	case *core.Var:
		bv, ok := bv.(*core.Var)
		return ok && av.Level == bv.Level

	case *core.ConstV:
		bv, ok := bv.(*core.ConstV)
		return ok && av.Const == bv.Const

	case *core.BoolLitV:
		bv, ok := bv.(*core.BoolLitV)
		return ok && av.Val == bv.Val

	case *core.NaturalLitV:
		bv, ok := bv.(*core.NaturalLitV)
		return ok && core.NumEqual(av.Val, bv.Val)

	case *core.IntegerLitV:
		bv, ok := bv.(*core.IntegerLitV)
		return ok && core.NumEqual(av.Val, bv.Val)

	case *core.DoubleLitV:
		bv, ok := bv.(*core.DoubleLitV)
		return ok && av.Val.Equal(bv.Val)

	case *core.EmptyListLit:
		bv, ok := bv.(*core.EmptyListLit)
		return ok && equalNF(av.Type, bv.Type, depth)

	case *core.NEListLit:
		bv, ok := bv.(*core.NEListLit)
		if !ok || len(av.Vals) != len(bv.Vals) {
			return false
		}
		for i := range av.Vals {
			if !equalNF(av.Vals[i], bv.Vals[i], depth) {
				return false
			}
		}
		return true

	case *core.EmptyOptionalLit:
		bv, ok := bv.(*core.EmptyOptionalLit)
		return ok && equalNF(av.Type, bv.Type, depth)

	case *core.NEOptionalLit:
		bv, ok := bv.(*core.NEOptionalLit)
		return ok && equalNF(av.Val, bv.Val, depth)

	case *core.RecordLit:
		bv, ok := bv.(*core.RecordLit)
		return ok && equalFieldMap(av.Fields, bv.Fields, depth)

	case *core.RecordType:
		bv, ok := bv.(*core.RecordType)
		return ok && equalFieldMap(av.Fields, bv.Fields, depth)

	case *core.UnionType:
		bv, ok := bv.(*core.UnionType)
		return ok && equalAltsMap(av.Alts, bv.Alts, depth)

	case *core.UnionConstructor:
		bv, ok := bv.(*core.UnionConstructor)
		return ok && av.Label == bv.Label && equalAltsMap(av.AltTypes, bv.AltTypes, depth)

	case *core.UnionLit:
		bv, ok := bv.(*core.UnionLit)
		return ok && av.Label == bv.Label && equalNF(av.Payload, bv.Payload, depth) && equalAltsMap(av.AltTypes, bv.AltTypes, depth)

	case *core.TextLit:
		bv, ok := bv.(*core.TextLit)
		if !ok || len(av.Chunks) != len(bv.Chunks) {
			return false
		}
		for i := range av.Chunks {
			ac, bc := av.Chunks[i], bv.Chunks[i]
			if (ac.Splice == nil) != (bc.Splice == nil) {
				return false
			}
			if ac.Splice != nil {
				if !equalNF(ac.Splice, bc.Splice, depth) {
					return false
				}
				continue
			}
			if ac.Str != bc.Str {
				return false
			}
		}
		return true

	case *core.Equivalence:
		bv, ok := bv.(*core.Equivalence)
		return ok && equalNF(av.X, bv.X, depth) && equalNF(av.Y, bv.Y, depth)

	case *core.AppliedBuiltin:
		bv, ok := bv.(*core.AppliedBuiltin)
		if !ok || av.B != bv.B || len(av.Args) != len(bv.Args) {
			return false
		}
		for i := range av.Args {
			if !equalNF(av.Args[i], bv.Args[i], depth) {
				return false
			}
		}
		return true

	case *core.Lam:
		bv, ok := bv.(*core.Lam)
		if !ok || !equalNF(av.Type, bv.Type, depth) {
			return false
		}
		fresh := core.WHNFValue(&core.Var{Level: depth})
		return equalNF(av.Body(fresh), bv.Body(fresh), depth+1)

	case *core.Pi:
		bv, ok := bv.(*core.Pi)
		if !ok || !equalNF(av.Type, bv.Type, depth) {
			return false
		}
		fresh := core.WHNFValue(&core.Var{Level: depth})
		return equalNF(av.Body(fresh), bv.Body(fresh), depth+1)

	case *core.NeutralApp:
		bv, ok := bv.(*core.NeutralApp)
		return ok && equalNF(av.Fn, bv.Fn, depth) && equalNF(av.Arg, bv.Arg, depth)

	case *core.NeutralField:
		bv, ok := bv.(*core.NeutralField)
		return ok && av.Label == bv.Label && equalNF(av.Record, bv.Record, depth)

	case *core.NeutralProject:
		bv, ok := bv.(*core.NeutralProject)
		if !ok || len(av.Labels) != len(bv.Labels) || !equalNF(av.Record, bv.Record, depth) {
			return false
		}
		for i := range av.Labels {
			if av.Labels[i] != bv.Labels[i] {
				return false
			}
		}
		return true

	case *core.NeutralMerge:
		bv, ok := bv.(*core.NeutralMerge)
		return ok && equalNF(av.Handlers, bv.Handlers, depth) && equalNF(av.Variant, bv.Variant, depth)

	case *core.NeutralBinOp:
		bv, ok := bv.(*core.NeutralBinOp)
		return ok && av.Op == bv.Op && equalNF(av.L, bv.L, depth) && equalNF(av.R, bv.R, depth)

	case *core.NeutralBoolIf:
		bv, ok := bv.(*core.NeutralBoolIf)
		return ok && equalNF(av.Cond, bv.Cond, depth) && equalNF(av.Then, bv.Then, depth) && equalNF(av.Else, bv.Else, depth)

	case *core.NeutralAssert:
		bv, ok := bv.(*core.NeutralAssert)
		return ok && equalNF(av.Type, bv.Type, depth)

	default:
		return false
	}
}

// equalAltsMap compares two alternative maps where a nil entry means
// the alternative carries no payload.
func equalAltsMap(a, b map[syntax.Label]*core.Value, depth int) bool {
	if len(a) != len(b) {
		return false
	}
	for l, at := range a {
		bt, ok := b[l]
		if !ok || (at == nil) != (bt == nil) {
			return false
		}
		if at != nil && !equalNF(at, bt, depth) {
			return false
		}
	}
	return true
}

func equalFieldMap(a, b map[syntax.Label]*core.Value, depth int) bool {
	if len(a) != len(b) {
		return false
	}
	for l, av := range a {
		bv, ok := b[l]
		if !ok || !equalNF(av, bv, depth) {
			return false
		}
	}
	return true
}
