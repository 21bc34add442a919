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

// Shift renumbers every free neutral Var in v whose Level is >= cutoff
// by delta. Since Lam/Pi bodies are Go closures rather than literal
// trees, ordinary evaluation never needs it (Env.Extend already
// accounts for the extra binder); it exists to re-home a Value built
// by opening a binder with a fresh Var at one depth so it reads
// correctly at another.
func Shift(v *core.Value, cutoff, delta int) *core.Value {
	if delta == 0 {
		return v
	}
	return core.Thunk(func() core.ValueF {
		return shiftValueF(v, cutoff, delta)
	})
}

func shiftValueF(v *core.Value, cutoff, delta int) core.ValueF {
	switch vf := v.WHNF().(type) {
	case *core.Var:
		if vf.Level >= cutoff {
			return &core.Var{Level: vf.Level + delta}
		}
		return vf

	case *core.Lam:
		return &core.Lam{
			Label: vf.Label,
			Type:  Shift(vf.Type, cutoff, delta),
			Body: func(arg *core.Value) *core.Value {
				return Shift(vf.Body(arg), cutoff+1, delta)
			},
		}
	case *core.Pi:
		return &core.Pi{
			Label: vf.Label,
			Type:  Shift(vf.Type, cutoff, delta),
			Body: func(arg *core.Value) *core.Value {
				return Shift(vf.Body(arg), cutoff+1, delta)
			},
		}

	case *core.AppliedBuiltin:
		return &core.AppliedBuiltin{B: vf.B, Args: shiftSlice(vf.Args, cutoff, delta)}
	case *core.UnionConstructor:
		return &core.UnionConstructor{Label: vf.Label, AltTypes: shiftFields(vf.AltTypes, cutoff, delta)}
	case *core.UnionLit:
		return &core.UnionLit{Label: vf.Label, Payload: Shift(vf.Payload, cutoff, delta), AltTypes: shiftFields(vf.AltTypes, cutoff, delta)}

	case *core.EmptyListLit:
		return &core.EmptyListLit{Type: Shift(vf.Type, cutoff, delta)}
	case *core.NEListLit:
		return &core.NEListLit{Vals: shiftSlice(vf.Vals, cutoff, delta)}
	case *core.EmptyOptionalLit:
		return &core.EmptyOptionalLit{Type: Shift(vf.Type, cutoff, delta)}
	case *core.NEOptionalLit:
		return &core.NEOptionalLit{Val: Shift(vf.Val, cutoff, delta)}

	case *core.RecordLit:
		return &core.RecordLit{Fields: shiftFields(vf.Fields, cutoff, delta)}
	case *core.RecordType:
		return &core.RecordType{Fields: shiftFields(vf.Fields, cutoff, delta)}
	case *core.UnionType:
		return &core.UnionType{Alts: shiftFields(vf.Alts, cutoff, delta)}

	case *core.TextLit:
		chunks := make([]core.TextChunk, len(vf.Chunks))
		for i, c := range vf.Chunks {
			if c.Splice == nil {
				chunks[i] = c
				continue
			}
			chunks[i] = core.TextChunk{Splice: Shift(c.Splice, cutoff, delta)}
		}
		return &core.TextLit{Chunks: chunks}

	case *core.Equivalence:
		return &core.Equivalence{X: Shift(vf.X, cutoff, delta), Y: Shift(vf.Y, cutoff, delta)}

	case *core.NeutralApp:
		return &core.NeutralApp{Fn: Shift(vf.Fn, cutoff, delta), Arg: Shift(vf.Arg, cutoff, delta)}
	case *core.NeutralField:
		return &core.NeutralField{Record: Shift(vf.Record, cutoff, delta), Label: vf.Label}
	case *core.NeutralProject:
		return &core.NeutralProject{Record: Shift(vf.Record, cutoff, delta), Labels: vf.Labels}
	case *core.NeutralMerge:
		return &core.NeutralMerge{Handlers: Shift(vf.Handlers, cutoff, delta), Variant: Shift(vf.Variant, cutoff, delta)}
	case *core.NeutralBinOp:
		return &core.NeutralBinOp{Op: vf.Op, L: Shift(vf.L, cutoff, delta), R: Shift(vf.R, cutoff, delta)}
	case *core.NeutralBoolIf:
		return &core.NeutralBoolIf{Cond: Shift(vf.Cond, cutoff, delta), Then: Shift(vf.Then, cutoff, delta), Else: Shift(vf.Else, cutoff, delta)}
	case *core.NeutralAssert:
		return &core.NeutralAssert{Type: Shift(vf.Type, cutoff, delta)}

	default:
		// Atoms with no child Values (ConstV, BoolLitV, NaturalLitV,
		// IntegerLitV, DoubleLitV) are returned unchanged.
		return vf
	}
}

func shiftSlice(vs []*core.Value, cutoff, delta int) []*core.Value {
	out := make([]*core.Value, len(vs))
	for i, v := range vs {
		out[i] = Shift(v, cutoff, delta)
	}
	return out
}

func shiftFields(m map[syntax.Label]*core.Value, cutoff, delta int) map[syntax.Label]*core.Value {
	out := make(map[syntax.Label]*core.Value, len(m))
	for l, v := range m {
		if v == nil {
			out[l] = nil
			continue
		}
		out[l] = Shift(v, cutoff, delta)
	}
	return out
}

// SubstShift replaces the free neutral Var at exactly `level` with
// replacement, and closes that binder slot by shifting every Var with
// Level > level down by one. It plugs a concrete argument into a
// Value that was produced by opening a Lam/Pi body with a fresh
// neutral variable (core.Env.Open), e.g. when re-normalizing or
// pretty-printing a function whose body was inspected rather than
// applied. Blocked shapes (neutral applications, binops, builtins,
// text splices and the like) are reduced again after their children
// are substituted, so the result is the same Value that applying the
// function to replacement would give.
func SubstShift(v *core.Value, level int, replacement *core.Value) *core.Value {
	return core.Thunk(func() core.ValueF {
		return substValueF(v, level, replacement)
	})
}

func substValueF(v *core.Value, level int, replacement *core.Value) core.ValueF {
	switch vf := v.WHNF().(type) {
	case *core.Var:
		switch {
		case vf.Level == level:
			return replacement.WHNF()
		case vf.Level > level:
			return &core.Var{Level: vf.Level - 1}
		default:
			return vf
		}

	case *core.Lam:
		return &core.Lam{
			Label: vf.Label,
			Type:  SubstShift(vf.Type, level, replacement),
			Body: func(arg *core.Value) *core.Value {
				return SubstShift(vf.Body(arg), level+1, Shift(replacement, 0, 1))
			},
		}
	case *core.Pi:
		return &core.Pi{
			Label: vf.Label,
			Type:  SubstShift(vf.Type, level, replacement),
			Body: func(arg *core.Value) *core.Value {
				return SubstShift(vf.Body(arg), level+1, Shift(replacement, 0, 1))
			},
		}

	default:
		// Every other shape recurses into its children; only Var and the
		// binders above need level bookkeeping.
		return substChildren(vf, level, replacement)
	}
}

func substChildren(vf core.ValueF, level int, replacement *core.Value) core.ValueF {
	switch vf := vf.(type) {
	case *core.AppliedBuiltin:
		args := make([]*core.Value, len(vf.Args))
		for i, a := range vf.Args {
			args[i] = SubstShift(a, level, replacement)
		}
		return ApplyBuiltin(vf.B, args).WHNF()
	case *core.UnionConstructor:
		return &core.UnionConstructor{Label: vf.Label, AltTypes: substFields(vf.AltTypes, level, replacement)}
	case *core.UnionLit:
		return &core.UnionLit{Label: vf.Label, Payload: SubstShift(vf.Payload, level, replacement), AltTypes: substFields(vf.AltTypes, level, replacement)}
	case *core.EmptyListLit:
		return &core.EmptyListLit{Type: SubstShift(vf.Type, level, replacement)}
	case *core.NEListLit:
		vals := make([]*core.Value, len(vf.Vals))
		for i, v := range vf.Vals {
			vals[i] = SubstShift(v, level, replacement)
		}
		return &core.NEListLit{Vals: vals}
	case *core.EmptyOptionalLit:
		return &core.EmptyOptionalLit{Type: SubstShift(vf.Type, level, replacement)}
	case *core.NEOptionalLit:
		return &core.NEOptionalLit{Val: SubstShift(vf.Val, level, replacement)}
	case *core.RecordLit:
		return &core.RecordLit{Fields: substFields(vf.Fields, level, replacement)}
	case *core.RecordType:
		return &core.RecordType{Fields: substFields(vf.Fields, level, replacement)}
	case *core.UnionType:
		return &core.UnionType{Alts: substFields(vf.Alts, level, replacement)}
	case *core.TextLit:
		chunks := make([]core.TextChunk, len(vf.Chunks))
		for i, c := range vf.Chunks {
			if c.Splice == nil {
				chunks[i] = c
				continue
			}
			chunks[i] = core.TextChunk{Splice: SubstShift(c.Splice, level, replacement)}
		}
		return NormalizeTextLit(chunks).WHNF()
	case *core.Equivalence:
		return &core.Equivalence{X: SubstShift(vf.X, level, replacement), Y: SubstShift(vf.Y, level, replacement)}
	case *core.NeutralApp:
		return ApplyAny(SubstShift(vf.Fn, level, replacement), SubstShift(vf.Arg, level, replacement)).WHNF()
	case *core.NeutralField:
		return NormalizeField(SubstShift(vf.Record, level, replacement), vf.Label).WHNF()
	case *core.NeutralProject:
		return NormalizeProject(SubstShift(vf.Record, level, replacement), vf.Labels).WHNF()
	case *core.NeutralMerge:
		return NormalizeMerge(SubstShift(vf.Handlers, level, replacement), SubstShift(vf.Variant, level, replacement)).WHNF()
	case *core.NeutralBinOp:
		return ApplyBinOp(vf.Op, SubstShift(vf.L, level, replacement), SubstShift(vf.R, level, replacement)).WHNF()
	case *core.NeutralBoolIf:
		return NormalizeBoolIf(SubstShift(vf.Cond, level, replacement), SubstShift(vf.Then, level, replacement), SubstShift(vf.Else, level, replacement)).WHNF()
	case *core.NeutralAssert:
		return &core.NeutralAssert{Type: SubstShift(vf.Type, level, replacement)}
	default:
		return vf
	}
}

func substFields(m map[syntax.Label]*core.Value, level int, replacement *core.Value) map[syntax.Label]*core.Value {
	out := make(map[syntax.Label]*core.Value, len(m))
	for l, v := range m {
		if v == nil {
			out[l] = nil
			continue
		}
		out[l] = SubstShift(v, level, replacement)
	}
	return out
}
