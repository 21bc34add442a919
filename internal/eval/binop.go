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

// ApplyBinOp applies the per-operator algebraic simplification table.
// Every operator either folds to one of its operands, folds two
// literals into one, or (when neither applies) falls back to a
// NeutralBinOp.
func ApplyBinOp(op syntax.Op, l, r *core.Value) *core.Value {
	return core.Thunk(func() core.ValueF {
		switch op {
		case syntax.BoolAnd:
			return applyBoolAnd(l, r)
		case syntax.BoolOr:
			return applyBoolOr(l, r)
		case syntax.BoolEQ:
			return applyBoolEQ(l, r)
		case syntax.BoolNE:
			return applyBoolNE(l, r)
		case syntax.NaturalPlus:
			return applyNaturalPlus(l, r)
		case syntax.NaturalTimes:
			return applyNaturalTimes(l, r)
		case syntax.ListAppend:
			return applyListAppend(l, r)
		case syntax.TextAppend:
			return applyTextAppend(l, r)
		case syntax.RightBiasedRecordMerge:
			return applyRightBiasedMerge(l, r)
		case syntax.RecursiveRecordMerge:
			return applyRecursiveMerge(l, r)
		case syntax.RecursiveRecordTypeMerge:
			return applyRecursiveTypeMerge(l, r)
		case syntax.Equivalence:
			// Equivalence is a type, not a reducible value: it never
			// folds, even when its two sides are judgmentally equal.
			return &core.Equivalence{X: l, Y: r}
		default:
			panic("eval: unhandled Op")
		}
	})
}

func applyBoolAnd(l, r *core.Value) core.ValueF {
	if lb, ok := l.WHNF().(*core.BoolLitV); ok {
		if !lb.Val {
			return lb
		}
		return r.WHNF()
	}
	if rb, ok := r.WHNF().(*core.BoolLitV); ok {
		if !rb.Val {
			return rb
		}
		return l.WHNF()
	}
	if AlphaEquivalent(l, r) {
		return l.WHNF()
	}
	return &core.NeutralBinOp{Op: syntax.BoolAnd, L: l, R: r}
}

func applyBoolOr(l, r *core.Value) core.ValueF {
	if lb, ok := l.WHNF().(*core.BoolLitV); ok {
		if lb.Val {
			return lb
		}
		return r.WHNF()
	}
	if rb, ok := r.WHNF().(*core.BoolLitV); ok {
		if rb.Val {
			return rb
		}
		return l.WHNF()
	}
	if AlphaEquivalent(l, r) {
		return l.WHNF()
	}
	return &core.NeutralBinOp{Op: syntax.BoolOr, L: l, R: r}
}

func applyBoolEQ(l, r *core.Value) core.ValueF {
	if lb, ok := l.WHNF().(*core.BoolLitV); ok && lb.Val {
		return r.WHNF()
	}
	if rb, ok := r.WHNF().(*core.BoolLitV); ok && rb.Val {
		return l.WHNF()
	}
	if AlphaEquivalent(l, r) {
		return &core.BoolLitV{Val: true}
	}
	return &core.NeutralBinOp{Op: syntax.BoolEQ, L: l, R: r}
}

func applyBoolNE(l, r *core.Value) core.ValueF {
	if lb, ok := l.WHNF().(*core.BoolLitV); ok && !lb.Val {
		return r.WHNF()
	}
	if rb, ok := r.WHNF().(*core.BoolLitV); ok && !rb.Val {
		return l.WHNF()
	}
	if AlphaEquivalent(l, r) {
		return &core.BoolLitV{Val: false}
	}
	return &core.NeutralBinOp{Op: syntax.BoolNE, L: l, R: r}
}

func applyNaturalPlus(l, r *core.Value) core.ValueF {
	ln, lok := l.WHNF().(*core.NaturalLitV)
	rn, rok := r.WHNF().(*core.NaturalLitV)
	if lok && core.NumIsZero(ln.Val) {
		return r.WHNF()
	}
	if rok && core.NumIsZero(rn.Val) {
		return l.WHNF()
	}
	if lok && rok {
		var sum core.NumLit
		if _, err := core.ApdCtx.Add(&sum, &ln.Val, &rn.Val); err != nil {
			panic(err)
		}
		return &core.NaturalLitV{Val: sum}
	}
	return &core.NeutralBinOp{Op: syntax.NaturalPlus, L: l, R: r}
}

func applyNaturalTimes(l, r *core.Value) core.ValueF {
	ln, lok := l.WHNF().(*core.NaturalLitV)
	rn, rok := r.WHNF().(*core.NaturalLitV)
	one := core.NewNatural(1)
	if lok && core.NumIsZero(ln.Val) {
		return ln
	}
	if rok && core.NumIsZero(rn.Val) {
		return rn
	}
	if lok && core.NumEqual(ln.Val, one) {
		return r.WHNF()
	}
	if rok && core.NumEqual(rn.Val, one) {
		return l.WHNF()
	}
	if lok && rok {
		var prod core.NumLit
		if _, err := core.ApdCtx.Mul(&prod, &ln.Val, &rn.Val); err != nil {
			panic(err)
		}
		return &core.NaturalLitV{Val: prod}
	}
	return &core.NeutralBinOp{Op: syntax.NaturalTimes, L: l, R: r}
}

func applyListAppend(l, r *core.Value) core.ValueF {
	lv, rv := l.WHNF(), r.WHNF()
	if _, ok := lv.(*core.EmptyListLit); ok {
		return rv
	}
	if _, ok := rv.(*core.EmptyListLit); ok {
		return lv
	}
	ln, lok := lv.(*core.NEListLit)
	rn, rok := rv.(*core.NEListLit)
	if lok && rok {
		vals := make([]*core.Value, 0, len(ln.Vals)+len(rn.Vals))
		vals = append(vals, ln.Vals...)
		vals = append(vals, rn.Vals...)
		return &core.NEListLit{Vals: vals}
	}
	return &core.NeutralBinOp{Op: syntax.ListAppend, L: l, R: r}
}

func applyTextAppend(l, r *core.Value) core.ValueF {
	chunks := append(textChunksOf(l), textChunksOf(r)...)
	return NormalizeTextLit(chunks).WHNF()
}

func textChunksOf(v *core.Value) []core.TextChunk {
	if t, ok := v.WHNF().(*core.TextLit); ok {
		return t.Chunks
	}
	return []core.TextChunk{{Splice: v}}
}

func applyRightBiasedMerge(l, r *core.Value) core.ValueF {
	lv, lok := l.WHNF().(*core.RecordLit)
	rv, rok := r.WHNF().(*core.RecordLit)
	if lok && len(lv.Fields) == 0 {
		return r.WHNF()
	}
	if rok && len(rv.Fields) == 0 {
		return l.WHNF()
	}
	if lok && rok {
		out := make(map[syntax.Label]*core.Value, len(lv.Fields)+len(rv.Fields))
		for k, v := range lv.Fields {
			out[k] = v
		}
		for k, v := range rv.Fields {
			out[k] = v
		}
		return &core.RecordLit{Fields: out}
	}
	return &core.NeutralBinOp{Op: syntax.RightBiasedRecordMerge, L: l, R: r}
}

func applyRecursiveMerge(l, r *core.Value) core.ValueF {
	lv, lok := l.WHNF().(*core.RecordLit)
	rv, rok := r.WHNF().(*core.RecordLit)
	if lok && len(lv.Fields) == 0 {
		return r.WHNF()
	}
	if rok && len(rv.Fields) == 0 {
		return l.WHNF()
	}
	if lok && rok {
		out := make(map[syntax.Label]*core.Value, len(lv.Fields)+len(rv.Fields))
		for k, v := range lv.Fields {
			out[k] = v
		}
		for k, rfield := range rv.Fields {
			if lfield, ok := out[k]; ok {
				out[k] = ApplyBinOp(syntax.RecursiveRecordMerge, lfield, rfield)
			} else {
				out[k] = rfield
			}
		}
		return &core.RecordLit{Fields: out}
	}
	return &core.NeutralBinOp{Op: syntax.RecursiveRecordMerge, L: l, R: r}
}

func applyRecursiveTypeMerge(l, r *core.Value) core.ValueF {
	lv, lok := l.WHNF().(*core.RecordType)
	rv, rok := r.WHNF().(*core.RecordType)
	if lok && len(lv.Fields) == 0 {
		return r.WHNF()
	}
	if rok && len(rv.Fields) == 0 {
		return l.WHNF()
	}
	if lok && rok {
		out := make(map[syntax.Label]*core.Value, len(lv.Fields)+len(rv.Fields))
		for k, v := range lv.Fields {
			out[k] = v
		}
		for k, rfield := range rv.Fields {
			if lfield, ok := out[k]; ok {
				out[k] = ApplyBinOp(syntax.RecursiveRecordTypeMerge, lfield, rfield)
			} else {
				out[k] = rfield
			}
		}
		return &core.RecordType{Fields: out}
	}
	return &core.NeutralBinOp{Op: syntax.RecursiveRecordTypeMerge, L: l, R: r}
}
