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

package eval_test

import (
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/marcesquerra/dhall-go/internal/core"
	"github.com/marcesquerra/dhall-go/internal/eval"
	"github.com/marcesquerra/dhall-go/internal/syntax"
)

func boolLit(b bool) *core.Value { return core.WHNFValue(&core.BoolLitV{Val: b}) }

func natValLit(n uint64) *core.Value { return core.WHNFValue(&core.NaturalLitV{Val: core.NewNatural(n)}) }

func natTypeVal() *core.Value { return core.WHNFValue(&core.AppliedBuiltin{B: syntax.NaturalType}) }

func TestBoolAndShortCircuits(t *testing.T) {
	neutralVar := core.WHNFValue(&core.Var{Level: 0})

	falseAndX := eval.ApplyBinOp(syntax.BoolAnd, boolLit(false), neutralVar)
	qt.Assert(t, qt.IsFalse(falseAndX.WHNF().(*core.BoolLitV).Val))

	xAndTrue := eval.ApplyBinOp(syntax.BoolAnd, neutralVar, boolLit(true))
	_, ok := xAndTrue.WHNF().(*core.Var)
	qt.Assert(t, qt.IsTrue(ok))
}

func TestBoolAndSelfIdentity(t *testing.T) {
	x := core.WHNFValue(&core.Var{Level: 3})
	r := eval.ApplyBinOp(syntax.BoolAnd, x, x)
	_, ok := r.WHNF().(*core.Var)
	qt.Assert(t, qt.IsTrue(ok))
}

func TestBoolEQAndNE(t *testing.T) {
	x := core.WHNFValue(&core.Var{Level: 0})
	eq := eval.ApplyBinOp(syntax.BoolEQ, x, x)
	qt.Assert(t, qt.IsTrue(eq.WHNF().(*core.BoolLitV).Val))

	ne := eval.ApplyBinOp(syntax.BoolNE, x, x)
	qt.Assert(t, qt.IsFalse(ne.WHNF().(*core.BoolLitV).Val))
}

func TestNaturalPlusIdentitiesAndLiteralAdd(t *testing.T) {
	zero := natValLit(0)
	x := core.WHNFValue(&core.Var{Level: 0})

	_, ok := eval.ApplyBinOp(syntax.NaturalPlus, zero, x).WHNF().(*core.Var)
	qt.Assert(t, qt.IsTrue(ok))
	_, ok = eval.ApplyBinOp(syntax.NaturalPlus, x, zero).WHNF().(*core.Var)
	qt.Assert(t, qt.IsTrue(ok))

	sum := eval.ApplyBinOp(syntax.NaturalPlus, natValLit(2), natValLit(3)).WHNF().(*core.NaturalLitV)
	qt.Assert(t, qt.IsTrue(core.NumEqual(sum.Val, core.NewNatural(5))))
}

func TestNaturalTimesIdentities(t *testing.T) {
	zero := natValLit(0)
	one := natValLit(1)
	x := core.WHNFValue(&core.Var{Level: 0})

	_, ok := eval.ApplyBinOp(syntax.NaturalTimes, zero, x).WHNF().(*core.NaturalLitV)
	qt.Assert(t, qt.IsTrue(ok))
	_, ok = eval.ApplyBinOp(syntax.NaturalTimes, x, zero).WHNF().(*core.NaturalLitV)
	qt.Assert(t, qt.IsTrue(ok))
	_, ok = eval.ApplyBinOp(syntax.NaturalTimes, one, x).WHNF().(*core.Var)
	qt.Assert(t, qt.IsTrue(ok))

	prod := eval.ApplyBinOp(syntax.NaturalTimes, natValLit(4), natValLit(5)).WHNF().(*core.NaturalLitV)
	qt.Assert(t, qt.IsTrue(core.NumEqual(prod.Val, core.NewNatural(20))))
}

func TestListAppendIdentitiesAndConcat(t *testing.T) {
	empty := core.WHNFValue(&core.EmptyListLit{Type: natTypeVal()})
	xs := core.WHNFValue(&core.NEListLit{Vals: []*core.Value{natValLit(1), natValLit(2)}})
	ys := core.WHNFValue(&core.NEListLit{Vals: []*core.Value{natValLit(3)}})

	left := eval.ApplyBinOp(syntax.ListAppend, empty, xs).WHNF().(*core.NEListLit)
	qt.Assert(t, qt.Equals(len(left.Vals), 2))
	right := eval.ApplyBinOp(syntax.ListAppend, xs, empty).WHNF().(*core.NEListLit)
	qt.Assert(t, qt.Equals(len(right.Vals), 2))

	cat := eval.ApplyBinOp(syntax.ListAppend, xs, ys).WHNF().(*core.NEListLit)
	qt.Assert(t, qt.Equals(len(cat.Vals), 3))
}

func TestRecordMergeCommutativityOnDisjointKeys(t *testing.T) {
	r1 := core.WHNFValue(&core.RecordLit{Fields: map[syntax.Label]*core.Value{"a": natValLit(1)}})
	r2 := core.WHNFValue(&core.RecordLit{Fields: map[syntax.Label]*core.Value{"b": natValLit(2)}})

	rb1 := eval.ApplyBinOp(syntax.RightBiasedRecordMerge, r1, r2)
	rb2 := eval.ApplyBinOp(syntax.RightBiasedRecordMerge, r2, r1)
	qt.Assert(t, qt.IsTrue(eval.AlphaEquivalent(rb1, rb2)))

	rm1 := eval.ApplyBinOp(syntax.RecursiveRecordMerge, r1, r2)
	rm2 := eval.ApplyBinOp(syntax.RecursiveRecordMerge, r2, r1)
	qt.Assert(t, qt.IsTrue(eval.AlphaEquivalent(rm1, rm2)))
}

func TestRightBiasedMergeSharedKeyPrefersRight(t *testing.T) {
	l := core.WHNFValue(&core.RecordLit{Fields: map[syntax.Label]*core.Value{"a": natValLit(1), "b": natValLit(2)}})
	r := core.WHNFValue(&core.RecordLit{Fields: map[syntax.Label]*core.Value{"b": natValLit(3), "c": natValLit(4)}})

	merged := eval.ApplyBinOp(syntax.RightBiasedRecordMerge, l, r).WHNF().(*core.RecordLit)
	qt.Assert(t, qt.Equals(len(merged.Fields), 3))
	b := merged.Fields["b"].WHNF().(*core.NaturalLitV)
	qt.Assert(t, qt.IsTrue(core.NumEqual(b.Val, core.NewNatural(3))))
}

func TestRecursiveMergeMergesSharedKeysRecursively(t *testing.T) {
	l := core.WHNFValue(&core.RecordLit{Fields: map[syntax.Label]*core.Value{
		"nested": core.WHNFValue(&core.RecordLit{Fields: map[syntax.Label]*core.Value{"x": natValLit(1)}}),
	}})
	r := core.WHNFValue(&core.RecordLit{Fields: map[syntax.Label]*core.Value{
		"nested": core.WHNFValue(&core.RecordLit{Fields: map[syntax.Label]*core.Value{"y": natValLit(2)}}),
	}})
	merged := eval.ApplyBinOp(syntax.RecursiveRecordMerge, l, r).WHNF().(*core.RecordLit)
	nested := merged.Fields["nested"].WHNF().(*core.RecordLit)
	qt.Assert(t, qt.Equals(len(nested.Fields), 2))
}

func TestEquivalenceNeverReduces(t *testing.T) {
	x := natValLit(1)
	eq := eval.ApplyBinOp(syntax.Equivalence, x, x)
	_, ok := eq.WHNF().(*core.Equivalence)
	qt.Assert(t, qt.IsTrue(ok))
}
