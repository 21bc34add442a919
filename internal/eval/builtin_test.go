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
	"math"
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/marcesquerra/dhall-go/internal/core"
	"github.com/marcesquerra/dhall-go/internal/eval"
	"github.com/marcesquerra/dhall-go/internal/syntax"
)

func builtinVal(b syntax.Builtin) *core.Value { return core.WHNFValue(&core.AppliedBuiltin{B: b}) }

func textOf(t *testing.T, v *core.Value) string {
	t.Helper()
	tl, ok := v.WHNF().(*core.TextLit)
	if !ok || len(tl.Chunks) != 1 || tl.Chunks[0].Splice != nil {
		t.Fatalf("expected a single-chunk TextLit, got %#v", v.WHNF())
	}
	return tl.Chunks[0].Str
}

func TestNaturalIsZeroEvenOdd(t *testing.T) {
	isZero := eval.ApplyAny(builtinVal(syntax.NaturalIsZero), natValLit(0))
	qt.Assert(t, qt.IsTrue(isZero.WHNF().(*core.BoolLitV).Val))

	even := eval.ApplyAny(builtinVal(syntax.NaturalEven), natValLit(4))
	qt.Assert(t, qt.IsTrue(even.WHNF().(*core.BoolLitV).Val))

	odd := eval.ApplyAny(builtinVal(syntax.NaturalOdd), natValLit(4))
	qt.Assert(t, qt.IsFalse(odd.WHNF().(*core.BoolLitV).Val))
}

func TestNaturalShowAndToInteger(t *testing.T) {
	shown := eval.ApplyAny(builtinVal(syntax.NaturalShow), natValLit(42))
	qt.Assert(t, qt.Equals(textOf(t, shown), "42"))

	asInt := eval.ApplyAny(builtinVal(syntax.NaturalToInteger), natValLit(7))
	iv, ok := asInt.WHNF().(*core.IntegerLitV)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.IsTrue(core.NumEqual(iv.Val, core.NewNatural(7))))
}

func TestNaturalSubtractSaturatesAndShortCircuits(t *testing.T) {
	sub := builtinVal(syntax.NaturalSubtract)

	r1 := eval.ApplyAny(eval.ApplyAny(sub, natValLit(3)), natValLit(5))
	qt.Assert(t, qt.IsTrue(core.NumEqual(r1.WHNF().(*core.NaturalLitV).Val, core.NewNatural(2))))

	r2 := eval.ApplyAny(eval.ApplyAny(sub, natValLit(5)), natValLit(3))
	qt.Assert(t, qt.IsTrue(core.NumEqual(r2.WHNF().(*core.NaturalLitV).Val, core.NewNatural(0))))

	zeroMinusNeutral := eval.ApplyAny(eval.ApplyAny(sub, natValLit(0)), core.WHNFValue(&core.Var{Level: 9}))
	_, ok := zeroMinusNeutral.WHNF().(*core.Var)
	qt.Assert(t, qt.IsTrue(ok))

	neutralMinusZero := eval.ApplyAny(eval.ApplyAny(sub, core.WHNFValue(&core.Var{Level: 9})), natValLit(0))
	qt.Assert(t, qt.IsTrue(core.NumEqual(neutralMinusZero.WHNF().(*core.NaturalLitV).Val, core.NewNatural(0))))

	neutral := core.WHNFValue(&core.Var{Level: 1})
	selfMinusSelf := eval.ApplyAny(eval.ApplyAny(sub, neutral), neutral)
	qt.Assert(t, qt.IsTrue(core.NumEqual(selfMinusSelf.WHNF().(*core.NaturalLitV).Val, core.NewNatural(0))))
}

func TestIntegerShowSignPrefix(t *testing.T) {
	pos := core.WHNFValue(&core.IntegerLitV{Val: core.NewInteger(3)})
	qt.Assert(t, qt.Equals(textOf(t, eval.ApplyAny(builtinVal(syntax.IntegerShow), pos)), "+3"))

	zero := core.WHNFValue(&core.IntegerLitV{Val: core.NewInteger(0)})
	qt.Assert(t, qt.Equals(textOf(t, eval.ApplyAny(builtinVal(syntax.IntegerShow), zero)), "+0"))

	neg := core.WHNFValue(&core.IntegerLitV{Val: core.NewInteger(-3)})
	qt.Assert(t, qt.Equals(textOf(t, eval.ApplyAny(builtinVal(syntax.IntegerShow), neg)), "-3"))
}

func TestDoubleShowSpecialValues(t *testing.T) {
	nan := core.WHNFValue(&core.DoubleLitV{Val: syntax.NewDouble(math.NaN())})
	qt.Assert(t, qt.Equals(textOf(t, eval.ApplyAny(builtinVal(syntax.DoubleShow), nan)), "NaN"))

	posInf := core.WHNFValue(&core.DoubleLitV{Val: syntax.NewDouble(math.Inf(1))})
	qt.Assert(t, qt.Equals(textOf(t, eval.ApplyAny(builtinVal(syntax.DoubleShow), posInf)), "Infinity"))

	negInf := core.WHNFValue(&core.DoubleLitV{Val: syntax.NewDouble(math.Inf(-1))})
	qt.Assert(t, qt.Equals(textOf(t, eval.ApplyAny(builtinVal(syntax.DoubleShow), negInf)), "-Infinity"))
}

func TestTextShowEscapes(t *testing.T) {
	s := core.WHNFValue(&core.TextLit{Chunks: []core.TextChunk{{Str: "a\"b\\c\nd"}}})
	shown := eval.ApplyAny(builtinVal(syntax.TextShow), s)
	qt.Assert(t, qt.Equals(textOf(t, shown), `"a\"b\\c\nd"`))
}

func TestListLengthHeadLastIndexed(t *testing.T) {
	natType := natTypeVal()
	empty := core.WHNFValue(&core.EmptyListLit{Type: natType})
	xs := core.WHNFValue(&core.NEListLit{Vals: []*core.Value{natValLit(10), natValLit(20)}})

	lenEmpty := eval.ApplyAny(eval.ApplyAny(builtinVal(syntax.ListLength), natType), empty)
	qt.Assert(t, qt.IsTrue(core.NumEqual(lenEmpty.WHNF().(*core.NaturalLitV).Val, core.NewNatural(0))))

	lenXs := eval.ApplyAny(eval.ApplyAny(builtinVal(syntax.ListLength), natType), xs)
	qt.Assert(t, qt.IsTrue(core.NumEqual(lenXs.WHNF().(*core.NaturalLitV).Val, core.NewNatural(2))))

	head := eval.ApplyAny(eval.ApplyAny(builtinVal(syntax.ListHead), natType), xs)
	some, ok := head.WHNF().(*core.NEOptionalLit)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.IsTrue(core.NumEqual(some.Val.WHNF().(*core.NaturalLitV).Val, core.NewNatural(10))))

	last := eval.ApplyAny(eval.ApplyAny(builtinVal(syntax.ListLast), natType), xs)
	someLast, ok := last.WHNF().(*core.NEOptionalLit)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.IsTrue(core.NumEqual(someLast.Val.WHNF().(*core.NaturalLitV).Val, core.NewNatural(20))))

	headEmpty := eval.ApplyAny(eval.ApplyAny(builtinVal(syntax.ListHead), natType), empty)
	_, ok = headEmpty.WHNF().(*core.EmptyOptionalLit)
	qt.Assert(t, qt.IsTrue(ok))

	indexed := eval.ApplyAny(eval.ApplyAny(builtinVal(syntax.ListIndexed), natType), xs).WHNF().(*core.NEListLit)
	qt.Assert(t, qt.Equals(len(indexed.Vals), 2))
	first := indexed.Vals[0].WHNF().(*core.RecordLit)
	idx := first.Fields["index"].WHNF().(*core.NaturalLitV)
	qt.Assert(t, qt.IsTrue(core.NumEqual(idx.Val, core.NewNatural(0))))
}

// TestListReverse: List/reverse Natural [1, 2, 3] -> [3, 2, 1].
func TestListReverse(t *testing.T) {
	natType := natTypeVal()
	xs := core.WHNFValue(&core.NEListLit{Vals: []*core.Value{natValLit(1), natValLit(2), natValLit(3)}})

	reversed := eval.ApplyAny(eval.ApplyAny(builtinVal(syntax.ListReverse), natType), xs).WHNF().(*core.NEListLit)
	qt.Assert(t, qt.Equals(len(reversed.Vals), 3))
	want := []uint64{3, 2, 1}
	for i, w := range want {
		got := reversed.Vals[i].WHNF().(*core.NaturalLitV)
		qt.Assert(t, qt.IsTrue(core.NumEqual(got.Val, core.NewNatural(w))))
	}
}

func TestListBuildFoldFusion(t *testing.T) {
	natType := natTypeVal()
	xs := core.WHNFValue(&core.NEListLit{Vals: []*core.Value{natValLit(1), natValLit(2), natValLit(3)}})

	fold := eval.ApplyAny(eval.ApplyAny(builtinVal(syntax.ListFold), natType), xs)
	built := eval.ApplyAny(eval.ApplyAny(builtinVal(syntax.ListBuild), natType), fold)

	qt.Assert(t, qt.IsTrue(eval.AlphaEquivalent(built, xs)))
}

func TestNaturalBuildFoldFusion(t *testing.T) {
	five := natValLit(5)
	fold := eval.ApplyAny(builtinVal(syntax.NaturalFold), five)
	built := eval.ApplyAny(builtinVal(syntax.NaturalBuild), fold)
	qt.Assert(t, qt.IsTrue(eval.AlphaEquivalent(built, five)))
}

func TestOptionalBuildFoldFusion(t *testing.T) {
	natType := natTypeVal()
	some := core.WHNFValue(&core.NEOptionalLit{Val: natValLit(1)})

	fold := eval.ApplyAny(eval.ApplyAny(builtinVal(syntax.OptionalFold), natType), some)
	built := eval.ApplyAny(eval.ApplyAny(builtinVal(syntax.OptionalBuild), natType), fold)
	qt.Assert(t, qt.IsTrue(eval.AlphaEquivalent(built, some)))
}

func TestNaturalFoldCountsUp(t *testing.T) {
	natType := natTypeVal()
	succ := core.WHNFValue(&core.Lam{
		Label: "n", Type: natType,
		Body: func(arg *core.Value) *core.Value {
			return eval.ApplyBinOp(syntax.NaturalPlus, arg, natValLit(1))
		},
	})
	fold := eval.ApplyAny(builtinVal(syntax.NaturalFold), natValLit(3))
	fold = eval.ApplyAny(fold, natType)
	fold = eval.ApplyAny(fold, succ)
	result := eval.ApplyAny(fold, natValLit(0))
	qt.Assert(t, qt.IsTrue(core.NumEqual(result.WHNF().(*core.NaturalLitV).Val, core.NewNatural(3))))
}

// TestSaturatedFoldOverNeutralKeepsEveryArg pins the neutral shape of a
// fully applied fold whose scrutinee is blocked: `List/fold T n U cons
// nil` over a neutral n must stay a five-argument AppliedBuiltin, not
// collapse to `List/fold n` and lose the handler arguments.
func TestSaturatedFoldOverNeutralKeepsEveryArg(t *testing.T) {
	natType := natTypeVal()
	neutralList := core.WHNFValue(&core.Var{Level: 0})
	cons := core.WHNFValue(&core.Var{Level: 1})
	nilVal := natValLit(0)

	fold := builtinVal(syntax.ListFold)
	for _, a := range []*core.Value{natType, neutralList, natType, cons, nilVal} {
		fold = eval.ApplyAny(fold, a)
	}

	ab, ok := fold.WHNF().(*core.AppliedBuiltin)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(ab.B, syntax.ListFold))
	qt.Assert(t, qt.Equals(len(ab.Args), 5))
}

func TestUnderArityBuiltinStaysNeutral(t *testing.T) {
	// Natural/fold applied to only its first argument must stay a
	// neutral AppliedBuiltin rather than panicking or misfiring.
	partial := eval.ApplyAny(builtinVal(syntax.NaturalFold), natValLit(3))
	ab, ok := partial.WHNF().(*core.AppliedBuiltin)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(ab.B, syntax.NaturalFold))
	qt.Assert(t, qt.Equals(len(ab.Args), 1))
}
