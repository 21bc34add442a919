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
	"github.com/marcesquerra/dhall-go/internal/debug"
	"github.com/marcesquerra/dhall-go/internal/eval"
	"github.com/marcesquerra/dhall-go/internal/syntax"
)

// assertAlphaEquivalent fails with a readable structural diff rather
// than a bare boolean when two Values turn out not to be
// alpha-equivalent.
func assertAlphaEquivalent(t *testing.T, want, got *core.Value) {
	t.Helper()
	if !eval.AlphaEquivalent(want, got) {
		t.Errorf("values not alpha-equivalent (-want +got):\n%s", debug.Diff(want, got))
	}
}

// TestAlphaEquivalenceIgnoresBinderLabel renames every binder in a
// closed lambda term and checks the two Values still compare equal.
func TestAlphaEquivalenceIgnoresBinderLabel(t *testing.T) {
	natType := te(core.BuiltinK{Builtin: syntax.NaturalType})
	bodyX := te(core.BinOpK{Op: syntax.NaturalPlus, L: te(core.VarK{Var: core.AlphaVar{Idx: 0}}), R: natLit(1)})
	bodyY := te(core.BinOpK{Op: syntax.NaturalPlus, L: te(core.VarK{Var: core.AlphaVar{Idx: 0}}), R: natLit(1)})

	lamX := te(core.LambdaK{Label: "x", Type: natType, Body: bodyX})
	lamY := te(core.LambdaK{Label: "renamed", Type: natType, Body: bodyY})

	vx := eval.Eval(lamX, nil)
	vy := eval.Eval(lamY, nil)
	assertAlphaEquivalent(t, vx, vy)
}

func TestAlphaEquivalenceDistinguishesDifferentBodies(t *testing.T) {
	natType := te(core.BuiltinK{Builtin: syntax.NaturalType})
	lamX := te(core.LambdaK{Label: "x", Type: natType, Body: natLit(1)})
	lamY := te(core.LambdaK{Label: "x", Type: natType, Body: natLit(2)})

	vx := eval.Eval(lamX, nil)
	vy := eval.Eval(lamY, nil)
	qt.Assert(t, qt.IsFalse(eval.AlphaEquivalent(vx, vy)))
}

func TestBetaLawMatchesSubstitution(t *testing.T) {
	// (\(x : Natural) -> x + 1) 4 ≡ 4 + 1 with the variable substituted.
	natType := te(core.BuiltinK{Builtin: syntax.NaturalType})
	body := te(core.BinOpK{Op: syntax.NaturalPlus, L: te(core.VarK{Var: core.AlphaVar{Idx: 0}}), R: natLit(1)})
	lam := te(core.LambdaK{Label: "x", Type: natType, Body: body})
	app := te(core.AppK{Fn: lam, Arg: natLit(4)})

	applied := eval.Eval(app, nil)
	substituted := eval.Eval(te(core.BinOpK{Op: syntax.NaturalPlus, L: natLit(4), R: natLit(1)}), nil)
	assertAlphaEquivalent(t, substituted, applied)
}

// TestUnionConstructorDistinguishesAltTypes: two constructors sharing a
// label but drawn from different union types are not interchangeable.
func TestUnionConstructorDistinguishesAltTypes(t *testing.T) {
	natAlts := map[syntax.Label]*core.Value{"A": core.WHNFValue(&core.AppliedBuiltin{B: syntax.NaturalType}), "B": nil}
	textAlts := map[syntax.Label]*core.Value{"A": core.WHNFValue(&core.AppliedBuiltin{B: syntax.TextType}), "B": nil}

	fromNat := core.WHNFValue(&core.UnionConstructor{Label: "A", AltTypes: natAlts})
	fromText := core.WHNFValue(&core.UnionConstructor{Label: "A", AltTypes: textAlts})
	fromNatAgain := core.WHNFValue(&core.UnionConstructor{Label: "A", AltTypes: natAlts})

	qt.Assert(t, qt.IsFalse(eval.AlphaEquivalent(fromNat, fromText)))
	qt.Assert(t, qt.IsTrue(eval.AlphaEquivalent(fromNat, fromNatAgain)))
}

// TestProjectionLaw: projecting twice is the
// same as projecting once by the intersection of the two label sets.
func TestProjectionLaw(t *testing.T) {
	rec := te(core.RecordLitK{Fields: map[syntax.Label]*core.TyExpr{
		"a": natLit(1), "b": natLit(2), "c": natLit(3),
	}})
	twice := te(core.ProjectK{
		Record: te(core.ProjectK{Record: rec, Labels: []syntax.Label{"a", "b"}}),
		Labels: []syntax.Label{"b", "c"},
	})
	once := te(core.ProjectK{Record: rec, Labels: []syntax.Label{"b"}})

	vTwice := eval.Eval(twice, nil)
	vOnce := eval.Eval(once, nil)
	assertAlphaEquivalent(t, vOnce, vTwice)
}
