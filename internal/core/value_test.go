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

package core_test

import (
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/marcesquerra/dhall-go/internal/core"
)

func TestWHNFIdempotent(t *testing.T) {
	calls := 0
	v := core.Thunk(func() core.ValueF {
		calls++
		return &core.BoolLitV{Val: true}
	})

	first := v.WHNF()
	second := v.WHNF()

	qt.Assert(t, qt.Equals(calls, 1))
	qt.Assert(t, qt.Equals(first, second))
	qt.Assert(t, qt.IsFalse(v.IsNF()))
}

func TestMarkNF(t *testing.T) {
	v := core.WHNFValue(&core.BoolLitV{Val: false})
	qt.Assert(t, qt.IsFalse(v.IsNF()))
	v.MarkNF()
	qt.Assert(t, qt.IsTrue(v.IsNF()))
}

func TestEnvLookupAndOpen(t *testing.T) {
	var env *core.Env
	env = env.Extend(core.WHNFValue(&core.NaturalLitV{Val: core.NewNatural(1)}))
	env = env.Extend(core.WHNFValue(&core.NaturalLitV{Val: core.NewNatural(2)}))

	inner := env.Lookup(0).WHNF().(*core.NaturalLitV)
	outer := env.Lookup(1).WHNF().(*core.NaturalLitV)
	qt.Assert(t, qt.IsTrue(core.NumEqual(inner.Val, core.NewNatural(2))))
	qt.Assert(t, qt.IsTrue(core.NumEqual(outer.Val, core.NewNatural(1))))

	opened, fresh := env.Open()
	qt.Assert(t, qt.Equals(opened.Size(), 3))
	v, ok := fresh.WHNF().(*core.Var)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(v.Level, 2))
}

func TestEnvLookupPastDepthPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic looking up an index past the environment depth")
		}
	}()
	var env *core.Env
	env = env.Extend(core.WHNFValue(&core.BoolLitV{Val: true}))
	env.Lookup(5)
}
