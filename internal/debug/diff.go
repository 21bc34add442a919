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

package debug

import (
	"github.com/cockroachdb/apd/v2"
	"github.com/google/go-cmp/cmp"

	"github.com/marcesquerra/dhall-go/internal/core"
	"github.com/marcesquerra/dhall-go/internal/syntax"
)

// diffOpts lets cmp.Diff walk a quoted Expr tree without tripping over
// the two leaf types that carry unexported state on purpose
// (apd.Decimal's internal digit buffer, syntax.Double's bit pattern):
// both compare by their canonical, already-public representation
// instead.
var diffOpts = cmp.Options{
	cmp.Transformer("apd.Decimal", func(d apd.Decimal) string { return d.String() }),
	cmp.Transformer("syntax.Double", func(d syntax.Double) float64 { return d.Float() }),
}

// Diff fully normalizes and quotes two Values back to surface syntax
// and reports their structural difference, friendlier than a raw %#v
// dump when two deeply nested trees differ in one leaf.
// An empty string means the two Values are alpha-equivalent; quoting
// under the Alpha option keeps a difference in binder spelling alone
// from showing up as a spurious diff.
func Diff(want, got *core.Value) string {
	we := Quote(want, Options{Normalize: true, Alpha: true})
	ge := Quote(got, Options{Normalize: true, Alpha: true})
	return cmp.Diff(we, ge, diffOpts)
}
