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

package core

import "github.com/cockroachdb/apd/v2"

// NumLit is the arbitrary-precision decimal payload shared by Natural
// and Integer literals, so literal arithmetic never silently
// overflows a machine word.
type NumLit = apd.Decimal

// ApdCtx is the decimal context used for Natural/Integer arithmetic,
// with enough precision headroom for the unbounded-width literals the
// language permits.
var ApdCtx apd.Context

func init() {
	ApdCtx = apd.BaseContext
	ApdCtx.Precision = 50
}

// NewNatural builds a NumLit from a non-negative machine int, for use
// by tests and the CLI's fixture builder.
func NewNatural(n uint64) NumLit {
	var d apd.Decimal
	d.SetFinite(int64(n), 0)
	return d
}

func NewInteger(n int64) NumLit {
	var d apd.Decimal
	d.SetFinite(n, 0)
	return d
}

// NumEqual compares two decimals for exact value equality (not identity).
func NumEqual(a, b NumLit) bool {
	return a.Cmp(&b) == 0
}

// NumIsZero reports whether d is exactly zero.
func NumIsZero(d NumLit) bool {
	return d.IsZero()
}

// NumSign reports the sign of d: -1, 0, or 1.
func NumSign(d NumLit) int {
	return d.Sign()
}
