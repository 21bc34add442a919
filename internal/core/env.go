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

// Env is a persistent cons-list of bound Values, extended at the head
// so extension is O(1) and sharing-friendly. Lookup walks by de Bruijn
// index from the head.
type Env struct {
	val  *Value
	next *Env
	size int
}

// Extend returns a new environment with v bound at index 0, shifting
// every existing binding up by one index.
func (e *Env) Extend(v *Value) *Env {
	return &Env{val: v, next: e, size: e.Size() + 1}
}

// Size returns the number of bindings in e (nil counts as 0).
func (e *Env) Size() int {
	if e == nil {
		return 0
	}
	return e.size
}

// Lookup returns the Value bound at de Bruijn index idx (0 = innermost).
// A negative idx or an idx beyond the environment's depth is a
// precondition violation: the TyExpr was not properly alpha-normalized
// and closed by the elaborator.
func (e *Env) Lookup(idx int) *Value {
	for ; idx > 0; idx-- {
		if e == nil {
			panic("core: variable index exceeds environment depth")
		}
		e = e.next
	}
	if e == nil {
		panic("core: variable index exceeds environment depth")
	}
	return e.val
}

// Open extends e with a fresh neutral variable at the current depth and
// returns both the new environment and that variable's Value, for use
// when a Lam/Pi body must be inspected without a real argument (full
// normalization, alpha-equivalence, printing).
func (e *Env) Open() (*Env, *Value) {
	level := e.Size()
	v := WHNFValue(&Var{Level: level})
	return e.Extend(v), v
}
