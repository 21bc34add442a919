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

import "github.com/marcesquerra/dhall-go/internal/core"

// ApplyAny applies f to a: beta reduction, built-in argument
// accumulation, union constructor application, or (if none of those
// fire) a neutral application.
func ApplyAny(f, a *core.Value) *core.Value {
	return core.Thunk(func() core.ValueF {
		switch fv := f.WHNF().(type) {
		case *core.Lam:
			return fv.Body(a).WHNF()

		case *core.AppliedBuiltin:
			args := make([]*core.Value, len(fv.Args)+1)
			copy(args, fv.Args)
			args[len(fv.Args)] = a
			return ApplyBuiltin(fv.B, args).WHNF()

		case *core.UnionConstructor:
			return &core.UnionLit{Label: fv.Label, Payload: a, AltTypes: fv.AltTypes}

		default:
			return &core.NeutralApp{Fn: f, Arg: a}
		}
	})
}
