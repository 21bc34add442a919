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
	"github.com/kr/pretty"
	"github.com/marcesquerra/dhall-go/internal/core"
	"github.com/marcesquerra/dhall-go/internal/eval"
)

// Dump renders v's WHNF shape (one layer, not recursively forced) with
// github.com/kr/pretty, for ad hoc debugging of evaluator output.
func Dump(v *core.Value) string {
	return pretty.Sprint(v.WHNF())
}

// DumpDeep fully normalizes v first, then dumps the resulting ValueF
// tree. Lam/Pi bodies are Go closures and show up as such.
func DumpDeep(v *core.Value) string {
	return pretty.Sprint(eval.Normalize(v).WHNF())
}
