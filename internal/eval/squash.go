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

// NormalizeTextLit squashes a text literal's chunk list to canonical
// form: adjacent literal runs are merged, nested TextLit splices are inlined
// recursively, empty literal fragments are dropped (except a lone
// chunk is kept so the fully-empty text literal still has something to
// print), and a literal that squashes down to a single non-literal
// splice with no surrounding text is unwrapped to that splice's own
// Value rather than staying wrapped in a TextLit shell.
func NormalizeTextLit(chunks []core.TextChunk) *core.Value {
	return core.Thunk(func() core.ValueF {
		squashed := mergeTextChunks(flattenTextChunks(chunks))

		if len(squashed) == 1 && squashed[0].Splice != nil {
			return squashed[0].Splice.WHNF()
		}
		if len(squashed) == 0 {
			squashed = []core.TextChunk{{Str: ""}}
		}
		return &core.TextLit{Chunks: squashed}
	})
}

// flattenTextChunks forces every splice to WHNF and inlines a nested
// TextLit's own chunks in place, so a splice of a splice never
// survives into the squashed form.
func flattenTextChunks(chunks []core.TextChunk) []core.TextChunk {
	out := make([]core.TextChunk, 0, len(chunks))
	for _, c := range chunks {
		if c.Splice == nil {
			out = append(out, c)
			continue
		}
		if inner, ok := c.Splice.WHNF().(*core.TextLit); ok {
			out = append(out, flattenTextChunks(inner.Chunks)...)
			continue
		}
		out = append(out, c)
	}
	return out
}

// mergeTextChunks merges adjacent literal runs and drops empty literal
// fragments, leaving splices as standalone chunks.
func mergeTextChunks(chunks []core.TextChunk) []core.TextChunk {
	out := make([]core.TextChunk, 0, len(chunks))
	for _, c := range chunks {
		if c.Splice != nil {
			out = append(out, c)
			continue
		}
		if c.Str == "" {
			continue
		}
		if n := len(out); n > 0 && out[n-1].Splice == nil {
			out[n-1].Str += c.Str
			continue
		}
		out = append(out, c)
	}
	return out
}
