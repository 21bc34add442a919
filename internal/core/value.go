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

import "github.com/marcesquerra/dhall-go/internal/syntax"

// wstate is the WHNF progress level of a Value. The transition
// Unevaluated -> WHNF -> NF is monotone and idempotent: once
// a Value advances, it never regresses, and re-requesting the same
// level is a no-op.
type wstate int8

const (
	stUnevaluated wstate = iota
	stWHNF
	stNF
)

// Value is a shared, mutable cell containing a lazily computed
// weak-head-normal-form. Multiple references to the same cell observe
// the same progress: forcing one reference forces all of them. The
// zero Value is never valid; use Thunk or WHNFValue to build one.
type Value struct {
	state   wstate
	compute func() ValueF // non-nil only while state == stUnevaluated
	whnf    ValueF
}

// Thunk builds an Unevaluated Value that will call compute at most once,
// the first time its WHNF is requested.
func Thunk(compute func() ValueF) *Value {
	return &Value{state: stUnevaluated, compute: compute}
}

// WHNFValue builds a Value that is already at WHNF, for atoms that
// require no further reduction (literals, Pi/Lam introduced directly by
// the builtin builder API, etc.).
func WHNFValue(vf ValueF) *Value {
	return &Value{state: stWHNF, whnf: vf}
}

// WHNF forces v to weak-head-normal-form and returns its head. Forcing
// twice returns the identical ValueF.
func (v *Value) WHNF() ValueF {
	if v.state == stUnevaluated {
		v.whnf = v.compute()
		v.compute = nil
		v.state = stWHNF
	}
	return v.whnf
}

// IsNF reports whether v has already been fully normalized.
func (v *Value) IsNF() bool { return v.state == stNF }

// MarkNF advances v to the NF state without touching its ValueF.
// Callers (internal/eval's full-normalization pass) must already have
// normalized every child Value reachable from v.WHNF() before calling
// this, since MarkNF itself does no traversal.
func (v *Value) MarkNF() { v.state = stNF }

// ValueF is the sum type of WHNF shapes: neutral (blocked) forms and
// canonical forms.
type ValueF interface {
	isValueF()
}

type (
	// Var is a neutral free variable introduced when a Lam/Pi body is
	// opened without a real argument (full normalization, printing,
	// alpha-equivalence). Level counts binders from the outermost
	// normalization root inward; it is converted back to a de Bruijn
	// index relative to the current depth only at comparison/print
	// time (depth - Level - 1), which is what keeps it stable as the
	// Value escapes to greater binder depth than where it was opened.
	Var struct{ Level int }

	// AppliedBuiltin is a built-in with its pending, not-yet-sufficient
	// arguments.
	AppliedBuiltin struct {
		B    syntax.Builtin
		Args []*Value
	}

	// UnionConstructor is a union alternative's constructor, waiting
	// for its payload argument.
	UnionConstructor struct {
		Label    syntax.Label
		AltTypes map[syntax.Label]*Value
	}
	UnionLit struct {
		Label    syntax.Label
		Payload  *Value
		AltTypes map[syntax.Label]*Value
	}

	// Lam and Pi carry their body as a Go closure rather than a raw
	// TyExpr: when built by Eval it closes over (bodyExpr, env) and
	// defers instantiation; when built by the List/Optional/Natural
	// build-unfolding rules (internal/eval/builtin.go) it is a literal
	// Go function constructing the unfolded term directly. nf caches
	// the one-time open-with-a-neutral-variable normalization done by
	// Normalize so repeat descents don't redo it.
	Lam struct {
		Label syntax.Label
		Type  *Value
		Body  func(arg *Value) *Value
		nf    *Value
	}
	Pi struct {
		Label syntax.Label
		Type  *Value
		Body  func(arg *Value) *Value
		nf    *Value
	}

	ConstV      struct{ Const syntax.Const }
	BoolLitV    struct{ Val bool }
	NaturalLitV struct{ Val NumLit }
	IntegerLitV struct{ Val NumLit }
	DoubleLitV  struct{ Val syntax.Double }

	EmptyListLit struct{ Type *Value }
	NEListLit    struct{ Vals []*Value }

	EmptyOptionalLit struct{ Type *Value }
	NEOptionalLit    struct{ Val *Value }

	RecordLit  struct{ Fields map[syntax.Label]*Value }
	RecordType struct{ Fields map[syntax.Label]*Value }
	// UnionType maps each alternative to its payload type; a nil entry
	// means the alternative carries no payload.
	UnionType struct{ Alts map[syntax.Label]*Value }

	// TextLit is the canonical, squashed form: see
	// internal/eval.NormalizeTextLit for the merge/inline/drop-empty
	// rules that produce it.
	TextLit struct{ Chunks []TextChunk }
	// TextChunk is either a literal run (Splice == nil) or a spliced
	// value (Splice != nil, Str ignored).
	TextChunk struct {
		Str    string
		Splice *Value
	}

	// Equivalence never reduces further; two Equivalence values are
	// equal iff their components are alpha-equal.
	Equivalence struct{ X, Y *Value }

	// The Neutral* shapes wrap a blocked construct no reduction rule
	// could fire on: a blocked application, field access on a neutral
	// record, and so on.
	NeutralApp struct{ Fn, Arg *Value }
	NeutralField struct {
		Record *Value
		Label  syntax.Label
	}
	NeutralProject struct {
		Record *Value
		Labels []syntax.Label
	}
	NeutralMerge struct{ Handlers, Variant *Value }
	NeutralBinOp struct {
		Op   syntax.Op
		L, R *Value
	}
	NeutralBoolIf struct{ Cond, Then, Else *Value }
	NeutralAssert struct{ Type *Value }
)

// CachedNF/SetCachedNF expose Lam/Pi's nf field to internal/eval's full
// normalization pass, which uses it to memoize the one-time
// open-with-a-neutral-variable traversal a Lam or Pi only ever needs
// once (repeat Normalize calls on the same function Value see the
// cache is set and skip re-walking its body).
func (l *Lam) CachedNF() *Value     { return l.nf }
func (l *Lam) SetCachedNF(v *Value) { l.nf = v }
func (p *Pi) CachedNF() *Value      { return p.nf }
func (p *Pi) SetCachedNF(v *Value)  { p.nf = v }

func (*Var) isValueF()              {}
func (*AppliedBuiltin) isValueF()   {}
func (*UnionConstructor) isValueF() {}
func (*UnionLit) isValueF()         {}
func (*Lam) isValueF()              {}
func (*Pi) isValueF()               {}
func (*ConstV) isValueF()           {}
func (*BoolLitV) isValueF()         {}
func (*NaturalLitV) isValueF()      {}
func (*IntegerLitV) isValueF()      {}
func (*DoubleLitV) isValueF()       {}
func (*EmptyListLit) isValueF()     {}
func (*NEListLit) isValueF()        {}
func (*EmptyOptionalLit) isValueF() {}
func (*NEOptionalLit) isValueF()    {}
func (*RecordLit) isValueF()        {}
func (*RecordType) isValueF()       {}
func (*UnionType) isValueF()        {}
func (*TextLit) isValueF()          {}
func (*Equivalence) isValueF()      {}
func (*NeutralApp) isValueF()       {}
func (*NeutralField) isValueF()     {}
func (*NeutralProject) isValueF()   {}
func (*NeutralMerge) isValueF()     {}
func (*NeutralBinOp) isValueF()     {}
func (*NeutralBoolIf) isValueF()    {}
func (*NeutralAssert) isValueF()    {}
