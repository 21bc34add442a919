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

// Package core holds the representation the evaluator actually consumes
// and produces: the typed, alpha-normalized expression tree (TyExpr) on
// the way in, and the lazy weak-head-normal-form value graph (Value) on
// the way out. The two live in one package because they are mutually
// recursive: a TyExpr node's Type field is a *Value, and a Value's
// Lam/Pi bodies close over TyExpr bodies.
package core

import "github.com/marcesquerra/dhall-go/internal/syntax"

// AlphaVar is a pure de Bruijn index with no label, produced by
// elaboration. All variable equality in the evaluator is on idx alone.
type AlphaVar struct {
	Idx int
}

// TyExpr is a node of the post-elaboration tree: every node carries
// either an inferred type (Type != nil) or the explicit "no type"
// marker (Type == nil), which is permitted only for the top sort.
// Variables inside a TyExpr are alpha-normalized AlphaVar occurrences.
type TyExpr struct {
	Kind Kind
	Type *Value
}

func New(k Kind, typ *Value) *TyExpr {
	return &TyExpr{Kind: k, Type: typ}
}

// Kind is the sum type of TyExpr node shapes. It mirrors syntax.Expr's
// constructors but with AlphaVar variables and *TyExpr children.
type Kind interface {
	isKind()
}

type (
	VarK     struct{ Var AlphaVar }
	ConstK   struct{ Const syntax.Const }
	BuiltinK struct{ Builtin syntax.Builtin }

	BoolLitK struct{ Val bool }
	// NaturalLitK/IntegerLitK carry arbitrary-precision decimals; see
	// syntax.NaturalLit for why.
	NaturalLitK struct{ Val NumLit }
	IntegerLitK struct{ Val NumLit }
	DoubleLitK  struct{ Val syntax.Double }

	TextLitK struct {
		Head string
		Tail []TextTailK
	}
	TextTailK struct {
		Expr   *TyExpr
		Suffix string
	}

	SomeLitK struct{ Val *TyExpr }

	EmptyListLitK struct{ Type *TyExpr }
	NEListLitK    struct{ Exprs []*TyExpr }

	RecordLitK  struct{ Fields map[syntax.Label]*TyExpr }
	RecordTypeK struct{ Fields map[syntax.Label]*TyExpr }
	// UnionTypeK maps each alternative label to its payload type.
	// A nil entry means the alternative carries no payload.
	UnionTypeK struct{ Alts map[syntax.Label]*TyExpr }

	LambdaK struct {
		Label syntax.Label
		Type  *TyExpr
		Body  *TyExpr
	}
	PiK struct {
		Label syntax.Label
		Type  *TyExpr
		Body  *TyExpr
	}
	LetK struct {
		Label      syntax.Label
		Annotation *TyExpr // nilable
		Value      *TyExpr
		Body       *TyExpr
	}
	AppK struct {
		Fn  *TyExpr
		Arg *TyExpr
	}
	AnnotK  struct{ Val, Type *TyExpr }
	AssertK struct{ Type *TyExpr }
	BinOpK  struct {
		Op   syntax.Op
		L, R *TyExpr
	}
	BoolIfK struct{ Cond, Then, Else *TyExpr }
	MergeK  struct {
		Handlers *TyExpr
		Variant  *TyExpr
		Type     *TyExpr // nilable explicit annotation
	}
	FieldK   struct {
		Record *TyExpr
		Label  syntax.Label
	}
	ProjectK struct {
		Record *TyExpr
		Labels []syntax.Label
	}

	// ImportK and EmbedK must never reach the evaluator; the resolver
	// erases both before elaboration. They exist only so a malformed
	// tree can be detected and panicked on rather than silently
	// misevaluated.
	ImportK struct{}
	EmbedK  struct{ Value any }
)

func (VarK) isKind()           {}
func (ConstK) isKind()         {}
func (BuiltinK) isKind()       {}
func (BoolLitK) isKind()       {}
func (NaturalLitK) isKind()    {}
func (IntegerLitK) isKind()    {}
func (DoubleLitK) isKind()     {}
func (TextLitK) isKind()       {}
func (SomeLitK) isKind()       {}
func (EmptyListLitK) isKind()  {}
func (NEListLitK) isKind()     {}
func (RecordLitK) isKind()     {}
func (RecordTypeK) isKind()    {}
func (UnionTypeK) isKind()     {}
func (LambdaK) isKind()        {}
func (PiK) isKind()            {}
func (LetK) isKind()           {}
func (AppK) isKind()           {}
func (AnnotK) isKind()         {}
func (AssertK) isKind()        {}
func (BinOpK) isKind()         {}
func (BoolIfK) isKind()        {}
func (MergeK) isKind()         {}
func (FieldK) isKind()         {}
func (ProjectK) isKind()       {}
func (ImportK) isKind()        {}
func (EmbedK) isKind()         {}
