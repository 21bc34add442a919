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

package syntax

import "github.com/cockroachdb/apd/v2"

// Expr is a node of the surface, printable expression tree: the shape
// fed to the parser/resolver/typechecker upstream of this core, and the
// shape produced by debug.Quote/debug.ToExpr for printing and
// round-tripping.
//
// Only Var carries a name; once a tree has gone through elaboration its
// variables become core.AlphaVar instead, which is why Expr and
// core.TyExpr are two distinct (if structurally parallel) types rather
// than one tree with an optional name field.
type Expr interface {
	isExpr()
}

type (
	VarExpr   struct{ Var Var }
	ConstExpr struct{ Const Const }
	BuiltinExpr struct{ Builtin Builtin }

	BoolLit struct{ Val bool }
	// NaturalLit and IntegerLit hold arbitrary-precision decimals
	// (github.com/cockroachdb/apd/v2), not machine words: the language
	// puts no width bound on either literal form.
	NaturalLit struct{ Val apd.Decimal }
	IntegerLit struct{ Val apd.Decimal }
	DoubleLitExpr struct{ Val Double }

	// TextLitExpr models an interpolated text literal as a leading
	// literal run followed by zero or more (spliced expression,
	// trailing literal run) pairs, mirroring the upstream Rust
	// InterpolatedText<Expr> representation.
	TextLitExpr struct {
		Head string
		Tail []TextTail
	}
	TextTail struct {
		Expr   Expr
		Suffix string
	}

	SomeLit struct{ Val Expr }

	EmptyListLit struct{ Type Expr }
	NEListLit    struct{ Exprs []Expr }

	RecordLitExpr  struct{ Fields map[Label]Expr }
	RecordTypeExpr struct{ Fields map[Label]Expr }
	// UnionTypeExpr maps each alternative label to its payload type.
	// A nil Expr value means the alternative carries no payload.
	UnionTypeExpr struct{ Alts map[Label]Expr }

	LambdaExpr struct {
		Label Label
		Type  Expr
		Body  Expr
	}
	PiExpr struct {
		Label Label
		Type  Expr
		Body  Expr
	}
	LetExpr struct {
		Label      Label
		Annotation Expr // nilable
		Value      Expr
		Body       Expr
	}
	AppExpr struct {
		Fn  Expr
		Arg Expr
	}
	AnnotExpr struct {
		Val  Expr
		Type Expr
	}
	AssertExpr struct{ Type Expr }
	BinOpExpr  struct {
		Op   Op
		L, R Expr
	}
	BoolIfExpr struct {
		Cond, Then, Else Expr
	}
	MergeExpr struct {
		Handlers Expr
		Variant  Expr
		Type     Expr // nilable explicit annotation
	}
	FieldExpr struct {
		Record Expr
		Label  Label
	}
	ProjectExpr struct {
		Record Expr
		Labels []Label
	}

	// ImportExpr and EmbedExpr are placeholders: the resolver erases
	// both before elaboration, so a TyExpr that reaches the evaluator
	// never contains either. They exist here only so the surface tree
	// can represent pre-resolution input; nothing in this module builds
	// them, and Quote/ToExpr never produce them (the evaluator panics on
	// the matching TyExpr kinds).
	ImportExpr struct{}
	EmbedExpr  struct{ Value any }
)

func (VarExpr) isExpr()        {}
func (ConstExpr) isExpr()      {}
func (BuiltinExpr) isExpr()    {}
func (BoolLit) isExpr()        {}
func (NaturalLit) isExpr()     {}
func (IntegerLit) isExpr()     {}
func (DoubleLitExpr) isExpr()  {}
func (TextLitExpr) isExpr()    {}
func (SomeLit) isExpr()        {}
func (EmptyListLit) isExpr()   {}
func (NEListLit) isExpr()      {}
func (RecordLitExpr) isExpr()  {}
func (RecordTypeExpr) isExpr() {}
func (UnionTypeExpr) isExpr()  {}
func (LambdaExpr) isExpr()     {}
func (PiExpr) isExpr()         {}
func (LetExpr) isExpr()        {}
func (AppExpr) isExpr()        {}
func (AnnotExpr) isExpr()      {}
func (AssertExpr) isExpr()     {}
func (BinOpExpr) isExpr()      {}
func (BoolIfExpr) isExpr()     {}
func (MergeExpr) isExpr()      {}
func (FieldExpr) isExpr()      {}
func (ProjectExpr) isExpr()    {}
func (ImportExpr) isExpr()     {}
func (EmbedExpr) isExpr()      {}
