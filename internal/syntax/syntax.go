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

// Package syntax defines the label, variable, constant, operator and
// built-in vocabulary shared by the surface expression tree and the
// typed expression tree the evaluator consumes.
package syntax

import (
	"math"

	"golang.org/x/text/unicode/norm"
)

// Label is an interned-by-value string identifier used for binders and
// record/union keys. Equality is structural (plain Go string ==).
type Label string

// NormalizeLabel puts s into Unicode NFC, the form the language requires
// for label and text-literal byte-exactness.
func NormalizeLabel(s string) Label {
	return Label(norm.NFC.String(s))
}

// Var is a surface variable: a name plus a de Bruijn index counting
// occurrences of the same label in enclosing binders (0 = innermost).
// Only the surface tree (Expr) uses named variables; the typed tree
// (core.TyExpr) uses pure indices (core.AlphaVar) instead.
type Var struct {
	Name  Label
	Index int
}

// Const is the sort hierarchy: Type : Kind : Sort.
type Const int

const (
	Type Const = iota
	Kind
	Sort
)

func (c Const) String() string {
	switch c {
	case Type:
		return "Type"
	case Kind:
		return "Kind"
	case Sort:
		return "Sort"
	default:
		return "Const(?)"
	}
}

// Op enumerates the binary operators handled by ApplyBinOp. NaturalSubtract
// is deliberately absent: the language treats it as a built-in function,
// not an operator, and it is dispatched through ApplyBuiltin instead.
type Op int

const (
	BoolAnd Op = iota
	BoolOr
	BoolEQ
	BoolNE
	NaturalPlus
	NaturalTimes
	ListAppend
	TextAppend
	RightBiasedRecordMerge
	RecursiveRecordMerge
	RecursiveRecordTypeMerge
	Equivalence
)

func (o Op) String() string {
	switch o {
	case BoolAnd:
		return "&&"
	case BoolOr:
		return "||"
	case BoolEQ:
		return "=="
	case BoolNE:
		return "!="
	case NaturalPlus:
		return "+"
	case NaturalTimes:
		return "*"
	case ListAppend:
		return "#"
	case TextAppend:
		return "++"
	case RightBiasedRecordMerge:
		return "⫽"
	case RecursiveRecordMerge:
		return "∧"
	case RecursiveRecordTypeMerge:
		return "⩓"
	case Equivalence:
		return "≡"
	default:
		return "Op(?)"
	}
}

// Builtin enumerates the language's primitive functions and type names.
type Builtin int

const (
	OptionalNone Builtin = iota
	NaturalIsZero
	NaturalEven
	NaturalOdd
	NaturalToInteger
	NaturalShow
	NaturalSubtract
	NaturalBuild
	NaturalFold
	IntegerShow
	IntegerToDouble
	DoubleShow
	TextShow
	ListLength
	ListHead
	ListLast
	ListReverse
	ListIndexed
	ListBuild
	ListFold
	OptionalBuild
	OptionalFold

	// ListType and OptionalType are the List/Optional type formers
	// themselves (List : Type -> Type, Optional : Type -> Type). They
	// never fire a reduction rule in ApplyBuiltin: once applied to one
	// argument they are already in canonical form. They exist so
	// NormalizeEmptyList can recognize an element-type annotation of
	// the shape `List T` and unwrap it to T, the way the elaborator's
	// own type for `[] : List Natural` is spelled.
	ListType
	OptionalType

	// BoolType, NaturalType, IntegerType, DoubleType and TextType are
	// the zero-argument primitive type names. They evaluate to an
	// AppliedBuiltin with no arguments (nothing applies to them) and
	// never fire a reduction rule; they exist purely so these names evaluate
	// to a distinguishable Value, the way every other named constant in
	// the language does, without inventing a separate "primitive type"
	// ValueF shape alongside AppliedBuiltin.
	BoolType
	NaturalType
	IntegerType
	DoubleType
	TextType
)

var builtinNames = map[Builtin]string{
	OptionalNone:     "None",
	NaturalIsZero:    "Natural/isZero",
	NaturalEven:      "Natural/even",
	NaturalOdd:       "Natural/odd",
	NaturalToInteger: "Natural/toInteger",
	NaturalShow:      "Natural/show",
	NaturalSubtract:  "Natural/subtract",
	NaturalBuild:     "Natural/build",
	NaturalFold:      "Natural/fold",
	IntegerShow:      "Integer/show",
	IntegerToDouble:  "Integer/toDouble",
	DoubleShow:       "Double/show",
	TextShow:         "Text/show",
	ListLength:       "List/length",
	ListHead:         "List/head",
	ListLast:         "List/last",
	ListReverse:      "List/reverse",
	ListIndexed:      "List/indexed",
	ListBuild:        "List/build",
	ListFold:         "List/fold",
	OptionalBuild:    "Optional/build",
	OptionalFold:     "Optional/fold",
	ListType:         "List",
	OptionalType:     "Optional",
	BoolType:         "Bool",
	NaturalType:      "Natural",
	IntegerType:      "Integer",
	DoubleType:       "Double",
	TextType:         "Text",
}

func (b Builtin) String() string {
	if n, ok := builtinNames[b]; ok {
		return n
	}
	return "Builtin(?)"
}

// Double wraps an IEEE-754 binary64 value so that equality is bit-exact
// (0 != -0) except that a NaN is never equal to anything, including
// another NaN with the identical bit pattern.
type Double struct {
	bits uint64
}

func NewDouble(f float64) Double { return Double{bits: math.Float64bits(f)} }

func (d Double) Float() float64 { return math.Float64frombits(d.bits) }

func (d Double) Equal(o Double) bool {
	if math.IsNaN(d.Float()) || math.IsNaN(o.Float()) {
		return false
	}
	return d.bits == o.bits
}

func (d Double) IsNaN() bool { return math.IsNaN(d.Float()) }
