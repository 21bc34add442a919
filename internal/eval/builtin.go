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

import (
	"math"
	"strconv"

	"github.com/marcesquerra/dhall-go/internal/core"
	"github.com/marcesquerra/dhall-go/internal/syntax"
)

// builtinArity gives the number of arguments each built-in needs before
// ApplyBuiltin can fire its reduction rule. A built-in absent from
// this map (ListType, OptionalType, and
// the zero-argument primitive type names) never fires — it stays a
// neutral AppliedBuiltin no matter how it's applied.
var builtinArity = map[syntax.Builtin]int{
	syntax.OptionalNone:     1,
	syntax.NaturalIsZero:    1,
	syntax.NaturalEven:      1,
	syntax.NaturalOdd:       1,
	syntax.NaturalToInteger: 1,
	syntax.NaturalShow:      1,
	syntax.NaturalSubtract:  2,
	syntax.NaturalBuild:     1,
	syntax.NaturalFold:      4,
	syntax.IntegerShow:      1,
	syntax.IntegerToDouble:  1,
	syntax.DoubleShow:       1,
	syntax.TextShow:         1,
	syntax.ListLength:       2,
	syntax.ListHead:         2,
	syntax.ListLast:         2,
	syntax.ListReverse:      2,
	syntax.ListIndexed:      2,
	syntax.ListBuild:        2,
	syntax.ListFold:         5,
	syntax.OptionalBuild:    2,
	syntax.OptionalFold:     5,
}

// ApplyBuiltin accumulates arguments until a built-in has enough to
// fire, then dispatches to its
// reduction rule (which may itself stay neutral, e.g. Natural/isZero
// applied to a non-literal). Over-application — more args than the
// built-in needs — applies the excess through ApplyAny against
// whatever Value the built-in's own rule produced.
func ApplyBuiltin(b syntax.Builtin, args []*core.Value) *core.Value {
	return core.Thunk(func() core.ValueF {
		arity, known := builtinArity[b]
		if !known || len(args) < arity {
			return &core.AppliedBuiltin{B: b, Args: args}
		}

		result := dispatchBuiltin(b, args[:arity])
		for _, extra := range args[arity:] {
			result = ApplyAny(result, extra)
		}
		return result.WHNF()
	})
}

func dispatchBuiltin(b syntax.Builtin, args []*core.Value) *core.Value {
	switch b {
	case syntax.OptionalNone:
		return core.WHNFValue(&core.EmptyOptionalLit{Type: args[0]})

	case syntax.NaturalIsZero:
		return applyNaturalIsZero(args[0])
	case syntax.NaturalEven:
		return applyNaturalParity(args[0], true)
	case syntax.NaturalOdd:
		return applyNaturalParity(args[0], false)
	case syntax.NaturalToInteger:
		return applyNaturalToInteger(args[0])
	case syntax.NaturalShow:
		return applyNaturalShow(args[0])
	case syntax.NaturalSubtract:
		return applyNaturalSubtract(args[0], args[1])
	case syntax.NaturalBuild:
		return applyNaturalBuild(args[0])
	case syntax.NaturalFold:
		return applyNaturalFold(args)

	case syntax.IntegerShow:
		return applyIntegerShow(args[0])
	case syntax.IntegerToDouble:
		return applyIntegerToDouble(args[0])
	case syntax.DoubleShow:
		return applyDoubleShow(args[0])
	case syntax.TextShow:
		return applyTextShow(args[0])

	case syntax.ListLength:
		return applyListLength(args)
	case syntax.ListHead:
		return applyListHeadOrLast(args[0], args[1], true)
	case syntax.ListLast:
		return applyListHeadOrLast(args[0], args[1], false)
	case syntax.ListReverse:
		return applyListReverse(args[0], args[1])
	case syntax.ListIndexed:
		return applyListIndexed(args[0], args[1])
	case syntax.ListBuild:
		return applyListBuild(args[0], args[1])
	case syntax.ListFold:
		return applyListFold(args)

	case syntax.OptionalBuild:
		return applyOptionalBuild(args[0], args[1])
	case syntax.OptionalFold:
		return applyOptionalFold(args)

	default:
		panic("eval: unhandled builtin arity entry")
	}
}

// --- Natural ---------------------------------------------------------

func applyNaturalIsZero(n *core.Value) *core.Value {
	return core.Thunk(func() core.ValueF {
		if nv, ok := n.WHNF().(*core.NaturalLitV); ok {
			return &core.BoolLitV{Val: core.NumIsZero(nv.Val)}
		}
		return &core.AppliedBuiltin{B: syntax.NaturalIsZero, Args: []*core.Value{n}}
	})
}

func applyNaturalParity(n *core.Value, wantEven bool) *core.Value {
	return core.Thunk(func() core.ValueF {
		nv, ok := n.WHNF().(*core.NaturalLitV)
		if !ok {
			b := syntax.NaturalEven
			if !wantEven {
				b = syntax.NaturalOdd
			}
			return &core.AppliedBuiltin{B: b, Args: []*core.Value{n}}
		}
		var rem core.NumLit
		two := core.NewNatural(2)
		if _, err := core.ApdCtx.Rem(&rem, &nv.Val, &two); err != nil {
			panic(err)
		}
		even := core.NumIsZero(rem)
		return &core.BoolLitV{Val: even == wantEven}
	})
}

func applyNaturalToInteger(n *core.Value) *core.Value {
	return core.Thunk(func() core.ValueF {
		if nv, ok := n.WHNF().(*core.NaturalLitV); ok {
			return &core.IntegerLitV{Val: nv.Val}
		}
		return &core.AppliedBuiltin{B: syntax.NaturalToInteger, Args: []*core.Value{n}}
	})
}

func applyNaturalShow(n *core.Value) *core.Value {
	return core.Thunk(func() core.ValueF {
		if nv, ok := n.WHNF().(*core.NaturalLitV); ok {
			return literalTextLit(nv.Val.String())
		}
		return &core.AppliedBuiltin{B: syntax.NaturalShow, Args: []*core.Value{n}}
	})
}

// applyNaturalSubtract implements `Natural/subtract x y`, which
// computes y - x saturated at 0. x == 0 short-circuits to y without
// touching y at all (y may be neutral); y == 0 short-circuits to 0
// regardless of x, since no amount can be subtracted from zero; x
// judgmentally equal to y short-circuits to 0 even when neither side
// is a literal, because subtracting an amount from itself is always
// zero regardless of what that amount evaluates to — not merely an
// optimization of the literal case.
func applyNaturalSubtract(x, y *core.Value) *core.Value {
	return core.Thunk(func() core.ValueF {
		if xv, ok := x.WHNF().(*core.NaturalLitV); ok && core.NumIsZero(xv.Val) {
			return y.WHNF()
		}
		if yv, ok := y.WHNF().(*core.NaturalLitV); ok && core.NumIsZero(yv.Val) {
			return &core.NaturalLitV{Val: core.NewNatural(0)}
		}
		if AlphaEquivalent(x, y) {
			return &core.NaturalLitV{Val: core.NewNatural(0)}
		}
		xv, xok := x.WHNF().(*core.NaturalLitV)
		yv, yok := y.WHNF().(*core.NaturalLitV)
		if xok && yok {
			if yv.Val.Cmp(&xv.Val) <= 0 {
				return &core.NaturalLitV{Val: core.NewNatural(0)}
			}
			var diff core.NumLit
			if _, err := core.ApdCtx.Sub(&diff, &yv.Val, &xv.Val); err != nil {
				panic(err)
			}
			return &core.NaturalLitV{Val: diff}
		}
		return &core.AppliedBuiltin{B: syntax.NaturalSubtract, Args: []*core.Value{x, y}}
	})
}

func natConst() *core.Value { return core.WHNFValue(&core.AppliedBuiltin{B: syntax.NaturalType}) }

func applyNaturalBuild(g *core.Value) *core.Value {
	return core.Thunk(func() core.ValueF {
		if ab, ok := g.WHNF().(*core.AppliedBuiltin); ok && ab.B == syntax.NaturalFold && len(ab.Args) == 1 {
			return ab.Args[0].WHNF()
		}
		succ := core.WHNFValue(&core.Lam{
			Label: "x",
			Type:  natConst(),
			Body: func(arg *core.Value) *core.Value {
				one := core.WHNFValue(&core.NaturalLitV{Val: core.NewNatural(1)})
				return ApplyBinOp(syntax.NaturalPlus, arg, one)
			},
		})
		zero := core.WHNFValue(&core.NaturalLitV{Val: core.NewNatural(0)})
		return ApplyAny(ApplyAny(ApplyAny(g, natConst()), succ), zero).WHNF()
	})
}

// applyNaturalFold receives the full saturated argument list so that a
// blocked fold stays a neutral AppliedBuiltin with every argument
// intact: `Natural/fold n T succ zero` over a neutral n must print and
// re-apply as the four-argument application it is, not collapse to
// `Natural/fold n`.
func applyNaturalFold(args []*core.Value) *core.Value {
	n, succ, zero := args[0], args[2], args[3]
	return core.Thunk(func() core.ValueF {
		nv, ok := n.WHNF().(*core.NaturalLitV)
		if !ok {
			return &core.AppliedBuiltin{B: syntax.NaturalFold, Args: args}
		}
		count, err := nv.Val.Int64()
		if err != nil {
			panic(err)
		}
		acc := zero
		for i := int64(0); i < count; i++ {
			acc = ApplyAny(succ, acc)
		}
		return acc.WHNF()
	})
}

// --- Integer / Double / Text -----------------------------------------

func applyIntegerShow(n *core.Value) *core.Value {
	return core.Thunk(func() core.ValueF {
		iv, ok := n.WHNF().(*core.IntegerLitV)
		if !ok {
			return &core.AppliedBuiltin{B: syntax.IntegerShow, Args: []*core.Value{n}}
		}
		sign := "+"
		if core.NumSign(iv.Val) < 0 {
			sign = ""
		}
		return literalTextLit(sign + iv.Val.String())
	})
}

func applyIntegerToDouble(n *core.Value) *core.Value {
	return core.Thunk(func() core.ValueF {
		iv, ok := n.WHNF().(*core.IntegerLitV)
		if !ok {
			return &core.AppliedBuiltin{B: syntax.IntegerToDouble, Args: []*core.Value{n}}
		}
		f, err := iv.Val.Float64()
		if err != nil {
			panic(err)
		}
		return &core.DoubleLitV{Val: syntax.NewDouble(f)}
	})
}

func applyDoubleShow(n *core.Value) *core.Value {
	return core.Thunk(func() core.ValueF {
		dv, ok := n.WHNF().(*core.DoubleLitV)
		if !ok {
			return &core.AppliedBuiltin{B: syntax.DoubleShow, Args: []*core.Value{n}}
		}
		return literalTextLit(formatDouble(dv.Val))
	})
}

func formatDouble(d syntax.Double) string {
	f := d.Float()
	switch {
	case d.IsNaN():
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	for _, c := range s {
		if c == '.' || c == 'e' || c == 'E' {
			return s
		}
	}
	return s + ".0"
}

// applyTextShow only fires on a text literal with no splices: an
// opaque (neutral) text value has no literal content to show.
func applyTextShow(t *core.Value) *core.Value {
	return core.Thunk(func() core.ValueF {
		tv, ok := t.WHNF().(*core.TextLit)
		if !ok {
			return &core.AppliedBuiltin{B: syntax.TextShow, Args: []*core.Value{t}}
		}
		s, ok := literalTextOf(tv)
		if !ok {
			return &core.AppliedBuiltin{B: syntax.TextShow, Args: []*core.Value{t}}
		}
		return literalTextLit(quoteDhallText(s))
	})
}

func literalTextOf(t *core.TextLit) (string, bool) {
	if len(t.Chunks) == 0 {
		return "", true
	}
	if len(t.Chunks) == 1 && t.Chunks[0].Splice == nil {
		return t.Chunks[0].Str, true
	}
	return "", false
}

func quoteDhallText(s string) string {
	out := make([]byte, 0, len(s)+2)
	out = append(out, '"')
	for _, r := range s {
		switch r {
		case '"':
			out = append(out, '\\', '"')
		case '\\':
			out = append(out, '\\', '\\')
		case '\n':
			out = append(out, '\\', 'n')
		case '\t':
			out = append(out, '\\', 't')
		case '\r':
			out = append(out, '\\', 'r')
		default:
			out = append(out, string(r)...)
		}
	}
	out = append(out, '"')
	return string(out)
}

func literalTextLit(s string) core.ValueF {
	return &core.TextLit{Chunks: []core.TextChunk{{Str: s}}}
}

// --- List --------------------------------------------------------------

func applyListLength(args []*core.Value) *core.Value {
	list := args[1]
	return core.Thunk(func() core.ValueF {
		switch l := list.WHNF().(type) {
		case *core.EmptyListLit:
			return &core.NaturalLitV{Val: core.NewNatural(0)}
		case *core.NEListLit:
			return &core.NaturalLitV{Val: core.NewNatural(uint64(len(l.Vals)))}
		}
		return &core.AppliedBuiltin{B: syntax.ListLength, Args: args}
	})
}

func applyListHeadOrLast(elemType, list *core.Value, head bool) *core.Value {
	b := syntax.ListLast
	if head {
		b = syntax.ListHead
	}
	return core.Thunk(func() core.ValueF {
		switch l := list.WHNF().(type) {
		case *core.EmptyListLit:
			return &core.EmptyOptionalLit{Type: elemType}
		case *core.NEListLit:
			idx := 0
			if !head {
				idx = len(l.Vals) - 1
			}
			return &core.NEOptionalLit{Val: l.Vals[idx]}
		}
		return &core.AppliedBuiltin{B: b, Args: []*core.Value{elemType, list}}
	})
}

func applyListReverse(elemType, list *core.Value) *core.Value {
	return core.Thunk(func() core.ValueF {
		switch l := list.WHNF().(type) {
		case *core.EmptyListLit:
			return l
		case *core.NEListLit:
			out := make([]*core.Value, len(l.Vals))
			for i, v := range l.Vals {
				out[len(l.Vals)-1-i] = v
			}
			return &core.NEListLit{Vals: out}
		}
		return &core.AppliedBuiltin{B: syntax.ListReverse, Args: []*core.Value{elemType, list}}
	})
}

func applyListIndexed(elemType, list *core.Value) *core.Value {
	return core.Thunk(func() core.ValueF {
		indexedType := core.WHNFValue(&core.RecordType{Fields: map[syntax.Label]*core.Value{
			"index": natConst(),
			"value": elemType,
		}})
		switch l := list.WHNF().(type) {
		case *core.EmptyListLit:
			return &core.EmptyListLit{Type: indexedType}
		case *core.NEListLit:
			out := make([]*core.Value, len(l.Vals))
			for i, v := range l.Vals {
				out[i] = core.WHNFValue(&core.RecordLit{Fields: map[syntax.Label]*core.Value{
					"index": core.WHNFValue(&core.NaturalLitV{Val: core.NewNatural(uint64(i))}),
					"value": v,
				}})
			}
			return &core.NEListLit{Vals: out}
		}
		return &core.AppliedBuiltin{B: syntax.ListIndexed, Args: []*core.Value{elemType, list}}
	})
}

func applyListBuild(elemType, g *core.Value) *core.Value {
	return core.Thunk(func() core.ValueF {
		if ab, ok := g.WHNF().(*core.AppliedBuiltin); ok && ab.B == syntax.ListFold && len(ab.Args) == 2 {
			return ab.Args[1].WHNF()
		}
		listTypeApplied := core.WHNFValue(&core.AppliedBuiltin{B: syntax.ListType, Args: []*core.Value{elemType}})
		cons := core.WHNFValue(&core.Lam{
			Label: "x",
			Type:  elemType,
			Body: func(x *core.Value) *core.Value {
				return core.WHNFValue(&core.Lam{
					Label: "xs",
					Type:  listTypeApplied,
					Body: func(xs *core.Value) *core.Value {
						head := core.WHNFValue(&core.NEListLit{Vals: []*core.Value{x}})
						return ApplyBinOp(syntax.ListAppend, head, xs)
					},
				})
			},
		})
		nilList := core.WHNFValue(&core.EmptyListLit{Type: elemType})
		return ApplyAny(ApplyAny(ApplyAny(g, listTypeApplied), cons), nilList).WHNF()
	})
}

func applyListFold(args []*core.Value) *core.Value {
	list, cons, nilVal := args[1], args[3], args[4]
	return core.Thunk(func() core.ValueF {
		switch l := list.WHNF().(type) {
		case *core.EmptyListLit:
			return nilVal.WHNF()
		case *core.NEListLit:
			acc := nilVal
			for i := len(l.Vals) - 1; i >= 0; i-- {
				acc = ApplyAny(ApplyAny(cons, l.Vals[i]), acc)
			}
			return acc.WHNF()
		}
		return &core.AppliedBuiltin{B: syntax.ListFold, Args: args}
	})
}

// --- Optional ------------------------------------------------------------

func applyOptionalBuild(elemType, g *core.Value) *core.Value {
	return core.Thunk(func() core.ValueF {
		if ab, ok := g.WHNF().(*core.AppliedBuiltin); ok && ab.B == syntax.OptionalFold && len(ab.Args) == 2 {
			return ab.Args[1].WHNF()
		}
		optTypeApplied := core.WHNFValue(&core.AppliedBuiltin{B: syntax.OptionalType, Args: []*core.Value{elemType}})
		some := core.WHNFValue(&core.Lam{
			Label: "x",
			Type:  elemType,
			Body: func(x *core.Value) *core.Value {
				return core.WHNFValue(&core.NEOptionalLit{Val: x})
			},
		})
		none := core.WHNFValue(&core.EmptyOptionalLit{Type: elemType})
		return ApplyAny(ApplyAny(ApplyAny(g, optTypeApplied), some), none).WHNF()
	})
}

func applyOptionalFold(args []*core.Value) *core.Value {
	opt, some, none := args[1], args[3], args[4]
	return core.Thunk(func() core.ValueF {
		switch o := opt.WHNF().(type) {
		case *core.EmptyOptionalLit:
			return none.WHNF()
		case *core.NEOptionalLit:
			return ApplyAny(some, o.Val).WHNF()
		}
		return &core.AppliedBuiltin{B: syntax.OptionalFold, Args: args}
	})
}
