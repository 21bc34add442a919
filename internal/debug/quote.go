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

// Package debug turns a core.Value back into printable surface syntax
// and dumps its structure for diagnostics.
package debug

import (
	"github.com/marcesquerra/dhall-go/internal/core"
	"github.com/marcesquerra/dhall-go/internal/eval"
	"github.com/marcesquerra/dhall-go/internal/syntax"
)

// Options controls how Quote renders a Value back to surface syntax.
type Options struct {
	// Normalize fully reduces v before quoting, the way `dhall
	// normalize` would, instead of rendering only its weak head.
	Normalize bool
	// Alpha rewrites every binder label to "_", the pure de Bruijn
	// presentation. Variable occurrences
	// still carry the correct positional Index; only the printed name
	// changes, the way two alpha-equivalent terms that differ only in
	// binder spelling render identically under this option.
	Alpha bool
}

const alphaPlaceholder syntax.Label = "_"

// Quote converts v back into the printable surface tree. Each bound
// variable occurrence gets a synthesized de Bruijn Index computed from
// its binder depth (how many enclosing binders share the same label
// between the binding site and the occurrence), the inverse of how the
// elaborator consumed a Var.Index to produce the AlphaVar in the first
// place, so the result round-trips through re-elaboration.
func Quote(v *core.Value, opts Options) syntax.Expr {
	if opts.Normalize {
		v = eval.Normalize(v)
	}
	q := &quoter{alpha: opts.Alpha}
	return q.quoteAt(v, nil)
}

// ToExpr evaluates te in env and quotes the result back to surface
// syntax in one step. TyExpr lives in internal/core, which cannot
// import internal/eval without a cycle, so the operation is exposed as
// a function of (TyExpr, Env) rather than a method on TyExpr itself.
func ToExpr(te *core.TyExpr, env *core.Env, opts Options) syntax.Expr {
	return Quote(eval.Eval(te, env), opts)
}

// quoter carries the Alpha option through the recursion; a one-shot
// printer pass needs nothing but its formatting flags.
type quoter struct{ alpha bool }

func (q *quoter) binderLabel(l syntax.Label) syntax.Label {
	if q.alpha {
		return alphaPlaceholder
	}
	return l
}

func extend(labels []syntax.Label, l syntax.Label) []syntax.Label {
	out := make([]syntax.Label, len(labels)+1)
	copy(out, labels)
	out[len(labels)] = l
	return out
}

func (q *quoter) quoteAt(v *core.Value, labels []syntax.Label) syntax.Expr {
	switch vf := v.WHNF().(type) {
	case *core.Var:
		depth := len(labels)
		if q.alpha {
			return syntax.VarExpr{Var: syntax.Var{Name: alphaPlaceholder, Index: depth - vf.Level - 1}}
		}
		name := labels[vf.Level]
		idx := 0
		for i := vf.Level + 1; i < depth; i++ {
			if labels[i] == name {
				idx++
			}
		}
		return syntax.VarExpr{Var: syntax.Var{Name: name, Index: idx}}

	case *core.ConstV:
		return syntax.ConstExpr{Const: vf.Const}

	case *core.AppliedBuiltin:
		var e syntax.Expr = syntax.BuiltinExpr{Builtin: vf.B}
		for _, a := range vf.Args {
			e = syntax.AppExpr{Fn: e, Arg: q.quoteAt(a, labels)}
		}
		return e

	case *core.BoolLitV:
		return syntax.BoolLit{Val: vf.Val}
	case *core.NaturalLitV:
		return syntax.NaturalLit{Val: vf.Val}
	case *core.IntegerLitV:
		return syntax.IntegerLit{Val: vf.Val}
	case *core.DoubleLitV:
		return syntax.DoubleLitExpr{Val: vf.Val}

	case *core.EmptyListLit:
		return syntax.EmptyListLit{Type: q.quoteAt(vf.Type, labels)}
	case *core.NEListLit:
		exprs := make([]syntax.Expr, len(vf.Vals))
		for i, e := range vf.Vals {
			exprs[i] = q.quoteAt(e, labels)
		}
		return syntax.NEListLit{Exprs: exprs}

	case *core.EmptyOptionalLit:
		return syntax.AppExpr{Fn: syntax.BuiltinExpr{Builtin: syntax.OptionalNone}, Arg: q.quoteAt(vf.Type, labels)}
	case *core.NEOptionalLit:
		return syntax.SomeLit{Val: q.quoteAt(vf.Val, labels)}

	case *core.RecordLit:
		return syntax.RecordLitExpr{Fields: q.quoteFields(vf.Fields, labels)}
	case *core.RecordType:
		return syntax.RecordTypeExpr{Fields: q.quoteFields(vf.Fields, labels)}
	case *core.UnionType:
		return syntax.UnionTypeExpr{Alts: q.quoteAlts(vf.Alts, labels)}
	case *core.UnionConstructor:
		return syntax.FieldExpr{Record: syntax.UnionTypeExpr{Alts: q.quoteAlts(vf.AltTypes, labels)}, Label: vf.Label}
	case *core.UnionLit:
		ctor := syntax.FieldExpr{Record: syntax.UnionTypeExpr{Alts: q.quoteAlts(vf.AltTypes, labels)}, Label: vf.Label}
		return syntax.AppExpr{Fn: ctor, Arg: q.quoteAt(vf.Payload, labels)}

	case *core.Lam:
		fresh := core.WHNFValue(&core.Var{Level: len(labels)})
		return syntax.LambdaExpr{
			Label: q.binderLabel(vf.Label),
			Type:  q.quoteAt(vf.Type, labels),
			Body:  q.quoteAt(vf.Body(fresh), extend(labels, vf.Label)),
		}
	case *core.Pi:
		fresh := core.WHNFValue(&core.Var{Level: len(labels)})
		return syntax.PiExpr{
			Label: q.binderLabel(vf.Label),
			Type:  q.quoteAt(vf.Type, labels),
			Body:  q.quoteAt(vf.Body(fresh), extend(labels, vf.Label)),
		}

	case *core.TextLit:
		return q.quoteTextLit(vf, labels)

	case *core.Equivalence:
		return syntax.BinOpExpr{Op: syntax.Equivalence, L: q.quoteAt(vf.X, labels), R: q.quoteAt(vf.Y, labels)}

	case *core.NeutralApp:
		return syntax.AppExpr{Fn: q.quoteAt(vf.Fn, labels), Arg: q.quoteAt(vf.Arg, labels)}
	case *core.NeutralField:
		return syntax.FieldExpr{Record: q.quoteAt(vf.Record, labels), Label: vf.Label}
	case *core.NeutralProject:
		return syntax.ProjectExpr{Record: q.quoteAt(vf.Record, labels), Labels: vf.Labels}
	case *core.NeutralMerge:
		return syntax.MergeExpr{Handlers: q.quoteAt(vf.Handlers, labels), Variant: q.quoteAt(vf.Variant, labels)}
	case *core.NeutralBinOp:
		return syntax.BinOpExpr{Op: vf.Op, L: q.quoteAt(vf.L, labels), R: q.quoteAt(vf.R, labels)}
	case *core.NeutralBoolIf:
		return syntax.BoolIfExpr{Cond: q.quoteAt(vf.Cond, labels), Then: q.quoteAt(vf.Then, labels), Else: q.quoteAt(vf.Else, labels)}
	case *core.NeutralAssert:
		return syntax.AssertExpr{Type: q.quoteAt(vf.Type, labels)}

	default:
		panic("debug: unhandled ValueF in Quote")
	}
}

func (q *quoter) quoteFields(m map[syntax.Label]*core.Value, labels []syntax.Label) map[syntax.Label]syntax.Expr {
	out := make(map[syntax.Label]syntax.Expr, len(m))
	for l, v := range m {
		out[l] = q.quoteAt(v, labels)
	}
	return out
}

func (q *quoter) quoteAlts(m map[syntax.Label]*core.Value, labels []syntax.Label) map[syntax.Label]syntax.Expr {
	out := make(map[syntax.Label]syntax.Expr, len(m))
	for l, v := range m {
		if v == nil {
			out[l] = nil
			continue
		}
		out[l] = q.quoteAt(v, labels)
	}
	return out
}

func (q *quoter) quoteTextLit(t *core.TextLit, labels []syntax.Label) syntax.Expr {
	if len(t.Chunks) == 0 {
		return syntax.TextLitExpr{}
	}
	head := ""
	start := 0
	if t.Chunks[0].Splice == nil {
		head = t.Chunks[0].Str
		start = 1
	}
	var tail []syntax.TextTail
	i := start
	for i < len(t.Chunks) {
		c := t.Chunks[i]
		if c.Splice == nil {
			// Two literal chunks never sit adjacent after squashing, but
			// guard anyway: fold straight into the previous suffix.
			if len(tail) > 0 {
				tail[len(tail)-1].Suffix += c.Str
			} else {
				head += c.Str
			}
			i++
			continue
		}
		suffix := ""
		if i+1 < len(t.Chunks) && t.Chunks[i+1].Splice == nil {
			suffix = t.Chunks[i+1].Str
			i++
		}
		tail = append(tail, syntax.TextTail{Expr: q.quoteAt(c.Splice, labels), Suffix: suffix})
		i++
	}
	return syntax.TextLitExpr{Head: head, Tail: tail}
}
