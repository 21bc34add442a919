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

// Package errors defines the shared error types used across dhall-go:
// a Message type carrying an unformatted format string and args for
// later (possibly localized) consumption, an Error interface built on
// top of it, and a list type for aggregating more than one.
//
// The evaluation core itself produces exactly one error category:
// TypeError, raised when a caller asks for the type of a Value whose
// node carries no type (the top sort marker). Everything else — IO,
// Parse, Decode, Encode, Resolve, Typecheck — belongs to the outer
// pipeline phases and is represented here only as the Code enum those
// phases tag their errors with; this package does not implement any of
// them.
package errors

import "fmt"

// Code classifies which phase of the overall pipeline produced an
// error. Only Eval is ever raised by this module; the rest exist so
// phases upstream and downstream of the core can tag their own errors
// with the same taxonomy.
type Code int

const (
	Eval Code = iota
	IO
	Parse
	Decode
	Encode
	Resolve
	Typecheck
)

func (c Code) String() string {
	switch c {
	case Eval:
		return "eval"
	case IO:
		return "io"
	case Parse:
		return "parse"
	case Decode:
		return "decode"
	case Encode:
		return "encode"
	case Resolve:
		return "resolve"
	case Typecheck:
		return "typecheck"
	default:
		return "unknown"
	}
}

// Message implements part of the error interface, holding a printf-style
// format and its arguments so the message can be reformatted or
// localized later without having baked a single English string.
type Message struct {
	format string
	args   []interface{}
}

func NewMessagef(format string, args ...interface{}) Message {
	return Message{format: format, args: args}
}

func (m *Message) Msg() (string, []interface{}) { return m.format, m.args }

func (m *Message) Error() string { return fmt.Sprintf(m.format, m.args...) }

// Error is the common error interface for dhall-go diagnostics.
type Error interface {
	error
	Code() Code
	Path() []string
}

// TypeError is the one error category the evaluation core itself can
// raise: a Value's type was requested but its node carries the
// top sort marker.
type TypeError struct {
	Message
	path []string
}

func NewTypeError(path []string, format string, args ...interface{}) *TypeError {
	return &TypeError{Message: NewMessagef(format, args...), path: path}
}

func (e *TypeError) Code() Code     { return Eval }
func (e *TypeError) Path() []string { return e.path }

// List aggregates more than one Error, for callers collecting several
// diagnostics from a single pass.
type List []Error

func (l List) Error() string {
	if len(l) == 0 {
		return ""
	}
	s := l[0].Error()
	for _, e := range l[1:] {
		s += "\n" + e.Error()
	}
	return s
}

func Append(l List, errs ...Error) List {
	return append(l, errs...)
}
