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

package errors_test

import (
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/marcesquerra/dhall-go/dhall/errors"
)

func TestCodeString(t *testing.T) {
	qt.Assert(t, qt.Equals(errors.Eval.String(), "eval"))
	qt.Assert(t, qt.Equals(errors.Typecheck.String(), "typecheck"))
	qt.Assert(t, qt.Equals(errors.Code(99).String(), "unknown"))
}

func TestTypeErrorCarriesPathAndCode(t *testing.T) {
	err := errors.NewTypeError([]string{"foo", "bar"}, "missing type for %s", "x")
	qt.Assert(t, qt.Equals(err.Code(), errors.Eval))
	qt.Assert(t, qt.DeepEquals(err.Path(), []string{"foo", "bar"}))
	qt.Assert(t, qt.Equals(err.Error(), "missing type for x"))

	var asError errors.Error = err
	qt.Assert(t, qt.Equals(asError.Error(), "missing type for x"))
}

func TestMessageMsgReturnsFormatAndArgs(t *testing.T) {
	m := errors.NewMessagef("%s has %d items", "list", 3)
	format, args := m.Msg()
	qt.Assert(t, qt.Equals(format, "%s has %d items"))
	qt.Assert(t, qt.DeepEquals(args, []interface{}{"list", 3}))
	qt.Assert(t, qt.Equals(m.Error(), "list has 3 items"))
}

// TestListAppendAggregates pins List/Append's join behavior: the
// combined Error() is every member's message, one per line, in order —
// so a caller holding several diagnostics from one pass (parse, then
// typecheck) can report them together even though this module itself
// only ever produces one at a time.
func TestListAppendAggregates(t *testing.T) {
	var l errors.List
	qt.Assert(t, qt.Equals(l.Error(), ""))

	first := errors.NewTypeError(nil, "first problem")
	second := errors.NewTypeError([]string{"y"}, "second problem: %d", 2)
	l = errors.Append(l, first, second)

	qt.Assert(t, qt.HasLen(l, 2))
	qt.Assert(t, qt.Equals(l.Error(), "first problem\nsecond problem: 2"))

	l = errors.Append(l, errors.NewTypeError(nil, "third"))
	qt.Assert(t, qt.HasLen(l, 3))
}
