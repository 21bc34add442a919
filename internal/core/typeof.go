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

import "github.com/marcesquerra/dhall-go/dhall/errors"

// RequireType returns te's type, or a *errors.TypeError if te carries
// the "no type" marker (permitted only for the top sort). Every other
// caller in this module that needs a node's type goes through this
// rather than dereferencing te.Type directly.
func (te *TyExpr) RequireType() (*Value, *errors.TypeError) {
	if te.Type == nil {
		return nil, errors.NewTypeError(nil, "term has no type: it is the top sort")
	}
	return te.Type, nil
}

// RequireType is the Value-level counterpart, used when a caller holds
// a Value (e.g. a Const whose Kind is Sort) rather than a TyExpr.
func RequireType(typ *Value) (*Value, *errors.TypeError) {
	if typ == nil {
		return nil, errors.NewTypeError(nil, "value has no type: it is the top sort")
	}
	return typ, nil
}
