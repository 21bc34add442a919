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

// Command dhall-eval drives the evaluation core against a handful of
// built-in fixtures, standing in for the source files a full `dhall`
// CLI would parse, resolve, and typecheck before handing to this
// module — all three of which are out of this module's scope.
package main

import (
	"os"

	"github.com/marcesquerra/dhall-go/internal/cli"
)

func main() {
	os.Exit(cli.Main())
}
