// Copyright 2026 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package docs

import (
	"github.com/spf13/cobra"

	"phalanx.dev/phalanx/cmd/phalanx/flags"
)

// DefaultOutPath is the default directory the generated pages are written to.
const DefaultOutPath = "docs/environments"

// Flags holds all the flags specific to the docs command
type Flags struct {
	// OutPath specifies the directory for the generated pages
	OutPath string
}

// NewFlags creates a new instance of Flags with default values
func NewFlags() *Flags {
	return &Flags{
		OutPath: DefaultOutPath,
	}
}

// AddFlags adds all docs-specific flags to the command
func (df *Flags) AddFlags(cmd *cobra.Command) {
	// Add shared flags from the global flags package
	flags.AddPath(cmd)

	// Add docs-specific flags
	cmd.Flags().StringVar(&df.OutPath, "out", df.OutPath,
		`Directory to write the generated pages to.`)
}
