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
	"phalanx.dev/phalanx/pkg/docs"
	"phalanx.dev/phalanx/pkg/loader"
)

// localFlags holds the docs command flags
var localFlags = NewFlags()

// Cmd is the Cobra object representing the phalanx docs command.
var Cmd = &cobra.Command{
	Use:   "docs",
	Short: "Generate environment documentation from a Phalanx repository",
	Long: `Generate environment documentation from a Phalanx repository
Loads the repository's configuration model and writes one markdown page per
environment plus an index page to the output directory, overwriting any pages
already there.
`,
	Example: `  phalanx docs
  phalanx docs --path=/path/to/phalanx --out=docs/environments`,
	Args: cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, _ []string) error {
		// Don't show usage on error, as argument validation passed.
		cmd.SilenceUsage = true

		p, err := loader.New(flags.Path).Load()
		if err != nil {
			return err
		}
		return docs.Generate(p, localFlags.OutPath)
	},
}

func init() {
	localFlags.AddFlags(Cmd)
}
