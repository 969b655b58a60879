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

package vet

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"phalanx.dev/phalanx/cmd/phalanx/flags"
	"phalanx.dev/phalanx/cmd/phalanx/util"
	"phalanx.dev/phalanx/pkg/loader"
	"phalanx.dev/phalanx/pkg/model"
)

// Cmd is the Cobra object representing the phalanx vet command.
var Cmd = &cobra.Command{
	Use:   "vet",
	Short: "Validate a Phalanx repository",
	Long: `Validate a Phalanx repository
Loads the repository's configuration model, checking for malformed values
documents and for environments that do not declare their mandatory settings.
Prints a summary of the model on success and returns a non-zero exit code if
the repository cannot be loaded.
`,
	Example: `  phalanx vet
  phalanx vet --path=/path/to/phalanx`,
	Args: cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, _ []string) error {
		// Don't show usage on error, as argument validation passed.
		cmd.SilenceUsage = true

		p, err := loader.New(flags.Path).Load()
		if err != nil {
			return err
		}
		summarize(p, os.Stdout)
		return nil
	},
}

func init() {
	flags.AddPath(Cmd)
}

// summarize prints one row per environment in a nice tabular form.
func summarize(p *model.Phalanx, out io.Writer) {
	format := "%s\t%s\t%d\t%s\n"
	w := util.NewWriter(out)
	defer func() {
		if err := w.Flush(); err != nil {
			util.MustFprintf(os.Stderr, "error on Flush(): %v", err)
		}
	}()
	util.MustFprintf(w, "%s\t%s\t%s\t%s\n", "ENVIRONMENT", "DOMAIN", "APPS", "IDENTITY_PROVIDER")
	for _, env := range p.Environments {
		util.MustFprintf(w, format, env.Name, env.Domain, len(env.Apps), env.IdentityProvider())
	}
}
