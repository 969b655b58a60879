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

package secrets

import (
	"io"
	"os"
	"sort"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"phalanx.dev/phalanx/cmd/phalanx/flags"
	"phalanx.dev/phalanx/cmd/phalanx/util"
	"phalanx.dev/phalanx/pkg/loader"
	"phalanx.dev/phalanx/pkg/model"
	"phalanx.dev/phalanx/pkg/secrets"
)

// Cmd is the Cobra object representing the phalanx secrets command.
var Cmd = &cobra.Command{
	Use:   "secrets",
	Short: "Inspect the secrets required by a Phalanx environment",
}

var listCmd = &cobra.Command{
	Use:     "list ENVIRONMENT",
	Short:   "List the secrets required by an environment",
	Example: `  phalanx secrets list idfdev`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// Don't show usage on error, as argument validation passed.
		cmd.SilenceUsage = true

		env, err := loadEnvironment(args[0])
		if err != nil {
			return err
		}
		resolved, err := secrets.Resolve(flags.Path, env)
		if err != nil {
			return err
		}
		list(resolved, os.Stdout)
		return nil
	},
}

var auditCmd = &cobra.Command{
	Use:   "audit ENVIRONMENT",
	Short: "Check that every secret an environment requires is satisfiable",
	Long: `Check that every secret an environment requires is satisfiable
Every secret must carry a literal value, a generate rule whose source secret
is defined, a copy rule pointing at a defined secret, or an entry in the
static secrets document. Reports every unsatisfiable secret and returns a
non-zero exit code if there are any.
`,
	Example: `  phalanx secrets audit idfdev --static-secrets=/path/to/static.yaml`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// Don't show usage on error, as argument validation passed.
		cmd.SilenceUsage = true

		env, err := loadEnvironment(args[0])
		if err != nil {
			return err
		}
		var static *secrets.StaticSecrets
		if flags.StaticSecretsPath != "" {
			static, err = secrets.LoadStatic(flags.StaticSecretsPath)
			if err != nil {
				return err
			}
		}
		return secrets.Audit(flags.Path, env, static)
	},
}

func init() {
	flags.AddPath(listCmd)
	flags.AddPath(auditCmd)
	flags.AddStaticSecrets(auditCmd)
	Cmd.AddCommand(listCmd)
	Cmd.AddCommand(auditCmd)
}

func loadEnvironment(name string) (*model.Environment, error) {
	p, err := loader.New(flags.Path).Load()
	if err != nil {
		return nil, err
	}
	env := p.Environment(name)
	if env == nil {
		return nil, errors.Errorf("environment %q is not defined in %s", name, flags.Path)
	}
	return env, nil
}

// list prints one row per required secret in a nice tabular form.
func list(resolved map[string]map[string]secrets.Secret, out io.Writer) {
	appNames := make([]string, 0, len(resolved))
	for name := range resolved {
		appNames = append(appNames, name)
	}
	sort.Strings(appNames)

	format := "%s\t%s\t%s\n"
	w := util.NewWriter(out)
	defer func() {
		if err := w.Flush(); err != nil {
			util.MustFprintf(os.Stderr, "error on Flush(): %v", err)
		}
	}()
	util.MustFprintf(w, format, "APPLICATION", "KEY", "DESCRIPTION")
	for _, appName := range appNames {
		appSecrets := resolved[appName]
		for _, key := range secrets.SortedKeys(appSecrets) {
			util.MustFprintf(w, format, appName, key, appSecrets[key].Description)
		}
	}
}
