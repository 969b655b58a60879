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
	"path/filepath"
	"sort"

	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"phalanx.dev/phalanx/pkg/api/phalanx"
	"phalanx.dev/phalanx/pkg/model"
)

// Resolve loads and resolves the secret specifications of every application
// enabled in the environment, keyed by application name. Applications
// without secrets are omitted.
func Resolve(root string, env *model.Environment) (map[string]map[string]Secret, error) {
	resolved := map[string]map[string]Secret{}
	for _, app := range env.Apps {
		configs, err := Load(filepath.Join(root, phalanx.AppsDir, app.Name))
		if err != nil {
			return nil, err
		}
		if len(configs) == 0 {
			continue
		}
		resolved[app.Name] = ForEnvironment(app, env.Name, configs)
	}
	return resolved, nil
}

// Audit checks that every secret required by the environment is satisfiable:
// each must carry a literal value, a generate rule whose source (if any) is
// itself defined, a copy rule pointing at a defined source secret, or a
// static secret. All gaps are reported together rather than stopping at the
// first.
func Audit(root string, env *model.Environment, static *StaticSecrets) error {
	resolved, err := Resolve(root, env)
	if err != nil {
		return err
	}

	appNames := make([]string, 0, len(resolved))
	for name := range resolved {
		appNames = append(appNames, name)
	}
	sort.Strings(appNames)

	var errs []error
	for _, appName := range appNames {
		appSecrets := resolved[appName]
		provided := static.ForApplication(appName)
		for _, key := range SortedKeys(appSecrets) {
			secret := appSecrets[key]
			switch {
			case secret.Value != "":
			case secret.Generate != nil && !secret.Generate.NeedsSource():
			case secret.Generate != nil:
				if _, ok := appSecrets[secret.Generate.Source]; !ok {
					errs = append(errs, errors.Errorf(
						"secret %s/%s: generate source %s is not defined",
						appName, key, secret.Generate.Source))
				}
			case secret.Copy != nil:
				if _, ok := resolved[secret.Copy.Application][secret.Copy.Key]; !ok {
					errs = append(errs, errors.Errorf(
						"secret %s/%s: copy source %s/%s is not defined",
						appName, key, secret.Copy.Application, secret.Copy.Key))
				}
			case provided[key].Value != "":
			default:
				errs = append(errs, errors.Errorf(
					"secret %s/%s: no value, generate rule, copy rule, or static secret provides it",
					appName, key))
			}
		}
	}
	return multierr.Combine(errs...)
}
