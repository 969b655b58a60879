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

package loader

import (
	"sort"

	"phalanx.dev/phalanx/pkg/model"
	"phalanx.dev/phalanx/pkg/values"
)

// loadEnvironment resolves one environment document against the full
// application list. Unlike the active-environment resolution on the
// application side, the enablement lookup here uses the application's exact
// name as the document key.
func loadEnvironment(envDoc envDocument, apps []*model.Application) (*model.Environment, error) {
	name, err := mandatoryString(envDoc, "environment")
	if err != nil {
		return nil, err
	}
	domain, err := mandatoryString(envDoc, "fqdn")
	if err != nil {
		return nil, err
	}
	vaultPathPrefix, err := mandatoryString(envDoc, "vault_path_prefix")
	if err != nil {
		return nil, err
	}

	env := &model.Environment{
		Name:            name,
		Domain:          domain,
		VaultPathPrefix: vaultPathPrefix,
	}
	for _, app := range apps {
		if app.Bootstrap {
			env.Apps = append(env.Apps, app)
			continue
		}
		if enabled, found := values.Bool(envDoc.doc, app.Name, "enabled"); found && enabled {
			env.Apps = append(env.Apps, app)
		}
	}
	sort.Slice(env.Apps, func(i, j int) bool {
		return env.Apps[i].Name < env.Apps[j].Name
	})
	return env, nil
}

// mandatoryString reads a mandatory string field from an environment
// document.
func mandatoryString(envDoc envDocument, field string) (string, error) {
	val, found := values.String(envDoc.doc, field)
	if !found {
		return "", &MissingFieldError{Path: envDoc.path, Field: field}
	}
	return val, nil
}
