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
	"os"
	"path/filepath"
	"sort"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"phalanx.dev/phalanx/pkg/api/phalanx"
	"phalanx.dev/phalanx/pkg/model"
	"phalanx.dev/phalanx/pkg/values"
)

// loadApplication resolves one application chart directory against the known
// environments.
func (l *Loader) loadApplication(appDir string, envValues *orderedmap.OrderedMap[string, envDocument]) (*model.Application, error) {
	app := &model.Application{
		Name:      filepath.Base(appDir),
		Values:    map[string]map[string]interface{}{},
		Namespace: phalanx.NamespaceUnknown,
	}
	app.Bootstrap = app.Name == phalanx.BootstrapApp

	// An environment without a values document for this application simply
	// has no override; only unparsable documents are errors.
	paths, err := filepath.Glob(filepath.Join(appDir, phalanx.ValuesFilePattern))
	if err != nil {
		return nil, errors.Wrapf(err, "globbing values documents under %s", appDir)
	}
	for _, path := range paths {
		env, ok := phalanx.EnvFromValuesFile(filepath.Base(path))
		if !ok {
			continue
		}
		doc, err := values.ReadFile(path)
		if err != nil {
			return nil, err
		}
		app.Values[env] = doc
	}

	base, err := values.ReadFile(filepath.Join(appDir, phalanx.BaseValuesFile))
	switch {
	case err == nil:
		app.BaseValues = base
	case !os.IsNotExist(errors.Cause(err)):
		return nil, err
	}

	app.ActiveEnvironments = activeEnvironments(app, envValues)
	app.Namespace = l.resolveNamespace(app.Name)
	return app, nil
}

// activeEnvironments returns the sorted names of the environments whose
// values document enables the application. The bootstrap application is
// active everywhere.
func activeEnvironments(app *model.Application, envValues *orderedmap.OrderedMap[string, envDocument]) []string {
	key := app.ValuesKey()
	var active []string
	for el := envValues.Front(); el != nil; el = el.Next() {
		if app.Bootstrap {
			active = append(active, el.Key)
			continue
		}
		if enabled, found := values.Bool(el.Value.doc, key, "enabled"); found && enabled {
			active = append(active, el.Key)
		}
	}
	sort.Strings(active)
	return active
}

// resolveNamespace extracts the application's target namespace from its Argo
// CD Application template. Failures are advisory: the namespace degrades to
// the unknown sentinel with a diagnostic.
func (l *Loader) resolveNamespace(appName string) string {
	templatePath := filepath.Join(l.root, l.environmentsDir, phalanx.TemplatesDir, appName+"-application.yaml")
	template, err := os.ReadFile(templatePath)
	if err != nil {
		klog.Warningf("Could not read the deployment template for application %s: %v", appName, err)
		return phalanx.NamespaceUnknown
	}
	namespace, ok := extractNamespace(string(template))
	if !ok {
		klog.Warningf("No destination namespace matched in the deployment template for application %s", appName)
		return phalanx.NamespaceUnknown
	}
	return namespace
}
