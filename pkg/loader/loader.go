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

// Package loader builds the repository model from a Phalanx repository
// clone. Loading is a one-shot, read-only pass over the repository: a
// malformed values document or a missing mandatory environment field aborts
// the whole load, while missing optional data degrades to sentinels.
package loader

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/pkg/errors"

	"phalanx.dev/phalanx/pkg/api/phalanx"
	"phalanx.dev/phalanx/pkg/model"
	"phalanx.dev/phalanx/pkg/values"
)

// Loader reads a Phalanx repository from disk.
type Loader struct {
	root            string
	environmentsDir string
	appsDir         string
}

// New returns a Loader for the repository clone rooted at root, using the
// conventional directory layout.
func New(root string) *Loader {
	return &Loader{
		root:            root,
		environmentsDir: phalanx.EnvironmentsDir,
		appsDir:         phalanx.AppsDir,
	}
}

// envDocument is one parsed environment values document.
type envDocument struct {
	path string
	doc  map[string]interface{}
}

// Load builds the repository model. Applications are fully resolved before
// any environment, since environments reference the complete application
// list. The returned model is never partial: any fatal error aborts the
// load.
func (l *Loader) Load() (*model.Phalanx, error) {
	envValues, err := l.loadEnvValues()
	if err != nil {
		return nil, err
	}

	appsRoot := filepath.Join(l.root, l.appsDir)
	dirEntries, err := os.ReadDir(appsRoot)
	if err != nil {
		return nil, errors.Wrapf(err, "reading applications directory %s", appsRoot)
	}
	var apps []*model.Application
	for _, dirEntry := range dirEntries {
		if !dirEntry.IsDir() {
			continue
		}
		app, err := l.loadApplication(filepath.Join(appsRoot, dirEntry.Name()), envValues)
		if err != nil {
			return nil, err
		}
		apps = append(apps, app)
	}
	sort.Slice(apps, func(i, j int) bool {
		return apps[i].Name < apps[j].Name
	})

	var envs []*model.Environment
	for el := envValues.Front(); el != nil; el = el.Next() {
		env, err := loadEnvironment(el.Value, apps)
		if err != nil {
			return nil, err
		}
		envs = append(envs, env)
	}

	return &model.Phalanx{Environments: envs, Apps: apps}, nil
}

// loadEnvValues parses every environment values document directly under the
// environments directory, keyed by the environment name each document
// declares. Discovery order follows the lexical order of the file names, so
// repeated loads of the same snapshot see the same order.
func (l *Loader) loadEnvValues() (*orderedmap.OrderedMap[string, envDocument], error) {
	pattern := filepath.Join(l.root, l.environmentsDir, phalanx.ValuesFilePattern)
	paths, err := filepath.Glob(pattern)
	if err != nil {
		return nil, errors.Wrapf(err, "globbing environment values documents %s", pattern)
	}

	envValues := orderedmap.NewOrderedMap[string, envDocument]()
	for _, path := range paths {
		doc, err := values.ReadFile(path)
		if err != nil {
			return nil, err
		}
		name, found := values.String(doc, "environment")
		if !found {
			return nil, &MissingFieldError{Path: path, Field: "environment"}
		}
		envValues.Set(name, envDocument{path: path, doc: doc})
	}
	return envValues, nil
}
