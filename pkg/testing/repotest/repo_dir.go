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

// Package repotest builds throwaway Phalanx repository layouts for loader
// tests.
package repotest

import (
	"os"
	"path"
	"path/filepath"
	"testing"

	"phalanx.dev/phalanx/pkg/api/phalanx"
)

// FileContentMap specifies files that should be created as part of a loader
// test.
//
// Keys are slash-delimited paths relative to the repository root.
type FileContentMap map[string]string

// RepoDirOpt performs setup on the test repository in question.
type RepoDirOpt func(t *testing.T, root string)

// RepoDir is a temporary Phalanx repository clone layout for use in testing.
type RepoDir struct {
	root string
}

// NewRepoDir constructs a new temporary test repository.
//
// The directory is automatically cleaned at the end of the test.
func NewRepoDir(t *testing.T, opts ...RepoDirOpt) *RepoDir {
	t.Helper()
	root := t.TempDir()
	for _, opt := range opts {
		opt(t, root)
	}
	return &RepoDir{root: root}
}

// Root returns the absolute path to the root directory of the repository.
func (d *RepoDir) Root() string {
	return d.root
}

// FileContents writes a file called file with contents inside the test
// repository.
//
// file is a slash-delimited path relative to the repository root.
func FileContents(file string, contents string) RepoDirOpt {
	return func(t *testing.T, root string) {
		t.Helper()
		Dir(path.Dir(file))(t, root)
		p := filepath.Join(root, filepath.FromSlash(file))
		if err := os.WriteFile(p, []byte(contents), os.ModePerm); err != nil {
			t.Fatalf("writing contents to file %q: %v", p, err)
		}
	}
}

// Dir creates a directory inside the test repository if it does not exist.
//
// dir is a slash-delimited relative path.
func Dir(dir string) RepoDirOpt {
	return func(t *testing.T, root string) {
		t.Helper()
		p := filepath.Join(root, filepath.FromSlash(dir))
		if err := os.MkdirAll(p, os.ModePerm); err != nil {
			t.Fatalf("creating directory %q: %v", p, err)
		}
	}
}

// DirContents is a convenience method for writing many files inside the test
// repository.
func DirContents(contentMap FileContentMap) RepoDirOpt {
	return func(t *testing.T, root string) {
		t.Helper()
		for file, contents := range contentMap {
			FileContents(file, contents)(t, root)
		}
	}
}

// EnvValues writes the values document for the named environment under the
// environments chart.
func EnvValues(env, contents string) RepoDirOpt {
	return FileContents(path.Join(phalanx.EnvironmentsDir, phalanx.ValuesFile(env)), contents)
}

// AppValues writes an application's values document for the named
// environment.
func AppValues(app, env, contents string) RepoDirOpt {
	return FileContents(path.Join(phalanx.AppsDir, app, phalanx.ValuesFile(env)), contents)
}

// AppBaseValues writes an application chart's base values document.
func AppBaseValues(app, contents string) RepoDirOpt {
	return FileContents(path.Join(phalanx.AppsDir, app, phalanx.BaseValuesFile), contents)
}

// AppDir creates an application chart directory with no values documents.
func AppDir(app string) RepoDirOpt {
	return Dir(path.Join(phalanx.AppsDir, app))
}

// AppSecrets writes an application's secrets specification.
func AppSecrets(app, contents string) RepoDirOpt {
	return FileContents(path.Join(phalanx.AppsDir, app, phalanx.SecretsFile), contents)
}

// AppTemplate writes the Argo CD Application template for the named
// application.
func AppTemplate(app, contents string) RepoDirOpt {
	file := path.Join(phalanx.EnvironmentsDir, phalanx.TemplatesDir, app+"-application.yaml")
	return FileContents(file, contents)
}
