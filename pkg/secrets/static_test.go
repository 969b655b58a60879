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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeStatic(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "static-secrets.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), os.ModePerm))
	return path
}

func TestLoadStatic(t *testing.T) {
	static, err := LoadStatic(writeStatic(t, `
applications:
  gafaelfawr:
    github-client-secret:
      description: GitHub OAuth App client secret.
      value: github-oauth-secret
    slack-webhook:
      value: ""
pull-secret:
  description: Pull secret for images mirrored from Docker Hub.
  registries:
    docker.io:
      username: lsst
      password: hunter2
`))
	require.NoError(t, err)

	gafaelfawr := static.ForApplication("gafaelfawr")
	require.Equal(t, "github-oauth-secret", gafaelfawr["github-client-secret"].Value)
	require.Empty(t, gafaelfawr["slack-webhook"].Value)
	require.Empty(t, static.ForApplication("postgres"))

	require.NotNil(t, static.PullSecret)
	require.Equal(t, "lsst", static.PullSecret.Registries["docker.io"].Username)
}

func TestLoadStaticInvalid(t *testing.T) {
	testCases := map[string]string{
		"unknown field":      "apps: {}\n",
		"malformed document": "applications: [unclosed\n",
	}

	for name, contents := range testCases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadStatic(writeStatic(t, contents))
			require.Error(t, err)
		})
	}
}

func TestLoadStaticMissing(t *testing.T) {
	_, err := LoadStatic(filepath.Join(t.TempDir(), "static-absent.yaml"))
	require.Error(t, err)
}

func TestForApplicationNil(t *testing.T) {
	var static *StaticSecrets
	require.Empty(t, static.ForApplication("gafaelfawr"))
	require.Empty(t, (&StaticSecrets{}).ForApplication("gafaelfawr"))
}

func TestPullSecretToDockerConfigJSON(t *testing.T) {
	pull := &PullSecret{
		Registries: map[string]RegistryPullSecret{
			"docker.io": {Username: "lsst", Password: "hunter2"},
		},
	}
	out, err := pull.ToDockerConfigJSON()
	require.NoError(t, err)
	require.JSONEq(t,
		`{"auths":{"docker.io":{"auth":"bHNzdDpodW50ZXIy","username":"lsst","password":"hunter2"}}}`,
		out)
}
