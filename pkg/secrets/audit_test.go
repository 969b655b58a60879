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
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"phalanx.dev/phalanx/pkg/model"
	"phalanx.dev/phalanx/pkg/testing/repotest"
)

const gafaelfawrSecretsDoc = `
session-secret:
  description: Fernet key used to encrypt sessions.
  generate:
    type: fernet-key
database-password:
  description: Password for the PostgreSQL database.
  copy:
    application: postgres
    key: gafaelfawr_password
github-client-secret:
  description: GitHub OAuth App client secret.
slack-webhook:
  description: Slack webhook for alerts.
  if: config.slackAlerts
`

const postgresSecretsDoc = `
gafaelfawr_password:
  description: Password for the gafaelfawr database.
  generate:
    type: password
`

func auditRepo(t *testing.T) *repotest.RepoDir {
	t.Helper()
	return repotest.NewRepoDir(t,
		repotest.AppDir("argocd"),
		repotest.AppSecrets("gafaelfawr", gafaelfawrSecretsDoc),
		repotest.AppSecrets("postgres", postgresSecretsDoc),
	)
}

func auditEnv(apps ...*model.Application) *model.Environment {
	return &model.Environment{
		Name:            "dev",
		Domain:          "dev.example.org",
		VaultPathPrefix: "secret/phalanx/dev",
		Apps:            apps,
	}
}

func auditStatic() *StaticSecrets {
	return &StaticSecrets{
		Applications: map[string]map[string]StaticSecret{
			"gafaelfawr": {
				"github-client-secret": {Value: "github-oauth-secret"},
			},
		},
	}
}

func TestResolve(t *testing.T) {
	d := auditRepo(t)
	env := auditEnv(
		&model.Application{Name: "argocd", Bootstrap: true},
		&model.Application{Name: "gafaelfawr"},
		&model.Application{Name: "postgres"},
	)

	resolved, err := Resolve(d.Root(), env)
	require.NoError(t, err)

	// Applications without a secrets specification are omitted, and the
	// unmet slack-webhook condition drops that secret.
	require.Len(t, resolved, 2)
	require.NotContains(t, resolved, "argocd")
	require.Equal(t,
		[]string{"database-password", "github-client-secret", "session-secret"},
		SortedKeys(resolved["gafaelfawr"]))
	require.Equal(t, []string{"gafaelfawr_password"}, SortedKeys(resolved["postgres"]))
}

func TestAudit(t *testing.T) {
	d := auditRepo(t)
	env := auditEnv(
		&model.Application{Name: "argocd", Bootstrap: true},
		&model.Application{Name: "gafaelfawr"},
		&model.Application{Name: "postgres"},
	)

	require.NoError(t, Audit(d.Root(), env, auditStatic()))
}

func TestAuditMissingStatic(t *testing.T) {
	d := auditRepo(t)
	env := auditEnv(
		&model.Application{Name: "gafaelfawr"},
		&model.Application{Name: "postgres"},
	)

	err := Audit(d.Root(), env, nil)
	require.Error(t, err)
	require.ErrorContains(t, err, "gafaelfawr/github-client-secret")
}

func TestAuditMissingCopySource(t *testing.T) {
	d := auditRepo(t)
	env := auditEnv(&model.Application{Name: "gafaelfawr"})

	err := Audit(d.Root(), env, auditStatic())
	require.Error(t, err)
	require.ErrorContains(t, err, "copy source postgres/gafaelfawr_password")
}

func TestAuditMissingGenerateSource(t *testing.T) {
	d := repotest.NewRepoDir(t, repotest.AppSecrets("gafaelfawr", `
adc-mtime:
  description: Modification time of the credentials file.
  generate:
    type: mtime
    source: adc
`))
	env := auditEnv(&model.Application{Name: "gafaelfawr"})

	err := Audit(d.Root(), env, nil)
	require.Error(t, err)
	require.ErrorContains(t, err, "generate source adc")
}

func TestAuditConditionalSecret(t *testing.T) {
	d := auditRepo(t)
	gafaelfawr := &model.Application{
		Name: "gafaelfawr",
		Values: map[string]map[string]interface{}{
			"dev": {
				"config": map[string]interface{}{
					"slackAlerts": true,
				},
			},
		},
	}
	env := auditEnv(gafaelfawr, &model.Application{Name: "postgres"})

	err := Audit(d.Root(), env, auditStatic())
	require.Error(t, err)
	require.ErrorContains(t, err, "gafaelfawr/slack-webhook")
}

func TestAuditCollectsAllGaps(t *testing.T) {
	d := auditRepo(t)
	env := auditEnv(&model.Application{Name: "gafaelfawr"})

	err := Audit(d.Root(), env, nil)
	require.Error(t, err)
	require.Len(t, multierr.Errors(err), 2)
}

func TestAuditInvalidSpecification(t *testing.T) {
	d := repotest.NewRepoDir(t,
		repotest.AppSecrets("gafaelfawr", "token:\n  ttl: 3600\n"))
	env := auditEnv(&model.Application{Name: "gafaelfawr"})

	require.Error(t, Audit(d.Root(), env, nil))
}
