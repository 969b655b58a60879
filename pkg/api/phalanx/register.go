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

package phalanx

import "strings"

const (
	// EnvironmentsDir is the directory of the environments Helm chart in a
	// Phalanx repository. Per-environment values documents live directly
	// under it.
	EnvironmentsDir = "science-platform"

	// AppsDir is the root directory of the application Helm charts in a
	// Phalanx repository, one subdirectory per application.
	AppsDir = "services"

	// TemplatesDir is the directory under EnvironmentsDir holding the Argo CD
	// Application templates.
	TemplatesDir = "templates"
)

const (
	// BootstrapApp is the application that deploys Phalanx itself. It is
	// active in every environment and is not gated by an enablement flag.
	BootstrapApp = "argocd"

	// IdentityApp is the application that brokers authentication for an
	// environment.
	IdentityApp = "gafaelfawr"
)

const (
	// NamespaceUnknown is recorded for an application whose deployment
	// template could not be located or matched.
	NamespaceUnknown = "Unknown"

	// NotApplicable is returned by derived facts that have no value in an
	// environment, such as the Argo CD URL of an offline environment.
	NotApplicable = "N/A"
)

const (
	valuesFilePrefix = "values-"
	valuesFileSuffix = ".yaml"

	// ValuesFilePattern is the glob matching per-environment values
	// documents.
	ValuesFilePattern = valuesFilePrefix + "*" + valuesFileSuffix

	// BaseValuesFile is the name of a chart's base values document.
	BaseValuesFile = "values.yaml"

	// SecretsFile is the name of an application's secrets specification.
	SecretsFile = "secrets.yaml"
)

// ValuesFile returns the name of the values document for the named
// environment.
func ValuesFile(env string) string {
	return valuesFilePrefix + env + valuesFileSuffix
}

// EnvFromValuesFile returns the environment name encoded in a values document
// file name, or false if the name does not follow the values file pattern.
func EnvFromValuesFile(name string) (string, bool) {
	if !strings.HasPrefix(name, valuesFilePrefix) || !strings.HasSuffix(name, valuesFileSuffix) {
		return "", false
	}
	env := strings.TrimSuffix(strings.TrimPrefix(name, valuesFilePrefix), valuesFileSuffix)
	if env == "" {
		return "", false
	}
	return env, true
}

// IdentityProvider classifies how an environment's identity broker
// authenticates users.
type IdentityProvider string

const (
	// IdentityProviderCILogon indicates federated authentication through CILogon.
	IdentityProviderCILogon IdentityProvider = "CILogon"
	// IdentityProviderGitHub indicates authentication through GitHub.
	IdentityProviderGitHub IdentityProvider = "GitHub"
	// IdentityProviderOIDC indicates generic OpenID Connect authentication.
	IdentityProviderOIDC IdentityProvider = "OIDC"
	// IdentityProviderUnknown indicates the identity broker is absent or its
	// configuration does not name a known provider.
	IdentityProviderUnknown IdentityProvider = "Unknown"
)
