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

package model

import (
	"sort"
	"strings"

	"phalanx.dev/phalanx/pkg/api/phalanx"
	"phalanx.dev/phalanx/pkg/values"
)

// RoleMapping pairs a role name with the groups granted that role.
type RoleMapping struct {
	// Role is the role name.
	Role string
	// Groups lists the group identifiers granted the role, in document
	// order.
	Groups []string
}

// Environment is one Phalanx deployment environment.
type Environment struct {
	// Name of the environment, as declared by its own values document.
	Name string

	// Domain is the root domain where the environment is hosted.
	Domain string

	// VaultPathPrefix is the Vault key prefix for this environment's
	// secrets.
	VaultPathPrefix string

	// Apps lists the applications enabled in this environment, sorted by
	// name. The entries are the same instances held by Phalanx.Apps.
	Apps []*Application
}

// App returns the named application, or nil if it is not enabled in this
// environment.
func (e *Environment) App(name string) *Application {
	for _, app := range e.Apps {
		if app.Name == name {
			return app
		}
	}
	return nil
}

// ArgoCDURL returns the URL of the environment's Argo CD UI. Environments
// that do not expose one, such as local test environments, return the
// not-applicable sentinel.
func (e *Environment) ArgoCDURL() string {
	argocd := e.App(phalanx.BootstrapApp)
	if argocd == nil {
		return phalanx.NotApplicable
	}
	url, found := values.String(argocd.Values[e.Name], "argo-cd", "server", "config", "url")
	if !found {
		return phalanx.NotApplicable
	}
	return url
}

// ArgoCDRBAC returns the environment's Argo CD RBAC policy as one row per
// policy line, each comma-separated field wrapped in literal markers for
// presentation. Returns nil when no policy is configured.
func (e *Environment) ArgoCDRBAC() []string {
	argocd := e.App(phalanx.BootstrapApp)
	if argocd == nil {
		return nil
	}
	policy, found := values.String(argocd.Values[e.Name], "argo-cd", "server", "rbacConfig", "policy.csv")
	if !found {
		return nil
	}
	policy = strings.TrimRight(policy, "\n")
	if policy == "" {
		return nil
	}

	var rows []string
	for _, line := range strings.Split(policy, "\n") {
		fields := strings.Split(line, ",")
		for i, field := range fields {
			fields[i] = "``" + strings.TrimSpace(field) + "``"
		}
		rows = append(rows, strings.Join(fields, ","))
	}
	return rows
}

// IdentityProvider classifies how this environment authenticates users,
// based on which provider the identity broker is configured with.
func (e *Environment) IdentityProvider() phalanx.IdentityProvider {
	broker := e.App(phalanx.IdentityApp)
	if broker == nil {
		return phalanx.IdentityProviderUnknown
	}
	config, found := values.Map(broker.Values[e.Name], "config")
	if !found {
		return phalanx.IdentityProviderUnknown
	}

	if _, ok := config["cilogon"]; ok {
		return phalanx.IdentityProviderCILogon
	}
	if _, ok := config["github"]; ok {
		return phalanx.IdentityProviderGitHub
	}
	if _, ok := config["oidc"]; ok {
		return phalanx.IdentityProviderOIDC
	}
	return phalanx.IdentityProviderUnknown
}

// Roles returns the identity broker's role-to-group mapping for this
// environment, sorted ascending by role name. Each role's groups keep their
// document order. Returns an empty list when the broker or its group mapping
// is absent.
func (e *Environment) Roles() []RoleMapping {
	broker := e.App(phalanx.IdentityApp)
	if broker == nil {
		return nil
	}
	mapping, found := values.Map(broker.Values[e.Name], "config", "groupMapping")
	if !found {
		return nil
	}

	roles := make([]RoleMapping, 0, len(mapping))
	for role := range mapping {
		groups, _ := values.StringSlice(mapping, role)
		roles = append(roles, RoleMapping{Role: role, Groups: groups})
	}
	sort.Slice(roles, func(i, j int) bool {
		return roles[i].Role < roles[j].Role
	})
	return roles
}
