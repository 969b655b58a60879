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

// Package model holds the object graph built from a Phalanx repository:
// applications, environments, and the aggregate root that ties them
// together. The graph is built in a single load pass and is read-only
// afterwards.
package model

import (
	"strings"

	"phalanx.dev/phalanx/pkg/values"
)

// Application is a Phalanx-configured application.
type Application struct {
	// Name of the application. This name labels the application's chart
	// directory and its values documents.
	Name string

	// Bootstrap marks the application that deploys Phalanx itself. The
	// bootstrap application is active in every environment and is not gated
	// by a per-environment enablement flag.
	Bootstrap bool

	// Values holds the application's parsed Helm values for each
	// environment, keyed by environment name. Environments without a values
	// document for this application have no entry.
	Values map[string]map[string]interface{}

	// BaseValues holds the chart's base values document, or nil when the
	// chart carries none.
	BaseValues map[string]interface{}

	// ActiveEnvironments lists the environments where this application is
	// active, sorted ascending.
	ActiveEnvironments []string

	// Namespace is the Kubernetes namespace the application deploys into, or
	// the unknown sentinel when it could not be determined. It is never
	// empty.
	Namespace string
}

// ValuesKey returns the key under which this application appears in an
// environment values document. Environment documents use underscores where
// application names use hyphens.
func (a *Application) ValuesKey() string {
	return strings.ReplaceAll(a.Name, "-", "_")
}

// EffectiveValues returns the application's values for the named environment
// with the chart's base values filled in underneath. The stored documents
// are not modified.
func (a *Application) EffectiveValues(env string) map[string]interface{} {
	return values.Merge(a.BaseValues, a.Values[env])
}
