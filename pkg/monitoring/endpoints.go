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

// Package monitoring records the in-cluster metrics endpoints exposed by
// applications that ship a Prometheus exporter. The table is maintained by
// hand since the charts do not declare their exporters in a form tools can
// read.
package monitoring

import (
	"sort"

	"phalanx.dev/phalanx/pkg/model"
)

// Endpoint is one scrapeable metrics endpoint of an application component.
type Endpoint struct {
	// Application is the application exposing the endpoint.
	Application string

	// Component is the application component the metrics describe.
	Component string

	// URL is the in-cluster URL of the endpoint.
	URL string
}

// endpoints maps application name to component name to the component's
// in-cluster metrics URL.
var endpoints = map[string]map[string]string{
	"argocd": {
		"application_controller":   "http://argocd-application-controller-metrics.argocd:8082/metrics",
		"notifications_controller": "http://argocd-notifications-controller-metrics.argocd:9001/metrics",
		"redis":                    "http://argocd-redis-metrics.argocd:9121/metrics",
		"repo_server":              "http://argocd-repo-server-metrics.argocd:8084/metrics",
		"server":                   "http://argocd-server-metrics.argocd:8083/metrics",
	},
	"nublado2": {
		"hub": "http://hub.nublado2:8081/metrics",
	},
	"ingress-nginx": {
		"controller": "http://ingress-nginx-controller-metrics.ingress-nginx:10254/metrics",
	},
}

// Endpoints returns the metrics endpoints of an application in component
// order. Applications without exporters return nil.
func Endpoints(application string) []Endpoint {
	components, ok := endpoints[application]
	if !ok {
		return nil
	}
	result := make([]Endpoint, 0, len(components))
	for component, url := range components {
		result = append(result, Endpoint{
			Application: application,
			Component:   component,
			URL:         url,
		})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Component < result[j].Component
	})
	return result
}

// ForEnvironment returns the metrics endpoints of every application enabled
// in the environment, following the environment's application order with
// each application's endpoints in component order.
func ForEnvironment(env *model.Environment) []Endpoint {
	var result []Endpoint
	for _, app := range env.Apps {
		result = append(result, Endpoints(app.Name)...)
	}
	return result
}
