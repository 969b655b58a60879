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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValuesKey(t *testing.T) {
	testCases := map[string]struct {
		appName string
		want    string
	}{
		"plain name":         {appName: "gafaelfawr", want: "gafaelfawr"},
		"hyphenated name":    {appName: "cert-manager", want: "cert_manager"},
		"multiple hyphens":   {appName: "tap-schema-demo", want: "tap_schema_demo"},
		"name with a digit":  {appName: "nublado2", want: "nublado2"},
		"digit after hyphen": {appName: "cachemachine-2", want: "cachemachine_2"},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			app := &Application{Name: tc.appName}
			require.Equal(t, tc.want, app.ValuesKey())
		})
	}
}

func TestEffectiveValues(t *testing.T) {
	app := &Application{
		Name: "portal",
		BaseValues: map[string]interface{}{
			"replicas": 1,
			"config": map[string]interface{}{
				"logLevel": "info",
			},
		},
		Values: map[string]map[string]interface{}{
			"prod": {
				"replicas": 3,
				"config": map[string]interface{}{
					"debug": false,
				},
			},
		},
	}

	effective := app.EffectiveValues("prod")
	require.Equal(t, 3, effective["replicas"])
	require.Equal(t, map[string]interface{}{
		"logLevel": "info",
		"debug":    false,
	}, effective["config"])

	// An environment without its own document falls back to the base.
	effective = app.EffectiveValues("dev")
	require.Equal(t, 1, effective["replicas"])

	// The stored documents are untouched.
	require.Equal(t, 1, app.BaseValues["replicas"])
	require.Equal(t, map[string]interface{}{"debug": false}, app.Values["prod"]["config"])
}
