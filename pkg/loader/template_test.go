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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractNamespace(t *testing.T) {
	testCases := map[string]struct {
		template string
		want     string
		wantOK   bool
	}{
		"unquoted namespace": {
			template: `apiVersion: argoproj.io/v1alpha1
kind: Application
metadata:
  name: portal
  namespace: argocd
spec:
  destination:
    namespace: portal
    server: https://kubernetes.default.svc
`,
			want:   "portal",
			wantOK: true,
		},
		"quoted namespace": {
			template: `spec:
  destination:
    namespace: "foo-bar"
`,
			want:   "foo-bar",
			wantOK: true,
		},
		"helm templating around the block": {
			template: `{{- if .Values.gafaelfawr.enabled }}
apiVersion: argoproj.io/v1alpha1
kind: Application
spec:
  project: default
  destination:
    namespace: {{ "gafaelfawr" }}
  source:
    path: services/gafaelfawr
{{- end }}
`,
			wantOK: false,
		},
		"underscore in namespace": {
			template: "destination:\n  namespace: data_dev\n",
			want:     "data_dev",
			wantOK:   true,
		},
		"no space after the label": {
			template: "destination:\n  namespace:tap\n",
			want:     "tap",
			wantOK:   true,
		},
		"first destination block wins": {
			template: "destination:\n  namespace: first\n---\ndestination:\n  namespace: second\n",
			want:     "first",
			wantOK:   true,
		},
		"namespace not directly under destination": {
			template: "destination:\n  server: https://kubernetes.default.svc\n  namespace: portal\n",
			wantOK:   false,
		},
		"namespace starting with a digit": {
			template: "destination:\n  namespace: 9lives\n",
			wantOK:   false,
		},
		"no destination block": {
			template: "metadata:\n  namespace: argocd\n",
			wantOK:   false,
		},
		"empty template": {
			template: "",
			wantOK:   false,
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			got, ok := extractNamespace(tc.template)
			require.Equal(t, tc.wantOK, ok)
			require.Equal(t, tc.want, got)
		})
	}
}
