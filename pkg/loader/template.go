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

import "regexp"

// namespacePattern matches the destination namespace declared by an Argo CD
// Application template: a destination: line directly followed by an indented,
// optionally quoted namespace: line. The template mixes Helm templating with
// YAML, so it cannot be parsed as structured data; this label sequence is the
// only structured signal needed from it.
var namespacePattern = regexp.MustCompile(`destination:\n[ ]+namespace:[ ]*"?([a-zA-Z][\w-]+)"?`)

// extractNamespace returns the first destination namespace declared in a
// deployment template, or false when the template declares none.
func extractNamespace(template string) (string, bool) {
	m := namespacePattern.FindStringSubmatch(template)
	if m == nil {
		return "", false
	}
	return m[1], true
}
