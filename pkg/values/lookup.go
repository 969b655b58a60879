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

package values

import (
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
)

// String returns the string value at the given field path. A missing key at
// any level, or a value of another type, reports not found.
func String(doc map[string]interface{}, fields ...string) (string, bool) {
	val, found, err := unstructured.NestedString(doc, fields...)
	if err != nil || !found {
		return "", false
	}
	return val, true
}

// Bool returns the boolean value at the given field path. A missing key at
// any level, or a value of another type, reports not found.
func Bool(doc map[string]interface{}, fields ...string) (bool, bool) {
	val, found, err := unstructured.NestedBool(doc, fields...)
	if err != nil || !found {
		return false, false
	}
	return val, true
}

// Map returns the mapping value at the given field path without copying it.
// A missing key at any level, or a value that is not a mapping, reports not
// found.
func Map(doc map[string]interface{}, fields ...string) (map[string]interface{}, bool) {
	val, found, err := unstructured.NestedFieldNoCopy(doc, fields...)
	if err != nil || !found {
		return nil, false
	}
	m, ok := val.(map[string]interface{})
	if !ok {
		return nil, false
	}
	return m, true
}

// StringSlice returns the sequence of strings at the given field path. A
// missing key at any level, or a sequence holding a non-string element,
// reports not found.
func StringSlice(doc map[string]interface{}, fields ...string) ([]string, bool) {
	val, found, err := unstructured.NestedStringSlice(doc, fields...)
	if err != nil || !found {
		return nil, false
	}
	return val, true
}
