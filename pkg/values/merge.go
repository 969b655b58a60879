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

// Merge combines a base values document with an overlay document. Mappings
// merge recursively with the overlay taking precedence, sequences
// concatenate with the overlay's elements first, and conflicting scalars or
// mismatched node kinds resolve to the overlay. Neither input is modified.
func Merge(base, overlay map[string]interface{}) map[string]interface{} {
	if base == nil && overlay == nil {
		return nil
	}
	merged := make(map[string]interface{}, len(base)+len(overlay))
	for key, baseVal := range base {
		merged[key] = baseVal
	}
	for key, overlayVal := range overlay {
		baseVal, found := merged[key]
		if !found {
			merged[key] = overlayVal
			continue
		}
		merged[key] = mergeValues(baseVal, overlayVal)
	}
	return merged
}

func mergeValues(base, overlay interface{}) interface{} {
	switch overlayVal := overlay.(type) {
	case []interface{}:
		baseSlice, ok := base.([]interface{})
		if !ok {
			return overlay
		}
		merged := make([]interface{}, 0, len(overlayVal)+len(baseSlice))
		merged = append(merged, overlayVal...)
		return append(merged, baseSlice...)
	case map[string]interface{}:
		baseMap, ok := base.(map[string]interface{})
		if !ok {
			return overlay
		}
		return Merge(baseMap, overlayVal)
	default:
		return overlay
	}
}
