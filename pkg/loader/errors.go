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

import "fmt"

// MissingFieldError reports an environment values document that lacks one of
// its mandatory fields.
type MissingFieldError struct {
	// Path is the document missing the field.
	Path string
	// Field is the missing field.
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("environment values document %s: missing mandatory field %q", e.Path, e.Field)
}
