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

// Package values reads Helm values documents into generic nested mappings
// and provides tolerant lookups over them. Values documents have no fixed
// schema; absent fields are normal and are reported as not found rather than
// as errors.
package values

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ParseError reports a values document that could not be parsed.
type ParseError struct {
	// Path is the document that failed to parse.
	Path string
	// Err is the underlying parser error.
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing values document %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying parser error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// ReadFile reads one values document from disk and parses it into a generic
// nested mapping. An empty document parses to a nil mapping. A document that
// is not well-formed, or whose top level is not a mapping, returns a
// *ParseError.
func ReadFile(path string) (map[string]interface{}, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading values document %s", path)
	}
	var doc map[string]interface{}
	if err := yaml.Unmarshal(contents, &doc); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	return doc, nil
}
