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
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func writeDoc(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "values-test.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), os.ModePerm))
	return path
}

func TestReadFile(t *testing.T) {
	testCases := map[string]struct {
		contents string
		want     map[string]interface{}
	}{
		"nested mapping": {
			contents: `
environment: dev
gafaelfawr:
  enabled: true
ports:
- 8080
- 8081
`,
			want: map[string]interface{}{
				"environment": "dev",
				"gafaelfawr": map[string]interface{}{
					"enabled": true,
				},
				"ports": []interface{}{8080, 8081},
			},
		},
		"empty document": {
			contents: "",
			want:     nil,
		},
		"comment only": {
			contents: "# no values yet\n",
			want:     nil,
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			doc, err := ReadFile(writeDoc(t, tc.contents))
			require.NoError(t, err)
			require.Equal(t, tc.want, doc)
		})
	}
}

func TestReadFileParseError(t *testing.T) {
	testCases := map[string]string{
		"malformed document":  "environment: [unclosed\n",
		"top level sequence":  "- a\n- b\n",
		"top level scalar":    "just a string\n",
		"tab indentation":     "environment:\n\tname: dev\n",
		"duplicate structure": "a: 1\n  b: 2\n",
	}

	for name, contents := range testCases {
		t.Run(name, func(t *testing.T) {
			path := writeDoc(t, contents)
			_, err := ReadFile(path)
			require.Error(t, err)

			var parseErr *ParseError
			require.True(t, errors.As(err, &parseErr))
			require.Equal(t, path, parseErr.Path)
			require.Error(t, parseErr.Unwrap())
		})
	}
}

func TestReadFileMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "values-absent.yaml")
	_, err := ReadFile(path)
	require.Error(t, err)
	require.True(t, os.IsNotExist(errors.Cause(err)))

	var parseErr *ParseError
	require.False(t, errors.As(err, &parseErr))
}
