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

// Package flags holds the flags shared between phalanx subcommands.
package flags

import (
	"github.com/spf13/cobra"
)

const (
	// pathFlag is the flag to set the path of the Phalanx repository clone.
	pathFlag = "path"

	// PathDefault is the default value of the path flag if unset.
	PathDefault = "."

	// staticSecretsFlag is the flag name for StaticSecretsPath below.
	staticSecretsFlag = "static-secrets"
)

var (
	// Path says where the Phalanx repository clone is.
	Path string

	// StaticSecretsPath is the path of the document holding secret values
	// provided out of band. Empty means none are available.
	StaticSecretsPath string
)

// AddPath adds the --path flag.
func AddPath(cmd *cobra.Command) {
	cmd.Flags().StringVar(&Path, pathFlag, PathDefault,
		`Root directory to use as a Phalanx repository clone.`)
}

// AddStaticSecrets adds the --static-secrets flag.
func AddStaticSecrets(cmd *cobra.Command) {
	cmd.Flags().StringVar(&StaticSecretsPath, staticSecretsFlag, "",
		`Path of a YAML document with the static secret values provided out of band.`)
}
